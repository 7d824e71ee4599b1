// internal/core/ports/spreadsheet.go
package ports

import (
	"context"

	"github.com/ammerola/pharmacy-inventory/internal/core/domain"
)

// RecordExporter writes the record list to an external document
type RecordExporter interface {
	Export(ctx context.Context, records []domain.Record, path string) error
}

// RecordImporter reads raw form rows from an external document. Rows are
// returned as text so they go through the same validation as typed input.
type RecordImporter interface {
	Import(ctx context.Context, path string) ([]domain.Fields, error)
}
