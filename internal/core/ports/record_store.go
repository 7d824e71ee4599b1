// internal/core/ports/record_store.go
package ports

import (
	"context"

	"github.com/ammerola/pharmacy-inventory/internal/core/domain"
)

// RecordStore defines the persistence port for the record list.
// Implementations always read and write the whole collection.
type RecordStore interface {
	Load(ctx context.Context) ([]domain.Record, error)
	Save(ctx context.Context, records []domain.Record) error
	Path() string
}
