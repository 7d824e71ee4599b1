// internal/core/ports/form_service.go
package ports

import (
	"context"

	"github.com/ammerola/pharmacy-inventory/internal/core/domain"
)

// FormService defines the operations a form surface can trigger.
// This interface is implemented by the form controller.
type FormService interface {
	Add(ctx context.Context, fields domain.Fields) (Outcome, error)
	Update(ctx context.Context, fields domain.Fields) (Outcome, error)
	Delete(ctx context.Context) (Outcome, error)
	Search(ctx context.Context, name string) (Outcome, error)
	Clear()
	List(ctx context.Context) ([]domain.Record, error)

	Selected() (int, bool)
	Displayed() domain.Fields
}

// OutcomeStatus classifies a completed action
type OutcomeStatus string

const (
	StatusSuccess  OutcomeStatus = "success"
	StatusNotFound OutcomeStatus = "not_found"
	StatusCleared  OutcomeStatus = "cleared"
)

// Outcome is the notification produced by a successful action
type Outcome struct {
	Status  OutcomeStatus
	Title   string
	Message string
}
