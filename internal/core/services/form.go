// internal/core/services/form.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ammerola/pharmacy-inventory/internal/core/domain"
	"github.com/ammerola/pharmacy-inventory/internal/core/ports"
)

const noSelection = -1

// FormController holds the form's selection and displayed fields and
// applies the form actions against the record store
type FormController struct {
	store     ports.RecordStore
	logger    *slog.Logger
	selected  int
	displayed domain.Fields
}

// Statically assert that *FormController implements the FormService interface.
var _ ports.FormService = (*FormController)(nil)

// NewFormController creates a controller with nothing selected
func NewFormController(store ports.RecordStore, logger *slog.Logger) *FormController {
	return &FormController{
		store:    store,
		logger:   logger.With(slog.String("service", "form")),
		selected: noSelection,
	}
}

// Add validates the fields and appends a new record
func (c *FormController) Add(ctx context.Context, fields domain.Fields) (ports.Outcome, error) {
	records, err := c.store.Load(ctx)
	if err != nil {
		return ports.Outcome{}, fmt.Errorf("failed to load records: %w", err)
	}

	record, err := fields.Parse()
	if err != nil {
		c.logger.DebugContext(ctx, "add rejected", slog.String("reason", err.Error()))
		return ports.Outcome{}, err
	}

	records = append(records, record)
	if err := c.store.Save(ctx, records); err != nil {
		return ports.Outcome{}, fmt.Errorf("failed to save records: %w", err)
	}

	c.Clear()

	c.logger.InfoContext(ctx, "record added",
		slog.String("name", record.Name),
		slog.Int("index", len(records)-1),
		slog.Int("count", len(records)))

	return success("Item added successfully!"), nil
}

// Update replaces the selected record with the validated fields
func (c *FormController) Update(ctx context.Context, fields domain.Fields) (ports.Outcome, error) {
	records, err := c.store.Load(ctx)
	if err != nil {
		return ports.Outcome{}, fmt.Errorf("failed to load records: %w", err)
	}

	if err := c.checkSelection("update", len(records)); err != nil {
		return ports.Outcome{}, err
	}

	record, err := fields.Parse()
	if err != nil {
		c.logger.DebugContext(ctx, "update rejected", slog.String("reason", err.Error()))
		return ports.Outcome{}, err
	}

	index := c.selected
	records[index] = record
	if err := c.store.Save(ctx, records); err != nil {
		return ports.Outcome{}, fmt.Errorf("failed to save records: %w", err)
	}

	c.Clear()

	c.logger.InfoContext(ctx, "record updated",
		slog.String("name", record.Name),
		slog.Int("index", index))

	return success("Item updated successfully!"), nil
}

// Delete removes the selected record
func (c *FormController) Delete(ctx context.Context) (ports.Outcome, error) {
	records, err := c.store.Load(ctx)
	if err != nil {
		return ports.Outcome{}, fmt.Errorf("failed to load records: %w", err)
	}

	if err := c.checkSelection("delete", len(records)); err != nil {
		return ports.Outcome{}, err
	}

	index := c.selected
	removed := records[index]
	records = append(records[:index], records[index+1:]...)
	if err := c.store.Save(ctx, records); err != nil {
		return ports.Outcome{}, fmt.Errorf("failed to save records: %w", err)
	}

	c.Clear()

	c.logger.InfoContext(ctx, "record deleted",
		slog.String("name", removed.Name),
		slog.Int("index", index),
		slog.Int("count", len(records)))

	return success("Item deleted successfully!"), nil
}

// Search selects the first record whose name equals name exactly. When
// nothing matches the selection and displayed fields are left as they were.
func (c *FormController) Search(ctx context.Context, name string) (ports.Outcome, error) {
	records, err := c.store.Load(ctx)
	if err != nil {
		return ports.Outcome{}, fmt.Errorf("failed to load records: %w", err)
	}

	for i, record := range records {
		if record.Name == name {
			c.selected = i
			c.displayed = domain.FromRecord(record)

			c.logger.DebugContext(ctx, "record selected",
				slog.String("name", name),
				slog.Int("index", i))

			return ports.Outcome{
				Status:  ports.StatusSuccess,
				Title:   "Found",
				Message: fmt.Sprintf("Item '%s' loaded.", name),
			}, nil
		}
	}

	c.logger.DebugContext(ctx, "record not found", slog.String("name", name))

	return ports.Outcome{
		Status:  ports.StatusNotFound,
		Title:   "Not Found",
		Message: fmt.Sprintf("Item '%s' not found.", name),
	}, nil
}

// Clear empties the displayed fields and drops the selection
func (c *FormController) Clear() {
	c.selected = noSelection
	c.displayed = domain.Fields{}
}

// List returns the stored records without touching form state
func (c *FormController) List(ctx context.Context) ([]domain.Record, error) {
	records, err := c.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	return records, nil
}

// Selected returns the selected index, if any
func (c *FormController) Selected() (int, bool) {
	if c.selected == noSelection {
		return 0, false
	}
	return c.selected, true
}

// Displayed returns the fields currently shown on the form
func (c *FormController) Displayed() domain.Fields {
	return c.displayed
}

func (c *FormController) checkSelection(action string, count int) error {
	if c.selected < 0 || c.selected >= count {
		return &domain.SelectionError{Action: action, Index: c.selected, Count: count}
	}
	return nil
}

func success(message string) ports.Outcome {
	return ports.Outcome{
		Status:  ports.StatusSuccess,
		Title:   "Success",
		Message: message,
	}
}
