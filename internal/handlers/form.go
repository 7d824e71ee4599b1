// internal/handlers/form.go
package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"

	"github.com/ammerola/pharmacy-inventory/internal/core/domain"
	"github.com/ammerola/pharmacy-inventory/internal/core/ports"
	"github.com/ammerola/pharmacy-inventory/internal/pkg/logger"
)

// Action is a form button
type Action string

const (
	ActionAdd    Action = "add"
	ActionDelete Action = "delete"
	ActionUpdate Action = "update"
	ActionSearch Action = "search"
	ActionClear  Action = "clear"
	ActionList   Action = "list"
	ActionExport Action = "export"
)

// Level is the severity of a notification
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is the blocking message shown to the operator after an
// action
type Notification struct {
	Level   Level
	Title   string
	Message string
}

// FormHandler translates form actions into controller calls and renders
// the outcome. Errors stop here: they become notifications.
type FormHandler struct {
	form       ports.FormService
	exporter   ports.RecordExporter
	exportPath func(string) string
	out        io.Writer
	logger     *slog.Logger

	draft domain.Fields

	success *color.Color
	warning *color.Color
	failure *color.Color
	label   *color.Color
}

// FormHandlerConfig holds optional collaborators of the handler
type FormHandlerConfig struct {
	Exporter ports.RecordExporter
	// ExportPath resolves the name given to the export action
	ExportPath func(string) string
	Color      bool
}

// NewFormHandler creates a new form handler writing notifications to out
func NewFormHandler(form ports.FormService, out io.Writer, cfg FormHandlerConfig, logger *slog.Logger) *FormHandler {
	h := &FormHandler{
		form:       form,
		exporter:   cfg.Exporter,
		exportPath: cfg.ExportPath,
		out:        out,
		logger:     logger.With(slog.String("handler", "form")),
		success:    color.New(color.FgGreen, color.Bold),
		warning:    color.New(color.FgYellow, color.Bold),
		failure:    color.New(color.FgRed, color.Bold),
		label:      color.New(color.FgCyan),
	}

	if h.exportPath == nil {
		h.exportPath = func(name string) string { return name }
	}

	for _, c := range []*color.Color{h.success, h.warning, h.failure, h.label} {
		if cfg.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return h
}

// Draft returns the text currently typed into the form
func (h *FormHandler) Draft() domain.Fields {
	return h.draft
}

// SetField changes one input of the draft
func (h *FormHandler) SetField(name domain.FieldName, value string) {
	h.draft = h.draft.Set(name, value)
}

// Handle runs action against the current draft. arg carries the search
// name or export file name when given on the command line.
func (h *FormHandler) Handle(ctx context.Context, action Action, arg string) Notification {
	ctx = logger.WithAction(ctx, string(action))

	var (
		outcome ports.Outcome
		err     error
	)

	switch action {
	case ActionAdd:
		outcome, err = h.form.Add(ctx, h.draft)
	case ActionUpdate:
		outcome, err = h.form.Update(ctx, h.draft)
	case ActionDelete:
		outcome, err = h.form.Delete(ctx)
	case ActionSearch:
		if arg != "" {
			h.draft.Name = arg
		}
		outcome, err = h.form.Search(ctx, h.draft.Name)
	case ActionClear:
		h.form.Clear()
		outcome = ports.Outcome{Status: ports.StatusCleared, Title: "Cleared", Message: "All fields cleared."}
	case ActionList:
		return h.list(ctx)
	case ActionExport:
		return h.export(ctx, arg)
	default:
		return h.notify(Notification{
			Level:   LevelWarning,
			Title:   "Unknown Action",
			Message: fmt.Sprintf("Unknown action %q.", action),
		})
	}

	if err != nil {
		return h.notify(h.errorNotification(ctx, action, err))
	}

	// Search misses leave the form untouched; every other outcome
	// mirrors the controller's displayed fields.
	if outcome.Status != ports.StatusNotFound {
		h.draft = h.form.Displayed()
	}

	level := LevelSuccess
	if outcome.Status == ports.StatusNotFound || outcome.Status == ports.StatusCleared {
		level = LevelInfo
	}

	return h.notify(Notification{Level: level, Title: outcome.Title, Message: outcome.Message})
}

// RenderForm writes the six inputs and the selection state
func (h *FormHandler) RenderForm() {
	width := 0
	for _, name := range domain.FieldOrder {
		width = max(width, len(domain.FieldLabels[name]))
	}

	for _, name := range domain.FieldOrder {
		h.label.Fprintf(h.out, "  %-*s", width+1, domain.FieldLabels[name]+":")
		fmt.Fprintf(h.out, " %s\n", h.draft.Get(name))
	}

	if idx, ok := h.form.Selected(); ok {
		fmt.Fprintf(h.out, "  (editing record #%d)\n", idx)
	} else {
		fmt.Fprintln(h.out, "  (no record selected)")
	}
}

func (h *FormHandler) list(ctx context.Context) Notification {
	records, err := h.form.List(ctx)
	if err != nil {
		return h.notify(h.errorNotification(ctx, ActionList, err))
	}

	if len(records) == 0 {
		return h.notify(Notification{Level: LevelInfo, Title: "Inventory", Message: "No items stored."})
	}

	selected, hasSelection := h.form.Selected()
	for i, r := range records {
		marker := " "
		if hasSelection && i == selected {
			marker = "*"
		}
		fmt.Fprintf(h.out, "%s %3d  %-24s %10s %6d  %-14s %6s%%  %s\n",
			marker, i, r.Name, domain.FormatNumber(r.Price), r.Quantity,
			r.Category, domain.FormatNumber(r.Discount), r.ExpiryDate)
	}

	return Notification{
		Level:   LevelInfo,
		Title:   "Inventory",
		Message: fmt.Sprintf("%d item(s) stored.", len(records)),
	}
}

func (h *FormHandler) export(ctx context.Context, name string) Notification {
	if h.exporter == nil {
		return h.notify(Notification{Level: LevelWarning, Title: "Export", Message: "Export is not available."})
	}
	if name == "" {
		name = "inventory.xlsx"
	}
	if !strings.HasSuffix(strings.ToLower(name), ".xlsx") {
		name += ".xlsx"
	}
	path := h.exportPath(name)

	records, err := h.form.List(ctx)
	if err != nil {
		return h.notify(h.errorNotification(ctx, ActionExport, err))
	}

	if err := h.exporter.Export(ctx, records, path); err != nil {
		return h.notify(h.errorNotification(ctx, ActionExport, err))
	}

	return h.notify(Notification{
		Level:   LevelSuccess,
		Title:   "Success",
		Message: fmt.Sprintf("Exported %d item(s) to %s.", len(records), path),
	})
}

func (h *FormHandler) errorNotification(ctx context.Context, action Action, err error) Notification {
	var (
		verr *domain.ValidationError
		serr *domain.SelectionError
		derr *domain.StorageError
	)

	switch {
	case errors.As(err, &verr):
		return Notification{Level: LevelWarning, Title: "Input Error", Message: verr.Message()}
	case errors.As(err, &serr):
		return Notification{Level: LevelWarning, Title: "Selection Error", Message: serr.Message()}
	case errors.As(err, &derr):
		h.logger.ErrorContext(ctx, "storage failure",
			slog.String("action", string(action)),
			slog.String("error", err.Error()))
		return Notification{Level: LevelError, Title: "Storage Error", Message: derr.Message()}
	default:
		h.logger.ErrorContext(ctx, "action failed",
			slog.String("action", string(action)),
			slog.String("error", err.Error()))
		return Notification{Level: LevelError, Title: "Error", Message: err.Error()}
	}
}

func (h *FormHandler) notify(n Notification) Notification {
	c := h.label
	switch n.Level {
	case LevelSuccess:
		c = h.success
	case LevelWarning:
		c = h.warning
	case LevelError:
		c = h.failure
	}

	c.Fprintf(h.out, "[%s]", n.Title)
	fmt.Fprintf(h.out, " %s\n", n.Message)
	return n
}
