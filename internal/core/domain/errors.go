// internal/core/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks
var (
	ErrMissingField = errors.New("missing field")
	ErrTypeError    = errors.New("type error")
	ErrNoSelection  = errors.New("no item selected")
	ErrStorage      = errors.New("storage error")
)

// ValidationKind classifies a validation failure
type ValidationKind string

const (
	KindMissingField ValidationKind = "missing field"
	KindTypeError    ValidationKind = "type error"
)

// ValidationError is returned when form input cannot become a Record
type ValidationError struct {
	Kind  ValidationKind
	Field FieldName
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Field)
}

// Message returns the operator facing text for the failure
func (e *ValidationError) Message() string {
	if e.Kind == KindTypeError {
		return "Price, Quantity, and Discount must be numbers."
	}
	return "All fields must be filled out."
}

// Is matches the sentinel for the error's kind
func (e *ValidationError) Is(target error) bool {
	switch e.Kind {
	case KindMissingField:
		return target == ErrMissingField
	case KindTypeError:
		return target == ErrTypeError
	}
	return false
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// SelectionError is returned when update or delete runs without a valid
// selected record
type SelectionError struct {
	Action string
	Index  int
	Count  int
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("no item selected to %s (index %d, %d records)", e.Action, e.Index, e.Count)
}

// Message returns the operator facing text for the failure
func (e *SelectionError) Message() string {
	return fmt.Sprintf("No item selected to %s.", e.Action)
}

func (e *SelectionError) Is(target error) bool {
	return target == ErrNoSelection
}

// StorageError wraps a failure to read or write the data file
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Path, e.Err)
}

// Message returns the operator facing text for the failure
func (e *StorageError) Message() string {
	return fmt.Sprintf("Could not %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
