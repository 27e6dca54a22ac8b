package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
)

// ValidationError reports caller input that fails a precondition (empty
// required field, unknown enum value, bad pagination bounds).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// ConflictError blocks category deletion while documents still reference it.
// The message carries the exact referencing-document count.
type ConflictError struct {
	CategoryID    int
	DocumentCount int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("cannot delete category %d: category has %d associated documents, reassign or delete them first", e.CategoryID, e.DocumentCount)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}
