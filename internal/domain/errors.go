package domain

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrStorage is the opaque failure returned to callers when persistence
	// fails. The underlying cause is logged, not exposed.
	ErrStorage = errors.New("storage failure")
)

// Business-rule denials. These are outcomes a caller waits out, not faults.
var (
	ErrDailyCapExceeded = errors.New("daily stanza limit reached")
	ErrConsecutiveTheme = errors.New("consecutive stanza on the same theme")
)

// ErrAlreadyDecided is returned when a moderation decision targets a stanza
// that already left the pending state.
var ErrAlreadyDecided = fmt.Errorf("stanza already decided: %w", ErrConflict)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s - %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// IsExpected reports whether err is an outcome the caller can act on
// (a domain sentinel or a cancelled request) rather than an infrastructure fault.
func IsExpected(err error) bool {
	for _, target := range []error{
		ErrNotFound, ErrAlreadyExists, ErrValidation, ErrUnauthorized,
		ErrForbidden, ErrConflict, ErrStorage,
		ErrDailyCapExceeded, ErrConsecutiveTheme,
		context.Canceled, context.DeadlineExceeded,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
