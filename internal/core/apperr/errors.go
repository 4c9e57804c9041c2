// Package apperr holds the error taxonomy shared by every feature: input
// validation failures raised before any backend call, backend failures, and
// missing entities.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrBackend marks a failed call to the e-commerce backend.
	ErrBackend = errors.New("backend request failed")
	// ErrNotFound marks an entity the backend does not know.
	ErrNotFound = errors.New("not found")
)

// ValidationError reports invalid input. It is raised before the backend is contacted.
type ValidationError struct {
	// Field names the offending input field, if any.
	Field string
	// Message is the user-facing description.
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Invalid builds a ValidationError.
func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Backend wraps err as a backend failure for the named action.
func Backend(action string, err error) error {
	if errors.Is(err, ErrBackend) || errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%s: %w", action, err)
	}
	return fmt.Errorf("%s: %w: %w", action, ErrBackend, err)
}
