package client

import (
	"errors"
	"fmt"
)

// ErrClientNotFound is returned when a client is not found
var ErrClientNotFound = errors.New("client not found")

// ValidationError represents an error that occurs during client validation
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
