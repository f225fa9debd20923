package services

import (
	"errors"
	"fmt"
)

// ValidationError marks a request rejected before any state mutation. The
// handlers map it to a 400 with the reason; everything else is a 500.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is a pre-mutation rejection.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// PersistenceError wraps a failed save. The computed state is still valid in
// memory but may not be durable.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist state: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
