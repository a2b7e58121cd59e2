package service

import (
	"errors"
	"fmt"

	"github.com/workoutlabs/workout-api/internal/store"
)

// AthleteServiceError wraps unexpected failures from the athlete service
// with operation context. Expected business outcomes (missing references,
// duplicate cpf, not found) are returned as store sentinels and are never
// wrapped in this type, so callers can rely on errors.Is to tell the two
// classes apart.
type AthleteServiceError struct {
	// Operation is the operation that failed (e.g., "create_athlete")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for AthleteServiceError.
func (e *AthleteServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("athlete service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("athlete service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *AthleteServiceError) Unwrap() error {
	return e.Err
}

// newAthleteServiceError wraps err with operation context.
// Expected business outcomes pass through unchanged so the caller can
// distinguish them from storage failures.
func newAthleteServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if store.IsNotFoundError(err) || store.IsDuplicateError(err) ||
		errors.Is(err, store.ErrInvalidEntity) {
		return err
	}

	return &AthleteServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
