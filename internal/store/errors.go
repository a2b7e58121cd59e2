package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors
	// (e.g., ErrAthleteNotFound, ErrCategoryNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., an athlete with the same cpf).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored, or when an insert violates a referential or check
	// constraint. Check the wrapped error for details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrTransactionFailed is returned by RunInTransaction when the
	// transaction itself cannot be started or committed. Errors from the
	// function running inside the transaction pass through unwrapped.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	// ErrAthleteNotFound indicates that the requested athlete does not exist in the store.
	ErrAthleteNotFound = fmt.Errorf("%w: athlete", ErrNotFound)

	// ErrCategoryNotFound indicates that the requested category does not exist in the store.
	ErrCategoryNotFound = fmt.Errorf("%w: category", ErrNotFound)

	// ErrTrainingCenterNotFound indicates that the requested training center does not exist in the store.
	ErrTrainingCenterNotFound = fmt.Errorf("%w: training center", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrCPFExists indicates that an athlete with the given cpf already exists.
	// This is returned when the cpf uniqueness constraint rejects an insert.
	ErrCPFExists = fmt.Errorf("%w: cpf", ErrDuplicate)

	// ErrCategoryNameExists indicates that a category with the given name already exists.
	ErrCategoryNameExists = fmt.Errorf("%w: category name", ErrDuplicate)

	// ErrTrainingCenterNameExists indicates that a training center with the given name already exists.
	ErrTrainingCenterNameExists = fmt.Errorf("%w: training center name", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
