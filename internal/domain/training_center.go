package domain

import (
	"errors"
	"time"
)

// Common validation errors for TrainingCenter.
var (
	ErrEmptyTrainingCenterName   = errors.New("training center name cannot be empty")
	ErrTrainingCenterNameTooLong = errors.New("training center name cannot exceed 50 characters")
)

// TrainingCenter represents the facility an athlete trains at.
// Like Category, it is created once and immutable after being referenced.
type TrainingCenter struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTrainingCenter creates a new TrainingCenter with the given name.
// The ID is assigned by the store on insert.
// Returns an error if validation fails.
func NewTrainingCenter(name string) (*TrainingCenter, error) {
	tc := &TrainingCenter{
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	if err := tc.Validate(); err != nil {
		return nil, err
	}

	return tc, nil
}

// Validate checks if the TrainingCenter has valid data.
func (t *TrainingCenter) Validate() error {
	if t.Name == "" {
		return ErrEmptyTrainingCenterName
	}
	if len(t.Name) > maxNameLength {
		return ErrTrainingCenterNameTooLong
	}
	return nil
}
