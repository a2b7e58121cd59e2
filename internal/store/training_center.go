package store

import (
	"context"
	"database/sql"

	"github.com/workoutlabs/workout-api/internal/domain"
)

// TrainingCenterStore defines the interface for training center data persistence.
type TrainingCenterStore interface {
	// Create saves a new training center to the store and assigns its ID.
	// Returns ErrTrainingCenterNameExists if the name is already taken.
	Create(ctx context.Context, tc *domain.TrainingCenter) error

	// GetByID retrieves a training center by its ID.
	// Returns ErrTrainingCenterNotFound if the training center does not exist.
	GetByID(ctx context.Context, id int64) (*domain.TrainingCenter, error)

	// GetByName retrieves a training center by exact name match.
	// Returns ErrTrainingCenterNotFound if the training center does not exist.
	GetByName(ctx context.Context, name string) (*domain.TrainingCenter, error)

	// List retrieves all training centers in creation order.
	List(ctx context.Context) ([]*domain.TrainingCenter, error)

	// WithTx returns a new TrainingCenterStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) TrainingCenterStore
}
