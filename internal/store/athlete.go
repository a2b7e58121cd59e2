package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/workoutlabs/workout-api/internal/domain"
)

// AthleteFilter holds the optional predicates for listing athletes.
// Name matches athlete names case-insensitively as a substring; CPF matches
// exactly. Both are combined with logical AND; empty fields are ignored.
type AthleteFilter struct {
	Name string
	CPF  string
}

// AthleteStore defines the interface for athlete data persistence.
// Athletes are immutable after creation, so there are no update or delete
// operations.
type AthleteStore interface {
	// Create saves a new athlete to the store.
	// Returns ErrCPFExists if an athlete with the same cpf already exists;
	// the uniqueness constraint in the store is the sole arbiter of that
	// outcome, including for concurrent creation attempts.
	// Returns ErrInvalidEntity if a referenced category or training center
	// does not exist at insert time.
	Create(ctx context.Context, athlete *domain.Athlete) error

	// GetByID retrieves an athlete by their unique ID, including the
	// denormalized category and training center names.
	// Returns ErrAthleteNotFound if the athlete does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Athlete, error)

	// List retrieves athletes matching the filter, ordered by creation
	// time (with id as tiebreak) and truncated to limit records starting
	// at offset. Returns an empty slice, not an error, when nothing matches.
	List(ctx context.Context, filter AthleteFilter, limit, offset int) ([]*domain.Athlete, error)

	// Count returns the total number of athletes matching the filter,
	// ignoring limit and offset.
	Count(ctx context.Context, filter AthleteFilter) (int64, error)

	// WithTx returns a new AthleteStore instance that uses the provided transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) AthleteStore
}
