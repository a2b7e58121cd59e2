package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/workoutlabs/workout-api/internal/domain"
	"github.com/workoutlabs/workout-api/internal/platform/logger"
	"github.com/workoutlabs/workout-api/internal/store"
)

// Listing bounds applied when the caller passes no (or out-of-range) values.
const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// CreateAthleteInput carries the validated fields for athlete creation.
// The category and training center are referenced by exact name and must
// already exist.
type CreateAthleteInput struct {
	Name               string
	CPF                string
	CategoryName       string
	TrainingCenterName string
}

// AthletePage is the page envelope returned by ListAthletes.
type AthletePage struct {
	Items  []*domain.Athlete
	Total  int64
	Limit  int
	Offset int
}

// AthleteService provides athlete-related operations.
type AthleteService interface {
	// CreateAthlete resolves the named category and training center,
	// builds a new athlete and persists it in a single transaction.
	// Returns store.ErrCategoryNotFound or store.ErrTrainingCenterNotFound
	// when a named reference does not exist, store.ErrCPFExists when the
	// cpf is already registered, and an *AthleteServiceError for any
	// unexpected storage failure. No partial write survives any failure.
	CreateAthlete(ctx context.Context, input CreateAthleteInput) (*domain.Athlete, error)

	// ListAthletes returns a page of athletes matching the filter together
	// with the total match count.
	ListAthletes(ctx context.Context, filter store.AthleteFilter, limit, offset int) (*AthletePage, error)

	// GetAthlete retrieves an athlete by ID.
	// Returns store.ErrAthleteNotFound if the athlete does not exist.
	GetAthlete(ctx context.Context, id uuid.UUID) (*domain.Athlete, error)
}

// athleteServiceImpl implements the AthleteService interface.
// It holds no state of its own; each call is one logical unit of work
// against the store.
type athleteServiceImpl struct {
	db                  *sql.DB
	athleteStore        store.AthleteStore
	categoryStore       store.CategoryStore
	trainingCenterStore store.TrainingCenterStore
	logger              *slog.Logger
}

// NewAthleteService creates a new AthleteService.
// It returns an error if any of the required dependencies are nil.
func NewAthleteService(
	db *sql.DB,
	athleteStore store.AthleteStore,
	categoryStore store.CategoryStore,
	trainingCenterStore store.TrainingCenterStore,
	log *slog.Logger,
) (AthleteService, error) {
	if db == nil {
		return nil, &AthleteServiceError{Operation: "create_service", Message: "db cannot be nil"}
	}
	if athleteStore == nil {
		return nil, &AthleteServiceError{Operation: "create_service", Message: "athleteStore cannot be nil"}
	}
	if categoryStore == nil {
		return nil, &AthleteServiceError{Operation: "create_service", Message: "categoryStore cannot be nil"}
	}
	if trainingCenterStore == nil {
		return nil, &AthleteServiceError{Operation: "create_service", Message: "trainingCenterStore cannot be nil"}
	}
	if log == nil {
		log = slog.Default()
	}

	return &athleteServiceImpl{
		db:                  db,
		athleteStore:        athleteStore,
		categoryStore:       categoryStore,
		trainingCenterStore: trainingCenterStore,
		logger:              log.With(slog.String("component", "athlete_service")),
	}, nil
}

// CreateAthlete implements AthleteService.CreateAthlete
func (s *athleteServiceImpl) CreateAthlete(
	ctx context.Context,
	input CreateAthleteInput,
) (*domain.Athlete, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Step 1: both references must resolve before anything is written.
	category, err := s.categoryStore.GetByName(ctx, input.CategoryName)
	if err != nil {
		log.Debug("category reference did not resolve",
			slog.String("category", input.CategoryName),
			slog.String("error", err.Error()))
		return nil, newAthleteServiceError("create_athlete", "failed to resolve category", err)
	}

	trainingCenter, err := s.trainingCenterStore.GetByName(ctx, input.TrainingCenterName)
	if err != nil {
		log.Debug("training center reference did not resolve",
			slog.String("training_center", input.TrainingCenterName),
			slog.String("error", err.Error()))
		return nil, newAthleteServiceError("create_athlete", "failed to resolve training center", err)
	}

	// Step 2: construct with a fresh identity and the resolved references.
	athlete, err := domain.NewAthlete(input.Name, input.CPF, category, trainingCenter)
	if err != nil {
		return nil, err
	}

	// Step 3: persist as one atomic unit. The cpf uniqueness constraint is
	// checked by the store inside the transaction; a losing concurrent
	// insert observes ErrCPFExists and the transaction rolls back fully.
	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.athleteStore.WithTx(tx).Create(ctx, athlete)
	})
	if err != nil {
		return nil, newAthleteServiceError("create_athlete", "failed to persist athlete", err)
	}

	log.Info("athlete created",
		slog.String("athlete_id", athlete.ID.String()),
		slog.String("category", athlete.CategoryName),
		slog.String("training_center", athlete.TrainingCenterName))
	return athlete, nil
}

// ListAthletes implements AthleteService.ListAthletes
func (s *athleteServiceImpl) ListAthletes(
	ctx context.Context,
	filter store.AthleteFilter,
	limit, offset int,
) (*AthletePage, error) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	items, err := s.athleteStore.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, newAthleteServiceError("list_athletes", "failed to list athletes", err)
	}

	total, err := s.athleteStore.Count(ctx, filter)
	if err != nil {
		return nil, newAthleteServiceError("list_athletes", "failed to count athletes", err)
	}

	return &AthletePage{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// GetAthlete implements AthleteService.GetAthlete
func (s *athleteServiceImpl) GetAthlete(ctx context.Context, id uuid.UUID) (*domain.Athlete, error) {
	athlete, err := s.athleteStore.GetByID(ctx, id)
	if err != nil {
		return nil, newAthleteServiceError("get_athlete", "failed to get athlete", err)
	}
	return athlete, nil
}
