package service

import (
	"context"
	"log/slog"

	"github.com/workoutlabs/workout-api/internal/domain"
	"github.com/workoutlabs/workout-api/internal/store"
)

// TrainingCenterService provides training-center-related operations.
type TrainingCenterService interface {
	// CreateTrainingCenter creates a new training center with the given name.
	// Returns store.ErrTrainingCenterNameExists if the name is already taken.
	CreateTrainingCenter(ctx context.Context, name string) (*domain.TrainingCenter, error)

	// ListTrainingCenters returns all training centers in creation order.
	ListTrainingCenters(ctx context.Context) ([]*domain.TrainingCenter, error)

	// GetTrainingCenter retrieves a training center by ID.
	// Returns store.ErrTrainingCenterNotFound if the training center does not exist.
	GetTrainingCenter(ctx context.Context, id int64) (*domain.TrainingCenter, error)
}

type trainingCenterServiceImpl struct {
	trainingCenterStore store.TrainingCenterStore
	logger              *slog.Logger
}

// NewTrainingCenterService creates a new TrainingCenterService.
func NewTrainingCenterService(
	trainingCenterStore store.TrainingCenterStore,
	log *slog.Logger,
) (TrainingCenterService, error) {
	if trainingCenterStore == nil {
		return nil, &AthleteServiceError{
			Operation: "create_service",
			Message:   "trainingCenterStore cannot be nil",
		}
	}
	if log == nil {
		log = slog.Default()
	}

	return &trainingCenterServiceImpl{
		trainingCenterStore: trainingCenterStore,
		logger:              log.With(slog.String("component", "training_center_service")),
	}, nil
}

func (s *trainingCenterServiceImpl) CreateTrainingCenter(
	ctx context.Context,
	name string,
) (*domain.TrainingCenter, error) {
	tc, err := domain.NewTrainingCenter(name)
	if err != nil {
		return nil, err
	}

	if err := s.trainingCenterStore.Create(ctx, tc); err != nil {
		return nil, newAthleteServiceError("create_training_center", "failed to persist training center", err)
	}

	return tc, nil
}

func (s *trainingCenterServiceImpl) ListTrainingCenters(ctx context.Context) ([]*domain.TrainingCenter, error) {
	centers, err := s.trainingCenterStore.List(ctx)
	if err != nil {
		return nil, newAthleteServiceError("list_training_centers", "failed to list training centers", err)
	}
	return centers, nil
}

func (s *trainingCenterServiceImpl) GetTrainingCenter(ctx context.Context, id int64) (*domain.TrainingCenter, error) {
	tc, err := s.trainingCenterStore.GetByID(ctx, id)
	if err != nil {
		return nil, newAthleteServiceError("get_training_center", "failed to get training center", err)
	}
	return tc, nil
}
