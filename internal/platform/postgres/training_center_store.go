package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/workoutlabs/workout-api/internal/domain"
	"github.com/workoutlabs/workout-api/internal/platform/logger"
	"github.com/workoutlabs/workout-api/internal/store"
)

// PostgresTrainingCenterStore implements the store.TrainingCenterStore
// interface using a PostgreSQL database as the storage backend.
type PostgresTrainingCenterStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTrainingCenterStore creates a new PostgreSQL implementation of
// the TrainingCenterStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresTrainingCenterStore(db store.DBTX, logger *slog.Logger) *PostgresTrainingCenterStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTrainingCenterStore{
		db:     db,
		logger: logger.With(slog.String("component", "training_center_store")),
	}
}

// Ensure PostgresTrainingCenterStore implements store.TrainingCenterStore interface
var _ store.TrainingCenterStore = (*PostgresTrainingCenterStore)(nil)

// WithTx implements store.TrainingCenterStore.WithTx
func (s *PostgresTrainingCenterStore) WithTx(tx *sql.Tx) store.TrainingCenterStore {
	return &PostgresTrainingCenterStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.TrainingCenterStore.Create
// It inserts the training center and assigns the generated ID.
// Returns store.ErrTrainingCenterNameExists if the name is already taken.
func (s *PostgresTrainingCenterStore) Create(ctx context.Context, tc *domain.TrainingCenter) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := tc.Validate(); err != nil {
		log.Warn("training center validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO training_centers (name, created_at)
		VALUES ($1, $2)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query, tc.Name, tc.CreatedAt).Scan(&tc.ID)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate name during training center creation",
				slog.String("name", tc.Name))
			return MapUniqueViolation(err, store.ErrTrainingCenterNameExists)
		}

		log.Error("failed to create training center",
			slog.String("error", err.Error()),
			slog.String("name", tc.Name))
		return err
	}

	log.Info("training center created successfully",
		slog.Int64("training_center_id", tc.ID),
		slog.String("name", tc.Name))
	return nil
}

// GetByID implements store.TrainingCenterStore.GetByID
// Returns store.ErrTrainingCenterNotFound if the training center does not exist.
func (s *PostgresTrainingCenterStore) GetByID(ctx context.Context, id int64) (*domain.TrainingCenter, error) {
	return s.get(ctx, `SELECT id, name, created_at FROM training_centers WHERE id = $1`, id)
}

// GetByName implements store.TrainingCenterStore.GetByName
// Returns store.ErrTrainingCenterNotFound if the training center does not exist.
func (s *PostgresTrainingCenterStore) GetByName(ctx context.Context, name string) (*domain.TrainingCenter, error) {
	return s.get(ctx, `SELECT id, name, created_at FROM training_centers WHERE name = $1`, name)
}

func (s *PostgresTrainingCenterStore) get(ctx context.Context, query string, arg any) (*domain.TrainingCenter, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var tc domain.TrainingCenter
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&tc.ID,
		&tc.Name,
		&tc.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("training center not found", slog.Any("key", arg))
			return nil, store.ErrTrainingCenterNotFound
		}
		log.Error("failed to get training center",
			slog.String("error", err.Error()),
			slog.Any("key", arg))
		return nil, err
	}

	return &tc, nil
}

// List implements store.TrainingCenterStore.List
// It retrieves all training centers in creation order.
func (s *PostgresTrainingCenterStore) List(ctx context.Context) ([]*domain.TrainingCenter, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT id, name, created_at FROM training_centers ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query training centers",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var centers []*domain.TrainingCenter
	for rows.Next() {
		var tc domain.TrainingCenter
		if err := rows.Scan(&tc.ID, &tc.Name, &tc.CreatedAt); err != nil {
			log.Error("failed to scan training center row",
				slog.String("error", err.Error()))
			return nil, err
		}
		centers = append(centers, &tc)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	if centers == nil {
		centers = []*domain.TrainingCenter{}
	}

	return centers, nil
}
