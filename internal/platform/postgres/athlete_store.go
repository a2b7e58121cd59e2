package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/workoutlabs/workout-api/internal/domain"
	"github.com/workoutlabs/workout-api/internal/platform/logger"
	"github.com/workoutlabs/workout-api/internal/store"
)

// defaultListLimit bounds athlete list queries when the caller passes no limit.
const defaultListLimit = 20

// athleteSelectColumns is the shared projection for athlete reads, joining
// categories and training centers to populate the denormalized names.
const athleteSelectColumns = `
	a.id, a.name, a.cpf, a.category_id, a.training_center_id, a.created_at,
	c.name, t.name
`

// PostgresAthleteStore implements the store.AthleteStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAthleteStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAthleteStore creates a new PostgreSQL implementation of the
// AthleteStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresAthleteStore(db store.DBTX, logger *slog.Logger) *PostgresAthleteStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAthleteStore{
		db:     db,
		logger: logger.With(slog.String("component", "athlete_store")),
	}
}

// Ensure PostgresAthleteStore implements store.AthleteStore interface
var _ store.AthleteStore = (*PostgresAthleteStore)(nil)

// WithTx implements store.AthleteStore.WithTx
func (s *PostgresAthleteStore) WithTx(tx *sql.Tx) store.AthleteStore {
	return &PostgresAthleteStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.AthleteStore.Create
// It saves a new athlete to the database, handling domain validation.
// Returns store.ErrCPFExists if the cpf uniqueness constraint rejects the
// insert, and store.ErrInvalidEntity if a referenced category or training
// center does not exist at insert time.
func (s *PostgresAthleteStore) Create(ctx context.Context, athlete *domain.Athlete) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := athlete.Validate(); err != nil {
		log.Warn("athlete validation failed during create",
			slog.String("error", err.Error()),
			slog.String("athlete_id", athlete.ID.String()))
		return err
	}

	query := `
		INSERT INTO athletes (id, name, cpf, category_id, training_center_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		athlete.ID,
		athlete.Name,
		athlete.CPF,
		athlete.CategoryID,
		athlete.TrainingCenterID,
		athlete.CreatedAt,
	)

	if err != nil {
		// The cpf unique index is the sole arbiter of duplicates, including
		// concurrent creation attempts racing on the same cpf.
		if IsUniqueViolation(err) {
			log.Warn("duplicate cpf during athlete creation",
				slog.String("athlete_id", athlete.ID.String()))
			return fmt.Errorf("%w: %v", store.ErrCPFExists, err)
		}

		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during athlete creation",
				slog.String("error", err.Error()),
				slog.String("athlete_id", athlete.ID.String()))
			return fmt.Errorf("%w: referenced category or training center not found",
				store.ErrInvalidEntity)
		}

		log.Error("failed to create athlete",
			slog.String("error", err.Error()),
			slog.String("athlete_id", athlete.ID.String()))
		return MapError(err)
	}

	log.Info("athlete created successfully",
		slog.String("athlete_id", athlete.ID.String()),
		slog.Int64("category_id", athlete.CategoryID),
		slog.Int64("training_center_id", athlete.TrainingCenterID))
	return nil
}

// GetByID implements store.AthleteStore.GetByID
// It retrieves an athlete by their unique ID, including the denormalized
// category and training center names.
// Returns store.ErrAthleteNotFound if the athlete does not exist.
func (s *PostgresAthleteStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Athlete, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving athlete by ID", slog.String("athlete_id", id.String()))

	query := `
		SELECT ` + athleteSelectColumns + `
		FROM athletes a
		JOIN categories c ON c.id = a.category_id
		JOIN training_centers t ON t.id = a.training_center_id
		WHERE a.id = $1
	`

	var athlete domain.Athlete
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&athlete.ID,
		&athlete.Name,
		&athlete.CPF,
		&athlete.CategoryID,
		&athlete.TrainingCenterID,
		&athlete.CreatedAt,
		&athlete.CategoryName,
		&athlete.TrainingCenterName,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("athlete not found", slog.String("athlete_id", id.String()))
			return nil, store.ErrAthleteNotFound
		}
		log.Error("failed to get athlete by ID",
			slog.String("error", err.Error()),
			slog.String("athlete_id", id.String()))
		return nil, MapError(err)
	}

	return &athlete, nil
}

// List implements store.AthleteStore.List
// It retrieves athletes matching the filter, ordered by creation time with
// id as tiebreak so pagination is deterministic across identical queries.
// Returns an empty slice if no athletes match.
func (s *PostgresAthleteStore) List(
	ctx context.Context,
	filter store.AthleteFilter,
	limit, offset int,
) ([]*domain.Athlete, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	log.Debug("listing athletes",
		slog.String("name_filter", filter.Name),
		slog.String("cpf_filter", filter.CPF),
		slog.Int("limit", limit),
		slog.Int("offset", offset))

	where, args := buildAthleteFilter(filter)

	query := `
		SELECT ` + athleteSelectColumns + `
		FROM athletes a
		JOIN categories c ON c.id = a.category_id
		JOIN training_centers t ON t.id = a.training_center_id
	` + where + fmt.Sprintf(`
		ORDER BY a.created_at, a.id
		LIMIT $%d OFFSET $%d
	`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query athletes",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var athletes []*domain.Athlete
	for rows.Next() {
		var athlete domain.Athlete
		err := rows.Scan(
			&athlete.ID,
			&athlete.Name,
			&athlete.CPF,
			&athlete.CategoryID,
			&athlete.TrainingCenterID,
			&athlete.CreatedAt,
			&athlete.CategoryName,
			&athlete.TrainingCenterName,
		)
		if err != nil {
			log.Error("failed to scan athlete row",
				slog.String("error", err.Error()))
			return nil, err
		}
		athletes = append(athletes, &athlete)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	// Return empty slice instead of nil if no athletes found
	if athletes == nil {
		athletes = []*domain.Athlete{}
	}

	log.Debug("listed athletes", slog.Int("count", len(athletes)))
	return athletes, nil
}

// Count implements store.AthleteStore.Count
// It returns the total number of athletes matching the filter, ignoring
// limit and offset, so list responses can carry a total for pagination.
func (s *PostgresAthleteStore) Count(ctx context.Context, filter store.AthleteFilter) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	where, args := buildAthleteFilter(filter)
	query := `SELECT count(*) FROM athletes a` + where

	var total int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Error("failed to count athletes",
			slog.String("error", err.Error()))
		return 0, MapError(err)
	}

	return total, nil
}

// buildAthleteFilter renders the optional filter predicates into a WHERE
// clause and its positional arguments. Name matches case-insensitively as
// a substring; cpf matches exactly; both combine with AND.
func buildAthleteFilter(filter store.AthleteFilter) (string, []any) {
	var conds []string
	var args []any

	if filter.Name != "" {
		args = append(args, filter.Name)
		conds = append(conds, fmt.Sprintf("a.name ILIKE '%%' || $%d || '%%'", len(args)))
	}
	if filter.CPF != "" {
		args = append(args, filter.CPF)
		conds = append(conds, fmt.Sprintf("a.cpf = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
