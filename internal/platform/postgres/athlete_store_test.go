package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workoutlabs/workout-api/internal/domain"
	"github.com/workoutlabs/workout-api/internal/store"
)

func validAthlete() *domain.Athlete {
	return &domain.Athlete{
		ID:                 uuid.New(),
		Name:               "Novo Atleta",
		CPF:                "12345678900",
		CategoryID:         1,
		TrainingCenterID:   2,
		CreatedAt:          time.Now().UTC(),
		CategoryName:       "Senior",
		TrainingCenterName: "CT1",
	}
}

func athleteColumns() []string {
	return []string{
		"id", "name", "cpf", "category_id", "training_center_id", "created_at",
		"name", "name",
	}
}

func TestAthleteStoreCreate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		athlete := validAthlete()

		mock.ExpectExec("INSERT INTO athletes").
			WithArgs(
				athlete.ID,
				athlete.Name,
				athlete.CPF,
				athlete.CategoryID,
				athlete.TrainingCenterID,
				athlete.CreatedAt,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		s := NewPostgresAthleteStore(db, nil)
		err = s.Create(context.Background(), athlete)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate cpf maps to ErrCPFExists", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectExec("INSERT INTO athletes").
			WillReturnError(&pgconn.PgError{
				Code:           uniqueViolationCode,
				ConstraintName: "athletes_cpf_key",
			})

		s := NewPostgresAthleteStore(db, nil)
		err = s.Create(context.Background(), validAthlete())

		require.Error(t, err)
		assert.True(t, errors.Is(err, store.ErrCPFExists))
		assert.True(t, errors.Is(err, store.ErrDuplicate))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("dangling reference maps to ErrInvalidEntity", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectExec("INSERT INTO athletes").
			WillReturnError(&pgconn.PgError{
				Code:           foreignKeyViolationCode,
				ConstraintName: "athletes_category_id_fkey",
			})

		s := NewPostgresAthleteStore(db, nil)
		err = s.Create(context.Background(), validAthlete())

		require.Error(t, err)
		assert.True(t, errors.Is(err, store.ErrInvalidEntity))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid athlete is rejected before any write", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		athlete := validAthlete()
		athlete.CPF = "123"

		s := NewPostgresAthleteStore(db, nil)
		err = s.Create(context.Background(), athlete)

		assert.Equal(t, domain.ErrInvalidCPF, err)
		// No SQL expectations were registered: nothing may reach the store.
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other storage failures pass through", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		cause := errors.New("connection reset")
		mock.ExpectExec("INSERT INTO athletes").WillReturnError(cause)

		s := NewPostgresAthleteStore(db, nil)
		err = s.Create(context.Background(), validAthlete())

		assert.Equal(t, cause, err)
		assert.False(t, errors.Is(err, store.ErrDuplicate))
	})
}

func TestAthleteStoreGetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		id := uuid.New()
		created := time.Now().UTC()
		rows := sqlmock.NewRows(athleteColumns()).
			AddRow(id, "Ana Silva", "98765432100", int64(1), int64(2), created, "Senior", "CT1")

		mock.ExpectQuery("SELECT (.+) FROM athletes a").
			WithArgs(id).
			WillReturnRows(rows)

		s := NewPostgresAthleteStore(db, nil)
		athlete, err := s.GetByID(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, id, athlete.ID)
		assert.Equal(t, "Ana Silva", athlete.Name)
		assert.Equal(t, "98765432100", athlete.CPF)
		assert.Equal(t, "Senior", athlete.CategoryName)
		assert.Equal(t, "CT1", athlete.TrainingCenterName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		id := uuid.New()
		mock.ExpectQuery("SELECT (.+) FROM athletes a").
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(athleteColumns()))

		s := NewPostgresAthleteStore(db, nil)
		athlete, err := s.GetByID(context.Background(), id)

		assert.Nil(t, athlete)
		assert.True(t, errors.Is(err, store.ErrAthleteNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAthleteStoreList(t *testing.T) {
	t.Run("no filters returns all rows in page", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		created := time.Now().UTC()
		rows := sqlmock.NewRows(athleteColumns()).
			AddRow(uuid.New(), "Ana", "11111111111", int64(1), int64(1), created, "Senior", "CT1").
			AddRow(uuid.New(), "Bruno", "22222222222", int64(1), int64(1), created, "Senior", "CT1")

		mock.ExpectQuery("SELECT (.+) FROM athletes a").
			WithArgs(20, 0).
			WillReturnRows(rows)

		s := NewPostgresAthleteStore(db, nil)
		athletes, err := s.List(context.Background(), store.AthleteFilter{}, 0, -1)

		require.NoError(t, err)
		assert.Len(t, athletes, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("name and cpf filters are bound in order", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		created := time.Now().UTC()
		rows := sqlmock.NewRows(athleteColumns()).
			AddRow(uuid.New(), "Mariana", "33333333333", int64(1), int64(1), created, "Senior", "CT1")

		mock.ExpectQuery("SELECT (.+) FROM athletes a(.+)WHERE a.name ILIKE (.+) AND a.cpf = (.+)").
			WithArgs("ana", "33333333333", 5, 10).
			WillReturnRows(rows)

		s := NewPostgresAthleteStore(db, nil)
		athletes, err := s.List(
			context.Background(),
			store.AthleteFilter{Name: "ana", CPF: "33333333333"},
			5,
			10,
		)

		require.NoError(t, err)
		assert.Len(t, athletes, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty result is an empty slice, not an error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery("SELECT (.+) FROM athletes a").
			WillReturnRows(sqlmock.NewRows(athleteColumns()))

		s := NewPostgresAthleteStore(db, nil)
		athletes, err := s.List(context.Background(), store.AthleteFilter{Name: "zz"}, 20, 0)

		require.NoError(t, err)
		assert.NotNil(t, athletes)
		assert.Empty(t, athletes)
	})
}

func TestAthleteStoreCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM athletes a")).
		WithArgs("ana").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(12)))

	s := NewPostgresAthleteStore(db, nil)
	total, err := s.Count(context.Background(), store.AthleteFilter{Name: "ana"})

	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAthleteStoreWithTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO athletes").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	s := NewPostgresAthleteStore(db, nil)
	txStore := s.WithTx(tx)

	require.NoError(t, txStore.Create(context.Background(), validAthlete()))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
