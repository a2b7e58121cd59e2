package service

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/workoutlabs/workout-api/internal/domain"
	"github.com/workoutlabs/workout-api/internal/store"
)

// mockAthleteStore is a configurable in-memory stand-in for store.AthleteStore.
type mockAthleteStore struct {
	createErr error
	getErr    error
	listErr   error
	countErr  error

	created   []*domain.Athlete
	athletes  map[uuid.UUID]*domain.Athlete
	listItems []*domain.Athlete
	total     int64

	lastFilter store.AthleteFilter
	lastLimit  int
	lastOffset int
	txUsed     bool
}

func newMockAthleteStore() *mockAthleteStore {
	return &mockAthleteStore{athletes: make(map[uuid.UUID]*domain.Athlete)}
}

func (m *mockAthleteStore) Create(ctx context.Context, athlete *domain.Athlete) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, athlete)
	m.athletes[athlete.ID] = athlete
	return nil
}

func (m *mockAthleteStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Athlete, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	athlete, ok := m.athletes[id]
	if !ok {
		return nil, store.ErrAthleteNotFound
	}
	return athlete, nil
}

func (m *mockAthleteStore) List(
	ctx context.Context,
	filter store.AthleteFilter,
	limit, offset int,
) ([]*domain.Athlete, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	m.lastFilter = filter
	m.lastLimit = limit
	m.lastOffset = offset
	if m.listItems == nil {
		return []*domain.Athlete{}, nil
	}
	return m.listItems, nil
}

func (m *mockAthleteStore) Count(ctx context.Context, filter store.AthleteFilter) (int64, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return m.total, nil
}

func (m *mockAthleteStore) WithTx(tx *sql.Tx) store.AthleteStore {
	m.txUsed = true
	return m
}

// mockCategoryStore serves categories from a fixed name map.
type mockCategoryStore struct {
	categories map[string]*domain.Category
	getErr     error
}

func newMockCategoryStore(categories ...*domain.Category) *mockCategoryStore {
	byName := make(map[string]*domain.Category)
	for _, c := range categories {
		byName[c.Name] = c
	}
	return &mockCategoryStore{categories: byName}
}

func (m *mockCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	if _, exists := m.categories[category.Name]; exists {
		return store.ErrCategoryNameExists
	}
	category.ID = int64(len(m.categories) + 1)
	m.categories[category.Name] = category
	return nil
}

func (m *mockCategoryStore) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	for _, c := range m.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, store.ErrCategoryNotFound
}

func (m *mockCategoryStore) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	category, ok := m.categories[name]
	if !ok {
		return nil, store.ErrCategoryNotFound
	}
	return category, nil
}

func (m *mockCategoryStore) List(ctx context.Context) ([]*domain.Category, error) {
	out := make([]*domain.Category, 0, len(m.categories))
	for _, c := range m.categories {
		out = append(out, c)
	}
	return out, nil
}

func (m *mockCategoryStore) WithTx(tx *sql.Tx) store.CategoryStore { return m }

// mockTrainingCenterStore serves training centers from a fixed name map.
type mockTrainingCenterStore struct {
	centers map[string]*domain.TrainingCenter
	getErr  error
}

func newMockTrainingCenterStore(centers ...*domain.TrainingCenter) *mockTrainingCenterStore {
	byName := make(map[string]*domain.TrainingCenter)
	for _, tc := range centers {
		byName[tc.Name] = tc
	}
	return &mockTrainingCenterStore{centers: byName}
}

func (m *mockTrainingCenterStore) Create(ctx context.Context, tc *domain.TrainingCenter) error {
	if _, exists := m.centers[tc.Name]; exists {
		return store.ErrTrainingCenterNameExists
	}
	tc.ID = int64(len(m.centers) + 1)
	m.centers[tc.Name] = tc
	return nil
}

func (m *mockTrainingCenterStore) GetByID(ctx context.Context, id int64) (*domain.TrainingCenter, error) {
	for _, tc := range m.centers {
		if tc.ID == id {
			return tc, nil
		}
	}
	return nil, store.ErrTrainingCenterNotFound
}

func (m *mockTrainingCenterStore) GetByName(ctx context.Context, name string) (*domain.TrainingCenter, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	tc, ok := m.centers[name]
	if !ok {
		return nil, store.ErrTrainingCenterNotFound
	}
	return tc, nil
}

func (m *mockTrainingCenterStore) List(ctx context.Context) ([]*domain.TrainingCenter, error) {
	out := make([]*domain.TrainingCenter, 0, len(m.centers))
	for _, tc := range m.centers {
		out = append(out, tc)
	}
	return out, nil
}

func (m *mockTrainingCenterStore) WithTx(tx *sql.Tx) store.TrainingCenterStore { return m }
