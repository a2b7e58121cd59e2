package service

import (
	"context"
	"log/slog"

	"github.com/workoutlabs/workout-api/internal/domain"
	"github.com/workoutlabs/workout-api/internal/store"
)

// CategoryService provides category-related operations.
type CategoryService interface {
	// CreateCategory creates a new category with the given name.
	// Returns store.ErrCategoryNameExists if the name is already taken.
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)

	// ListCategories returns all categories in creation order.
	ListCategories(ctx context.Context) ([]*domain.Category, error)

	// GetCategory retrieves a category by ID.
	// Returns store.ErrCategoryNotFound if the category does not exist.
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
}

type categoryServiceImpl struct {
	categoryStore store.CategoryStore
	logger        *slog.Logger
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryStore store.CategoryStore, log *slog.Logger) (CategoryService, error) {
	if categoryStore == nil {
		return nil, &AthleteServiceError{Operation: "create_service", Message: "categoryStore cannot be nil"}
	}
	if log == nil {
		log = slog.Default()
	}

	return &categoryServiceImpl{
		categoryStore: categoryStore,
		logger:        log.With(slog.String("component", "category_service")),
	}, nil
}

func (s *categoryServiceImpl) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	category, err := domain.NewCategory(name)
	if err != nil {
		return nil, err
	}

	if err := s.categoryStore.Create(ctx, category); err != nil {
		return nil, newAthleteServiceError("create_category", "failed to persist category", err)
	}

	return category, nil
}

func (s *categoryServiceImpl) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.categoryStore.List(ctx)
	if err != nil {
		return nil, newAthleteServiceError("list_categories", "failed to list categories", err)
	}
	return categories, nil
}

func (s *categoryServiceImpl) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	category, err := s.categoryStore.GetByID(ctx, id)
	if err != nil {
		return nil, newAthleteServiceError("get_category", "failed to get category", err)
	}
	return category, nil
}
