package domain

import (
	"errors"
	"time"
)

// Common validation errors for Category.
var (
	ErrEmptyCategoryName   = errors.New("category name cannot be empty")
	ErrCategoryNameTooLong = errors.New("category name cannot exceed 50 characters")
)

// maxNameLength is the maximum length for category and training center names.
const maxNameLength = 50

// Category represents a competitive category (e.g. "Junior", "Senior")
// an athlete is registered under. Categories are created once and are
// immutable after athletes start referencing them.
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCategory creates a new Category with the given name.
// The ID is assigned by the store on insert.
// Returns an error if validation fails.
func NewCategory(name string) (*Category, error) {
	category := &Category{
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	return category, nil
}

// Validate checks if the Category has valid data.
func (c *Category) Validate() error {
	if c.Name == "" {
		return ErrEmptyCategoryName
	}
	if len(c.Name) > maxNameLength {
		return ErrCategoryNameTooLong
	}
	return nil
}
