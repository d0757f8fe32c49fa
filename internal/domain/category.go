package domain

import (
	"context"
	"errors"
)

var ErrCategoryNotFound = errors.New("category not found")

// Category groups questions under a display name
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// CategoryRepository defines the interface for category-related operations
type CategoryRepository interface {
	// List retrieves all categories ordered by ID
	List(ctx context.Context) ([]*Category, error)

	// GetByID retrieves a category by its ID
	GetByID(ctx context.Context, id int) (*Category, error)

	// Create creates a new category and fills in its ID
	Create(ctx context.Context, category *Category) error
}

// CategoryMap turns categories into the id -> type mapping clients render
func CategoryMap(categories []*Category) map[int]string {
	result := make(map[int]string, len(categories))
	for _, c := range categories {
		result[c.ID] = c.Type
	}
	return result
}
