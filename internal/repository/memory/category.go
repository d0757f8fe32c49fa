package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

// CategoryRepository keeps categories in process memory
type CategoryRepository struct {
	mu         sync.RWMutex
	categories []*domain.Category
}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := slices.IndexFunc(r.categories, func(c *domain.Category) bool { return c.ID == id })
	if i < 0 {
		return nil, domain.ErrCategoryNotFound
	}
	clone := *r.categories[i]
	return &clone, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	category.ID = len(r.categories) + 1
	clone := *category
	r.categories = append(r.categories, &clone)
	return nil
}
