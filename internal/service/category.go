package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/zizouhuweidi/trivia/internal/cache"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

const categoriesCacheKey = "categories"

// errNoCategories keeps an empty result out of the cache
var errNoCategories = errors.New("no categories")

// CategoryService reads categories through a cache
type CategoryService struct {
	repo   domain.CategoryRepository
	cache  cache.Cache
	ttl    time.Duration
	logger *slog.Logger
}

// NewCategoryService creates a category service. A nil cache reads the repository directly.
func NewCategoryService(repo domain.CategoryRepository, c cache.Cache, ttl time.Duration, logger *slog.Logger) *CategoryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CategoryService{
		repo:   repo,
		cache:  c,
		ttl:    ttl,
		logger: logger,
	}
}

// List returns all categories ordered by ID
func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	if s.cache == nil {
		return s.repo.List(ctx)
	}

	categories, err := cache.UseCache(ctx, s.cache, categoriesCacheKey, s.ttl, func() ([]*domain.Category, error) {
		categories, err := s.repo.List(ctx)
		if err == nil && len(categories) == 0 {
			return nil, errNoCategories
		}
		return categories, err
	})
	switch {
	case err == nil:
		return categories, nil
	case errors.Is(err, errNoCategories):
		return []*domain.Category{}, nil
	default:
		s.logger.WarnContext(ctx, "category cache unavailable", "error", err)
		return s.repo.List(ctx)
	}
}

// Map returns the id -> type mapping of all categories
func (s *CategoryService) Map(ctx context.Context) (map[int]string, error) {
	categories, err := s.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return domain.CategoryMap(categories), nil
}

// Invalidate drops the cached category list
func (s *CategoryService) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, categoriesCacheKey)
}
