package service

import (
	"context"

	"shop-admin/internal/core/apperr"
	"shop-admin/internal/core/collection"
	"shop-admin/internal/core/logger"
	"shop-admin/internal/features/categories/domain"
	"shop-admin/internal/features/categories/ports"

	"go.uber.org/zap"
)

// CategoryService keeps the last fetched categories and reconciles them after
// every confirmed mutation.
type CategoryService struct {
	provider ports.CategoryProvider
	store    *collection.Store[domain.Category]
	log      *zap.Logger
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(provider ports.CategoryProvider) *CategoryService {
	return &CategoryService{
		provider: provider,
		store:    collection.NewStore[domain.Category](),
		log:      logger.Named("categories"),
	}
}

// List reloads categories (the backend pre-filters by search and active flag)
// and derives the filtered, sorted view.
func (s *CategoryService) List(ctx context.Context, c domain.Criteria) ([]domain.Category, error) {
	items, applied, err := s.store.Load(ctx, func(ctx context.Context) ([]domain.Category, error) {
		return s.provider.ListCategories(ctx, ports.ListQuery{Search: c.Search, Active: c.Active})
	})
	if err != nil {
		return nil, apperr.Backend("load categories", err)
	}
	if !applied {
		s.log.Debug("Category load superseded by a newer one", zap.Int("count", len(items)))
	}
	return domain.Filter(items, c), nil
}

// View derives the view from the held categories.
func (s *CategoryService) View(c domain.Criteria) []domain.Category {
	return domain.Filter(s.store.Snapshot(), c)
}

// Active lists the active categories sorted by name.
func (s *CategoryService) Active(ctx context.Context) ([]domain.Category, error) {
	items, err := s.provider.ListActiveCategories(ctx)
	if err != nil {
		return nil, apperr.Backend("load active categories", err)
	}
	return domain.Filter(items, domain.Criteria{Sort: domain.SortByName}), nil
}

// Get fetches a single category.
func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	category, err := s.provider.GetCategory(ctx, id)
	if err != nil {
		return nil, apperr.Backend("load category", err)
	}
	return category, nil
}

// Create validates the input, creates the category and appends the backend's copy.
func (s *CategoryService) Create(ctx context.Context, in domain.Input) (*domain.Category, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	created, err := s.provider.CreateCategory(ctx, in.Normalize())
	if err != nil {
		return nil, apperr.Backend("create category", err)
	}

	s.store.Added(*created)
	s.log.Info("Category created", zap.String("category_id", created.ID))
	return created, nil
}

// Update validates the input, replaces the category and swaps it in place.
func (s *CategoryService) Update(ctx context.Context, id string, in domain.Input) (*domain.Category, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.provider.UpdateCategory(ctx, id, in.Normalize())
	if err != nil {
		return nil, apperr.Backend("update category", err)
	}

	s.store.Updated(*updated)
	return updated, nil
}

// Delete removes the category once the backend confirms.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.provider.DeleteCategory(ctx, id); err != nil {
		return apperr.Backend("delete category", err)
	}

	s.store.Removed(id)
	s.log.Info("Category deleted", zap.String("category_id", id))
	return nil
}

// ToggleStatus flips the active flag on the backend and swaps in the result.
func (s *CategoryService) ToggleStatus(ctx context.Context, id string) (*domain.Category, error) {
	updated, err := s.provider.ToggleCategoryStatus(ctx, id)
	if err != nil {
		return nil, apperr.Backend("toggle category status", err)
	}

	s.store.Updated(*updated)
	return updated, nil
}

// Snapshot returns the held categories.
func (s *CategoryService) Snapshot() []domain.Category {
	return s.store.Snapshot()
}
