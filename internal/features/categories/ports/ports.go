package ports

import (
	"context"

	"shop-admin/internal/features/categories/domain"
)

// ListQuery holds the filters the backend applies itself.
type ListQuery struct {
	Search string
	Active *bool
}

// CategoryProvider is the backend port for categories (driven port).
type CategoryProvider interface {
	ListCategories(ctx context.Context, q ListQuery) ([]domain.Category, error)
	ListActiveCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
	CreateCategory(ctx context.Context, in domain.Input) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id string, in domain.Input) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	ToggleCategoryStatus(ctx context.Context, id string) (*domain.Category, error)
}

// CategoryService is the primary port used by the HTTP handler.
type CategoryService interface {
	// List refreshes the held categories from the backend and derives the view.
	List(ctx context.Context, c domain.Criteria) ([]domain.Category, error)
	// View derives the view from the held categories without a backend call.
	View(c domain.Criteria) []domain.Category
	// Active lists the active categories, as offered by product forms.
	Active(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, in domain.Input) (*domain.Category, error)
	Update(ctx context.Context, id string, in domain.Input) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
	ToggleStatus(ctx context.Context, id string) (*domain.Category, error)
}
