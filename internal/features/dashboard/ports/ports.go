package ports

import (
	"context"

	categories "shop-admin/internal/features/categories/domain"
	"shop-admin/internal/features/dashboard/domain"
	products "shop-admin/internal/features/products/domain"
)

// CategorySource lists every category. The category service satisfies it.
type CategorySource interface {
	List(ctx context.Context, c categories.Criteria) ([]categories.Category, error)
}

// ProductSource lists every product. The product service satisfies it.
type ProductSource interface {
	List(ctx context.Context, c products.Criteria) ([]products.Product, error)
}

// DashboardService is the primary port used by the HTTP handler.
type DashboardService interface {
	// Summary returns the overview, cached unless refresh is set.
	Summary(ctx context.Context, refresh bool) (*domain.Summary, error)
}
