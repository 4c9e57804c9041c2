package ports

import (
	"context"

	"shop-admin/internal/features/products/domain"
)

// ListQuery holds the filters the backend applies itself.
type ListQuery struct {
	Search     string
	CategoryID string
	Active     *bool
	// Limit is zero for no limit.
	Limit int
}

// ProductProvider is the backend port for products and their variants (driven port).
// Every variant mutation answers with the whole parent product.
type ProductProvider interface {
	ListProducts(ctx context.Context, q ListQuery) ([]domain.Product, error)
	ListActiveProducts(ctx context.Context) ([]domain.Product, error)
	ListProductsByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ProductExists(ctx context.Context, sku string) (bool, error)
	CreateProduct(ctx context.Context, in domain.Input) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, in domain.Input) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ToggleProductStatus(ctx context.Context, id string) (*domain.Product, error)

	ListVariants(ctx context.Context, productID string) ([]domain.Variant, error)
	CreateVariant(ctx context.Context, productID string, in domain.VariantInput) (*domain.Product, error)
	UpdateVariant(ctx context.Context, productID, variantID string, in domain.VariantInput) (*domain.Product, error)
	DeleteVariant(ctx context.Context, productID, variantID string) (*domain.Product, error)
}

// ProductService is the primary port used by the HTTP handler.
type ProductService interface {
	// List refreshes the held products from the backend and derives the view.
	List(ctx context.Context, c domain.Criteria) ([]domain.Product, error)
	// View derives the view from the held products without a backend call.
	View(c domain.Criteria) []domain.Product
	Active(ctx context.Context, tag string) ([]domain.Product, error)
	PriceRange(ctx context.Context, minPrice, maxPrice float64) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in domain.Input) (*domain.Product, error)
	Update(ctx context.Context, id string, in domain.Input) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	ToggleStatus(ctx context.Context, id string) (*domain.Product, error)

	Variants(ctx context.Context, productID string) ([]domain.Variant, error)
	CreateVariant(ctx context.Context, productID string, in domain.VariantInput) (*domain.Product, error)
	UpdateVariant(ctx context.Context, productID, variantID string, in domain.VariantInput) (*domain.Product, error)
	DeleteVariant(ctx context.Context, productID, variantID string) (*domain.Product, error)
}
