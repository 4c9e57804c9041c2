package service

import (
	"context"

	"shop-admin/internal/core/apperr"
	"shop-admin/internal/core/collection"
	"shop-admin/internal/core/logger"
	"shop-admin/internal/features/products/domain"
	"shop-admin/internal/features/products/ports"

	"go.uber.org/zap"
)

// ProductService keeps the last fetched products and reconciles them after
// every confirmed mutation, variant mutations included.
type ProductService struct {
	provider ports.ProductProvider
	store    *collection.Store[domain.Product]
	log      *zap.Logger
}

// NewProductService creates a new ProductService.
func NewProductService(provider ports.ProductProvider) *ProductService {
	return &ProductService{
		provider: provider,
		store:    collection.NewStore[domain.Product](),
		log:      logger.Named("products"),
	}
}

// List reloads products (pre-filtered by the backend) and derives the view.
func (s *ProductService) List(ctx context.Context, c domain.Criteria) ([]domain.Product, error) {
	q := ports.ListQuery{Search: c.Search, CategoryID: c.CategoryID, Active: c.Active}
	items, applied, err := s.store.Load(ctx, func(ctx context.Context) ([]domain.Product, error) {
		return s.provider.ListProducts(ctx, q)
	})
	if err != nil {
		return nil, apperr.Backend("load products", err)
	}
	if !applied {
		s.log.Debug("Product load superseded by a newer one", zap.Int("count", len(items)))
	}
	return domain.Filter(items, c), nil
}

// View derives the view from the held products.
func (s *ProductService) View(c domain.Criteria) []domain.Product {
	return domain.Filter(s.store.Snapshot(), c)
}

// Active lists the active products, narrowed to those carrying tag when it is set.
func (s *ProductService) Active(ctx context.Context, tag string) ([]domain.Product, error) {
	items, err := s.provider.ListActiveProducts(ctx)
	if err != nil {
		return nil, apperr.Backend("load active products", err)
	}
	if tag != "" {
		items = domain.Tagged(items, tag)
	}
	return items, nil
}

// PriceRange lists products priced within [minPrice, maxPrice].
func (s *ProductService) PriceRange(ctx context.Context, minPrice, maxPrice float64) ([]domain.Product, error) {
	if minPrice < 0 || maxPrice < minPrice {
		return nil, apperr.Invalid("price", "price range is invalid")
	}
	items, err := s.provider.ListProductsByPriceRange(ctx, minPrice, maxPrice)
	if err != nil {
		return nil, apperr.Backend("load products by price", err)
	}
	return items, nil
}

// Get fetches a single product with its variants.
func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.provider.GetProduct(ctx, id)
	if err != nil {
		return nil, apperr.Backend("load product", err)
	}
	return product, nil
}

// Create validates the input, checks the SKU is free and appends the backend's copy.
func (s *ProductService) Create(ctx context.Context, in domain.Input) (*domain.Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	in = in.Normalize()

	if in.SKU != "" {
		if err := s.checkSKU(ctx, in.SKU); err != nil {
			return nil, err
		}
	}

	created, err := s.provider.CreateProduct(ctx, in)
	if err != nil {
		return nil, apperr.Backend("create product", err)
	}

	s.store.Added(*created)
	s.log.Info("Product created", zap.String("product_id", created.ID))
	return created, nil
}

// Update validates the input and replaces the product. The SKU is checked
// only when it changes.
func (s *ProductService) Update(ctx context.Context, id string, in domain.Input) (*domain.Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	in = in.Normalize()

	if in.SKU != "" {
		current, err := s.current(ctx, id)
		if err != nil {
			return nil, err
		}
		if current.SKU != in.SKU {
			if err := s.checkSKU(ctx, in.SKU); err != nil {
				return nil, err
			}
		}
	}

	updated, err := s.provider.UpdateProduct(ctx, id, in)
	if err != nil {
		return nil, apperr.Backend("update product", err)
	}

	s.store.Updated(*updated)
	return updated, nil
}

// Delete removes the product once the backend confirms.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.provider.DeleteProduct(ctx, id); err != nil {
		return apperr.Backend("delete product", err)
	}

	s.store.Removed(id)
	s.log.Info("Product deleted", zap.String("product_id", id))
	return nil
}

// ToggleStatus flips the active flag on the backend and swaps in the result.
func (s *ProductService) ToggleStatus(ctx context.Context, id string) (*domain.Product, error) {
	updated, err := s.provider.ToggleProductStatus(ctx, id)
	if err != nil {
		return nil, apperr.Backend("toggle product status", err)
	}

	s.store.Updated(*updated)
	return updated, nil
}

// Variants lists the variants of a product from the backend.
func (s *ProductService) Variants(ctx context.Context, productID string) ([]domain.Variant, error) {
	variants, err := s.provider.ListVariants(ctx, productID)
	if err != nil {
		return nil, apperr.Backend("load variants", err)
	}
	return variants, nil
}

// CreateVariant adds a variant and replaces the whole parent product.
func (s *ProductService) CreateVariant(ctx context.Context, productID string, in domain.VariantInput) (*domain.Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	product, err := s.provider.CreateVariant(ctx, productID, in.Normalize())
	if err != nil {
		return nil, apperr.Backend("create variant", err)
	}
	return s.parentChanged(product), nil
}

// UpdateVariant replaces a variant and the whole parent product.
func (s *ProductService) UpdateVariant(ctx context.Context, productID, variantID string, in domain.VariantInput) (*domain.Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	product, err := s.provider.UpdateVariant(ctx, productID, variantID, in.Normalize())
	if err != nil {
		return nil, apperr.Backend("update variant", err)
	}
	return s.parentChanged(product), nil
}

// DeleteVariant removes a variant and replaces the whole parent product.
func (s *ProductService) DeleteVariant(ctx context.Context, productID, variantID string) (*domain.Product, error) {
	product, err := s.provider.DeleteVariant(ctx, productID, variantID)
	if err != nil {
		return nil, apperr.Backend("delete variant", err)
	}

	s.log.Info("Variant deleted", zap.String("product_id", productID), zap.String("variant_id", variantID))
	return s.parentChanged(product), nil
}

// HeldVariants returns the variant list of the held product. It is always the
// list the backend last returned for that product.
func (s *ProductService) HeldVariants(productID string) []domain.Variant {
	product, ok := collection.Find(s.store.Snapshot(), productID)
	if !ok {
		return nil
	}
	return product.Variants
}

// Snapshot returns the held products.
func (s *ProductService) Snapshot() []domain.Product {
	return s.store.Snapshot()
}

func (s *ProductService) parentChanged(product *domain.Product) *domain.Product {
	if !s.store.Updated(*product) {
		s.log.Debug("Parent product not held", zap.String("product_id", product.ID))
	}
	return product
}

func (s *ProductService) current(ctx context.Context, id string) (domain.Product, error) {
	if held, ok := collection.Find(s.store.Snapshot(), id); ok {
		return held, nil
	}
	product, err := s.provider.GetProduct(ctx, id)
	if err != nil {
		return domain.Product{}, apperr.Backend("load product", err)
	}
	return *product, nil
}

// checkSKU turns both a taken SKU and a failed check into validation errors.
func (s *ProductService) checkSKU(ctx context.Context, sku string) error {
	exists, err := s.provider.ProductExists(ctx, sku)
	if err != nil {
		s.log.Warn("SKU check failed", zap.String("sku", sku), zap.Error(err))
		return apperr.Invalid("sku", "could not verify SKU, please try again")
	}
	if exists {
		return apperr.Invalid("sku", "SKU already exists")
	}
	return nil
}
