package adapters

import (
	"context"
	"net/url"
	"strconv"

	"shop-admin/internal/core/httpclient"
	"shop-admin/internal/features/products/domain"
	"shop-admin/internal/features/products/ports"
)

const basePath = "/api/products"

// RESTAdapter implements ports.ProductProvider against the backend REST API.
type RESTAdapter struct {
	client *httpclient.RESTClient
}

// NewRESTAdapter creates a new product adapter.
func NewRESTAdapter(client *httpclient.RESTClient) *RESTAdapter {
	return &RESTAdapter{client: client}
}

func productPath(id string) string {
	return basePath + "/" + url.PathEscape(id)
}

func variantPath(productID, variantID string) string {
	return productPath(productID) + "/variants/" + url.PathEscape(variantID)
}

// ListProducts fetches products filtered by the backend.
func (a *RESTAdapter) ListProducts(ctx context.Context, q ports.ListQuery) ([]domain.Product, error) {
	params := url.Values{}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.CategoryID != "" {
		params.Set("categoryId", q.CategoryID)
	}
	if q.Active != nil {
		params.Set("active", strconv.FormatBool(*q.Active))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}

	var out []domain.Product
	if err := a.client.Get(ctx, basePath, params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListActiveProducts fetches only active products.
func (a *RESTAdapter) ListActiveProducts(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	if err := a.client.Get(ctx, basePath+"/active", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListProductsByPriceRange fetches products priced within [minPrice, maxPrice].
func (a *RESTAdapter) ListProductsByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]domain.Product, error) {
	params := url.Values{
		"minPrice": {strconv.FormatFloat(minPrice, 'f', -1, 64)},
		"maxPrice": {strconv.FormatFloat(maxPrice, 'f', -1, 64)},
	}

	var out []domain.Product
	if err := a.client.Get(ctx, basePath+"/price-range", params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProduct fetches one product with its variants.
func (a *RESTAdapter) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var out domain.Product
	if err := a.client.Get(ctx, productPath(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProductExists asks the backend whether sku is taken.
func (a *RESTAdapter) ProductExists(ctx context.Context, sku string) (bool, error) {
	var exists bool
	if err := a.client.Get(ctx, basePath+"/exists", url.Values{"sku": {sku}}, &exists); err != nil {
		return false, err
	}
	return exists, nil
}

// CreateProduct posts a new product and returns the backend's copy.
func (a *RESTAdapter) CreateProduct(ctx context.Context, in domain.Input) (*domain.Product, error) {
	var out domain.Product
	if err := a.client.Post(ctx, basePath, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProduct replaces a product.
func (a *RESTAdapter) UpdateProduct(ctx context.Context, id string, in domain.Input) (*domain.Product, error) {
	var out domain.Product
	if err := a.client.Put(ctx, productPath(id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProduct deletes a product and its variants.
func (a *RESTAdapter) DeleteProduct(ctx context.Context, id string) error {
	return a.client.Delete(ctx, productPath(id), nil)
}

// ToggleProductStatus flips the active flag.
func (a *RESTAdapter) ToggleProductStatus(ctx context.Context, id string) (*domain.Product, error) {
	var out domain.Product
	if err := a.client.Patch(ctx, productPath(id)+"/toggle-status", struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListVariants fetches the variants of a product.
func (a *RESTAdapter) ListVariants(ctx context.Context, productID string) ([]domain.Variant, error) {
	var out []domain.Variant
	if err := a.client.Get(ctx, productPath(productID)+"/variants", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateVariant adds a variant and returns the updated parent product.
func (a *RESTAdapter) CreateVariant(ctx context.Context, productID string, in domain.VariantInput) (*domain.Product, error) {
	var out domain.Product
	if err := a.client.Post(ctx, productPath(productID)+"/variants", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateVariant replaces a variant and returns the updated parent product.
func (a *RESTAdapter) UpdateVariant(ctx context.Context, productID, variantID string, in domain.VariantInput) (*domain.Product, error) {
	var out domain.Product
	if err := a.client.Put(ctx, variantPath(productID, variantID), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteVariant removes a variant and returns the updated parent product.
func (a *RESTAdapter) DeleteVariant(ctx context.Context, productID, variantID string) (*domain.Product, error) {
	var out domain.Product
	if err := a.client.Delete(ctx, variantPath(productID, variantID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
