package adapters

import (
	"context"
	"net/url"
	"strconv"

	"shop-admin/internal/core/httpclient"
	"shop-admin/internal/features/categories/domain"
	"shop-admin/internal/features/categories/ports"
)

const basePath = "/api/categories"

// RESTAdapter implements ports.CategoryProvider against the backend REST API.
type RESTAdapter struct {
	client *httpclient.RESTClient
}

// NewRESTAdapter creates a new category adapter.
func NewRESTAdapter(client *httpclient.RESTClient) *RESTAdapter {
	return &RESTAdapter{client: client}
}

// ListCategories fetches categories, letting the backend pre-filter by search and active flag.
func (a *RESTAdapter) ListCategories(ctx context.Context, q ports.ListQuery) ([]domain.Category, error) {
	params := url.Values{}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Active != nil {
		params.Set("active", strconv.FormatBool(*q.Active))
	}

	var out []domain.Category
	if err := a.client.Get(ctx, basePath, params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListActiveCategories fetches only active categories.
func (a *RESTAdapter) ListActiveCategories(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	if err := a.client.Get(ctx, basePath+"/active", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCategory fetches one category.
func (a *RESTAdapter) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	var out domain.Category
	if err := a.client.Get(ctx, basePath+"/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCategory posts a new category and returns the backend's copy.
func (a *RESTAdapter) CreateCategory(ctx context.Context, in domain.Input) (*domain.Category, error) {
	var out domain.Category
	if err := a.client.Post(ctx, basePath, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCategory replaces a category.
func (a *RESTAdapter) UpdateCategory(ctx context.Context, id string, in domain.Input) (*domain.Category, error) {
	var out domain.Category
	if err := a.client.Put(ctx, basePath+"/"+url.PathEscape(id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCategory deletes a category.
func (a *RESTAdapter) DeleteCategory(ctx context.Context, id string) error {
	return a.client.Delete(ctx, basePath+"/"+url.PathEscape(id), nil)
}

// ToggleCategoryStatus flips the active flag on the backend.
func (a *RESTAdapter) ToggleCategoryStatus(ctx context.Context, id string) (*domain.Category, error) {
	var out domain.Category
	if err := a.client.Patch(ctx, basePath+"/"+url.PathEscape(id)+"/toggle-status", struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
