package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shop-admin/internal/core/apperr"
	"shop-admin/internal/core/httpclient"
	"shop-admin/internal/features/products/domain"
	"shop-admin/internal/features/products/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdapter(t *testing.T, h http.HandlerFunc) *RESTAdapter {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)
	return NewRESTAdapter(httpclient.NewRESTClient(server.URL, time.Second))
}

func TestRESTAdapter_ListProducts(t *testing.T) {
	mockResponse := `[
		{"id":"p1","name":"Laptop A","price":15990000,"sku":"LAPA","active":true,
		 "categoryIds":["c1","c3"],"categoryNames":["Laptop","Văn phòng"],
		 "variants":[{"id":"v1","name":"16GB","additionalPrice":2000000,"stock":4,"productId":"p1"}],
		 "tags":[{"type":"hot","color":"#f00"}]}
	]`

	active := false
	adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/api/products", r.URL.Path)
		assert.Equal(t, "lap", q.Get("search"))
		assert.Equal(t, "c1", q.Get("categoryId"))
		assert.Equal(t, "false", q.Get("active"))
		assert.Equal(t, "5", q.Get("limit"))
		w.Write([]byte(mockResponse))
	})

	products, err := adapter.ListProducts(context.Background(), ports.ListQuery{
		Search: "lap", CategoryID: "c1", Active: &active, Limit: 5,
	})
	require.NoError(t, err)
	require.Len(t, products, 1)

	p := products[0]
	assert.Equal(t, 15990000.0, p.Price)
	assert.Equal(t, []string{"c1", "c3"}, p.CategoryIDs)
	require.Len(t, p.Variants, 1)
	assert.Equal(t, 2000000.0, p.Variants[0].AdditionalPrice)
	assert.Equal(t, "p1", p.Variants[0].ProductID)
	assert.Equal(t, "hot", p.Tags[0].Type)
}

func TestRESTAdapter_PriceRange(t *testing.T) {
	adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/price-range", r.URL.Path)
		assert.Equal(t, "100000", r.URL.Query().Get("minPrice"))
		assert.Equal(t, "250000.5", r.URL.Query().Get("maxPrice"))
		w.Write([]byte(`[]`))
	})

	products, err := adapter.ListProductsByPriceRange(context.Background(), 100000, 250000.5)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestRESTAdapter_ProductExists(t *testing.T) {
	adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/exists", r.URL.Path)
		if r.URL.Query().Get("sku") == "TAKEN" {
			w.Write([]byte(`true`))
			return
		}
		w.Write([]byte(`false`))
	})

	exists, err := adapter.ProductExists(context.Background(), "TAKEN")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = adapter.ProductExists(context.Background(), "FREE")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRESTAdapter_CreateProduct(t *testing.T) {
	adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var in domain.Input
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, []string{"c1"}, in.CategoryIDs)

		json.NewEncoder(w).Encode(domain.Product{ID: "p9", Name: in.Name, CategoryIDs: in.CategoryIDs})
	})

	created, err := adapter.CreateProduct(context.Background(), domain.Input{Name: "Chuột", CategoryIDs: []string{"c1"}})
	require.NoError(t, err)
	assert.Equal(t, "p9", created.ID)
}

func TestRESTAdapter_VariantEndpoints(t *testing.T) {
	var calls []string
	adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`[{"id":"v1","name":"Đen"}]`))
		default:
			w.Write([]byte(`{"id":"p1","name":"Chuột","variants":[{"id":"v1","name":"Đen"}]}`))
		}
	})
	ctx := context.Background()

	variants, err := adapter.ListVariants(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, variants, 1)

	p, err := adapter.CreateVariant(ctx, "p1", domain.VariantInput{Name: "Đen"})
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)

	_, err = adapter.UpdateVariant(ctx, "p1", "v1", domain.VariantInput{Name: "Đen"})
	require.NoError(t, err)

	p, err = adapter.DeleteVariant(ctx, "p1", "v1")
	require.NoError(t, err)
	assert.Len(t, p.Variants, 1)

	assert.Equal(t, []string{
		"GET /api/products/p1/variants",
		"POST /api/products/p1/variants",
		"PUT /api/products/p1/variants/v1",
		"DELETE /api/products/p1/variants/v1",
	}, calls)
}

func TestRESTAdapter_VariantMutation_EmptyBody(t *testing.T) {
	adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	p, err := adapter.CreateVariant(context.Background(), "p1", domain.VariantInput{Name: "Đen"})
	assert.Nil(t, p)
	assert.ErrorIs(t, err, apperr.ErrBackend)
	assert.ErrorIs(t, err, httpclient.ErrEmptyResponse)
}

func TestRESTAdapter_ToggleAndDelete(t *testing.T) {
	var calls []string
	adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodPatch {
			w.Write([]byte(`{"id":"p1","name":"Chuột","active":false}`))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	ctx := context.Background()

	p, err := adapter.ToggleProductStatus(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, p.IsActive())

	require.NoError(t, adapter.DeleteProduct(ctx, "p1"))
	assert.Equal(t, []string{"PATCH /api/products/p1/toggle-status", "DELETE /api/products/p1"}, calls)
}

func TestRESTAdapter_GetProduct_NotFound(t *testing.T) {
	adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Product not found"}`))
	})

	_, err := adapter.GetProduct(context.Background(), "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
