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
	"shop-admin/internal/features/categories/domain"
	"shop-admin/internal/features/categories/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdapter(t *testing.T, h http.HandlerFunc) *RESTAdapter {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)
	return NewRESTAdapter(httpclient.NewRESTClient(server.URL, time.Second))
}

func TestRESTAdapter_ListCategories(t *testing.T) {
	mockResponse := `[
		{"id":"c1","name":"Laptop","active":true,"productCount":3,"createdAt":"2024-05-01T10:00:00Z"},
		{"id":"c2","name":"Phụ kiện","productCount":0}
	]`

	active := true
	adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/categories", r.URL.Path)
		assert.Equal(t, "lap", r.URL.Query().Get("search"))
		assert.Equal(t, "true", r.URL.Query().Get("active"))
		w.Write([]byte(mockResponse))
	})

	categories, err := adapter.ListCategories(context.Background(), ports.ListQuery{Search: "lap", Active: &active})
	require.NoError(t, err)
	require.Len(t, categories, 2)

	assert.Equal(t, "c1", categories[0].ID)
	assert.True(t, categories[0].IsActive())
	assert.Equal(t, 3, categories[0].ProductCount)
	require.NotNil(t, categories[0].CreatedAt)
	assert.Equal(t, 2024, categories[0].CreatedAt.Year())

	assert.Nil(t, categories[1].Active)
	assert.Nil(t, categories[1].CreatedAt)
}

func TestRESTAdapter_ListCategories_NoParams(t *testing.T) {
	adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		w.Write([]byte(`[]`))
	})

	categories, err := adapter.ListCategories(context.Background(), ports.ListQuery{})
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestRESTAdapter_CreateCategory(t *testing.T) {
	adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var in domain.Input
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "Laptop", in.Name)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"c9","name":"Laptop","active":true}`))
	})

	created, err := adapter.CreateCategory(context.Background(), domain.Input{Name: "Laptop"})
	require.NoError(t, err)
	assert.Equal(t, "c9", created.ID)
}

func TestRESTAdapter_CreateCategory_EmptyBody(t *testing.T) {
	adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	created, err := adapter.CreateCategory(context.Background(), domain.Input{Name: "Laptop"})
	assert.Nil(t, created)
	assert.ErrorIs(t, err, apperr.ErrBackend)
	assert.ErrorIs(t, err, httpclient.ErrEmptyResponse)
}

func TestRESTAdapter_UpdateDeleteToggle(t *testing.T) {
	var calls []string
	adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		switch r.Method {
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			w.Write([]byte(`{"id":"c1","name":"Laptop","active":false}`))
		}
	})

	ctx := context.Background()
	_, err := adapter.UpdateCategory(ctx, "c1", domain.Input{Name: "Laptop"})
	require.NoError(t, err)
	require.NoError(t, adapter.DeleteCategory(ctx, "c1"))
	toggled, err := adapter.ToggleCategoryStatus(ctx, "c1")
	require.NoError(t, err)
	assert.False(t, toggled.IsActive())

	assert.Equal(t, []string{
		"PUT /api/categories/c1",
		"DELETE /api/categories/c1",
		"PATCH /api/categories/c1/toggle-status",
	}, calls)
}

func TestRESTAdapter_GetCategory_NotFound(t *testing.T) {
	adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := adapter.GetCategory(context.Background(), "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRESTAdapter_ListActiveCategories(t *testing.T) {
	adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/categories/active", r.URL.Path)
		w.Write([]byte(`[{"id":"c1","name":"Laptop","active":true}]`))
	})

	categories, err := adapter.ListActiveCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 1)
}
