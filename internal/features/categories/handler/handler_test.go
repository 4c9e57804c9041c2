package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"shop-admin/internal/core/apperr"
	"shop-admin/internal/core/server"
	"shop-admin/internal/features/categories/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCategoryService is a mock implementation of ports.CategoryService
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) List(ctx context.Context, c domain.Criteria) ([]domain.Category, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryService) View(c domain.Criteria) []domain.Category {
	return m.Called(c).Get(0).([]domain.Category)
}

func (m *MockCategoryService) Active(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) Create(ctx context.Context, in domain.Input) (*domain.Category, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) Update(ctx context.Context, id string, in domain.Input) (*domain.Category, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCategoryService) ToggleStatus(ctx context.Context, id string) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func setupApp(service *MockCategoryService) *fiber.App {
	app := fiber.New()
	NewCategoryHandler(service).Register(app.Group("/admin"))
	return app
}

func decodeError(t *testing.T, resp *http.Response) server.ErrorResponse {
	t.Helper()
	var body server.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestCategoryHandler_ListCategories(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockCategoryService)
		app := setupApp(mockService)

		active := true
		want := domain.Criteria{Search: "lap", Active: &active, Sort: domain.SortByName}
		mockService.On("List", mock.Anything, want).Return([]domain.Category{{ID: "c1", Name: "Laptop"}}, nil).Once()

		req := httptest.NewRequest("GET", "/admin/categories?search=lap&active=true&sort=name", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var items []domain.Category
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
		assert.Len(t, items, 1)
		mockService.AssertExpectations(t)
	})

	t.Run("FromSnapshot", func(t *testing.T) {
		mockService := new(MockCategoryService)
		app := setupApp(mockService)

		mockService.On("View", domain.Criteria{Sort: domain.SortByProductCount}).Return([]domain.Category{}).Once()

		req := httptest.NewRequest("GET", "/admin/categories?refresh=false&sort=productCount", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockService.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("InvalidActiveFlag", func(t *testing.T) {
		mockService := new(MockCategoryService)
		app := setupApp(mockService)

		req := httptest.NewRequest("GET", "/admin/categories?active=maybe", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("BackendError", func(t *testing.T) {
		mockService := new(MockCategoryService)
		app := setupApp(mockService)

		mockService.On("List", mock.Anything, mock.Anything).Return(nil, apperr.Backend("load categories", errors.New("timeout"))).Once()

		req := httptest.NewRequest("GET", "/admin/categories", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		assert.Equal(t, "Could not load categories. Please try again.", decodeError(t, resp).Message)
	})
}

func TestCategoryHandler_CreateCategory(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockCategoryService)
		app := setupApp(mockService)

		in := domain.Input{Name: "Tai nghe", Description: "Âm thanh"}
		body, _ := json.Marshal(in)
		mockService.On("Create", mock.Anything, in).Return(&domain.Category{ID: "c9", Name: "Tai nghe"}, nil).Once()

		req := httptest.NewRequest("POST", "/admin/categories", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("ValidationError", func(t *testing.T) {
		mockService := new(MockCategoryService)
		app := setupApp(mockService)

		mockService.On("Create", mock.Anything, mock.Anything).
			Return(nil, apperr.Invalid("name", "category name must not be empty")).Once()

		req := httptest.NewRequest("POST", "/admin/categories", bytes.NewReader([]byte(`{"name":""}`)))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "name: category name must not be empty", decodeError(t, resp).Message)
	})

	t.Run("InvalidBody", func(t *testing.T) {
		mockService := new(MockCategoryService)
		app := setupApp(mockService)

		req := httptest.NewRequest("POST", "/admin/categories", bytes.NewReader([]byte(`{`)))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCategoryHandler_UpdateCategory(t *testing.T) {
	mockService := new(MockCategoryService)
	app := setupApp(mockService)

	mockService.On("Update", mock.Anything, "c1", domain.Input{Name: "Laptop Pro"}).
		Return(&domain.Category{ID: "c1", Name: "Laptop Pro"}, nil).Once()

	req := httptest.NewRequest("PUT", "/admin/categories/c1", bytes.NewReader([]byte(`{"name":"Laptop Pro"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestCategoryHandler_DeleteCategory(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockCategoryService)
		app := setupApp(mockService)

		mockService.On("Delete", mock.Anything, "c1").Return(nil).Once()

		resp, err := app.Test(httptest.NewRequest("DELETE", "/admin/categories/c1", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := new(MockCategoryService)
		app := setupApp(mockService)

		mockService.On("Delete", mock.Anything, "nope").
			Return(apperr.Backend("delete category", fmt.Errorf("DELETE: %w", apperr.ErrNotFound))).Once()

		resp, err := app.Test(httptest.NewRequest("DELETE", "/admin/categories/nope", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestCategoryHandler_ToggleAndActive(t *testing.T) {
	mockService := new(MockCategoryService)
	app := setupApp(mockService)

	active := true
	mockService.On("ToggleStatus", mock.Anything, "c2").Return(&domain.Category{ID: "c2", Active: &active}, nil).Once()
	mockService.On("Active", mock.Anything).Return([]domain.Category{{ID: "c2"}}, nil).Once()

	resp, err := app.Test(httptest.NewRequest("PATCH", "/admin/categories/c2/toggle-status", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/admin/categories/active", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockService.AssertExpectations(t)
}
