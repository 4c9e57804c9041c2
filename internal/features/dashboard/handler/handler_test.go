package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"shop-admin/internal/core/apperr"
	"shop-admin/internal/core/server"
	"shop-admin/internal/features/dashboard/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDashboardService is a mock implementation of ports.DashboardService
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Summary(ctx context.Context, refresh bool) (*domain.Summary, error) {
	args := m.Called(ctx, refresh)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Summary), args.Error(1)
}

func setupApp(service *MockDashboardService) *fiber.App {
	app := fiber.New()
	NewDashboardHandler(service).Register(app.Group("/admin"))
	return app
}

func TestDashboardHandler_GetSummary(t *testing.T) {
	t.Run("Cached", func(t *testing.T) {
		mockService := new(MockDashboardService)
		app := setupApp(mockService)

		mockService.On("Summary", mock.Anything, false).Return(&domain.Summary{TotalProducts: 4, TotalStock: 20}, nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/admin/dashboard", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, float64(4), body["totalProducts"])
		assert.Equal(t, float64(20), body["totalStock"])
		mockService.AssertExpectations(t)
	})

	t.Run("Refresh", func(t *testing.T) {
		mockService := new(MockDashboardService)
		app := setupApp(mockService)

		mockService.On("Summary", mock.Anything, true).Return(&domain.Summary{}, nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/admin/dashboard?refresh=true", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("BadRefresh", func(t *testing.T) {
		mockService := new(MockDashboardService)
		app := setupApp(mockService)

		resp, err := app.Test(httptest.NewRequest("GET", "/admin/dashboard?refresh=yes", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("BackendError", func(t *testing.T) {
		mockService := new(MockDashboardService)
		app := setupApp(mockService)

		mockService.On("Summary", mock.Anything, false).
			Return(nil, apperr.Backend("load dashboard", errors.New("timeout"))).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/admin/dashboard", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

		var body server.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Could not load dashboard. Please try again.", body.Message)
	})
}
