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
	"shop-admin/internal/features/orders/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderService is a mock implementation of ports.OrderService
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) List(ctx context.Context, c domain.Criteria) ([]domain.View, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.View), args.Error(1)
}

func (m *MockOrderService) View(c domain.Criteria) []domain.View {
	return m.Called(c).Get(0).([]domain.View)
}

func (m *MockOrderService) Get(ctx context.Context, id string) (*domain.View, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.View), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, id, status string) (*domain.View, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.View), args.Error(1)
}

func (m *MockOrderService) Stats(ctx context.Context) (*domain.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stats), args.Error(1)
}

func setupApp(service *MockOrderService) *fiber.App {
	app := fiber.New()
	NewOrderHandler(service).Register(app.Group("/admin"))
	return app
}

func TestOrderHandler_ListOrders(t *testing.T) {
	t.Run("Refresh", func(t *testing.T) {
		mockService := new(MockOrderService)
		app := setupApp(mockService)

		want := domain.Criteria{Status: "Shipping", CustomerName: "văn"}
		mockService.On("List", mock.Anything, want).Return([]domain.View{
			domain.Annotate(domain.Order{ID: "o1", Status: "shipping"}),
		}, nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/admin/orders?status=Shipping&customerName=v%C4%83n", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var raw []map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
		require.Len(t, raw, 1)
		assert.Equal(t, "status-shipping", raw[0]["statusClass"])
		assert.Equal(t, []any{"delivered", "cancelled"}, raw[0]["nextStatuses"])
		mockService.AssertExpectations(t)
	})

	t.Run("HeldView", func(t *testing.T) {
		mockService := new(MockOrderService)
		app := setupApp(mockService)

		mockService.On("View", domain.Criteria{}).Return([]domain.View{}).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/admin/orders?refresh=false", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockService.AssertExpectations(t)
		mockService.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("BackendError", func(t *testing.T) {
		mockService := new(MockOrderService)
		app := setupApp(mockService)

		mockService.On("List", mock.Anything, domain.Criteria{}).
			Return(nil, apperr.Backend("load orders", errors.New("connection refused"))).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/admin/orders", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

		var body server.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Could not load orders. Please try again.", body.Message)
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	mockService := new(MockOrderService)
	app := setupApp(mockService)

	mockService.On("Get", mock.Anything, "o1").Return(&domain.View{Order: domain.Order{ID: "o1"}}, nil).Once()
	mockService.On("Get", mock.Anything, "missing").Return(nil, apperr.ErrNotFound).Once()

	resp, err := app.Test(httptest.NewRequest("GET", "/admin/orders/o1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/admin/orders/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestOrderHandler_UpdateOrderStatus(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockOrderService)
		app := setupApp(mockService)

		mockService.On("UpdateStatus", mock.Anything, "o1", "confirmed").
			Return(&domain.View{Order: domain.Order{ID: "o1", Status: "confirmed"}}, nil).Once()

		resp, err := app.Test(httptest.NewRequest("PUT", "/admin/orders/o1/status?status=confirmed", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("MissingStatus", func(t *testing.T) {
		mockService := new(MockOrderService)
		app := setupApp(mockService)

		resp, err := app.Test(httptest.NewRequest("PUT", "/admin/orders/o1/status", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockService.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		mockService := new(MockOrderService)
		app := setupApp(mockService)

		mockService.On("UpdateStatus", mock.Anything, "o1", "returned").
			Return(nil, apperr.Invalid("status", "must be one of pending, confirmed, processing, shipping, delivered, cancelled")).Once()

		resp, err := app.Test(httptest.NewRequest("PUT", "/admin/orders/o1/status?status=returned", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body server.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Contains(t, body.Message, "status")
	})
}

func TestOrderHandler_GetStats(t *testing.T) {
	mockService := new(MockOrderService)
	app := setupApp(mockService)

	mockService.On("Stats", mock.Anything).Return(&domain.Stats{TotalCount: 7, DeliveredCount: 2}, nil).Once()

	resp, err := app.Test(httptest.NewRequest("GET", "/admin/orders/stats", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var stats domain.Stats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.Equal(t, 7, stats.TotalCount)
	assert.Equal(t, 2, stats.DeliveredCount)
}
