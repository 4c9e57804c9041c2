package ports

import (
	"context"

	"shop-admin/internal/features/orders/domain"
)

// ListQuery holds the filters the backend applies itself.
type ListQuery struct {
	// Status is sent lower-cased; empty means every status.
	Status       domain.OrderStatus
	CustomerName string
}

// OrderProvider is the backend port for orders.
// This is a Secondary Port (Driven Port).
type OrderProvider interface {
	ListOrders(ctx context.Context, q ListQuery) ([]domain.Order, error)
	// GetOrder retrieves an order by its backend identifier.
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	// UpdateOrderStatus moves the order to status and returns the backend's copy.
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
	GetOrderStats(ctx context.Context) (*domain.Stats, error)
}

// OrderService is the primary port used by the HTTP handler.
type OrderService interface {
	// List refreshes the held orders from the backend and derives the view.
	List(ctx context.Context, c domain.Criteria) ([]domain.View, error)
	// View derives the view from the held orders without a backend call.
	View(c domain.Criteria) []domain.View
	Get(ctx context.Context, id string) (*domain.View, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.View, error)
	Stats(ctx context.Context) (*domain.Stats, error)
}
