package adapters

import (
	"context"
	"net/url"

	"shop-admin/internal/core/httpclient"
	"shop-admin/internal/features/orders/domain"
	"shop-admin/internal/features/orders/ports"
)

const basePath = "/api/orders"

// RESTAdapter implements ports.OrderProvider against the backend REST API.
type RESTAdapter struct {
	client *httpclient.RESTClient
}

// NewRESTAdapter creates a new order adapter.
func NewRESTAdapter(client *httpclient.RESTClient) *RESTAdapter {
	return &RESTAdapter{client: client}
}

func orderPath(id string) string {
	return basePath + "/" + url.PathEscape(id)
}

// ListOrders fetches orders filtered by the backend.
func (a *RESTAdapter) ListOrders(ctx context.Context, q ports.ListQuery) ([]domain.Order, error) {
	params := url.Values{}
	if q.Status != "" {
		status, _ := domain.ParseStatus(string(q.Status))
		params.Set("status", string(status))
	}
	if q.CustomerName != "" {
		params.Set("customerName", q.CustomerName)
	}

	var out []domain.Order
	if err := a.client.Get(ctx, basePath, params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetOrder fetches one order by id.
func (a *RESTAdapter) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	var out domain.Order
	if err := a.client.Get(ctx, orderPath(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateOrderStatus sends the new status as a query parameter with an empty body.
func (a *RESTAdapter) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	var out domain.Order
	params := url.Values{"status": {string(status)}}
	if err := a.client.Put(ctx, orderPath(id)+"/status", params, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOrderStats fetches the per-status counters.
func (a *RESTAdapter) GetOrderStats(ctx context.Context) (*domain.Stats, error) {
	var out domain.Stats
	if err := a.client.Get(ctx, basePath+"/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
