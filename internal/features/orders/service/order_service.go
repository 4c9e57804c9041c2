package service

import (
	"context"
	"time"

	"shop-admin/internal/core/apperr"
	"shop-admin/internal/core/cache"
	"shop-admin/internal/core/collection"
	"shop-admin/internal/core/logger"
	"shop-admin/internal/features/orders/domain"
	"shop-admin/internal/features/orders/ports"

	"go.uber.org/zap"
)

const statsKey = "orders:stats"

// OrderService handles listing orders and moving them through their lifecycle.
type OrderService struct {
	// provider is the interface for fetching order data from the backend.
	provider ports.OrderProvider
	store    *collection.Store[domain.Order]
	cache    cache.Cache
	statsTTL time.Duration
	log      *zap.Logger
}

// NewOrderService creates a new instance of OrderService.
func NewOrderService(provider ports.OrderProvider, c cache.Cache, statsTTL time.Duration) *OrderService {
	return &OrderService{
		provider: provider,
		store:    collection.NewStore[domain.Order](),
		cache:    c,
		statsTTL: statsTTL,
		log:      logger.Named("orders"),
	}
}

// List reloads orders (the backend pre-filters by status and customer name)
// and derives the view from the held collection.
func (s *OrderService) List(ctx context.Context, c domain.Criteria) ([]domain.View, error) {
	q := ports.ListQuery{Status: c.Status, CustomerName: c.CustomerName}
	items, applied, err := s.store.Load(ctx, func(ctx context.Context) ([]domain.Order, error) {
		return s.provider.ListOrders(ctx, q)
	})
	if err != nil {
		return nil, apperr.Backend("load orders", err)
	}
	if !applied {
		s.log.Debug("Order load superseded by a newer one", zap.Int("count", len(items)))
	}
	return domain.AnnotateAll(domain.Filter(items, c)), nil
}

// View derives the view from the held orders.
func (s *OrderService) View(c domain.Criteria) []domain.View {
	return domain.AnnotateAll(domain.Filter(s.store.Snapshot(), c))
}

// Get retrieves an order by ID.
func (s *OrderService) Get(ctx context.Context, id string) (*domain.View, error) {
	order, err := s.provider.GetOrder(ctx, id)
	if err != nil {
		return nil, apperr.Backend("load order", err)
	}
	view := domain.Annotate(*order)
	return &view, nil
}

// UpdateStatus sends a known status to the backend and swaps the returned order
// in place. Any known status is accepted; the lifecycle order is advisory.
func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) (*domain.View, error) {
	next, ok := domain.ParseStatus(status)
	if !ok {
		return nil, apperr.Invalid("status", "must be one of pending, confirmed, processing, shipping, delivered, cancelled")
	}

	if held, found := collection.Find(s.store.Snapshot(), id); found && !domain.CanTransition(held.Status, next) {
		s.log.Info("Order status moved outside the usual lifecycle",
			zap.String("order_id", id),
			zap.String("from", string(held.Status)),
			zap.String("to", string(next)),
		)
	}

	updated, err := s.provider.UpdateOrderStatus(ctx, id, next)
	if err != nil {
		return nil, apperr.Backend("update order status", err)
	}

	s.store.Updated(*updated)
	if err := s.cache.Delete(ctx, statsKey); err != nil {
		s.log.Warn("Failed to drop cached order stats", zap.Error(err))
	}

	view := domain.Annotate(*updated)
	return &view, nil
}

// Stats returns the per-status counters, cached for the configured TTL.
func (s *OrderService) Stats(ctx context.Context) (*domain.Stats, error) {
	stats, err := cache.Remember(ctx, s.cache, statsKey, s.statsTTL, func(ctx context.Context) (domain.Stats, error) {
		st, err := s.provider.GetOrderStats(ctx)
		if err != nil {
			return domain.Stats{}, err
		}
		return *st, nil
	})
	if err != nil {
		return nil, apperr.Backend("load order stats", err)
	}
	return &stats, nil
}
