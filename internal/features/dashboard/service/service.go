package service

import (
	"context"
	"time"

	"shop-admin/internal/core/apperr"
	"shop-admin/internal/core/cache"
	"shop-admin/internal/core/logger"
	categories "shop-admin/internal/features/categories/domain"
	"shop-admin/internal/features/dashboard/domain"
	"shop-admin/internal/features/dashboard/ports"
	products "shop-admin/internal/features/products/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const summaryKey = "dashboard:summary"

// DashboardService aggregates categories and products into the overview.
type DashboardService struct {
	categories ports.CategorySource
	products   ports.ProductSource
	cache      cache.Cache
	ttl        time.Duration
	now        func() time.Time
	log        *zap.Logger
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(cats ports.CategorySource, prods ports.ProductSource, c cache.Cache, ttl time.Duration) *DashboardService {
	return &DashboardService{
		categories: cats,
		products:   prods,
		cache:      c,
		ttl:        ttl,
		now:        time.Now,
		log:        logger.Named("dashboard"),
	}
}

// Summary loads both lists concurrently and summarizes them. Either failure
// fails the whole overview.
func (s *DashboardService) Summary(ctx context.Context, refresh bool) (*domain.Summary, error) {
	if refresh {
		if err := s.cache.Delete(ctx, summaryKey); err != nil {
			s.log.Warn("Failed to drop cached dashboard", zap.Error(err))
		}
	}

	summary, err := cache.Remember(ctx, s.cache, summaryKey, s.ttl, s.load)
	if err != nil {
		return nil, apperr.Backend("load dashboard", err)
	}
	return &summary, nil
}

func (s *DashboardService) load(ctx context.Context) (domain.Summary, error) {
	var (
		cats  []categories.Category
		prods []products.Product
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cats, err = s.categories.List(ctx, categories.Criteria{})
		return err
	})
	g.Go(func() error {
		var err error
		prods, err = s.products.List(ctx, products.Criteria{})
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Summary{}, err
	}

	s.log.Debug("Dashboard computed", zap.Int("categories", len(cats)), zap.Int("products", len(prods)))
	return domain.Summarize(cats, prods, s.now()), nil
}
