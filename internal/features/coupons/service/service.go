package service

import (
	"context"
	"time"

	"shop-admin/internal/core/apperr"
	"shop-admin/internal/core/cache"
	"shop-admin/internal/core/collection"
	"shop-admin/internal/core/logger"
	"shop-admin/internal/features/coupons/domain"
	"shop-admin/internal/features/coupons/ports"

	"go.uber.org/zap"
)

const statsKey = "coupons:stats"

// CouponService keeps the last fetched coupons, annotates them with their
// status on every read and caches the backend stats.
type CouponService struct {
	provider ports.CouponProvider
	store    *collection.Store[domain.Coupon]
	cache    cache.Cache
	statsTTL time.Duration
	now      func() time.Time
	log      *zap.Logger
}

// NewCouponService creates a new CouponService.
func NewCouponService(provider ports.CouponProvider, c cache.Cache, statsTTL time.Duration) *CouponService {
	return &CouponService{
		provider: provider,
		store:    collection.NewStore[domain.Coupon](),
		cache:    c,
		statsTTL: statsTTL,
		now:      time.Now,
		log:      logger.Named("coupons"),
	}
}

// List reloads coupons (the backend pre-filters by search, active flag and type)
// and derives the view, including the status filter.
func (s *CouponService) List(ctx context.Context, c domain.Criteria) ([]domain.View, error) {
	q := ports.ListQuery{Search: c.Search, Active: c.Active, Type: c.Type}
	items, applied, err := s.store.Load(ctx, func(ctx context.Context) ([]domain.Coupon, error) {
		return s.provider.ListCoupons(ctx, q)
	})
	if err != nil {
		return nil, apperr.Backend("load coupons", err)
	}
	if !applied {
		s.log.Debug("Coupon load superseded by a newer one", zap.Int("count", len(items)))
	}
	return domain.Filter(items, c, s.now()), nil
}

// View derives the view from the held coupons.
func (s *CouponService) View(c domain.Criteria) []domain.View {
	return domain.Filter(s.store.Snapshot(), c, s.now())
}

// Usable lists the coupons the backend considers redeemable.
func (s *CouponService) Usable(ctx context.Context) ([]domain.View, error) {
	items, err := s.provider.ListUsableCoupons(ctx)
	if err != nil {
		return nil, apperr.Backend("load usable coupons", err)
	}
	return domain.Filter(items, domain.Criteria{}, s.now()), nil
}

// Get fetches a coupon by id.
func (s *CouponService) Get(ctx context.Context, id string) (*domain.View, error) {
	coupon, err := s.provider.GetCoupon(ctx, id)
	if err != nil {
		return nil, apperr.Backend("load coupon", err)
	}
	return s.annotate(coupon), nil
}

// GetByCode fetches a coupon by code.
func (s *CouponService) GetByCode(ctx context.Context, code string) (*domain.View, error) {
	coupon, err := s.provider.GetCouponByCode(ctx, code)
	if err != nil {
		return nil, apperr.Backend("load coupon", err)
	}
	return s.annotate(coupon), nil
}

// Create validates the input, creates the coupon and appends the backend's copy.
func (s *CouponService) Create(ctx context.Context, in domain.Input) (*domain.View, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	created, err := s.provider.CreateCoupon(ctx, in.Normalize())
	if err != nil {
		return nil, apperr.Backend("create coupon", err)
	}

	s.store.Added(*created)
	s.statsChanged(ctx)
	s.log.Info("Coupon created", zap.String("coupon_id", created.ID), zap.String("code", created.Code))
	return s.annotate(created), nil
}

// Update validates the input, replaces the coupon and swaps it in place.
func (s *CouponService) Update(ctx context.Context, id string, in domain.Input) (*domain.View, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.provider.UpdateCoupon(ctx, id, in.Normalize())
	if err != nil {
		return nil, apperr.Backend("update coupon", err)
	}

	s.store.Updated(*updated)
	s.statsChanged(ctx)
	return s.annotate(updated), nil
}

// Delete removes the coupon once the backend confirms.
func (s *CouponService) Delete(ctx context.Context, id string) error {
	if err := s.provider.DeleteCoupon(ctx, id); err != nil {
		return apperr.Backend("delete coupon", err)
	}

	s.store.Removed(id)
	s.statsChanged(ctx)
	s.log.Info("Coupon deleted", zap.String("coupon_id", id))
	return nil
}

// ToggleStatus flips the active flag on the backend and swaps in the result.
func (s *CouponService) ToggleStatus(ctx context.Context, id string) (*domain.View, error) {
	updated, err := s.provider.ToggleCouponStatus(ctx, id)
	if err != nil {
		return nil, apperr.Backend("toggle coupon status", err)
	}

	s.store.Updated(*updated)
	s.statsChanged(ctx)
	return s.annotate(updated), nil
}

// Use records one redemption of code.
func (s *CouponService) Use(ctx context.Context, code string) (*domain.View, error) {
	used, err := s.provider.UseCoupon(ctx, code)
	if err != nil {
		return nil, apperr.Backend("use coupon", err)
	}

	s.store.Updated(*used)
	s.statsChanged(ctx)
	return s.annotate(used), nil
}

// Validate asks the backend whether a code applies to an order.
func (s *CouponService) Validate(ctx context.Context, req domain.ValidationRequest) (*domain.ValidationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	res, err := s.provider.ValidateCoupon(ctx, req)
	if err != nil {
		return nil, apperr.Backend("validate coupon", err)
	}
	return res, nil
}

// Stats returns the coupon totals, cached for the configured TTL.
func (s *CouponService) Stats(ctx context.Context) (*domain.Stats, error) {
	stats, err := cache.Remember(ctx, s.cache, statsKey, s.statsTTL, func(ctx context.Context) (domain.Stats, error) {
		st, err := s.provider.GetCouponStats(ctx)
		if err != nil {
			return domain.Stats{}, err
		}
		return *st, nil
	})
	if err != nil {
		return nil, apperr.Backend("load coupon stats", err)
	}
	return &stats, nil
}

// Snapshot returns the held coupons.
func (s *CouponService) Snapshot() []domain.Coupon {
	return s.store.Snapshot()
}

func (s *CouponService) annotate(c *domain.Coupon) *domain.View {
	view := domain.Annotate(*c, s.now())
	return &view
}

func (s *CouponService) statsChanged(ctx context.Context) {
	if err := s.cache.Delete(ctx, statsKey); err != nil {
		s.log.Warn("Failed to drop cached coupon stats", zap.Error(err))
	}
}
