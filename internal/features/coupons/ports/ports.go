package ports

import (
	"context"

	"shop-admin/internal/features/coupons/domain"
)

// ListQuery holds the filters the backend applies itself.
type ListQuery struct {
	Search string
	Active *bool
	Type   domain.Type
}

// CouponProvider is the backend port for coupons (driven port).
type CouponProvider interface {
	ListCoupons(ctx context.Context, q ListQuery) ([]domain.Coupon, error)
	ListUsableCoupons(ctx context.Context) ([]domain.Coupon, error)
	GetCoupon(ctx context.Context, id string) (*domain.Coupon, error)
	GetCouponByCode(ctx context.Context, code string) (*domain.Coupon, error)
	CreateCoupon(ctx context.Context, in domain.Input) (*domain.Coupon, error)
	UpdateCoupon(ctx context.Context, id string, in domain.Input) (*domain.Coupon, error)
	DeleteCoupon(ctx context.Context, id string) error
	ToggleCouponStatus(ctx context.Context, id string) (*domain.Coupon, error)
	UseCoupon(ctx context.Context, code string) (*domain.Coupon, error)
	ValidateCoupon(ctx context.Context, req domain.ValidationRequest) (*domain.ValidationResult, error)
	GetCouponStats(ctx context.Context) (*domain.Stats, error)
}

// CouponService is the primary port used by the HTTP handler. Every coupon it
// returns is annotated with the status resolved at call time.
type CouponService interface {
	// List refreshes the held coupons from the backend and derives the view.
	List(ctx context.Context, c domain.Criteria) ([]domain.View, error)
	// View derives the view from the held coupons without a backend call.
	View(c domain.Criteria) []domain.View
	Usable(ctx context.Context) ([]domain.View, error)
	Get(ctx context.Context, id string) (*domain.View, error)
	GetByCode(ctx context.Context, code string) (*domain.View, error)
	Create(ctx context.Context, in domain.Input) (*domain.View, error)
	Update(ctx context.Context, id string, in domain.Input) (*domain.View, error)
	Delete(ctx context.Context, id string) error
	ToggleStatus(ctx context.Context, id string) (*domain.View, error)
	Use(ctx context.Context, code string) (*domain.View, error)
	Validate(ctx context.Context, req domain.ValidationRequest) (*domain.ValidationResult, error)
	Stats(ctx context.Context) (*domain.Stats, error)
}
