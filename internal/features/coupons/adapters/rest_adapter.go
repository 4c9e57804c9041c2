package adapters

import (
	"context"
	"net/url"
	"strconv"

	"shop-admin/internal/core/httpclient"
	"shop-admin/internal/features/coupons/domain"
	"shop-admin/internal/features/coupons/ports"
)

const basePath = "/api/coupons"

// RESTAdapter implements ports.CouponProvider against the backend REST API.
type RESTAdapter struct {
	client *httpclient.RESTClient
}

// NewRESTAdapter creates a new coupon adapter.
func NewRESTAdapter(client *httpclient.RESTClient) *RESTAdapter {
	return &RESTAdapter{client: client}
}

func couponPath(id string) string {
	return basePath + "/" + url.PathEscape(id)
}

// ListCoupons fetches coupons filtered by the backend.
func (a *RESTAdapter) ListCoupons(ctx context.Context, q ports.ListQuery) ([]domain.Coupon, error) {
	params := url.Values{}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Active != nil {
		params.Set("active", strconv.FormatBool(*q.Active))
	}
	if q.Type != "" {
		params.Set("type", string(q.Type))
	}
	return a.list(ctx, basePath, params)
}

// ListUsableCoupons fetches coupons the backend considers redeemable now.
func (a *RESTAdapter) ListUsableCoupons(ctx context.Context) ([]domain.Coupon, error) {
	return a.list(ctx, basePath+"/usable", nil)
}

func (a *RESTAdapter) list(ctx context.Context, path string, params url.Values) ([]domain.Coupon, error) {
	var out []domain.Coupon
	if err := a.client.Get(ctx, path, params, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCoupon fetches one coupon by id.
func (a *RESTAdapter) GetCoupon(ctx context.Context, id string) (*domain.Coupon, error) {
	return a.one(ctx, couponPath(id))
}

// GetCouponByCode fetches one coupon by code.
func (a *RESTAdapter) GetCouponByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	return a.one(ctx, basePath+"/code/"+url.PathEscape(code))
}

func (a *RESTAdapter) one(ctx context.Context, path string) (*domain.Coupon, error) {
	var out domain.Coupon
	if err := a.client.Get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCoupon posts a new coupon and returns the backend's copy.
func (a *RESTAdapter) CreateCoupon(ctx context.Context, in domain.Input) (*domain.Coupon, error) {
	var out domain.Coupon
	if err := a.client.Post(ctx, basePath, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCoupon replaces a coupon.
func (a *RESTAdapter) UpdateCoupon(ctx context.Context, id string, in domain.Input) (*domain.Coupon, error) {
	var out domain.Coupon
	if err := a.client.Put(ctx, couponPath(id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCoupon deletes a coupon.
func (a *RESTAdapter) DeleteCoupon(ctx context.Context, id string) error {
	return a.client.Delete(ctx, couponPath(id), nil)
}

// ToggleCouponStatus flips the active flag.
func (a *RESTAdapter) ToggleCouponStatus(ctx context.Context, id string) (*domain.Coupon, error) {
	var out domain.Coupon
	if err := a.client.Patch(ctx, couponPath(id)+"/toggle-status", struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UseCoupon records one redemption of code.
func (a *RESTAdapter) UseCoupon(ctx context.Context, code string) (*domain.Coupon, error) {
	var out domain.Coupon
	if err := a.client.Post(ctx, couponPath(code)+"/use", struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ValidateCoupon asks the backend whether a code applies to an order.
func (a *RESTAdapter) ValidateCoupon(ctx context.Context, req domain.ValidationRequest) (*domain.ValidationResult, error) {
	if req.ProductIDs == nil {
		req.ProductIDs = []string{}
	}
	if req.CategoryIDs == nil {
		req.CategoryIDs = []string{}
	}

	var out domain.ValidationResult
	if err := a.client.Post(ctx, basePath+"/validate", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCouponStats fetches the coupon totals.
func (a *RESTAdapter) GetCouponStats(ctx context.Context) (*domain.Stats, error) {
	var out domain.Stats
	if err := a.client.Get(ctx, basePath+"/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
