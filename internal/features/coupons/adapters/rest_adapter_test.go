package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shop-admin/internal/core/apperr"
	"shop-admin/internal/core/httpclient"
	"shop-admin/internal/features/coupons/domain"
	"shop-admin/internal/features/coupons/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdapter(t *testing.T, h http.HandlerFunc) *RESTAdapter {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)
	return NewRESTAdapter(httpclient.NewRESTClient(server.URL, time.Second))
}

func TestRESTAdapter_ListCoupons(t *testing.T) {
	mockResponse := `[{"id":"k1","code":"SALE10","name":"Giảm 10%","type":"PERCENTAGE","value":"10",
		"maximumDiscountAmount":"50000","usageLimit":100,"usedCount":3,"active":true,
		"startDate":"2025-06-01T00:00:00Z","endDate":"2025-06-30T23:59:59Z"}]`

	active := true
	adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/api/coupons", r.URL.Path)
		assert.Equal(t, "sale", q.Get("search"))
		assert.Equal(t, "true", q.Get("active"))
		assert.Equal(t, "PERCENTAGE", q.Get("type"))
		w.Write([]byte(mockResponse))
	})

	coupons, err := adapter.ListCoupons(context.Background(), ports.ListQuery{Search: "sale", Active: &active, Type: domain.TypePercentage})
	require.NoError(t, err)
	require.Len(t, coupons, 1)

	c := coupons[0]
	assert.Equal(t, "10", c.Value.String())
	assert.Equal(t, "50000", c.MaximumDiscountAmount.String())
	assert.Equal(t, 100, *c.UsageLimit)
	assert.Equal(t, time.June, c.EndDate.Month())
}

func TestRESTAdapter_Lookups(t *testing.T) {
	var paths []string
	adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		if r.URL.Path == "/api/coupons/usable" {
			w.Write([]byte(`[]`))
			return
		}
		w.Write([]byte(`{"id":"k1","code":"SALE10","name":"Sale","type":"FIXED_AMOUNT","value":"20000"}`))
	})
	ctx := context.Background()

	_, err := adapter.ListUsableCoupons(ctx)
	require.NoError(t, err)
	_, err = adapter.GetCoupon(ctx, "k1")
	require.NoError(t, err)
	byCode, err := adapter.GetCouponByCode(ctx, "SALE10")
	require.NoError(t, err)
	assert.Equal(t, domain.TypeFixedAmount, byCode.Type)
	_, err = adapter.UseCoupon(ctx, "SALE10")
	require.NoError(t, err)
	_, err = adapter.ToggleCouponStatus(ctx, "k1")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"GET /api/coupons/usable",
		"GET /api/coupons/k1",
		"GET /api/coupons/code/SALE10",
		"POST /api/coupons/SALE10/use",
		"PATCH /api/coupons/k1/toggle-status",
	}, paths)
}

func TestRESTAdapter_CreateCouponSendsTextMoney(t *testing.T) {
	adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Equal(t, "15.5", raw["value"])
		assert.Equal(t, "SALE15", raw["code"])
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"k2","code":"SALE15","name":"Sale","type":"PERCENTAGE","value":"15.5"}`))
	})

	value := decimal.RequireFromString("15.5")
	created, err := adapter.CreateCoupon(context.Background(), domain.Input{Code: "SALE15", Name: "Sale", Type: domain.TypePercentage, Value: &value})
	require.NoError(t, err)
	assert.Equal(t, "k2", created.ID)
}

func TestRESTAdapter_ValidateCoupon(t *testing.T) {
	adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/coupons/validate", r.URL.Path)

		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Equal(t, []any{}, raw["productIds"])
		assert.Equal(t, []any{}, raw["categoryIds"])

		w.Write([]byte(`{"valid":false,"message":"Đơn hàng chưa đạt giá trị tối thiểu"}`))
	})

	res, err := adapter.ValidateCoupon(context.Background(), domain.ValidationRequest{Code: "SALE10", OrderAmount: decimal.NewFromInt(10000)})
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.NotEmpty(t, res.Message)
}

func TestRESTAdapter_Stats(t *testing.T) {
	adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/coupons/stats", r.URL.Path)
		w.Write([]byte(`{"totalCoupons":12,"activeCoupons":8,"usableCoupons":5,"totalUsage":340}`))
	})

	stats, err := adapter.GetCouponStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Stats{TotalCoupons: 12, ActiveCoupons: 8, UsableCoupons: 5, TotalUsage: 340}, *stats)
}

func TestRESTAdapter_DeleteCoupon_Error(t *testing.T) {
	adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"Coupon is in use"}`))
	})

	err := adapter.DeleteCoupon(context.Background(), "k1")
	assert.ErrorIs(t, err, apperr.ErrBackend)
	assert.Contains(t, err.Error(), "Coupon is in use")
}
