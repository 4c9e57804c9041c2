package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"shop-admin/internal/core/apperr"

	"github.com/shopspring/decimal"
)

// Type is the discount kind of a coupon.
type Type string

const (
	// TypePercentage discounts a percentage of the order amount.
	TypePercentage Type = "PERCENTAGE"
	// TypeFixedAmount discounts a fixed amount in dong.
	TypeFixedAmount Type = "FIXED_AMOUNT"
)

// Valid reports whether t is a known discount type.
func (t Type) Valid() bool {
	return t == TypePercentage || t == TypeFixedAmount
}

// Label is the display text of the discount type.
func (t Type) Label() string {
	switch t {
	case TypePercentage:
		return "Phần trăm (%)"
	case TypeFixedAmount:
		return "Số tiền cố định (VNĐ)"
	default:
		return ""
	}
}

// Coupon is a discount code. Money fields travel as decimal text.
type Coupon struct {
	ID          string          `json:"id,omitempty"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Type        Type            `json:"type"`
	Value       decimal.Decimal `json:"value"`
	// MinimumOrderValue and MaximumDiscountAmount are nil when unrestricted.
	MinimumOrderValue     *decimal.Decimal `json:"minimumOrderValue,omitempty"`
	MaximumDiscountAmount *decimal.Decimal `json:"maximumDiscountAmount,omitempty"`
	// UsageLimit is nil or zero for unlimited use.
	UsageLimit *int       `json:"usageLimit,omitempty"`
	UsedCount  int        `json:"usedCount"`
	StartDate  *time.Time `json:"startDate,omitempty"`
	EndDate    *time.Time `json:"endDate,omitempty"`
	Active     *bool      `json:"active,omitempty"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`

	CategoryNames []string `json:"categoryNames,omitempty"`
	ProductNames  []string `json:"productNames,omitempty"`
}

// EntityID implements collection.Entity.
func (c Coupon) EntityID() string { return c.ID }

// IsActive reports whether the active flag is set and true.
func (c Coupon) IsActive() bool { return c.Active != nil && *c.Active }

// HasUsageLimit reports whether the coupon can only be used a limited number of times.
func (c Coupon) HasUsageLimit() bool { return c.UsageLimit != nil && *c.UsageLimit > 0 }

// RemainingUsage returns how many uses are left, or nil when unlimited.
func (c Coupon) RemainingUsage() *int {
	if !c.HasUsageLimit() {
		return nil
	}
	left := max(*c.UsageLimit-c.UsedCount, 0)
	return &left
}

const codeMinLength = 3

// Input is the create/update payload of a coupon.
type Input struct {
	Code                  string           `json:"code"`
	Name                  string           `json:"name"`
	Description           string           `json:"description,omitempty"`
	Type                  Type             `json:"type"`
	Value                 *decimal.Decimal `json:"value"`
	MinimumOrderValue     *decimal.Decimal `json:"minimumOrderValue,omitempty"`
	MaximumDiscountAmount *decimal.Decimal `json:"maximumDiscountAmount,omitempty"`
	UsageLimit            *int             `json:"usageLimit,omitempty"`
	StartDate             *time.Time       `json:"startDate,omitempty"`
	EndDate               *time.Time       `json:"endDate,omitempty"`
	Active                *bool            `json:"active,omitempty"`
}

// Normalize trims the text fields and upper-cases the code.
func (in Input) Normalize() Input {
	in.Code = strings.ToUpper(strings.TrimSpace(in.Code))
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	return in
}

// Validate checks the form rules without contacting the backend.
func (in Input) Validate() error {
	if utf8.RuneCountInString(strings.TrimSpace(in.Code)) < codeMinLength {
		return apperr.Invalid("code", "coupon code must be at least 3 characters")
	}
	if utf8.RuneCountInString(strings.TrimSpace(in.Name)) < codeMinLength {
		return apperr.Invalid("name", "coupon name must be at least 3 characters")
	}
	if !in.Type.Valid() {
		return apperr.Invalid("type", "type must be PERCENTAGE or FIXED_AMOUNT")
	}
	if in.Value == nil {
		return apperr.Invalid("value", "value is required")
	}
	if in.Value.IsNegative() {
		return apperr.Invalid("value", "value must not be negative")
	}
	if in.MinimumOrderValue != nil && in.MinimumOrderValue.IsNegative() {
		return apperr.Invalid("minimumOrderValue", "minimum order value must not be negative")
	}
	if in.MaximumDiscountAmount != nil && in.MaximumDiscountAmount.IsNegative() {
		return apperr.Invalid("maximumDiscountAmount", "maximum discount must not be negative")
	}
	if in.UsageLimit != nil && *in.UsageLimit < 1 {
		return apperr.Invalid("usageLimit", "usage limit must be at least 1")
	}
	if in.StartDate == nil {
		return apperr.Invalid("startDate", "start date is required")
	}
	if in.EndDate == nil {
		return apperr.Invalid("endDate", "end date is required")
	}
	if in.StartDate.After(*in.EndDate) {
		return apperr.Invalid("endDate", "end date must not be before start date")
	}
	return nil
}

// Stats are the coupon totals reported by the backend.
type Stats struct {
	TotalCoupons  int `json:"totalCoupons"`
	ActiveCoupons int `json:"activeCoupons"`
	UsableCoupons int `json:"usableCoupons"`
	TotalUsage    int `json:"totalUsage"`
}

// ValidationRequest asks the backend whether a code applies to an order.
type ValidationRequest struct {
	Code        string          `json:"code"`
	OrderAmount decimal.Decimal `json:"orderAmount"`
	ProductIDs  []string        `json:"productIds"`
	CategoryIDs []string        `json:"categoryIds"`
}

// Validate checks the request before it is sent.
func (r ValidationRequest) Validate() error {
	if strings.TrimSpace(r.Code) == "" {
		return apperr.Invalid("code", "coupon code must not be empty")
	}
	if r.OrderAmount.IsNegative() {
		return apperr.Invalid("orderAmount", "order amount must not be negative")
	}
	return nil
}

// ValidationResult is the backend's verdict on a ValidationRequest.
type ValidationResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
