package domain

import (
	"encoding/json"
	"testing"
	"time"

	"shop-admin/internal/core/apperr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func validInput() Input {
	return Input{
		Code:      "SALE10",
		Name:      "Giảm 10%",
		Type:      TypePercentage,
		Value:     decPtr("10"),
		StartDate: timePtr(now),
		EndDate:   timePtr(now.Add(72 * time.Hour)),
	}
}

func TestInput_Validate(t *testing.T) {
	assert.NoError(t, validInput().Validate())

	tests := []struct {
		name   string
		mutate func(*Input)
		field  string
	}{
		{"ShortCode", func(in *Input) { in.Code = " AB " }, "code"},
		{"ShortName", func(in *Input) { in.Name = "ab" }, "name"},
		{"UnknownType", func(in *Input) { in.Type = "FREE_SHIPPING" }, "type"},
		{"MissingValue", func(in *Input) { in.Value = nil }, "value"},
		{"NegativeValue", func(in *Input) { in.Value = decPtr("-1") }, "value"},
		{"NegativeMinimum", func(in *Input) { in.MinimumOrderValue = decPtr("-0.5") }, "minimumOrderValue"},
		{"ZeroUsageLimit", func(in *Input) { in.UsageLimit = intPtr(0) }, "usageLimit"},
		{"MissingStart", func(in *Input) { in.StartDate = nil }, "startDate"},
		{"MissingEnd", func(in *Input) { in.EndDate = nil }, "endDate"},
		{"EndBeforeStart", func(in *Input) { in.EndDate = timePtr(now.Add(-time.Hour)) }, "endDate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			err := in.Validate()
			var ve *apperr.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestInput_Normalize(t *testing.T) {
	in := Input{Code: " sale10 ", Name: " Giảm giá "}.Normalize()
	assert.Equal(t, "SALE10", in.Code)
	assert.Equal(t, "Giảm giá", in.Name)
}

func TestCoupon_DecodesTextMoney(t *testing.T) {
	raw := `{"id":"k1","code":"SALE","name":"Sale","type":"FIXED_AMOUNT","value":"50000.00",
		"minimumOrderValue":"300000","usageLimit":100,"usedCount":7,"active":true}`

	var c Coupon
	require.NoError(t, json.Unmarshal([]byte(raw), &c))
	assert.True(t, c.Value.Equal(decimal.NewFromInt(50000)))
	require.NotNil(t, c.MinimumOrderValue)
	assert.Equal(t, "300000", c.MinimumOrderValue.String())
	assert.Nil(t, c.MaximumDiscountAmount)
	assert.Equal(t, 93, *c.RemainingUsage())
}

func TestValidationRequest_Validate(t *testing.T) {
	assert.True(t, apperr.IsValidation(ValidationRequest{}.Validate()))
	assert.True(t, apperr.IsValidation(ValidationRequest{Code: "X", OrderAmount: decimal.NewFromInt(-1)}.Validate()))
	assert.NoError(t, ValidationRequest{Code: "SALE", OrderAmount: decimal.NewFromInt(100000)}.Validate())
}
