// internal/domain/coupon/coupon_test.go
package coupon

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestValidateFlatCoupon(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		name     string
		code     string
		subtotal string
		want     string
		wantErr  error
	}{
		{name: "above minimum", code: "FIRST50", subtotal: "600", want: "50"},
		{name: "exactly at minimum qualifies", code: "FIRST50", subtotal: "500", want: "50"},
		{name: "below minimum", code: "FIRST50", subtotal: "499.99", wantErr: &BelowMinimumError{}},
		{name: "lowercase code accepted", code: "first50", subtotal: "600", want: "50"},
		{name: "mixed case code accepted", code: "FiRsT50", subtotal: "600", want: "50"},
		{name: "unknown code", code: "NOPE10", subtotal: "600", wantErr: ErrInvalidCoupon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, err := table.Validate(tt.code, d(tt.subtotal))
			if tt.wantErr != nil {
				require.Error(t, err)
				var belowMin *BelowMinimumError
				if errors.As(tt.wantErr, &belowMin) {
					assert.ErrorAs(t, err, &belowMin)
				} else {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "FIRST50", app.Code)
			assert.True(t, app.DiscountAmount.Equal(d(tt.want)))
		})
	}
}

func TestValidatePercentageCoupon(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		name     string
		subtotal string
		want     string
	}{
		{name: "twenty percent of subtotal", subtotal: "1000", want: "200"},
		{name: "cap limits large orders", subtotal: "5000", want: "200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, err := table.Validate("WELCOME20", d(tt.subtotal))
			require.NoError(t, err)
			assert.True(t, app.DiscountAmount.Equal(d(tt.want)), "got %s, want %s", app.DiscountAmount, tt.want)
		})
	}
}

func TestValidatePercentageBelowMinimum(t *testing.T) {
	table := DefaultTable()

	_, err := table.Validate("WELCOME20", d("999.99"))
	var belowMin *BelowMinimumError
	require.ErrorAs(t, err, &belowMin)
	assert.True(t, belowMin.Minimum.Equal(d("1000")))
}

func TestPercentageCapUncapped(t *testing.T) {
	p := Percentage{Rate: d("0.2")}

	got := p.Amount(d("5000"))
	assert.True(t, got.Equal(d("1000")))
}
