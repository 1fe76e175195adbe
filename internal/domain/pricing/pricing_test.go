// internal/domain/pricing/pricing_test.go
package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSubtotal(t *testing.T) {
	tests := []struct {
		name  string
		lines []Line
		want  string
	}{
		{
			name:  "empty cart",
			lines: nil,
			want:  "0",
		},
		{
			name: "single line",
			lines: []Line{
				{UnitPrice: d("45"), Quantity: 2},
			},
			want: "90",
		},
		{
			name: "multiple lines",
			lines: []Line{
				{UnitPrice: d("45"), Quantity: 2},
				{UnitPrice: d("30.50"), Quantity: 3},
			},
			want: "181.5",
		},
		{
			name: "fractional prices keep precision",
			lines: []Line{
				{UnitPrice: d("0.1"), Quantity: 3},
			},
			want: "0.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Subtotal(tt.lines)
			assert.True(t, got.Equal(d(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestShipping(t *testing.T) {
	threshold := d("150")
	fee := d("50")

	tests := []struct {
		name     string
		subtotal string
		want     string
	}{
		{name: "below threshold charges flat fee", subtotal: "100", want: "50"},
		{name: "exactly at threshold still charges fee", subtotal: "150", want: "50"},
		{name: "just above threshold ships free", subtotal: "150.01", want: "0"},
		{name: "well above threshold ships free", subtotal: "500", want: "0"},
		{name: "empty cart charges fee", subtotal: "0", want: "50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Shipping(d(tt.subtotal), threshold, fee)
			assert.True(t, got.Equal(d(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestTotal(t *testing.T) {
	tests := []struct {
		name     string
		subtotal string
		shipping string
		discount string
		want     string
	}{
		{name: "no discount", subtotal: "100", shipping: "50", discount: "0", want: "150"},
		{name: "flat discount", subtotal: "600", shipping: "0", discount: "50", want: "550"},
		{name: "discount exceeding total floors at zero", subtotal: "30", shipping: "0", discount: "100", want: "0"},
		{name: "rounds half up to two places", subtotal: "10.005", shipping: "0", discount: "0", want: "10.01"},
		{name: "rounds down below midpoint", subtotal: "10.004", shipping: "0", discount: "0", want: "10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Total(d(tt.subtotal), d(tt.shipping), d(tt.discount))
			assert.True(t, got.Equal(d(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}
