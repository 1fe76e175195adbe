// internal/domain/pricing/pricing.go

// Package pricing holds the pure cart pricing functions. Everything in
// here is deterministic and side-effect free; amounts are decimal
// currency values rounded to minor-unit precision.
package pricing

import "github.com/shopspring/decimal"

// Line is a priced cart line: unit price times quantity.
type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// Subtotal sums unit price times quantity over all lines.
func Subtotal(lines []Line) decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return subtotal
}

// Shipping returns zero when the subtotal is strictly above the free
// shipping threshold, otherwise the flat fee.
func Shipping(subtotal, freeThreshold, flatFee decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(freeThreshold) {
		return decimal.Zero
	}
	return flatFee
}

// Total computes subtotal + shipping - discount, floored at zero and
// rounded half-up to two decimal places.
func Total(subtotal, shipping, discount decimal.Decimal) decimal.Decimal {
	total := subtotal.Add(shipping).Sub(discount)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total.Round(2)
}
