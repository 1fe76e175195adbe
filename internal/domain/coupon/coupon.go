// internal/domain/coupon/coupon.go
package coupon

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidCoupon is returned when the code is not in the coupon table
var ErrInvalidCoupon = errors.New("invalid coupon code")

// BelowMinimumError is returned when the cart subtotal does not reach
// the coupon's minimum order amount.
type BelowMinimumError struct {
	Minimum decimal.Decimal
}

func (e *BelowMinimumError) Error() string {
	return fmt.Sprintf("minimum order amount of %s required", e.Minimum.String())
}

// Discount computes the discount a coupon grants for a given subtotal.
type Discount interface {
	Amount(subtotal decimal.Decimal) decimal.Decimal
}

// Flat is a fixed discount amount
type Flat struct {
	Value decimal.Decimal
}

// Amount returns the flat value regardless of subtotal
func (f Flat) Amount(decimal.Decimal) decimal.Decimal {
	return f.Value
}

// Percentage is a rate-based discount with an optional cap
type Percentage struct {
	Rate decimal.Decimal // e.g. 0.2 for 20%
	Cap  *decimal.Decimal
}

// Amount returns subtotal*rate, limited by the cap when one is set
func (p Percentage) Amount(subtotal decimal.Decimal) decimal.Decimal {
	amount := subtotal.Mul(p.Rate)
	if p.Cap != nil && amount.GreaterThan(*p.Cap) {
		return *p.Cap
	}
	return amount
}

// Coupon is a named discount rule. The table is a static reference set,
// not user-editable at runtime.
type Coupon struct {
	Code               string
	Description        string
	MinimumOrderAmount decimal.Decimal
	Discount           Discount
}

// Application is the result of successfully applying a coupon
type Application struct {
	Code           string          `json:"code"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
}

// Table validates coupon codes against a fixed coupon set
type Table struct {
	coupons map[string]Coupon
}

// NewTable builds a lookup table; codes are stored uppercased.
func NewTable(coupons []Coupon) *Table {
	index := make(map[string]Coupon, len(coupons))
	for _, c := range coupons {
		index[strings.ToUpper(c.Code)] = c
	}
	return &Table{coupons: index}
}

// DefaultTable returns the built-in coupon set
func DefaultTable() *Table {
	cap200 := decimal.NewFromInt(200)
	return NewTable([]Coupon{
		{
			Code:               "FIRST50",
			Description:        "50 off on orders above 500",
			MinimumOrderAmount: decimal.NewFromInt(500),
			Discount:           Flat{Value: decimal.NewFromInt(50)},
		},
		{
			Code:               "WELCOME20",
			Description:        "20% off on orders above 1000",
			MinimumOrderAmount: decimal.NewFromInt(1000),
			Discount:           Percentage{Rate: decimal.NewFromFloat(0.2), Cap: &cap200},
		},
	})
}

// Validate checks a coupon code against the table for the given
// subtotal. Codes are case-insensitive; the minimum order amount is
// inclusive. On success it returns the computed discount amount.
func (t *Table) Validate(code string, subtotal decimal.Decimal) (*Application, error) {
	c, ok := t.coupons[strings.ToUpper(code)]
	if !ok {
		return nil, ErrInvalidCoupon
	}

	if subtotal.LessThan(c.MinimumOrderAmount) {
		return nil, &BelowMinimumError{Minimum: c.MinimumOrderAmount}
	}

	return &Application{
		Code:           c.Code,
		DiscountAmount: c.Discount.Amount(subtotal),
	}, nil
}
