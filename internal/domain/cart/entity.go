// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/coupon"
)

// CartItem is one line of the cart: a product snapshot plus quantity
// and the size the customer picked. The cart holds at most one entry
// per product id.
type CartItem struct {
	ProductID    string                `json:"product_id"`
	Name         string                `json:"name"`
	Category     string                `json:"category"`
	Image        string                `json:"image"`
	InStock      bool                  `json:"in_stock"`
	Sizes        []catalog.ProductSize `json:"sizes"`
	SelectedSize catalog.ProductSize   `json:"selected_size"`
	Quantity     int                   `json:"quantity"`
	AddedAt      time.Time             `json:"added_at"`
}

// UnitPrice is the selected size price, falling back to the first size
// when no size was selected.
func (i *CartItem) UnitPrice() decimal.Decimal {
	if i.SelectedSize.Size != "" {
		return i.SelectedSize.Price
	}
	if len(i.Sizes) > 0 {
		return i.Sizes[0].Price
	}
	return decimal.Zero
}

// WishlistItem is a product snapshot in the wishlist, keyed by product
// id like cart entries but without a quantity.
type WishlistItem struct {
	ProductID    string                `json:"product_id"`
	Name         string                `json:"name"`
	Category     string                `json:"category"`
	Image        string                `json:"image"`
	InStock      bool                  `json:"in_stock"`
	Sizes        []catalog.ProductSize `json:"sizes"`
	SelectedSize catalog.ProductSize   `json:"selected_size"`
	AddedAt      time.Time             `json:"added_at"`
}

// State is the persisted cart document
type State struct {
	Items         []CartItem          `json:"items"`
	AppliedCoupon *coupon.Application `json:"applied_coupon,omitempty"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// WishlistState is the persisted wishlist document
type WishlistState struct {
	Items     []WishlistItem `json:"items"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Summary is the priced view of a cart
type Summary struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}
