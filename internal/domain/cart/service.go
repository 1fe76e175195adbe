// internal/domain/cart/service.go
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/coupon"
	"github.com/your-org/storefront-backend/internal/domain/pricing"
	"github.com/your-org/storefront-backend/internal/infrastructure/store"
)

// ErrInvalidQuantity is returned for negative quantity updates
var ErrInvalidQuantity = errors.New("quantity cannot be negative")

// Notice kinds mirror the transient toast styles of the storefront UI
const (
	NoticeSuccess = "success"
	NoticeError   = "error"
)

// Notice is a transient user-facing notification emitted by mutators
type Notice struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

// CartResponse is a cart with its priced summary
type CartResponse struct {
	Items         []CartItem          `json:"items"`
	AppliedCoupon *coupon.Application `json:"applied_coupon,omitempty"`
	Summary       Summary             `json:"summary"`
	UpdatedAt     time.Time           `json:"updated_at"`
	Notice        *Notice             `json:"notice,omitempty"`
}

// WishlistResponse is the wishlist with its mutation notice
type WishlistResponse struct {
	Items     []WishlistItem `json:"items"`
	UpdatedAt time.Time      `json:"updated_at"`
	Notice    *Notice        `json:"notice,omitempty"`
}

// Service owns the cart and wishlist collections for one
// session/tenant. It is constructed with an injected persistence
// collaborator; multiple independent instances can coexist.
type Service struct {
	store   store.Store
	coupons *coupon.Table
	config  *config.Config
}

// NewService creates a new cart service
func NewService(st store.Store, coupons *coupon.Table, cfg *config.Config) *Service {
	return &Service{
		store:   st,
		coupons: coupons,
		config:  cfg,
	}
}

// GetCart retrieves the cart with its computed summary
func (s *Service) GetCart(ctx context.Context) (*CartResponse, error) {
	state, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}
	return s.respond(state, nil), nil
}

// AddToCart adds a product to the cart. An existing entry for the same
// product id gets its quantity incremented by one and keeps its
// selected size; otherwise a new entry is inserted with quantity one
// and the given size, defaulting to the product's first size.
func (s *Service) AddToCart(ctx context.Context, product *catalog.Product, sizeLabel string) (*CartResponse, error) {
	state, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}

	existing := false
	for i := range state.Items {
		if state.Items[i].ProductID == product.ID {
			state.Items[i].Quantity++
			existing = true
			break
		}
	}

	if !existing {
		selected := product.FirstSize()
		if sizeLabel != "" {
			if size, ok := product.SizeByLabel(sizeLabel); ok {
				selected = size
			}
		}
		state.Items = append(state.Items, CartItem{
			ProductID:    product.ID,
			Name:         product.Name,
			Category:     product.Category,
			Image:        product.Image,
			InStock:      product.InStock,
			Sizes:        product.Sizes,
			SelectedSize: selected,
			Quantity:     1,
			AddedAt:      time.Now().UTC(),
		})
	}

	if err := s.saveState(ctx, state); err != nil {
		return nil, err
	}

	notice := &Notice{Message: "Added to cart", Kind: NoticeSuccess}
	if existing {
		notice.Message = "Updated quantity in cart"
	}
	return s.respond(state, notice), nil
}

// RemoveFromCart deletes the entry with the given product id. Removing
// an absent id is a no-op, not an error.
func (s *Service) RemoveFromCart(ctx context.Context, productID string) (*CartResponse, error) {
	state, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}

	found := false
	items := state.Items[:0]
	for _, item := range state.Items {
		if item.ProductID == productID {
			found = true
			continue
		}
		items = append(items, item)
	}
	state.Items = items

	if !found {
		return s.respond(state, nil), nil
	}

	if err := s.saveState(ctx, state); err != nil {
		return nil, err
	}

	return s.respond(state, &Notice{Message: "Removed from cart", Kind: NoticeError}), nil
}

// UpdateQuantity sets the entry's quantity. Negative values are
// rejected; zero removes the line, so the cart never stores a
// zero-quantity item. Any confirmation UX belongs to the caller.
func (s *Service) UpdateQuantity(ctx context.Context, productID string, quantity int) (*CartResponse, error) {
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	if quantity == 0 {
		return s.RemoveFromCart(ctx, productID)
	}

	state, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range state.Items {
		if state.Items[i].ProductID == productID {
			state.Items[i].Quantity = quantity
			found = true
			break
		}
	}

	if !found {
		return s.respond(state, nil), nil
	}

	if err := s.saveState(ctx, state); err != nil {
		return nil, err
	}

	return s.respond(state, nil), nil
}

// ClearCart empties the cart unconditionally, dropping any applied
// coupon with it.
func (s *Service) ClearCart(ctx context.Context) error {
	return s.saveState(ctx, &State{Items: []CartItem{}})
}

// ApplyCoupon validates a coupon code against the current subtotal and
// stores it with the cart. At most one coupon is applied at a time;
// applying a new one replaces the previous.
func (s *Service) ApplyCoupon(ctx context.Context, code string) (*CartResponse, error) {
	state, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}

	subtotal := pricing.Subtotal(toLines(state.Items))
	application, err := s.coupons.Validate(code, subtotal)
	if err != nil {
		return nil, err
	}

	state.AppliedCoupon = application
	if err := s.saveState(ctx, state); err != nil {
		return nil, err
	}

	notice := &Notice{
		Message: fmt.Sprintf("Coupon applied successfully! Saved %s", application.DiscountAmount.String()),
		Kind:    NoticeSuccess,
	}
	return s.respond(state, notice), nil
}

// RemoveCoupon drops the applied coupon, if any.
func (s *Service) RemoveCoupon(ctx context.Context) (*CartResponse, error) {
	state, err := s.loadState(ctx)
	if err != nil {
		return nil, err
	}

	if state.AppliedCoupon == nil {
		return s.respond(state, nil), nil
	}

	state.AppliedCoupon = nil
	if err := s.saveState(ctx, state); err != nil {
		return nil, err
	}

	return s.respond(state, &Notice{Message: "Coupon removed", Kind: NoticeError}), nil
}

// ToggleWishlist toggles a product in the wishlist collection, which is
// independent of the cart and likewise keyed by product id.
func (s *Service) ToggleWishlist(ctx context.Context, product *catalog.Product, sizeLabel string) (*WishlistResponse, error) {
	state, err := s.loadWishlist(ctx)
	if err != nil {
		return nil, err
	}

	removed := false
	items := state.Items[:0]
	for _, item := range state.Items {
		if item.ProductID == product.ID {
			removed = true
			continue
		}
		items = append(items, item)
	}
	state.Items = items

	if !removed {
		selected := product.FirstSize()
		if sizeLabel != "" {
			if size, ok := product.SizeByLabel(sizeLabel); ok {
				selected = size
			}
		}
		state.Items = append(state.Items, WishlistItem{
			ProductID:    product.ID,
			Name:         product.Name,
			Category:     product.Category,
			Image:        product.Image,
			InStock:      product.InStock,
			Sizes:        product.Sizes,
			SelectedSize: selected,
			AddedAt:      time.Now().UTC(),
		})
	}

	state.UpdatedAt = time.Now().UTC()
	payload, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to encode wishlist: %w", err)
	}
	if err := s.store.Save(ctx, store.KeyWishlist, payload); err != nil {
		return nil, err
	}

	notice := &Notice{Message: "Added to wishlist", Kind: NoticeSuccess}
	if removed {
		notice = &Notice{Message: "Removed from wishlist", Kind: NoticeError}
	}
	return &WishlistResponse{
		Items:     state.Items,
		UpdatedAt: state.UpdatedAt,
		Notice:    notice,
	}, nil
}

// GetWishlist retrieves the wishlist
func (s *Service) GetWishlist(ctx context.Context) (*WishlistResponse, error) {
	state, err := s.loadWishlist(ctx)
	if err != nil {
		return nil, err
	}
	return &WishlistResponse{
		Items:     state.Items,
		UpdatedAt: state.UpdatedAt,
	}, nil
}

// Snapshot returns the current cart state and its computed summary.
// The order service snapshots these into immutable orders.
func (s *Service) Snapshot(ctx context.Context) (*State, Summary, error) {
	state, err := s.loadState(ctx)
	if err != nil {
		return nil, Summary{}, err
	}
	return state, s.summarize(state), nil
}

// EmptyStatePayload is the encoded empty cart document. It is written
// alongside the new order when an order is placed so both updates land
// in one atomic store write.
func EmptyStatePayload() ([]byte, error) {
	payload, err := json.Marshal(&State{Items: []CartItem{}, UpdatedAt: time.Now().UTC()})
	if err != nil {
		return nil, fmt.Errorf("failed to encode empty cart: %w", err)
	}
	return payload, nil
}

// Private helpers

func (s *Service) loadState(ctx context.Context) (*State, error) {
	data, err := s.store.Load(ctx, store.KeyCart)
	if errors.Is(err, store.ErrNotFound) {
		return &State{Items: []CartItem{}}, nil
	}
	if err != nil {
		return nil, err
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	if state.Items == nil {
		state.Items = []CartItem{}
	}
	return &state, nil
}

func (s *Service) saveState(ctx context.Context, state *State) error {
	state.UpdatedAt = time.Now().UTC()
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	return s.store.Save(ctx, store.KeyCart, payload)
}

func (s *Service) loadWishlist(ctx context.Context) (*WishlistState, error) {
	data, err := s.store.Load(ctx, store.KeyWishlist)
	if errors.Is(err, store.ErrNotFound) {
		return &WishlistState{Items: []WishlistItem{}}, nil
	}
	if err != nil {
		return nil, err
	}

	var state WishlistState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to decode wishlist: %w", err)
	}
	if state.Items == nil {
		state.Items = []WishlistItem{}
	}
	return &state, nil
}

// summarize prices the cart. The applied coupon is revalidated against
// the current subtotal; a coupon the cart no longer qualifies for
// contributes no discount.
func (s *Service) summarize(state *State) Summary {
	subtotal := pricing.Subtotal(toLines(state.Items))
	shipping := pricing.Shipping(subtotal, s.config.Pricing.FreeShippingThreshold, s.config.Pricing.FlatShippingFee)

	discount := decimal.Zero
	if state.AppliedCoupon != nil {
		if application, err := s.coupons.Validate(state.AppliedCoupon.Code, subtotal); err == nil {
			discount = application.DiscountAmount
		}
	}

	return Summary{
		Subtotal: subtotal,
		Shipping: shipping,
		Discount: discount,
		Total:    pricing.Total(subtotal, shipping, discount),
	}
}

func (s *Service) respond(state *State, notice *Notice) *CartResponse {
	return &CartResponse{
		Items:         state.Items,
		AppliedCoupon: state.AppliedCoupon,
		Summary:       s.summarize(state),
		UpdatedAt:     state.UpdatedAt,
		Notice:        notice,
	}
}

func toLines(items []CartItem) []pricing.Line {
	lines := make([]pricing.Line, len(items))
	for i := range items {
		lines[i] = pricing.Line{
			UnitPrice: items[i].UnitPrice(),
			Quantity:  items[i].Quantity,
		}
	}
	return lines
}
