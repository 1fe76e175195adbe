// internal/domain/order/entity.go
package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/storefront-backend/internal/domain/cart"
)

// OrderStatus represents the order status
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// validTransitions is the full lifecycle: pending → processing →
// completed, with cancellation allowed from pending and processing.
// completed and cancelled are terminal.
var validTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusCompleted, OrderStatusCancelled},
}

// IsValid reports whether the status is a known lifecycle state
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the transition is allowed
func (s OrderStatus) CanTransitionTo(to OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Sentinel errors for the order lifecycle
var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrInvalidTotal  = errors.New("order total is invalid")
	ErrOrderNotFound = errors.New("order not found")
)

// InvalidTransitionError is returned when a status change is not in the
// allowed transition set.
type InvalidTransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

// ValidationError carries every failing customer field at once
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("customer info validation failed for %d field(s)", len(e.Fields))
}

// CustomerInfo is the checkout contact and delivery information
type CustomerInfo struct {
	Name       string `json:"name" validate:"required,min=2,alphaspace"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required,len=10,numeric"`
	Address    string `json:"address" validate:"required,min=10"`
	City       string `json:"city" validate:"required,min=2,alphaspace"`
	PostalCode string `json:"postal_code" validate:"required,len=6,numeric"`
}

// OrderSummary is the priced snapshot of a cart at order time, with
// total == subtotal + shipping - discount and total >= 0.
type OrderSummary struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// Order is an immutable snapshot of a cart plus customer and pricing
// data. Once created, only Status may change.
type Order struct {
	ID           string          `json:"id"`
	OrderItems   []cart.CartItem `json:"order_items"`
	CustomerInfo CustomerInfo    `json:"customer_info"`
	OrderSummary OrderSummary    `json:"order_summary"`
	Status       OrderStatus     `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}
