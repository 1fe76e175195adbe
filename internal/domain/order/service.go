// internal/domain/order/service.go
package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/infrastructure/store"
)

// Service handles the order lifecycle: creation from a cart snapshot,
// status transitions, and the administrative listing surface.
type Service struct {
	store       store.Store
	cartService *cart.Service
	config      *config.Config
}

// NewService creates a new order service
func NewService(st store.Store, cartService *cart.Service, cfg *config.Config) *Service {
	return &Service{
		store:       st,
		cartService: cartService,
		config:      cfg,
	}
}

// ListOrdersRequest represents the admin listing query
type ListOrdersRequest struct {
	Status    OrderStatus `form:"status"`
	Search    string      `form:"search"`
	SortBy    string      `form:"sort_by"` // "customer" or "total"
	SortOrder string      `form:"sort_order,default=asc"`
	Page      int         `form:"page,default=1"`
}

// Pagination represents pagination information
type Pagination struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// ListOrdersResponse represents a page of orders
type ListOrdersResponse struct {
	Orders     []Order    `json:"orders"`
	Pagination Pagination `json:"pagination"`
}

// PlaceOrder creates an immutable order from the current cart snapshot
// and clears the cart. Both writes land in one atomic store operation:
// either the order exists and the cart is empty, or neither changed.
func (s *Service) PlaceOrder(ctx context.Context, info CustomerInfo) (*Order, error) {
	snapshot, summary, err := s.cartService.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot cart: %w", err)
	}

	if len(snapshot.Items) == 0 {
		return nil, ErrEmptyCart
	}

	if err := ValidateCustomerInfo(info); err != nil {
		return nil, err
	}

	if summary.Total.IsNegative() {
		return nil, ErrInvalidTotal
	}

	order := Order{
		ID:           generateOrderID(),
		OrderItems:   snapshot.Items,
		CustomerInfo: info,
		OrderSummary: OrderSummary{
			Subtotal: summary.Subtotal,
			Shipping: summary.Shipping,
			Discount: summary.Discount,
			Total:    summary.Total,
		},
		Status:    OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	orders, err := s.loadOrders(ctx)
	if err != nil {
		return nil, err
	}
	orders = append(orders, order)

	ordersPayload, err := json.Marshal(orders)
	if err != nil {
		return nil, fmt.Errorf("failed to encode orders: %w", err)
	}
	emptyCart, err := cart.EmptyStatePayload()
	if err != nil {
		return nil, err
	}

	if err := s.store.SaveAll(ctx, map[string][]byte{
		store.KeyOrders: ordersPayload,
		store.KeyCart:   emptyCart,
	}); err != nil {
		return nil, err
	}

	return &order, nil
}

// GetOrder retrieves a single order by id
func (s *Service) GetOrder(ctx context.Context, id string) (*Order, error) {
	orders, err := s.loadOrders(ctx)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, ErrOrderNotFound
}

// UpdateOrderStatus moves an order through its lifecycle. Only the
// status changes; all other order fields stay untouched.
func (s *Service) UpdateOrderStatus(ctx context.Context, id string, status OrderStatus) (*Order, error) {
	orders, err := s.loadOrders(ctx)
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range orders {
		if orders[i].ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, ErrOrderNotFound
	}

	current := orders[index].Status
	if !status.IsValid() || !current.CanTransitionTo(status) {
		return nil, &InvalidTransitionError{From: current, To: status}
	}

	orders[index].Status = status
	if err := s.saveOrders(ctx, orders); err != nil {
		return nil, err
	}

	return &orders[index], nil
}

// ListOrders filters, sorts, and paginates orders for the admin
// surface. Free-text search matches customer name, email, and order id;
// sortable by customer name or total; page size is fixed by config.
func (s *Service) ListOrders(ctx context.Context, req *ListOrdersRequest) (*ListOrdersResponse, error) {
	orders, err := s.loadOrders(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]Order, 0, len(orders))
	search := strings.ToLower(strings.TrimSpace(req.Search))
	for _, o := range orders {
		if req.Status != "" && o.Status != req.Status {
			continue
		}
		if search != "" && !matchesSearch(&o, search) {
			continue
		}
		filtered = append(filtered, o)
	}

	sortOrders(filtered, req.SortBy, req.SortOrder)

	perPage := s.config.Admin.OrdersPerPage
	total := len(filtered)
	totalPages := (total + perPage - 1) / perPage

	page := req.Page
	if page < 1 {
		page = 1
	}

	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	return &ListOrdersResponse{
		Orders: filtered[start:end],
		Pagination: Pagination{
			Page:       page,
			PerPage:    perPage,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}, nil
}

// Private helpers

func (s *Service) loadOrders(ctx context.Context) ([]Order, error) {
	data, err := s.store.Load(ctx, store.KeyOrders)
	if errors.Is(err, store.ErrNotFound) {
		return []Order{}, nil
	}
	if err != nil {
		return nil, err
	}

	var orders []Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, nil
}

func (s *Service) saveOrders(ctx context.Context, orders []Order) error {
	payload, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("failed to encode orders: %w", err)
	}
	return s.store.Save(ctx, store.KeyOrders, payload)
}

// generateOrderID returns an opaque globally unique order id. Clients
// must not parse it.
func generateOrderID() string {
	return "ORD-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
}

func matchesSearch(o *Order, search string) bool {
	return strings.Contains(strings.ToLower(o.CustomerInfo.Name), search) ||
		strings.Contains(strings.ToLower(o.CustomerInfo.Email), search) ||
		strings.Contains(strings.ToLower(o.ID), search)
}

func sortOrders(orders []Order, sortBy, sortOrder string) {
	desc := sortOrder == "desc"

	switch sortBy {
	case "customer":
		sort.SliceStable(orders, func(i, j int) bool {
			a := strings.ToLower(orders[i].CustomerInfo.Name)
			b := strings.ToLower(orders[j].CustomerInfo.Name)
			if desc {
				return a > b
			}
			return a < b
		})
	case "total":
		sort.SliceStable(orders, func(i, j int) bool {
			if desc {
				return orders[i].OrderSummary.Total.GreaterThan(orders[j].OrderSummary.Total)
			}
			return orders[i].OrderSummary.Total.LessThan(orders[j].OrderSummary.Total)
		})
	default:
		// newest first
		sort.SliceStable(orders, func(i, j int) bool {
			return orders[i].CreatedAt.After(orders[j].CreatedAt)
		})
	}
}
