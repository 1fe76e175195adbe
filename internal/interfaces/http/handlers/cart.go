// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService *cart.Service
	products    *catalog.Repository
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service, products *catalog.Repository) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		products:    products,
	}
}

// AddToCartRequest represents the add-to-cart payload
type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Size      string `json:"size"`
}

// UpdateQuantityRequest represents the quantity-update payload
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// ApplyCouponRequest represents the coupon application payload
type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	cartResponse, err := h.cartService.GetCart(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    cartResponse,
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.products.Get(req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}

	cartResponse, err := h.cartService.AddToCart(c.Request.Context(), product, req.Size)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    cartResponse,
	})
}

// UpdateCartItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	cartResponse, err := h.cartService.UpdateQuantity(c.Request.Context(), c.Param("id"), *req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    cartResponse,
	})
}

// RemoveCartItem handles DELETE /cart/items/:id
func (h *CartHandler) RemoveCartItem(c *gin.Context) {
	cartResponse, err := h.cartService.RemoveFromCart(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    cartResponse,
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.cartService.ClearCart(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}

// ApplyCoupon handles POST /cart/coupon
func (h *CartHandler) ApplyCoupon(c *gin.Context) {
	var req ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	cartResponse, err := h.cartService.ApplyCoupon(c.Request.Context(), req.Code)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Coupon applied successfully",
		"data":    cartResponse,
	})
}

// RemoveCoupon handles DELETE /cart/coupon
func (h *CartHandler) RemoveCoupon(c *gin.Context) {
	cartResponse, err := h.cartService.RemoveCoupon(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Coupon removed successfully",
		"data":    cartResponse,
	})
}
