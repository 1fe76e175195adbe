// internal/interfaces/http/handlers/wishlist.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// WishlistHandler handles wishlist endpoints
type WishlistHandler struct {
	cartService *cart.Service
	products    *catalog.Repository
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(cartService *cart.Service, products *catalog.Repository) *WishlistHandler {
	return &WishlistHandler{
		cartService: cartService,
		products:    products,
	}
}

// ToggleWishlistRequest represents the wishlist toggle payload
type ToggleWishlistRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Size      string `json:"size"`
}

// GetWishlist handles GET /wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	wishlistResponse, err := h.cartService.GetWishlist(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist retrieved successfully",
		"data":    wishlistResponse,
	})
}

// ToggleWishlist handles POST /wishlist/toggle
func (h *WishlistHandler) ToggleWishlist(c *gin.Context) {
	var req ToggleWishlistRequest
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

	wishlistResponse, err := h.cartService.ToggleWishlist(c.Request.Context(), product, req.Size)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist updated successfully",
		"data":    wishlistResponse,
	})
}
