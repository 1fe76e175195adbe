// internal/interfaces/http/handlers/order.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/order"
)

// OrderHandler handles customer-facing order endpoints
type OrderHandler struct {
	orderService *order.Service
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *order.Service) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// PlaceOrder handles POST /orders
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var info order.CustomerInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	placed, err := h.orderService.PlaceOrder(c.Request.Context(), info)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    placed,
	})
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	found, err := h.orderService.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    found,
	})
}
