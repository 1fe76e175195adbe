// internal/interfaces/http/handlers/admin_order.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/order"
)

// AdminOrderHandler handles the administrative order surface
type AdminOrderHandler struct {
	orderService *order.Service
}

// NewAdminOrderHandler creates a new admin order handler
func NewAdminOrderHandler(orderService *order.Service) *AdminOrderHandler {
	return &AdminOrderHandler{orderService: orderService}
}

// UpdateStatusRequest represents the status update payload
type UpdateStatusRequest struct {
	Status order.OrderStatus `json:"status" binding:"required"`
}

// ListOrders handles GET /admin/orders
func (h *AdminOrderHandler) ListOrders(c *gin.Context) {
	var req order.ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	page, err := h.orderService.ListOrders(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data":    page,
	})
}

// UpdateOrderStatus handles PUT /admin/orders/:id/status
func (h *AdminOrderHandler) UpdateOrderStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	updated, err := h.orderService.UpdateOrderStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated successfully",
		"data":    updated,
	})
}
