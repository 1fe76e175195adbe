// internal/interfaces/http/handlers/respond.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/coupon"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/infrastructure/store"
)

// respondError maps domain errors to HTTP status codes so every handler
// reports failures the same way.
func respondError(c *gin.Context, err error) {
	var validationErr *order.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Validation failed",
			"fields": validationErr.Fields,
		})
		return
	}

	var persistenceErr *store.PersistenceError
	if errors.As(err, &persistenceErr) {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Storage temporarily unavailable",
		})
		return
	}

	switch {
	case errors.Is(err, catalog.ErrProductNotFound),
		errors.Is(err, order.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, coupon.ErrInvalidCoupon),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, order.ErrEmptyCart),
		errors.Is(err, order.ErrInvalidTotal),
		isBadRequest(err):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func isBadRequest(err error) bool {
	var belowMin *coupon.BelowMinimumError
	var transition *order.InvalidTransitionError
	return errors.As(err, &belowMin) || errors.As(err, &transition)
}
