// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// CatalogHandler handles product catalog endpoints
type CatalogHandler struct {
	products *catalog.Repository
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(products *catalog.Repository) *CatalogHandler {
	return &CatalogHandler{products: products}
}

// ListProducts handles GET /products
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	category := c.Query("category")

	var products []catalog.Product
	if category != "" {
		products = h.products.ListByCategory(category)
	} else {
		products = h.products.List()
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    products,
	})
}

// GetProduct handles GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.products.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}
