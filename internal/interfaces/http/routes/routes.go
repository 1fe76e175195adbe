// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// Deps bundles the collaborators the route handlers need
type Deps struct {
	Config       *config.Config
	Products     *catalog.Repository
	CartService  *cart.Service
	OrderService *order.Service
}

// SetupRoutes wires every API route group
func SetupRoutes(rg *gin.RouterGroup, deps *Deps) {
	SetupAuthRoutes(rg, deps)
	SetupCatalogRoutes(rg, deps)
	SetupCartRoutes(rg, deps)
	SetupWishlistRoutes(rg, deps)
	SetupOrderRoutes(rg, deps)
	SetupAdminRoutes(rg, deps)
}

// SetupAuthRoutes sets up authentication related routes
func SetupAuthRoutes(rg *gin.RouterGroup, deps *Deps) {
	authHandler := handlers.NewAuthHandler(deps.Config)

	auth := rg.Group("/auth")
	{
		auth.POST("/admin/login", authHandler.AdminLogin)
	}
}

// SetupCatalogRoutes sets up product catalog routes
func SetupCatalogRoutes(rg *gin.RouterGroup, deps *Deps) {
	catalogHandler := handlers.NewCatalogHandler(deps.Products)

	products := rg.Group("/products")
	{
		products.GET("", catalogHandler.ListProducts)
		products.GET("/:id", catalogHandler.GetProduct)
	}
}

// SetupCartRoutes sets up cart related routes
func SetupCartRoutes(rg *gin.RouterGroup, deps *Deps) {
	cartHandler := handlers.NewCartHandler(deps.CartService, deps.Products)

	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.PUT("/items/:id", cartHandler.UpdateCartItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveCartItem)
		cartGroup.POST("/coupon", cartHandler.ApplyCoupon)
		cartGroup.DELETE("/coupon", cartHandler.RemoveCoupon)
	}
}

// SetupWishlistRoutes sets up wishlist related routes
func SetupWishlistRoutes(rg *gin.RouterGroup, deps *Deps) {
	wishlistHandler := handlers.NewWishlistHandler(deps.CartService, deps.Products)

	wishlist := rg.Group("/wishlist")
	{
		wishlist.GET("", wishlistHandler.GetWishlist)
		wishlist.POST("/toggle", wishlistHandler.ToggleWishlist)
	}
}

// SetupOrderRoutes sets up customer-facing order routes
func SetupOrderRoutes(rg *gin.RouterGroup, deps *Deps) {
	orderHandler := handlers.NewOrderHandler(deps.OrderService)

	orders := rg.Group("/orders")
	{
		orders.POST("", orderHandler.PlaceOrder)
		orders.GET("/:id", orderHandler.GetOrder)
	}
}

// SetupAdminRoutes sets up the administrative order surface
func SetupAdminRoutes(rg *gin.RouterGroup, deps *Deps) {
	adminOrderHandler := handlers.NewAdminOrderHandler(deps.OrderService)

	admin := rg.Group("/admin")
	admin.Use(middleware.AdminAuth(deps.Config))
	{
		admin.GET("/orders", adminOrderHandler.ListOrders)
		admin.PUT("/orders/:id/status", adminOrderHandler.UpdateOrderStatus)
	}
}
