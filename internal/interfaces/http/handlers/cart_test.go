// internal/interfaces/http/handlers/cart_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/coupon"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/infrastructure/store"
)

func testConfig() *config.Config {
	return &config.Config{
		Pricing: config.PricingConfig{
			FreeShippingThreshold: decimal.NewFromInt(150),
			FlatShippingFee:       decimal.NewFromInt(50),
		},
		Admin: config.AdminConfig{OrdersPerPage: 7},
	}
}

func newTestRouter(t *testing.T) (*gin.Engine, *store.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewMemoryStore()
	cfg := testConfig()
	products := catalog.NewSeededRepository()
	cartService := cart.NewService(st, coupon.DefaultTable(), cfg)
	orderService := order.NewService(st, cartService, cfg)

	cartHandler := NewCartHandler(cartService, products)
	orderHandler := NewOrderHandler(orderService)

	r := gin.New()
	r.GET("/cart", cartHandler.GetCart)
	r.POST("/cart/items", cartHandler.AddToCart)
	r.PUT("/cart/items/:id", cartHandler.UpdateCartItem)
	r.DELETE("/cart/items/:id", cartHandler.RemoveCartItem)
	r.POST("/cart/coupon", cartHandler.ApplyCoupon)
	r.POST("/orders", orderHandler.PlaceOrder)
	return r, st
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddToCartEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"product_id": "1"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data cart.CartResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Items, 1)
	assert.Equal(t, "1", resp.Data.Items[0].ProductID)
	require.NotNil(t, resp.Data.Notice)
	assert.Equal(t, "Added to cart", resp.Data.Notice.Message)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"product_id": "does-not-exist"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddToCartMissingProductID(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/cart/items", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCartItemNegativeQuantity(t *testing.T) {
	r, _ := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"product_id": "1"})

	w := doJSON(t, r, http.MethodPut, "/cart/items/1", gin.H{"quantity": -2})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApplyCouponEndpointInvalidCode(t *testing.T) {
	r, _ := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"product_id": "1"})

	w := doJSON(t, r, http.MethodPost, "/cart/coupon", gin.H{"code": "BOGUS99"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlaceOrderEndpointValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"product_id": "1"})

	w := doJSON(t, r, http.MethodPost, "/orders", gin.H{
		"name":        "A",
		"email":       "bad",
		"phone":       "123",
		"address":     "short",
		"city":        "X1",
		"postal_code": "9",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	for _, field := range []string{"name", "email", "phone", "address", "city", "postal_code"} {
		assert.Contains(t, resp.Fields, field)
	}
}

func TestPlaceOrderEndpointEmptyCart(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/orders", gin.H{
		"name":        "Asha Verma",
		"email":       "asha@example.com",
		"phone":       "9876543210",
		"address":     "12 Market Street, Sector 4",
		"city":        "Pune",
		"postal_code": "411001",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlaceOrderEndpointStorageFailure(t *testing.T) {
	r, st := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"product_id": "1"})

	st.FailWrites = true
	w := doJSON(t, r, http.MethodPost, "/orders", gin.H{
		"name":        "Asha Verma",
		"email":       "asha@example.com",
		"phone":       "9876543210",
		"address":     "12 Market Street, Sector 4",
		"city":        "Pune",
		"postal_code": "411001",
	})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
