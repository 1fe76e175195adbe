// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
)

// AuthHandler handles admin authentication
type AuthHandler struct {
	config          *config.Config
	jwtManager      *auth.JWTManager
	passwordManager *auth.PasswordManager
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		config:          cfg,
		jwtManager:      auth.NewJWTManager(cfg),
		passwordManager: auth.NewPasswordManager(cfg),
	}
}

// LoginRequest represents the admin login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLogin handles POST /auth/admin/login
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if !strings.EqualFold(req.Email, h.config.Admin.Email) ||
		h.passwordManager.VerifyPassword(req.Password, h.config.Admin.PasswordHash) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid email or password",
		})
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(h.config.Admin.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate access token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data": gin.H{
			"access_token": token,
			"token_type":   "Bearer",
			"expires_in":   int(h.config.JWT.AccessTokenExpiry.Seconds()),
		},
	})
}
