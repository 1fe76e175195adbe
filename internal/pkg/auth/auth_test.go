// internal/pkg/auth/auth_test.go
package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "Storefront Backend"},
		JWT: config.JWTConfig{
			Secret:            "test-secret-key-that-is-long-enough!",
			AccessTokenExpiry: time.Hour,
		},
		Security: config.SecurityConfig{BcryptCost: 4},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	manager := NewJWTManager(testConfig())

	token, err := manager.GenerateAccessToken("admin@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "admin:admin@example.com", claims.Subject)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	manager := NewJWTManager(testConfig())

	token, err := manager.GenerateAccessToken("admin@example.com")
	require.NoError(t, err)

	otherCfg := testConfig()
	otherCfg.JWT.Secret = "a-different-secret-key-also-long-enough"
	_, err = NewJWTManager(otherCfg).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.AccessTokenExpiry = -time.Minute
	manager := NewJWTManager(cfg)

	token, err := manager.GenerateAccessToken("admin@example.com")
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "bearer token", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing scheme", header: "abc.def.ghi", want: ""},
		{name: "wrong scheme", header: "Basic abc", want: ""},
		{name: "empty header", header: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTokenFromHeader(tt.header))
		})
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	manager := NewPasswordManager(testConfig())

	hash, err := manager.HashPassword("correct horse battery")
	require.NoError(t, err)

	assert.NoError(t, manager.VerifyPassword("correct horse battery", hash))
	assert.Error(t, manager.VerifyPassword("wrong password", hash))
}

func TestHashPasswordTooShort(t *testing.T) {
	manager := NewPasswordManager(testConfig())

	_, err := manager.HashPassword("short")
	assert.Error(t, err)
}
