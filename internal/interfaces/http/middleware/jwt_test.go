package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Daninc24/myshop/internal/infrastructure/auth"
	"github.com/Daninc24/myshop/internal/infrastructure/config"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "middleware-test-secret",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "myshop-test",
	})
}

func newTestRouter(cfg JWTMiddlewareConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(JWTAuthMiddlewareWithConfig(cfg))
	router.GET("/api/v1/products", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": GetJWTRole(c)})
	})
	router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func issueToken(t *testing.T, jwtService *auth.JWTService, role string) string {
	pair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID: uuid.New(),
		Name:   "Test User",
		Role:   role,
	})
	require.NoError(t, err)
	return pair.AccessToken
}

func TestJWTAuthMiddleware(t *testing.T) {
	jwtService := newTestJWTService()

	t.Run("valid token passes and claims land in context", func(t *testing.T) {
		router := newTestRouter(JWTMiddlewareConfig{JWTService: jwtService})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+issueToken(t, jwtService, "cashier"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "cashier")
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		router := newTestRouter(JWTMiddlewareConfig{JWTService: jwtService})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		router := newTestRouter(JWTMiddlewareConfig{JWTService: jwtService})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+"garbage")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("skip paths bypass authentication", func(t *testing.T) {
		cfg := JWTMiddlewareConfig{JWTService: jwtService, SkipPaths: []string{"/health"}}
		router := newTestRouter(cfg)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("blacklisted token is rejected", func(t *testing.T) {
		blacklist := auth.NewInMemoryTokenBlacklist()
		cfg := JWTMiddlewareConfig{JWTService: jwtService, TokenBlacklist: blacklist}
		router := newTestRouter(cfg)

		token := issueToken(t, jwtService, "user")
		claims, err := jwtService.ValidateAccessToken(token)
		require.NoError(t, err)
		require.NoError(t, blacklist.AddToBlacklist(context.Background(), claims.ID, time.Hour))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRoleMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService := newTestJWTService()

	newRoleRouter := func(guard gin.HandlerFunc) *gin.Engine {
		router := gin.New()
		router.Use(JWTAuthMiddlewareWithConfig(JWTMiddlewareConfig{JWTService: jwtService}))
		router.GET("/guarded", guard, func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return router
	}

	request := func(router *gin.Engine, role string) int {
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+issueToken(t, jwtService, role))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("admin gate", func(t *testing.T) {
		router := newRoleRouter(RequireAdmin())
		assert.Equal(t, http.StatusOK, request(router, "admin"))
		assert.Equal(t, http.StatusForbidden, request(router, "user"))
		assert.Equal(t, http.StatusForbidden, request(router, "cashier"))
	})

	t.Run("order processor gate", func(t *testing.T) {
		router := newRoleRouter(RequireOrderProcessor())
		assert.Equal(t, http.StatusOK, request(router, "cashier"))
		assert.Equal(t, http.StatusOK, request(router, "manager"))
		assert.Equal(t, http.StatusForbidden, request(router, "user"))
		assert.Equal(t, http.StatusForbidden, request(router, "shopkeeper"))
	})

	t.Run("pos access gate", func(t *testing.T) {
		router := newRoleRouter(RequirePOSAccess())
		assert.Equal(t, http.StatusOK, request(router, "shopkeeper"))
		assert.Equal(t, http.StatusOK, request(router, "staff"))
		assert.Equal(t, http.StatusForbidden, request(router, "user"))
		assert.Equal(t, http.StatusForbidden, request(router, "delivery"))
	})
}
