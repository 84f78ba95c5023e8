package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	appidentity "github.com/Daninc24/myshop/internal/application/identity"
	"github.com/Daninc24/myshop/internal/infrastructure/auth"
	"github.com/Daninc24/myshop/internal/interfaces/http/dto"
	"github.com/Daninc24/myshop/internal/interfaces/http/middleware"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	BaseHandler
	authService *appidentity.AuthService
	authMW      gin.HandlerFunc
	publicMW    []gin.HandlerFunc
}

// NewAuthHandler creates a new auth handler. Extra middleware, such as a
// stricter rate limit, is applied to the public credential endpoints only.
func NewAuthHandler(authService *appidentity.AuthService, authMW gin.HandlerFunc, publicMW ...gin.HandlerFunc) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		authMW:      authMW,
		publicMW:    publicMW,
	}
}

// Register creates a new account with the default customer role
func (h *AuthHandler) Register(c *gin.Context) {
	var req appidentity.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, result)
}

// Login exchanges credentials for a token pair
func (h *AuthHandler) Login(c *gin.Context) {
	var req appidentity.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Refresh rotates a refresh token into a fresh token pair
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req appidentity.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	tokens, err := h.authService.Refresh(c.Request.Context(), req)
	if err != nil {
		h.handleTokenError(c, err)
		return
	}

	h.Success(c, tokens)
}

// Logout blacklists the current access token
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.authService.Logout(c.Request.Context(), claims); err != nil {
		h.InternalError(c, "Failed to log out")
		return
	}

	h.Success(c, gin.H{"message": "Logged out"})
}

// Me returns the authenticated user's profile
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	user, err := h.authService.Me(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, user)
}

// ChangePassword changes the authenticated user's password and invalidates
// previously issued tokens
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appidentity.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), userID, req); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Password changed"})
}

func (h *AuthHandler) handleTokenError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		h.Error(c, http.StatusUnauthorized, dto.ErrCodeTokenExpired, "Token has expired")
	case errors.Is(err, auth.ErrTokenBlacklisted):
		h.Error(c, http.StatusUnauthorized, dto.ErrCodeTokenInvalid, "Token has been revoked")
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrInvalidTokenType),
		errors.Is(err, auth.ErrInvalidClaims):
		h.Error(c, http.StatusUnauthorized, dto.ErrCodeTokenInvalid, "Invalid token")
	default:
		h.HandleDomainError(c, err)
	}
}

// RegisterRoutes registers all auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		public := authGroup.Group("", h.publicMW...)
		{
			public.POST("/register", h.Register)
			public.POST("/login", h.Login)
			public.POST("/refresh", h.Refresh)
		}

		protected := authGroup.Group("", h.authMW)
		{
			protected.POST("/logout", h.Logout)
			protected.GET("/me", h.Me)
			protected.PUT("/password", h.ChangePassword)
		}
	}
}
