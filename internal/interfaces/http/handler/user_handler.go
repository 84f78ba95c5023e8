package handler

import (
	"github.com/gin-gonic/gin"

	appidentity "github.com/Daninc24/myshop/internal/application/identity"
	"github.com/Daninc24/myshop/internal/interfaces/http/middleware"
)

// UserHandler handles administrative user management HTTP requests
type UserHandler struct {
	BaseHandler
	userService *appidentity.UserService
	authMW      gin.HandlerFunc
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *appidentity.UserService, authMW gin.HandlerFunc) *UserHandler {
	return &UserHandler{
		userService: userService,
		authMW:      authMW,
	}
}

// List returns users matching the query filters
func (h *UserHandler) List(c *gin.Context) {
	var filter appidentity.UserListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.userService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Get returns a single user
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, user)
}

// Update modifies a user's name, role or salary
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req appidentity.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	user, err := h.userService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, user)
}

// Delete removes a user. Admins cannot delete their own account.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	requesterID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id, requesterID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers all user management routes
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users", h.authMW, middleware.RequireAdmin())
	{
		users.GET("", h.List)
		users.GET("/:id", h.Get)
		users.PUT("/:id", h.Update)
		users.DELETE("/:id", h.Delete)
	}
}
