package handler

import (
	"github.com/gin-gonic/gin"

	appordering "github.com/Daninc24/myshop/internal/application/ordering"
	"github.com/Daninc24/myshop/internal/domain/identity"
	"github.com/Daninc24/myshop/internal/interfaces/http/middleware"
)

// OrderHandler handles checkout order HTTP requests
type OrderHandler struct {
	BaseHandler
	orderService *appordering.OrderService
	authMW       gin.HandlerFunc
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *appordering.OrderService, authMW gin.HandlerFunc) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		authMW:       authMW,
	}
}

// Place creates a pending order for the authenticated user
func (h *OrderHandler) Place(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appordering.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	order, err := h.orderService.PlaceOrder(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, order)
}

// ListMine returns the authenticated user's own orders
func (h *OrderHandler) ListMine(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter appordering.OrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.orderService.ListMine(c.Request.Context(), userID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// ListAll returns orders across all users
func (h *OrderHandler) ListAll(c *gin.Context) {
	var filter appordering.OrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.orderService.ListAll(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Get returns one order. Customers only see their own orders.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	order, err := h.orderService.Get(c.Request.Context(), id, userID, identity.Role(getRole(c)))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// UpdateStatus writes a new status on the order
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	var req appordering.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// RegisterRoutes registers all order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders", h.authMW)
	{
		orders.POST("", h.Place)
		orders.GET("", h.ListMine)
		orders.GET("/:id", h.Get)

		processing := orders.Group("", middleware.RequireOrderProcessor())
		{
			processing.GET("/all", h.ListAll)
			processing.PUT("/:id/status", h.UpdateStatus)
		}
	}
}
