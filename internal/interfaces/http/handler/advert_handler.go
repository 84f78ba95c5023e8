package handler

import (
	"github.com/gin-gonic/gin"

	appadvert "github.com/Daninc24/myshop/internal/application/advert"
	"github.com/Daninc24/myshop/internal/interfaces/http/middleware"
)

// AdvertHandler handles advert HTTP requests
type AdvertHandler struct {
	BaseHandler
	advertService *appadvert.AdvertService
	authMW        gin.HandlerFunc
}

// NewAdvertHandler creates a new advert handler
func NewAdvertHandler(advertService *appadvert.AdvertService, authMW gin.HandlerFunc) *AdvertHandler {
	return &AdvertHandler{
		advertService: advertService,
		authMW:        authMW,
	}
}

// ListActive returns adverts whose display window covers the current time
func (h *AdvertHandler) ListActive(c *gin.Context) {
	adverts, err := h.advertService.ListActive(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, adverts)
}

// List returns adverts matching the query filters
func (h *AdvertHandler) List(c *gin.Context) {
	var filter appadvert.AdvertListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.advertService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Get returns a single advert
func (h *AdvertHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid advert ID")
		return
	}

	advert, err := h.advertService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, advert)
}

// Create adds a new advert
func (h *AdvertHandler) Create(c *gin.Context) {
	var req appadvert.CreateAdvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	advert, err := h.advertService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, advert)
}

// Update modifies an advert
func (h *AdvertHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid advert ID")
		return
	}

	var req appadvert.UpdateAdvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	advert, err := h.advertService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, advert)
}

// Delete removes an advert
func (h *AdvertHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid advert ID")
		return
	}

	if err := h.advertService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers all advert routes
func (h *AdvertHandler) RegisterRoutes(rg *gin.RouterGroup) {
	adverts := rg.Group("/adverts")
	{
		adverts.GET("/active", h.ListActive)

		admin := adverts.Group("", h.authMW, middleware.RequireAdmin())
		{
			admin.GET("", h.List)
			admin.GET("/:id", h.Get)
			admin.POST("", h.Create)
			admin.PUT("/:id", h.Update)
			admin.DELETE("/:id", h.Delete)
		}
	}
}
