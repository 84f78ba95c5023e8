package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appcatalog "github.com/Daninc24/myshop/internal/application/catalog"
	appinv "github.com/Daninc24/myshop/internal/application/inventory"
	"github.com/Daninc24/myshop/internal/interfaces/http/middleware"
)

const defaultBestSellingLimit = 10

// ProductHandler handles product catalog HTTP requests
type ProductHandler struct {
	BaseHandler
	productService *appcatalog.ProductService
	logService     *appinv.LogService
	authMW         gin.HandlerFunc
}

// NewProductHandler creates a new product handler
func NewProductHandler(
	productService *appcatalog.ProductService,
	logService *appinv.LogService,
	authMW gin.HandlerFunc,
) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logService:     logService,
		authMW:         authMW,
	}
}

// List returns products matching the query filters
func (h *ProductHandler) List(c *gin.Context) {
	var filter appcatalog.ProductListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.productService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Get returns a single product
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, product)
}

// BestSelling returns the top sellers ranked by units sold
func (h *ProductHandler) BestSelling(c *gin.Context) {
	limit := defaultBestSellingLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			h.BadRequest(c, "limit must be between 1 and 100")
			return
		}
		limit = parsed
	}

	products, err := h.productService.BestSelling(c.Request.Context(), limit)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, products)
}

// Create adds a new product to the catalog
func (h *ProductHandler) Create(c *gin.Context) {
	var req appcatalog.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	product, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, product)
}

// Update modifies product attributes. Stock is not writable here.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req appcatalog.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, product)
}

// Delete removes a product from the catalog
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// AdjustStock applies a signed manual stock adjustment with a log entry
func (h *ProductHandler) AdjustStock(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appcatalog.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	product, err := h.productService.AdjustStock(c.Request.Context(), id, userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, product)
}

// ListLogs returns the inventory audit trail for one product
func (h *ProductHandler) ListLogs(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var filter appinv.LogListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.logService.ListByProduct(c.Request.Context(), id, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// ListAllLogs returns the inventory audit trail across all products
func (h *ProductHandler) ListAllLogs(c *gin.Context) {
	var filter appinv.LogListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.logService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Reconcile checks a product's logged deltas against its current stock
func (h *ProductHandler) Reconcile(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	result, err := h.logService.Reconcile(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// RegisterRoutes registers all product routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.GET("", h.List)
		products.GET("/best-selling", h.BestSelling)
		products.GET("/:id", h.Get)

		admin := products.Group("", h.authMW, middleware.RequireAdmin())
		{
			admin.POST("", h.Create)
			admin.PUT("/:id", h.Update)
			admin.DELETE("/:id", h.Delete)
			admin.PUT("/:id/stock", h.AdjustStock)
			admin.GET("/:id/logs", h.ListLogs)
			admin.GET("/:id/logs/reconcile", h.Reconcile)
			admin.GET("/logs", h.ListAllLogs)
		}
	}
}
