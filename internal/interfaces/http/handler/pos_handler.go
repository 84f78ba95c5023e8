package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apppos "github.com/Daninc24/myshop/internal/application/pos"
	"github.com/Daninc24/myshop/internal/interfaces/http/middleware"
)

// POSHandler handles point-of-sale HTTP requests
type POSHandler struct {
	BaseHandler
	saleService   *apppos.SaleService
	reportService *apppos.ReportService
	authMW        gin.HandlerFunc
}

// NewPOSHandler creates a new POS handler
func NewPOSHandler(
	saleService *apppos.SaleService,
	reportService *apppos.ReportService,
	authMW gin.HandlerFunc,
) *POSHandler {
	return &POSHandler{
		saleService:   saleService,
		reportService: reportService,
		authMW:        authMW,
	}
}

// ReturnSaleRequest identifies the sale to reverse
type ReturnSaleRequest struct {
	SaleID uuid.UUID `json:"sale_id" binding:"required"`
}

// CreateSale records a completed in-person sale
func (h *POSHandler) CreateSale(c *gin.Context) {
	cashierID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req apppos.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), cashierID, middleware.GetJWTName(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, sale)
}

// ReturnSale reverses a prior sale, restocking every line
func (h *POSHandler) ReturnSale(c *gin.Context) {
	requesterID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req ReturnSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	sale, err := h.saleService.ReturnSale(c.Request.Context(), req.SaleID, requesterID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, sale)
}

// ListSales returns sales matching the query filters
func (h *POSHandler) ListSales(c *gin.Context) {
	var filter apppos.SaleListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.saleService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetSale returns a single sale
func (h *POSHandler) GetSale(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, sale)
}

// Summary returns aggregate sale totals over a period
func (h *POSHandler) Summary(c *gin.Context) {
	var query apppos.SalesReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.ValidationError(c, err)
		return
	}

	summary, err := h.reportService.Summary(c.Request.Context(), query)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, summary)
}

// ByStaff returns per-cashier sale totals
func (h *POSHandler) ByStaff(c *gin.Context) {
	var query apppos.SalesReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.ValidationError(c, err)
		return
	}

	rows, err := h.reportService.ByStaff(c.Request.Context(), query)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, rows)
}

// ByProduct returns per-product sale totals
func (h *POSHandler) ByProduct(c *gin.Context) {
	var query apppos.SalesReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.ValidationError(c, err)
		return
	}

	rows, err := h.reportService.ByProduct(c.Request.Context(), query)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, rows)
}

// ByPayment returns the payment method split
func (h *POSHandler) ByPayment(c *gin.Context) {
	var query apppos.SalesReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.ValidationError(c, err)
		return
	}

	rows, err := h.reportService.ByPayment(c.Request.Context(), query)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, rows)
}

// ZReport returns the end-of-day report for one calendar day
func (h *POSHandler) ZReport(c *gin.Context) {
	var query apppos.ZReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.ValidationError(c, err)
		return
	}

	report, err := h.reportService.ZReport(c.Request.Context(), query)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, report)
}

// PerformanceDashboard returns staff totals, top products and the payment split
func (h *POSHandler) PerformanceDashboard(c *gin.Context) {
	var query apppos.SalesReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.ValidationError(c, err)
		return
	}

	dashboard, err := h.reportService.PerformanceDashboard(c.Request.Context(), query)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, dashboard)
}

// RegisterRoutes registers all POS routes
func (h *POSHandler) RegisterRoutes(rg *gin.RouterGroup) {
	posGroup := rg.Group("/pos")
	{
		posGroup.GET("/z-report", h.ZReport)
		posGroup.GET("/performance-dashboard", h.PerformanceDashboard)

		sales := posGroup.Group("/sales", h.authMW)
		{
			sales.POST("", h.CreateSale)
			sales.POST("/return", h.ReturnSale)

			reporting := sales.Group("", middleware.RequirePOSAccess())
			{
				reporting.GET("", h.ListSales)
				reporting.GET("/summary", h.Summary)
				reporting.GET("/by-shopkeeper", h.ByStaff)
				reporting.GET("/by-product", h.ByProduct)
				reporting.GET("/by-payment-method", h.ByPayment)
				reporting.GET("/:id", h.GetSale)
			}
		}
	}
}
