package pos

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Daninc24/myshop/internal/domain/pos"
)

// SaleItemRequest is one requested line at the register
type SaleItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// CreateSaleRequest represents a sale recorded at the point of sale
type CreateSaleRequest struct {
	Items         []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	PaymentMethod string            `json:"payment_method" binding:"required,oneof=cash card mobile"`
}

// SaleItemResponse represents a sale line in API responses
type SaleItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Title     string          `json:"title"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleResponse represents a sale in API responses
type SaleResponse struct {
	ID            uuid.UUID          `json:"id"`
	CashierID     uuid.UUID          `json:"cashier_id"`
	CashierName   string             `json:"cashier_name"`
	Items         []SaleItemResponse `json:"items"`
	PaymentMethod string             `json:"payment_method"`
	Total         decimal.Decimal    `json:"total"`
	Status        string             `json:"status"`
	ReturnedAt    *time.Time         `json:"returned_at,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// SaleListFilter represents filter options for sale lists
type SaleListFilter struct {
	Status        string     `form:"status" binding:"omitempty,oneof=completed returned"`
	CashierID     *uuid.UUID `form:"cashier_id"`
	PaymentMethod string     `form:"payment_method" binding:"omitempty,oneof=cash card mobile"`
	From          *time.Time `form:"from" time_format:"2006-01-02"`
	To            *time.Time `form:"to" time_format:"2006-01-02"`
	Page          int        `form:"page" binding:"omitempty,min=1"`
	PageSize      int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy       string     `form:"order_by"`
	OrderDir      string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// SalesReportQuery represents the period and grouping options for reports
type SalesReportQuery struct {
	StartDate *time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"end_date" time_format:"2006-01-02"`
	CashierID *uuid.UUID `form:"cashier_id"`
	TopN      int        `form:"top_n" binding:"omitempty,min=1,max=100"`
}

// ZReportQuery selects the day for an end-of-day report
type ZReportQuery struct {
	Date *time.Time `form:"date" time_format:"2006-01-02"`
}

// ToSaleResponse converts a domain Sale to SaleResponse
func ToSaleResponse(s *pos.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, item := range s.Items {
		items[i] = SaleItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Title:     item.Title,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		}
	}
	return SaleResponse{
		ID:            s.ID,
		CashierID:     s.CashierID,
		CashierName:   s.CashierName,
		Items:         items,
		PaymentMethod: string(s.PaymentMethod),
		Total:         s.Total,
		Status:        string(s.Status),
		ReturnedAt:    s.ReturnedAt,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// ToSaleResponses converts a slice of domain Sales
func ToSaleResponses(sales []pos.Sale) []SaleResponse {
	responses := make([]SaleResponse, len(sales))
	for i := range sales {
		responses[i] = ToSaleResponse(&sales[i])
	}
	return responses
}
