package reporting

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesSummary provides aggregated POS sales statistics for a period.
// Returned sales are excluded from all totals.
type SalesSummary struct {
	PeriodStart   time.Time       `json:"period_start"`
	PeriodEnd     time.Time       `json:"period_end"`
	SaleCount     int64           `json:"sale_count"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	AvgSaleValue  decimal.Decimal `json:"avg_sale_value"`
}

// StaffSales aggregates sales per cashier
type StaffSales struct {
	CashierID     uuid.UUID       `json:"cashier_id"`
	CashierName   string          `json:"cashier_name"`
	SaleCount     int64           `json:"sale_count"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// ProductSales aggregates sales per product
type ProductSales struct {
	ProductID     uuid.UUID       `json:"product_id"`
	Title         string          `json:"title"`
	SaleCount     int64           `json:"sale_count"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// PaymentBreakdown aggregates sales per payment method
type PaymentBreakdown struct {
	PaymentMethod string          `json:"payment_method"`
	SaleCount     int64           `json:"sale_count"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// ZReport is the end-of-day register report: totals, count and payment
// split for a single calendar day, plus the day's returns.
type ZReport struct {
	Date           time.Time          `json:"date"`
	SaleCount      int64              `json:"sale_count"`
	TotalQuantity  int64              `json:"total_quantity"`
	TotalAmount    decimal.Decimal    `json:"total_amount"`
	Payments       []PaymentBreakdown `json:"payments"`
	ReturnCount    int64              `json:"return_count"`
	ReturnedAmount decimal.Decimal    `json:"returned_amount"`
}

// PerformanceDashboard bundles the storefront performance widgets
type PerformanceDashboard struct {
	SalesByStaff     []StaffSales       `json:"sales_by_staff"`
	TopProducts      []ProductSales     `json:"top_products"`
	PaymentBreakdown []PaymentBreakdown `json:"payment_breakdown"`
}

// SalesReportFilter defines filtering options for sales reports
type SalesReportFilter struct {
	StartDate time.Time  `json:"start_date"`
	EndDate   time.Time  `json:"end_date"`
	CashierID *uuid.UUID `json:"cashier_id,omitempty"`
	TopN      int        `json:"top_n,omitempty"` // For rankings
}

// SalesReportRepository provides read-model queries over recorded sales.
// Aggregations run database-side.
type SalesReportRepository interface {
	GetSalesSummary(ctx context.Context, filter SalesReportFilter) (*SalesSummary, error)
	GetSalesByStaff(ctx context.Context, filter SalesReportFilter) ([]StaffSales, error)
	GetSalesByProduct(ctx context.Context, filter SalesReportFilter) ([]ProductSales, error)
	GetPaymentBreakdown(ctx context.Context, filter SalesReportFilter) ([]PaymentBreakdown, error)
	GetZReport(ctx context.Context, day time.Time) (*ZReport, error)
	GetBestSellingProducts(ctx context.Context, limit int) ([]ProductSales, error)
}
