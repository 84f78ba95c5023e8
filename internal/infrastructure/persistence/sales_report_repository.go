package persistence

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Daninc24/myshop/internal/domain/pos"
	"github.com/Daninc24/myshop/internal/domain/reporting"
)

// GormSalesReportRepository implements SalesReportRepository using GORM
type GormSalesReportRepository struct {
	db *gorm.DB
}

// NewGormSalesReportRepository creates a new GormSalesReportRepository
func NewGormSalesReportRepository(db *gorm.DB) *GormSalesReportRepository {
	return &GormSalesReportRepository{db: db}
}

// withSalePeriod narrows the query to the requested period. Unset bounds
// are skipped, so an empty filter covers all time.
func withSalePeriod(query *gorm.DB, filter reporting.SalesReportFilter) *gorm.DB {
	if !filter.StartDate.IsZero() {
		query = query.Where("s.created_at >= ?", filter.StartDate)
	}
	if !filter.EndDate.IsZero() {
		query = query.Where("s.created_at <= ?", filter.EndDate)
	}
	return query
}

// GetSalesSummary returns aggregated sales totals for the period.
// Returned sales are excluded.
func (r *GormSalesReportRepository) GetSalesSummary(ctx context.Context, filter reporting.SalesReportFilter) (*reporting.SalesSummary, error) {
	type summaryResult struct {
		SaleCount     int64
		TotalQuantity int64
		TotalAmount   decimal.Decimal
	}

	var result summaryResult

	query := r.db.WithContext(ctx).Table("sales s").
		Select(`
			COUNT(DISTINCT s.id) as sale_count,
			COALESCE(SUM(si.quantity), 0) as total_quantity,
			COALESCE(SUM(si.subtotal), 0) as total_amount
		`).
		Joins("LEFT JOIN sale_items si ON si.sale_id = s.id").
		Where("s.status = ?", pos.SaleStatusCompleted)
	query = withSalePeriod(query, filter)

	if filter.CashierID != nil {
		query = query.Where("s.cashier_id = ?", *filter.CashierID)
	}

	if err := query.Scan(&result).Error; err != nil {
		return nil, err
	}

	var avgSaleValue decimal.Decimal
	if result.SaleCount > 0 {
		avgSaleValue = result.TotalAmount.Div(decimal.NewFromInt(result.SaleCount))
	}

	return &reporting.SalesSummary{
		PeriodStart:   filter.StartDate,
		PeriodEnd:     filter.EndDate,
		SaleCount:     result.SaleCount,
		TotalQuantity: result.TotalQuantity,
		TotalAmount:   result.TotalAmount,
		AvgSaleValue:  avgSaleValue,
	}, nil
}

// GetSalesByStaff returns sales aggregated per cashier
func (r *GormSalesReportRepository) GetSalesByStaff(ctx context.Context, filter reporting.SalesReportFilter) ([]reporting.StaffSales, error) {
	var results []reporting.StaffSales

	query := r.db.WithContext(ctx).Table("sales s").
		Select(`
			s.cashier_id,
			s.cashier_name,
			COUNT(DISTINCT s.id) as sale_count,
			COALESCE(SUM(si.quantity), 0) as total_quantity,
			COALESCE(SUM(si.subtotal), 0) as total_amount
		`).
		Joins("LEFT JOIN sale_items si ON si.sale_id = s.id").
		Where("s.status = ?", pos.SaleStatusCompleted).
		Group("s.cashier_id, s.cashier_name").
		Order("total_amount DESC")
	query = withSalePeriod(query, filter)

	if err := query.Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetSalesByProduct returns sales aggregated per product
func (r *GormSalesReportRepository) GetSalesByProduct(ctx context.Context, filter reporting.SalesReportFilter) ([]reporting.ProductSales, error) {
	var results []reporting.ProductSales

	query := r.db.WithContext(ctx).Table("sale_items si").
		Select(`
			si.product_id,
			si.title,
			COUNT(DISTINCT si.sale_id) as sale_count,
			COALESCE(SUM(si.quantity), 0) as total_quantity,
			COALESCE(SUM(si.subtotal), 0) as total_amount
		`).
		Joins("JOIN sales s ON s.id = si.sale_id").
		Where("s.status = ?", pos.SaleStatusCompleted).
		Group("si.product_id, si.title").
		Order("total_quantity DESC")
	query = withSalePeriod(query, filter)

	if filter.CashierID != nil {
		query = query.Where("s.cashier_id = ?", *filter.CashierID)
	}
	if filter.TopN > 0 {
		query = query.Limit(filter.TopN)
	}

	if err := query.Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetPaymentBreakdown returns sales aggregated per payment method
func (r *GormSalesReportRepository) GetPaymentBreakdown(ctx context.Context, filter reporting.SalesReportFilter) ([]reporting.PaymentBreakdown, error) {
	var results []reporting.PaymentBreakdown

	query := r.db.WithContext(ctx).Table("sales s").
		Select(`
			s.payment_method,
			COUNT(s.id) as sale_count,
			COALESCE(SUM(s.total), 0) as total_amount
		`).
		Where("s.status = ?", pos.SaleStatusCompleted).
		Group("s.payment_method").
		Order("total_amount DESC")
	query = withSalePeriod(query, filter)

	if filter.CashierID != nil {
		query = query.Where("s.cashier_id = ?", *filter.CashierID)
	}

	if err := query.Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetZReport returns the end-of-day register report for a single calendar day
func (r *GormSalesReportRepository) GetZReport(ctx context.Context, day time.Time) (*reporting.ZReport, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)

	filter := reporting.SalesReportFilter{StartDate: dayStart, EndDate: dayEnd}

	summary, err := r.GetSalesSummary(ctx, filter)
	if err != nil {
		return nil, err
	}

	payments, err := r.GetPaymentBreakdown(ctx, filter)
	if err != nil {
		return nil, err
	}

	type returnResult struct {
		ReturnCount    int64
		ReturnedAmount decimal.Decimal
	}
	var returns returnResult
	if err := r.db.WithContext(ctx).Table("sales s").
		Select(`
			COUNT(s.id) as return_count,
			COALESCE(SUM(s.total), 0) as returned_amount
		`).
		Where("s.returned_at BETWEEN ? AND ?", dayStart, dayEnd).
		Where("s.status = ?", pos.SaleStatusReturned).
		Scan(&returns).Error; err != nil {
		return nil, err
	}

	return &reporting.ZReport{
		Date:           dayStart,
		SaleCount:      summary.SaleCount,
		TotalQuantity:  summary.TotalQuantity,
		TotalAmount:    summary.TotalAmount,
		Payments:       payments,
		ReturnCount:    returns.ReturnCount,
		ReturnedAmount: returns.ReturnedAmount,
	}, nil
}

// GetBestSellingProducts returns the top sellers across all time
func (r *GormSalesReportRepository) GetBestSellingProducts(ctx context.Context, limit int) ([]reporting.ProductSales, error) {
	if limit <= 0 {
		limit = 10
	}

	var results []reporting.ProductSales

	if err := r.db.WithContext(ctx).Table("sale_items si").
		Select(`
			si.product_id,
			si.title,
			COUNT(DISTINCT si.sale_id) as sale_count,
			COALESCE(SUM(si.quantity), 0) as total_quantity,
			COALESCE(SUM(si.subtotal), 0) as total_amount
		`).
		Joins("JOIN sales s ON s.id = si.sale_id").
		Where("s.status = ?", pos.SaleStatusCompleted).
		Group("si.product_id, si.title").
		Order("total_quantity DESC").
		Limit(limit).
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// Ensure GormSalesReportRepository implements SalesReportRepository
var _ reporting.SalesReportRepository = (*GormSalesReportRepository)(nil)
