package pos

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Daninc24/myshop/internal/domain/reporting"
)

const defaultTopN = 10

// ReportService produces sales reports from the settled sale records
type ReportService struct {
	reportRepo reporting.SalesReportRepository
	logger     *zap.Logger
}

// NewReportService creates a new ReportService
func NewReportService(reportRepo reporting.SalesReportRepository, logger *zap.Logger) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// Summary returns aggregate totals for the period. Returned sales are
// excluded from every figure.
func (s *ReportService) Summary(ctx context.Context, query SalesReportQuery) (*reporting.SalesSummary, error) {
	return s.reportRepo.GetSalesSummary(ctx, toReportFilter(query))
}

// ByStaff returns per-cashier totals for the period
func (s *ReportService) ByStaff(ctx context.Context, query SalesReportQuery) ([]reporting.StaffSales, error) {
	return s.reportRepo.GetSalesByStaff(ctx, toReportFilter(query))
}

// ByProduct returns per-product totals for the period
func (s *ReportService) ByProduct(ctx context.Context, query SalesReportQuery) ([]reporting.ProductSales, error) {
	return s.reportRepo.GetSalesByProduct(ctx, toReportFilter(query))
}

// ByPayment returns the payment method split for the period
func (s *ReportService) ByPayment(ctx context.Context, query SalesReportQuery) ([]reporting.PaymentBreakdown, error) {
	return s.reportRepo.GetPaymentBreakdown(ctx, toReportFilter(query))
}

// ZReport returns the end-of-day report for one calendar day.
// With no date given it covers today.
func (s *ReportService) ZReport(ctx context.Context, query ZReportQuery) (*reporting.ZReport, error) {
	day := time.Now()
	if query.Date != nil {
		day = *query.Date
	}
	return s.reportRepo.GetZReport(ctx, day)
}

// PerformanceDashboard composes staff totals, top products and the payment
// split into one view
func (s *ReportService) PerformanceDashboard(ctx context.Context, query SalesReportQuery) (*reporting.PerformanceDashboard, error) {
	filter := toReportFilter(query)

	byStaff, err := s.reportRepo.GetSalesByStaff(ctx, filter)
	if err != nil {
		return nil, err
	}

	topProducts, err := s.reportRepo.GetSalesByProduct(ctx, filter)
	if err != nil {
		return nil, err
	}

	payments, err := s.reportRepo.GetPaymentBreakdown(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &reporting.PerformanceDashboard{
		SalesByStaff:     byStaff,
		TopProducts:      topProducts,
		PaymentBreakdown: payments,
	}, nil
}

func toReportFilter(query SalesReportQuery) reporting.SalesReportFilter {
	filter := reporting.SalesReportFilter{
		CashierID: query.CashierID,
		TopN:      query.TopN,
	}
	if filter.TopN <= 0 {
		filter.TopN = defaultTopN
	}
	if query.StartDate != nil {
		filter.StartDate = *query.StartDate
	}
	if query.EndDate != nil {
		filter.EndDate = *query.EndDate
	}
	return filter
}
