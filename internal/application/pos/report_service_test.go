package pos

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Daninc24/myshop/internal/domain/reporting"
)

// MockSalesReportRepository is a mock implementation of SalesReportRepository
type MockSalesReportRepository struct {
	mock.Mock
}

func (m *MockSalesReportRepository) GetSalesSummary(ctx context.Context, filter reporting.SalesReportFilter) (*reporting.SalesSummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reporting.SalesSummary), args.Error(1)
}

func (m *MockSalesReportRepository) GetSalesByStaff(ctx context.Context, filter reporting.SalesReportFilter) ([]reporting.StaffSales, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]reporting.StaffSales), args.Error(1)
}

func (m *MockSalesReportRepository) GetSalesByProduct(ctx context.Context, filter reporting.SalesReportFilter) ([]reporting.ProductSales, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]reporting.ProductSales), args.Error(1)
}

func (m *MockSalesReportRepository) GetPaymentBreakdown(ctx context.Context, filter reporting.SalesReportFilter) ([]reporting.PaymentBreakdown, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]reporting.PaymentBreakdown), args.Error(1)
}

func (m *MockSalesReportRepository) GetZReport(ctx context.Context, day time.Time) (*reporting.ZReport, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reporting.ZReport), args.Error(1)
}

func (m *MockSalesReportRepository) GetBestSellingProducts(ctx context.Context, limit int) ([]reporting.ProductSales, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]reporting.ProductSales), args.Error(1)
}

func TestReportService_Summary(t *testing.T) {
	reportRepo := new(MockSalesReportRepository)
	service := NewReportService(reportRepo, zap.NewNop())

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	summary := &reporting.SalesSummary{
		PeriodStart: start,
		PeriodEnd:   end,
		SaleCount:   42,
		TotalAmount: decimal.NewFromInt(1234),
	}
	reportRepo.On("GetSalesSummary", mock.Anything, mock.MatchedBy(func(f reporting.SalesReportFilter) bool {
		return f.StartDate.Equal(start) && f.EndDate.Equal(end) && f.TopN == defaultTopN
	})).Return(summary, nil)

	result, err := service.Summary(context.Background(), SalesReportQuery{StartDate: &start, EndDate: &end})

	require.NoError(t, err)
	assert.Equal(t, summary, result)
	reportRepo.AssertExpectations(t)
}

func TestReportService_ZReport(t *testing.T) {
	t.Run("uses the given day", func(t *testing.T) {
		reportRepo := new(MockSalesReportRepository)
		service := NewReportService(reportRepo, zap.NewNop())

		day := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
		report := &reporting.ZReport{Date: day, SaleCount: 7}
		reportRepo.On("GetZReport", mock.Anything, day).Return(report, nil)

		result, err := service.ZReport(context.Background(), ZReportQuery{Date: &day})

		require.NoError(t, err)
		assert.Equal(t, int64(7), result.SaleCount)
	})

	t.Run("defaults to today", func(t *testing.T) {
		reportRepo := new(MockSalesReportRepository)
		service := NewReportService(reportRepo, zap.NewNop())

		reportRepo.On("GetZReport", mock.Anything, mock.MatchedBy(func(day time.Time) bool {
			return time.Since(day) < time.Minute
		})).Return(&reporting.ZReport{}, nil)

		_, err := service.ZReport(context.Background(), ZReportQuery{})

		require.NoError(t, err)
		reportRepo.AssertExpectations(t)
	})
}

func TestReportService_PerformanceDashboard(t *testing.T) {
	reportRepo := new(MockSalesReportRepository)
	service := NewReportService(reportRepo, zap.NewNop())

	byStaff := []reporting.StaffSales{{CashierID: uuid.New(), CashierName: "Ana", SaleCount: 12}}
	topProducts := []reporting.ProductSales{{ProductID: uuid.New(), Title: "Coffee Beans", TotalQuantity: 80}}
	payments := []reporting.PaymentBreakdown{{PaymentMethod: "cash", SaleCount: 9}}

	reportRepo.On("GetSalesByStaff", mock.Anything, mock.Anything).Return(byStaff, nil)
	reportRepo.On("GetSalesByProduct", mock.Anything, mock.Anything).Return(topProducts, nil)
	reportRepo.On("GetPaymentBreakdown", mock.Anything, mock.Anything).Return(payments, nil)

	dashboard, err := service.PerformanceDashboard(context.Background(), SalesReportQuery{})

	require.NoError(t, err)
	assert.Equal(t, byStaff, dashboard.SalesByStaff)
	assert.Equal(t, topProducts, dashboard.TopProducts)
	assert.Equal(t, payments, dashboard.PaymentBreakdown)
	reportRepo.AssertExpectations(t)
}
