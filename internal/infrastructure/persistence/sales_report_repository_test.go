package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Daninc24/myshop/internal/domain/pos"
	"github.com/Daninc24/myshop/internal/domain/reporting"
)

// newMockReportRepository creates a GormSalesReportRepository with a mocked SQL connection
func newMockReportRepository(t *testing.T) (*GormSalesReportRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormSalesReportRepository(gormDB), mock, mockDB
}

func TestGormSalesReportRepository_GetSalesSummary(t *testing.T) {
	t.Run("covers all time when no dates are given", func(t *testing.T) {
		repo, mock, mockDB := newMockReportRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"sale_count", "total_quantity", "total_amount"}).
			AddRow(3, 7, decimal.NewFromInt(90))

		// Only the status predicate; an omitted period must not narrow the query
		mock.ExpectQuery(`(?s)SELECT.*FROM sales s LEFT JOIN sale_items si ON si\.sale_id = s\.id WHERE s\.status = \$1`).
			WithArgs(string(pos.SaleStatusCompleted)).
			WillReturnRows(rows)

		summary, err := repo.GetSalesSummary(context.Background(), reporting.SalesReportFilter{})

		require.NoError(t, err)
		assert.Equal(t, int64(3), summary.SaleCount)
		assert.Equal(t, int64(7), summary.TotalQuantity)
		assert.True(t, summary.TotalAmount.Equal(decimal.NewFromInt(90)))
		assert.True(t, summary.AvgSaleValue.Equal(decimal.NewFromInt(30)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("applies both bounds when the period is set", func(t *testing.T) {
		repo, mock, mockDB := newMockReportRepository(t)
		defer mockDB.Close()

		start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)

		rows := sqlmock.NewRows([]string{"sale_count", "total_quantity", "total_amount"}).
			AddRow(1, 2, decimal.NewFromInt(24))

		mock.ExpectQuery(`(?s)SELECT.*FROM sales s LEFT JOIN sale_items si ON si\.sale_id = s\.id WHERE s\.status = \$1 AND s\.created_at >= \$2 AND s\.created_at <= \$3`).
			WithArgs(string(pos.SaleStatusCompleted), start, end).
			WillReturnRows(rows)

		summary, err := repo.GetSalesSummary(context.Background(), reporting.SalesReportFilter{
			StartDate: start,
			EndDate:   end,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(1), summary.SaleCount)
		assert.Equal(t, start, summary.PeriodStart)
		assert.Equal(t, end, summary.PeriodEnd)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero sales yield a zero average", func(t *testing.T) {
		repo, mock, mockDB := newMockReportRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"sale_count", "total_quantity", "total_amount"}).
			AddRow(0, 0, decimal.Zero)

		mock.ExpectQuery(`(?s)SELECT.*FROM sales s`).
			WithArgs(string(pos.SaleStatusCompleted)).
			WillReturnRows(rows)

		summary, err := repo.GetSalesSummary(context.Background(), reporting.SalesReportFilter{})

		require.NoError(t, err)
		assert.Equal(t, int64(0), summary.SaleCount)
		assert.True(t, summary.AvgSaleValue.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSalesReportRepository_GetSalesByStaff(t *testing.T) {
	t.Run("omitted dates aggregate across all sales", func(t *testing.T) {
		repo, mock, mockDB := newMockReportRepository(t)
		defer mockDB.Close()

		anaID := uuid.New()
		benID := uuid.New()
		rows := sqlmock.NewRows([]string{"cashier_id", "cashier_name", "sale_count", "total_quantity", "total_amount"}).
			AddRow(anaID, "Ana", 5, 12, decimal.NewFromInt(140)).
			AddRow(benID, "Ben", 2, 3, decimal.NewFromInt(36))

		mock.ExpectQuery(`(?s)SELECT.*FROM sales s LEFT JOIN sale_items si ON si\.sale_id = s\.id WHERE s\.status = \$1 GROUP BY s\.cashier_id, s\.cashier_name`).
			WithArgs(string(pos.SaleStatusCompleted)).
			WillReturnRows(rows)

		results, err := repo.GetSalesByStaff(context.Background(), reporting.SalesReportFilter{})

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, anaID, results[0].CashierID)
		assert.Equal(t, int64(5), results[0].SaleCount)
		assert.True(t, results[0].TotalAmount.Equal(decimal.NewFromInt(140)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSalesReportRepository_GetPaymentBreakdown(t *testing.T) {
	t.Run("applies both bounds when the period is set", func(t *testing.T) {
		repo, mock, mockDB := newMockReportRepository(t)
		defer mockDB.Close()

		start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)

		rows := sqlmock.NewRows([]string{"payment_method", "sale_count", "total_amount"}).
			AddRow("cash", 4, decimal.NewFromInt(110)).
			AddRow("card", 1, decimal.NewFromInt(30))

		mock.ExpectQuery(`(?s)SELECT.*FROM sales s WHERE s\.status = \$1 AND s\.created_at >= \$2 AND s\.created_at <= \$3 GROUP BY s\.payment_method`).
			WithArgs(string(pos.SaleStatusCompleted), start, end).
			WillReturnRows(rows)

		results, err := repo.GetPaymentBreakdown(context.Background(), reporting.SalesReportFilter{
			StartDate: start,
			EndDate:   end,
		})

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "cash", results[0].PaymentMethod)
		assert.Equal(t, int64(4), results[0].SaleCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("omitted dates aggregate across all sales", func(t *testing.T) {
		repo, mock, mockDB := newMockReportRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"payment_method", "sale_count", "total_amount"}).
			AddRow("cash", 9, decimal.NewFromInt(250))

		mock.ExpectQuery(`(?s)SELECT.*FROM sales s WHERE s\.status = \$1 GROUP BY s\.payment_method`).
			WithArgs(string(pos.SaleStatusCompleted)).
			WillReturnRows(rows)

		results, err := repo.GetPaymentBreakdown(context.Background(), reporting.SalesReportFilter{})

		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, int64(9), results[0].SaleCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
