package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Daninc24/myshop/internal/domain/inventory"
	"github.com/Daninc24/myshop/internal/domain/shared"
)

// GormInventoryLogRepository implements LogRepository using GORM.
// The table is append-only: no update or delete path exists.
type GormInventoryLogRepository struct {
	db *gorm.DB
}

// NewGormInventoryLogRepository creates a new GormInventoryLogRepository
func NewGormInventoryLogRepository(db *gorm.DB) *GormInventoryLogRepository {
	return &GormInventoryLogRepository{db: db}
}

// Append inserts one or more log entries
func (r *GormInventoryLogRepository) Append(ctx context.Context, logs ...*inventory.Log) error {
	if len(logs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(logs).Error
}

// FindByProduct finds log entries for a product
func (r *GormInventoryLogRepository) FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]inventory.Log, error) {
	var logs []inventory.Log
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&inventory.Log{}).Where("product_id = ?", productID),
		filter,
	)

	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// FindAll finds all log entries matching the filter
func (r *GormInventoryLogRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Log, error) {
	var logs []inventory.Log
	query := r.applyFilter(r.db.WithContext(ctx).Model(&inventory.Log{}), filter)

	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// SumDeltasByProduct sums the signed deltas recorded for a product.
// The sum reconciles against current stock minus initial stock.
func (r *GormInventoryLogRepository) SumDeltasByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	var sum int64
	if err := r.db.WithContext(ctx).
		Model(&inventory.Log{}).
		Where("product_id = ?", productID).
		Select("COALESCE(SUM(delta), 0)").
		Scan(&sum).Error; err != nil {
		return 0, err
	}
	return sum, nil
}

// Count counts log entries matching the filter
func (r *GormInventoryLogRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&inventory.Log{})
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormInventoryLogRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, CommonSortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormInventoryLogRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "product_id":
			query = query.Where("product_id = ?", value)
		case "reason":
			query = query.Where("reason = ?", value)
		case "user_id":
			query = query.Where("user_id = ?", value)
		case "from":
			query = query.Where("created_at >= ?", value)
		case "to":
			query = query.Where("created_at <= ?", value)
		}
	}

	return query
}

// Ensure GormInventoryLogRepository implements LogRepository
var _ inventory.LogRepository = (*GormInventoryLogRepository)(nil)
