package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Daninc24/myshop/internal/domain/pos"
	"github.com/Daninc24/myshop/internal/domain/shared"
	"github.com/Daninc24/myshop/internal/infrastructure/persistence/models"
)

// GormSaleRepository implements SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// FindByID finds a sale with its line items
func (r *GormSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*pos.Sale, error) {
	var model models.SaleModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all sales matching the filter
func (r *GormSaleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]pos.Sale, error) {
	var saleModels []models.SaleModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.SaleModel{}).Preload("Items"), filter)

	if err := query.Find(&saleModels).Error; err != nil {
		return nil, err
	}
	return toDomainSales(saleModels), nil
}

// FindByCashier finds sales recorded by the given cashier
func (r *GormSaleRepository) FindByCashier(ctx context.Context, cashierID uuid.UUID, filter shared.Filter) ([]pos.Sale, error) {
	var saleModels []models.SaleModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.SaleModel{}).
			Preload("Items").
			Where("cashier_id = ?", cashierID),
		filter,
	)

	if err := query.Find(&saleModels).Error; err != nil {
		return nil, err
	}
	return toDomainSales(saleModels), nil
}

// Save creates or updates a sale and replaces its line items
func (r *GormSaleRepository) Save(ctx context.Context, sale *pos.Sale) error {
	model := models.SaleModelFromDomain(sale)
	return r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Save(model).Error
}

// Count counts sales matching the filter
func (r *GormSaleRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.SaleModel{})
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormSaleRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, SaleSortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormSaleRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "cashier_id":
			query = query.Where("cashier_id = ?", value)
		case "payment_method":
			query = query.Where("payment_method = ?", value)
		case "from":
			query = query.Where("created_at >= ?", value)
		case "to":
			query = query.Where("created_at <= ?", value)
		}
	}

	return query
}

func toDomainSales(saleModels []models.SaleModel) []pos.Sale {
	sales := make([]pos.Sale, len(saleModels))
	for i := range saleModels {
		sales[i] = *saleModels[i].ToDomain()
	}
	return sales
}

// Ensure GormSaleRepository implements SaleRepository
var _ pos.SaleRepository = (*GormSaleRepository)(nil)
