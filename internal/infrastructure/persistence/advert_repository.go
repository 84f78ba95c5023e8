package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Daninc24/myshop/internal/domain/advert"
	"github.com/Daninc24/myshop/internal/domain/shared"
)

// GormAdvertRepository implements AdvertRepository using GORM
type GormAdvertRepository struct {
	db *gorm.DB
}

// NewGormAdvertRepository creates a new GormAdvertRepository
func NewGormAdvertRepository(db *gorm.DB) *GormAdvertRepository {
	return &GormAdvertRepository{db: db}
}

// FindByID finds an advert by its ID
func (r *GormAdvertRepository) FindByID(ctx context.Context, id uuid.UUID) (*advert.Advert, error) {
	var ad advert.Advert
	if err := r.db.WithContext(ctx).First(&ad, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &ad, nil
}

// FindAll finds all adverts matching the filter
func (r *GormAdvertRepository) FindAll(ctx context.Context, filter shared.Filter) ([]advert.Advert, error) {
	var adverts []advert.Advert
	query := r.applyFilter(r.db.WithContext(ctx).Model(&advert.Advert{}), filter)

	if err := query.Find(&adverts).Error; err != nil {
		return nil, err
	}
	return adverts, nil
}

// FindActive returns adverts that are active and whose optional display
// window contains the given time. The window check runs database-side so
// expired adverts never leave the database.
func (r *GormAdvertRepository) FindActive(ctx context.Context, now time.Time) ([]advert.Advert, error) {
	var adverts []advert.Advert
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Where("start_date IS NULL OR start_date <= ?", now).
		Where("end_date IS NULL OR end_date >= ?", now).
		Order("created_at DESC").
		Find(&adverts).Error; err != nil {
		return nil, err
	}
	return adverts, nil
}

// Save creates or updates an advert
func (r *GormAdvertRepository) Save(ctx context.Context, ad *advert.Advert) error {
	return r.db.WithContext(ctx).Save(ad).Error
}

// Delete deletes an advert
func (r *GormAdvertRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&advert.Advert{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts adverts matching the filter
func (r *GormAdvertRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&advert.Advert{})
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormAdvertRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
func (r *GormAdvertRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "active":
			query = query.Where("active = ?", value)
		case "product_id":
			query = query.Where("product_id = ?", value)
		case "template":
			query = query.Where("template = ?", value)
		}
	}

	return query
}

// Ensure GormAdvertRepository implements AdvertRepository
var _ advert.AdvertRepository = (*GormAdvertRepository)(nil)
