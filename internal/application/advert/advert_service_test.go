package advert

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

	"github.com/Daninc24/myshop/internal/domain/advert"
	"github.com/Daninc24/myshop/internal/domain/catalog"
	"github.com/Daninc24/myshop/internal/domain/shared"
)

// MockAdvertRepository is a mock implementation of AdvertRepository
type MockAdvertRepository struct {
	mock.Mock
}

func (m *MockAdvertRepository) FindByID(ctx context.Context, id uuid.UUID) (*advert.Advert, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*advert.Advert), args.Error(1)
}

func (m *MockAdvertRepository) FindAll(ctx context.Context, filter shared.Filter) ([]advert.Advert, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]advert.Advert), args.Error(1)
}

func (m *MockAdvertRepository) FindActive(ctx context.Context, now time.Time) ([]advert.Advert, error) {
	args := m.Called(ctx, now)
	return args.Get(0).([]advert.Advert), args.Error(1)
}

func (m *MockAdvertRepository) Save(ctx context.Context, ad *advert.Advert) error {
	args := m.Called(ctx, ad)
	return args.Error(0)
}

func (m *MockAdvertRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAdvertRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) SaveWithLock(ctx context.Context, product *catalog.Product, expectedVersion int) error {
	args := m.Called(ctx, product, expectedVersion)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func newTestAdvertService() (*AdvertService, *MockAdvertRepository, *MockProductRepository) {
	advertRepo := new(MockAdvertRepository)
	productRepo := new(MockProductRepository)
	service := NewAdvertService(advertRepo, productRepo, zap.NewNop())
	return service, advertRepo, productRepo
}

func TestAdvertService_Create(t *testing.T) {
	t.Run("creates an advert linked to a product", func(t *testing.T) {
		service, advertRepo, productRepo := newTestAdvertService()

		product, err := catalog.NewProduct("Blender", "", decimal.NewFromInt(60), 5, "kitchen")
		require.NoError(t, err)

		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		advertRepo.On("Save", mock.Anything, mock.AnythingOfType("*advert.Advert")).Return(nil)

		resp, err := service.Create(context.Background(), CreateAdvertRequest{
			Title:     "Summer blender deal",
			Message:   "20% off this week",
			ProductID: &product.ID,
		})

		require.NoError(t, err)
		assert.True(t, resp.Active)
		require.NotNil(t, resp.ProductID)
		assert.Equal(t, product.ID, *resp.ProductID)
		advertRepo.AssertExpectations(t)
	})

	t.Run("rejects a link to a missing product", func(t *testing.T) {
		service, advertRepo, productRepo := newTestAdvertService()

		missing := uuid.New()
		productRepo.On("FindByID", mock.Anything, missing).Return(nil, shared.ErrNotFound)

		_, err := service.Create(context.Background(), CreateAdvertRequest{
			Title:     "Ghost deal",
			ProductID: &missing,
		})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		advertRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects an inverted display window", func(t *testing.T) {
		service, advertRepo, _ := newTestAdvertService()

		start := time.Now().Add(48 * time.Hour)
		end := time.Now()
		_, err := service.Create(context.Background(), CreateAdvertRequest{
			Title:     "Backwards window",
			StartDate: &start,
			EndDate:   &end,
		})

		require.Error(t, err)
		advertRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestAdvertService_ListActive(t *testing.T) {
	service, advertRepo, _ := newTestAdvertService()

	ad, err := advert.NewAdvert("Front page banner", "")
	require.NoError(t, err)

	advertRepo.On("FindActive", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]advert.Advert{*ad}, nil)

	result, err := service.ListActive(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Front page banner", result[0].Title)
}

func TestAdvertService_Update(t *testing.T) {
	service, advertRepo, _ := newTestAdvertService()

	ad, err := advert.NewAdvert("Old title", "old copy")
	require.NoError(t, err)

	advertRepo.On("FindByID", mock.Anything, ad.ID).Return(ad, nil)
	advertRepo.On("Save", mock.Anything, ad).Return(nil)

	title := "New title"
	active := false
	resp, err := service.Update(context.Background(), ad.ID, UpdateAdvertRequest{
		Title:  &title,
		Active: &active,
	})

	require.NoError(t, err)
	assert.Equal(t, "New title", resp.Title)
	assert.False(t, resp.Active)
}
