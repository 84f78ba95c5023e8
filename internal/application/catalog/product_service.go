package catalog

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appinv "github.com/Daninc24/myshop/internal/application/inventory"
	"github.com/Daninc24/myshop/internal/domain/catalog"
	"github.com/Daninc24/myshop/internal/domain/inventory"
	"github.com/Daninc24/myshop/internal/domain/reporting"
	"github.com/Daninc24/myshop/internal/domain/shared"
)

// ProductService handles product and stock business operations
type ProductService struct {
	productRepo catalog.ProductRepository
	reportRepo  reporting.SalesReportRepository
	txScope     appinv.TransactionScope
	eventBus    shared.EventBus
	logger      *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	reportRepo reporting.SalesReportRepository,
	txScope appinv.TransactionScope,
	eventBus shared.EventBus,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		reportRepo:  reportRepo,
		txScope:     txScope,
		eventBus:    eventBus,
		logger:      logger,
	}
}

// Create creates a new product. An opening stock greater than zero is
// recorded as the product's starting point; it is not logged because no
// adjustment happened yet.
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(req.Title, req.Description, req.Price, req.Stock, req.Category)
	if err != nil {
		return nil, err
	}

	if req.Images != "" {
		product.SetImages(req.Images)
	}
	if req.IsDeal {
		product.SetDeal(true)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, product)

	s.logger.Info("product created",
		zap.String("product_id", product.ID.String()),
		zap.String("title", product.Title),
	)

	response := ToProductResponse(product)
	return &response, nil
}

// Update updates product attributes. Stock is not writable here; stock
// changes go through AdjustStock so every change leaves a log entry.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if err := product.SetTitle(*req.Title); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		if err := product.SetDescription(*req.Description); err != nil {
			return nil, err
		}
	}
	if req.Price != nil {
		if err := product.SetPrice(*req.Price); err != nil {
			return nil, err
		}
	}
	if req.Category != nil {
		if err := product.SetCategory(*req.Category); err != nil {
			return nil, err
		}
	}
	if req.Images != nil {
		product.SetImages(*req.Images)
	}
	if req.IsDeal != nil {
		product.SetDeal(*req.IsDeal)
	}
	if req.Active != nil {
		if *req.Active {
			product.Activate()
		} else {
			product.Deactivate()
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// AdjustStock applies a signed manual stock adjustment and appends the
// matching inventory log entry in the same transaction.
func (s *ProductService) AdjustStock(ctx context.Context, id, userID uuid.UUID, req AdjustStockRequest) (*ProductResponse, error) {
	reason := req.Reason
	if reason == "" {
		reason = inventory.ReasonManualAdjustment
	}

	var updated *catalog.Product

	err := s.txScope.Execute(ctx, func(repos appinv.TransactionalRepositories) error {
		product, err := repos.ProductRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}

		expectedVersion := product.Version
		if err := product.AdjustStock(req.Delta); err != nil {
			return err
		}

		if err := repos.ProductRepo().SaveWithLock(ctx, product, expectedVersion); err != nil {
			return err
		}

		log, err := inventory.NewLog(product.ID, userID, req.Delta, reason)
		if err != nil {
			return err
		}
		if err := repos.LogRepo().Append(ctx, log); err != nil {
			return err
		}

		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, updated)

	s.logger.Info("stock adjusted",
		zap.String("product_id", id.String()),
		zap.Int("delta", req.Delta),
		zap.String("reason", reason),
	)

	response := ToProductResponse(updated)
	return &response, nil
}

// Get returns a single product
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// List returns products matching the filter
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) (*shared.Paginated[ProductResponse], error) {
	domainFilter := toDomainFilter(filter)

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToProductResponses(products), total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// Delete removes a product from the catalog
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("product deleted", zap.String("product_id", id.String()))
	return nil
}

// BestSelling returns the top sellers ranked by units sold at the register
func (s *ProductService) BestSelling(ctx context.Context, limit int) ([]reporting.ProductSales, error) {
	return s.reportRepo.GetBestSellingProducts(ctx, limit)
}

// publishEvents publishes and clears pending domain events
func (s *ProductService) publishEvents(ctx context.Context, product *catalog.Product) {
	events := product.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.eventBus.Publish(ctx, events...); err != nil {
		s.logger.Error("failed to publish product events", zap.Error(err))
	}
	product.ClearDomainEvents()
}

func toDomainFilter(filter ProductListFilter) shared.Filter {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search
	if filter.Category != "" {
		domainFilter.Filters["category"] = filter.Category
	}
	if filter.Active != nil {
		domainFilter.Filters["active"] = *filter.Active
	}
	if filter.IsDeal != nil {
		domainFilter.Filters["is_deal"] = *filter.IsDeal
	}
	if filter.MinPrice != nil {
		domainFilter.Filters["min_price"] = *filter.MinPrice
	}
	if filter.MaxPrice != nil {
		domainFilter.Filters["max_price"] = *filter.MaxPrice
	}
	if filter.InStock != nil {
		domainFilter.Filters["in_stock"] = *filter.InStock
	}
	return domainFilter
}
