package pos

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appinv "github.com/Daninc24/myshop/internal/application/inventory"
	"github.com/Daninc24/myshop/internal/domain/inventory"
	"github.com/Daninc24/myshop/internal/domain/pos"
	"github.com/Daninc24/myshop/internal/domain/shared"
)

// SaleService handles point-of-sale business operations
type SaleService struct {
	saleRepo pos.SaleRepository
	txScope  appinv.TransactionScope
	eventBus shared.EventBus
	logger   *zap.Logger
}

// NewSaleService creates a new SaleService
func NewSaleService(
	saleRepo pos.SaleRepository,
	txScope appinv.TransactionScope,
	eventBus shared.EventBus,
	logger *zap.Logger,
) *SaleService {
	return &SaleService{
		saleRepo: saleRepo,
		txScope:  txScope,
		eventBus: eventBus,
		logger:   logger,
	}
}

// CreateSale records a completed in-person sale. Stock for every line is
// decremented and logged in the same transaction as the sale insert.
func (s *SaleService) CreateSale(ctx context.Context, cashierID uuid.UUID, cashierName string, req CreateSaleRequest) (*SaleResponse, error) {
	productIDs := make([]uuid.UUID, 0, len(req.Items))
	quantities := make(map[uuid.UUID]int, len(req.Items))
	for _, item := range req.Items {
		if _, seen := quantities[item.ProductID]; seen {
			return nil, shared.NewDomainError("DUPLICATE_SALE_LINE", "Product appears more than once in the sale")
		}
		productIDs = append(productIDs, item.ProductID)
		quantities[item.ProductID] = item.Quantity
	}

	var recorded *pos.Sale
	var stockEvents []shared.DomainEvent

	err := s.txScope.Execute(ctx, func(repos appinv.TransactionalRepositories) error {
		products, err := repos.ProductRepo().FindByIDs(ctx, productIDs)
		if err != nil {
			return err
		}
		if len(products) != len(productIDs) {
			return shared.ErrNotFound
		}

		saleItems := make([]*pos.SaleItem, 0, len(products))
		logs := make([]*inventory.Log, 0, len(products))
		stockEvents = nil

		for i := range products {
			product := &products[i]
			quantity := quantities[product.ID]

			expectedVersion := product.Version
			if err := product.DecreaseStock(quantity); err != nil {
				return err
			}
			if err := repos.ProductRepo().SaveWithLock(ctx, product, expectedVersion); err != nil {
				return err
			}
			stockEvents = append(stockEvents, product.GetDomainEvents()...)
			product.ClearDomainEvents()

			item, err := pos.NewSaleItem(product.ID, product.Title, quantity, product.Price)
			if err != nil {
				return err
			}
			saleItems = append(saleItems, item)

			log, err := inventory.NewLog(product.ID, cashierID, -quantity, inventory.ReasonSale)
			if err != nil {
				return err
			}
			logs = append(logs, log)
		}

		sale, err := pos.NewSale(cashierID, cashierName, saleItems, pos.PaymentMethod(req.PaymentMethod))
		if err != nil {
			return err
		}

		if err := repos.SaleRepo().Save(ctx, sale); err != nil {
			return err
		}
		if err := repos.LogRepo().Append(ctx, logs...); err != nil {
			return err
		}

		recorded = sale
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, recorded, stockEvents)

	s.logger.Info("sale recorded",
		zap.String("sale_id", recorded.ID.String()),
		zap.String("cashier_id", cashierID.String()),
		zap.String("payment_method", string(recorded.PaymentMethod)),
		zap.String("total", recorded.Total.String()),
	)

	response := ToSaleResponse(recorded)
	return &response, nil
}

// ReturnSale reverses a sale exactly once. Every line's quantity goes back
// into stock with a matching log entry, in the same transaction as the
// status flip.
func (s *SaleService) ReturnSale(ctx context.Context, id, requesterID uuid.UUID) (*SaleResponse, error) {
	var returned *pos.Sale
	var stockEvents []shared.DomainEvent

	err := s.txScope.Execute(ctx, func(repos appinv.TransactionalRepositories) error {
		sale, err := repos.SaleRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}

		if err := sale.MarkReturned(); err != nil {
			return err
		}

		logs := make([]*inventory.Log, 0, len(sale.Items))
		stockEvents = nil
		for _, item := range sale.Items {
			product, err := repos.ProductRepo().FindByID(ctx, item.ProductID)
			if err != nil {
				return err
			}

			expectedVersion := product.Version
			if err := product.IncreaseStock(item.Quantity); err != nil {
				return err
			}
			if err := repos.ProductRepo().SaveWithLock(ctx, product, expectedVersion); err != nil {
				return err
			}
			stockEvents = append(stockEvents, product.GetDomainEvents()...)
			product.ClearDomainEvents()

			log, err := inventory.NewLog(product.ID, requesterID, item.Quantity, inventory.ReasonSaleReturn)
			if err != nil {
				return err
			}
			logs = append(logs, log)
		}

		if err := repos.SaleRepo().Save(ctx, sale); err != nil {
			return err
		}
		if err := repos.LogRepo().Append(ctx, logs...); err != nil {
			return err
		}

		returned = sale
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, returned, stockEvents)

	s.logger.Info("sale returned",
		zap.String("sale_id", id.String()),
		zap.String("requester_id", requesterID.String()),
	)

	response := ToSaleResponse(returned)
	return &response, nil
}

// Get returns a single sale
func (s *SaleService) Get(ctx context.Context, id uuid.UUID) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToSaleResponse(sale)
	return &response, nil
}

// List returns sales matching the filter
func (s *SaleService) List(ctx context.Context, filter SaleListFilter) (*shared.Paginated[SaleResponse], error) {
	domainFilter := toDomainFilter(filter)

	sales, err := s.saleRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.saleRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToSaleResponses(sales), total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// ListByCashier returns sales rung up by one cashier
func (s *SaleService) ListByCashier(ctx context.Context, cashierID uuid.UUID, filter SaleListFilter) (*shared.Paginated[SaleResponse], error) {
	domainFilter := toDomainFilter(filter)

	sales, err := s.saleRepo.FindByCashier(ctx, cashierID, domainFilter)
	if err != nil {
		return nil, err
	}

	countFilter := domainFilter
	countFilter.Filters["cashier_id"] = cashierID
	total, err := s.saleRepo.Count(ctx, countFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToSaleResponses(sales), total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// publishEvents publishes the sale's pending domain events together with the
// stock movements it caused, then clears them
func (s *SaleService) publishEvents(ctx context.Context, sale *pos.Sale, stockEvents []shared.DomainEvent) {
	events := append(sale.GetDomainEvents(), stockEvents...)
	if len(events) == 0 {
		return
	}
	if err := s.eventBus.Publish(ctx, events...); err != nil {
		s.logger.Error("failed to publish sale events", zap.Error(err))
	}
	sale.ClearDomainEvents()
}

func toDomainFilter(filter SaleListFilter) shared.Filter {
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
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.CashierID != nil {
		domainFilter.Filters["cashier_id"] = *filter.CashierID
	}
	if filter.PaymentMethod != "" {
		domainFilter.Filters["payment_method"] = filter.PaymentMethod
	}
	if filter.From != nil {
		domainFilter.Filters["from"] = *filter.From
	}
	if filter.To != nil {
		domainFilter.Filters["to"] = *filter.To
	}
	return domainFilter
}
