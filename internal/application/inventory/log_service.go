package inventory

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Daninc24/myshop/internal/domain/catalog"
	"github.com/Daninc24/myshop/internal/domain/inventory"
	"github.com/Daninc24/myshop/internal/domain/shared"
)

// LogService exposes the append-only inventory log for auditing
type LogService struct {
	logRepo     inventory.LogRepository
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewLogService creates a new LogService
func NewLogService(logRepo inventory.LogRepository, productRepo catalog.ProductRepository, logger *zap.Logger) *LogService {
	return &LogService{
		logRepo:     logRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// ListByProduct lists log entries for one product
func (s *LogService) ListByProduct(ctx context.Context, productID uuid.UUID, filter LogListFilter) (*shared.Paginated[LogResponse], error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	domainFilter := toDomainFilter(filter)

	logs, err := s.logRepo.FindByProduct(ctx, productID, domainFilter)
	if err != nil {
		return nil, err
	}

	countFilter := domainFilter
	countFilter.Filters["product_id"] = productID
	total, err := s.logRepo.Count(ctx, countFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToLogResponses(logs), total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// List lists all log entries
func (s *LogService) List(ctx context.Context, filter LogListFilter) (*shared.Paginated[LogResponse], error) {
	domainFilter := toDomainFilter(filter)

	logs, err := s.logRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.logRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToLogResponses(logs), total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// Reconcile sums the logged deltas for a product against its current stock.
// InitialStock is derived: current stock minus the sum of all logged deltas.
func (s *LogService) Reconcile(ctx context.Context, productID uuid.UUID) (*ReconciliationResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	loggedDelta, err := s.logRepo.SumDeltasByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	return &ReconciliationResponse{
		ProductID:    productID,
		CurrentStock: product.Stock,
		LoggedDelta:  loggedDelta,
		InitialStock: int64(product.Stock) - loggedDelta,
	}, nil
}

func toDomainFilter(filter LogListFilter) shared.Filter {
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
	if filter.Reason != "" {
		domainFilter.Filters["reason"] = filter.Reason
	}
	if filter.UserID != nil {
		domainFilter.Filters["user_id"] = *filter.UserID
	}
	if filter.From != nil {
		domainFilter.Filters["from"] = *filter.From
	}
	if filter.To != nil {
		domainFilter.Filters["to"] = *filter.To
	}
	return domainFilter
}
