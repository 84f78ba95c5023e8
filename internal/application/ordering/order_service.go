package ordering

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appinv "github.com/Daninc24/myshop/internal/application/inventory"
	"github.com/Daninc24/myshop/internal/domain/identity"
	"github.com/Daninc24/myshop/internal/domain/inventory"
	"github.com/Daninc24/myshop/internal/domain/ordering"
	"github.com/Daninc24/myshop/internal/domain/shared"
)

// OrderService handles checkout order business operations
type OrderService struct {
	orderRepo ordering.OrderRepository
	txScope   appinv.TransactionScope
	eventBus  shared.EventBus
	logger    *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo ordering.OrderRepository,
	txScope appinv.TransactionScope,
	eventBus shared.EventBus,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		txScope:   txScope,
		eventBus:  eventBus,
		logger:    logger,
	}
}

// PlaceOrder creates a pending order for the user. Stock for every line is
// decremented and logged in the same transaction as the order insert, so a
// failed line rolls back the whole checkout.
func (s *OrderService) PlaceOrder(ctx context.Context, userID uuid.UUID, req PlaceOrderRequest) (*OrderResponse, error) {
	productIDs := make([]uuid.UUID, 0, len(req.Items))
	quantities := make(map[uuid.UUID]int, len(req.Items))
	for _, item := range req.Items {
		if _, seen := quantities[item.ProductID]; seen {
			return nil, shared.NewDomainError("DUPLICATE_ORDER_LINE", "Product appears more than once in the order")
		}
		productIDs = append(productIDs, item.ProductID)
		quantities[item.ProductID] = item.Quantity
	}

	var placed *ordering.Order
	var stockEvents []shared.DomainEvent

	err := s.txScope.Execute(ctx, func(repos appinv.TransactionalRepositories) error {
		products, err := repos.ProductRepo().FindByIDs(ctx, productIDs)
		if err != nil {
			return err
		}
		if len(products) != len(productIDs) {
			return shared.ErrNotFound
		}

		orderItems := make([]*ordering.OrderItem, 0, len(products))
		logs := make([]*inventory.Log, 0, len(products))
		stockEvents = nil

		for i := range products {
			product := &products[i]
			if !product.Active {
				return shared.NewDomainError("PRODUCT_INACTIVE", "Product is not available for purchase")
			}

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

			item, err := ordering.NewOrderItem(product.ID, product.Title, quantity, product.Price)
			if err != nil {
				return err
			}
			orderItems = append(orderItems, item)

			log, err := inventory.NewLog(product.ID, userID, -quantity, inventory.ReasonOrder)
			if err != nil {
				return err
			}
			logs = append(logs, log)
		}

		order, err := ordering.NewOrder(userID, orderItems, req.Currency, req.ShippingAddress)
		if err != nil {
			return err
		}

		if err := repos.OrderRepo().Save(ctx, order); err != nil {
			return err
		}
		if err := repos.LogRepo().Append(ctx, logs...); err != nil {
			return err
		}

		placed = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, placed, stockEvents)

	s.logger.Info("order placed",
		zap.String("order_id", placed.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Int("lines", len(placed.Items)),
		zap.String("total", placed.Total.String()),
	)

	response := ToOrderResponse(placed)
	return &response, nil
}

// Get returns an order. Customers only see their own orders; order-processing
// roles may read any order.
func (s *OrderService) Get(ctx context.Context, id, requesterID uuid.UUID, role identity.Role) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.BelongsTo(requesterID) && !role.CanProcessOrders() {
		return nil, shared.ErrForbidden
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// ListMine returns the requesting user's own orders
func (s *OrderService) ListMine(ctx context.Context, userID uuid.UUID, filter OrderListFilter) (*shared.Paginated[OrderResponse], error) {
	domainFilter := toDomainFilter(filter)

	orders, err := s.orderRepo.FindByUser(ctx, userID, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.orderRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToOrderResponses(orders), total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// ListAll returns orders across all users, for order-processing staff
func (s *OrderService) ListAll(ctx context.Context, filter OrderListFilter) (*shared.Paginated[OrderResponse], error) {
	domainFilter := toDomainFilter(filter)

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToOrderResponses(orders), total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// UpdateStatus writes a new status on the order. Any known status value is
// accepted; a jump outside the documented progression is logged, not rejected.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, req UpdateOrderStatusRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	target := ordering.OrderStatus(req.Status)
	previous := order.Status

	if !previous.CanTransitionTo(target) && previous != target {
		s.logger.Warn("order status jump outside normal progression",
			zap.String("order_id", id.String()),
			zap.String("from", string(previous)),
			zap.String("to", string(target)),
		)
	}

	if err := order.SetStatus(target); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order, nil)

	s.logger.Info("order status updated",
		zap.String("order_id", id.String()),
		zap.String("from", string(previous)),
		zap.String("to", string(target)),
	)

	response := ToOrderResponse(order)
	return &response, nil
}

// publishEvents publishes the order's pending domain events together with the
// stock movements it caused, then clears them
func (s *OrderService) publishEvents(ctx context.Context, order *ordering.Order, stockEvents []shared.DomainEvent) {
	events := append(order.GetDomainEvents(), stockEvents...)
	if len(events) == 0 {
		return
	}
	if err := s.eventBus.Publish(ctx, events...); err != nil {
		s.logger.Error("failed to publish order events", zap.Error(err))
	}
	order.ClearDomainEvents()
}

func toDomainFilter(filter OrderListFilter) shared.Filter {
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
