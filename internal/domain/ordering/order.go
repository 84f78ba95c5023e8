package ordering

import (
	"strings"
	"time"

	"github.com/Daninc24/myshop/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the status of a checkout order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// KnownOrderStatuses lists every accepted status value
var KnownOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// IsValid returns true if the status is a known value
func (s OrderStatus) IsValid() bool {
	for _, known := range KnownOrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are expected
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo reports whether target follows the documented progression.
// Status writes are not rejected on illegal jumps; callers use this to log them.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return target == OrderStatusProcessing || target == OrderStatusCancelled
	case OrderStatusProcessing:
		return target == OrderStatusShipped || target == OrderStatusCancelled
	case OrderStatusShipped:
		return target == OrderStatusDelivered || target == OrderStatusCancelled
	default:
		return false
	}
}

// OrderItem is a line item with price snapshots taken at checkout
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Title     string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// NewOrderItem creates an order line for a product
func NewOrderItem(productID uuid.UUID, title string, quantity int, unitPrice decimal.Decimal) (*OrderItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT_ID", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	return &OrderItem{
		ID:        uuid.New(),
		ProductID: productID,
		Title:     title,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Subtotal:  unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}

// Order represents a customer checkout order
// It is the aggregate root for order operations
type Order struct {
	shared.BaseAggregateRoot
	UserID          uuid.UUID
	Items           []OrderItem
	Status          OrderStatus
	Currency        string
	ShippingAddress string
	Total           decimal.Decimal
}

// NewOrder creates a pending order from line items
func NewOrder(userID uuid.UUID, items []*OrderItem, currency, shippingAddress string) (*Order, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "User ID cannot be empty")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("EMPTY_ORDER", "Order must contain at least one item")
	}

	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = "USD"
	}
	if len(currency) != 3 {
		return nil, shared.NewDomainError("INVALID_CURRENCY", "Currency must be a 3-letter code")
	}

	order := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Status:            OrderStatusPending,
		Currency:          currency,
		ShippingAddress:   strings.TrimSpace(shippingAddress),
		Items:             make([]OrderItem, 0, len(items)),
	}

	for _, item := range items {
		item.OrderID = order.ID
		order.Items = append(order.Items, *item)
	}
	order.recalculateTotal()

	order.AddDomainEvent(NewOrderPlacedEvent(order))

	return order, nil
}

// SetStatus writes the status unconditionally. Only unknown values are rejected;
// any role-authorized caller may jump to any known status.
func (o *Order) SetStatus(target OrderStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status")
	}

	old := o.Status
	o.Status = target
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	o.AddDomainEvent(NewOrderStatusChangedEvent(o, old, target))

	return nil
}

// BelongsTo returns true if the order is owned by the given user
func (o *Order) BelongsTo(userID uuid.UUID) bool {
	return o.UserID == userID
}

// TotalQuantity returns the number of units across all lines
func (o *Order) TotalQuantity() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

func (o *Order) recalculateTotal() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal)
	}
	o.Total = total
}
