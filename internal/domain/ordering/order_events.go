package ordering

import (
	"github.com/Daninc24/myshop/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event types for the ordering context
const (
	EventTypeOrderPlaced        = "ordering.order.placed"
	EventTypeOrderStatusChanged = "ordering.order.status_changed"
)

// OrderPlacedEvent is raised when a checkout order is created
type OrderPlacedEvent struct {
	shared.BaseDomainEvent
	UserID   uuid.UUID       `json:"user_id"`
	Total    decimal.Decimal `json:"total"`
	Currency string          `json:"currency"`
}

// NewOrderPlacedEvent creates an OrderPlacedEvent
func NewOrderPlacedEvent(o *Order) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderPlaced, "Order", o.ID),
		UserID:          o.UserID,
		Total:           o.Total,
		Currency:        o.Currency,
	}
}

// OrderStatusChangedEvent is raised on every status write
type OrderStatusChangedEvent struct {
	shared.BaseDomainEvent
	OldStatus OrderStatus `json:"old_status"`
	NewStatus OrderStatus `json:"new_status"`
}

// NewOrderStatusChangedEvent creates an OrderStatusChangedEvent
func NewOrderStatusChangedEvent(o *Order, old, target OrderStatus) *OrderStatusChangedEvent {
	return &OrderStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderStatusChanged, "Order", o.ID),
		OldStatus:       old,
		NewStatus:       target,
	}
}
