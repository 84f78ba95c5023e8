package pos

import (
	"github.com/Daninc24/myshop/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event types for the POS context
const (
	EventTypeSaleRecorded = "pos.sale.recorded"
	EventTypeSaleReturned = "pos.sale.returned"
)

// SaleRecordedEvent is raised when a sale is settled at the register
type SaleRecordedEvent struct {
	shared.BaseDomainEvent
	CashierID     uuid.UUID       `json:"cashier_id"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Total         decimal.Decimal `json:"total"`
}

// NewSaleRecordedEvent creates a SaleRecordedEvent
func NewSaleRecordedEvent(s *Sale) *SaleRecordedEvent {
	return &SaleRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSaleRecorded, "Sale", s.ID),
		CashierID:       s.CashierID,
		PaymentMethod:   s.PaymentMethod,
		Total:           s.Total,
	}
}

// SaleReturnedEvent is raised when a sale is reversed
type SaleReturnedEvent struct {
	shared.BaseDomainEvent
	CashierID uuid.UUID       `json:"cashier_id"`
	Total     decimal.Decimal `json:"total"`
}

// NewSaleReturnedEvent creates a SaleReturnedEvent
func NewSaleReturnedEvent(s *Sale) *SaleReturnedEvent {
	return &SaleReturnedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSaleReturned, "Sale", s.ID),
		CashierID:       s.CashierID,
		Total:           s.Total,
	}
}
