package inventory

import (
	"strings"

	"github.com/Daninc24/myshop/internal/domain/shared"
	"github.com/google/uuid"
)

// Well-known adjustment reasons written by the application layer
const (
	ReasonSale             = "sale"
	ReasonSaleReturn       = "sale_return"
	ReasonOrder            = "order"
	ReasonManualAdjustment = "manual_adjustment"
)

// Log is an append-only audit record of a stock change.
// Entries are never updated or deleted; the signed deltas for a product
// must sum to its current stock minus its initial stock.
type Log struct {
	shared.BaseEntity
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Delta     int       `gorm:"not null"`
	Reason    string    `gorm:"type:varchar(200);not null"`
}

// TableName returns the table name for GORM
func (Log) TableName() string {
	return "inventory_logs"
}

// NewLog creates an inventory log entry for a signed stock delta
func NewLog(productID, userID uuid.UUID, delta int, reason string) (*Log, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT_ID", "Product ID cannot be empty")
	}
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "User ID cannot be empty")
	}
	if delta == 0 {
		return nil, shared.NewDomainError("INVALID_DELTA", "Delta cannot be zero")
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, shared.NewDomainError("INVALID_REASON", "Reason cannot be empty")
	}
	if len(reason) > 200 {
		return nil, shared.NewDomainError("INVALID_REASON", "Reason cannot exceed 200 characters")
	}

	return &Log{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		UserID:     userID,
		Delta:      delta,
		Reason:     reason,
	}, nil
}

// IsInbound returns true for stock additions
func (l *Log) IsInbound() bool {
	return l.Delta > 0
}
