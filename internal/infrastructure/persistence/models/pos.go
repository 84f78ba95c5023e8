package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Daninc24/myshop/internal/domain/pos"
	"github.com/Daninc24/myshop/internal/domain/shared"
)

// SaleModel is the persistence model for the Sale aggregate root.
type SaleModel struct {
	AggregateModel
	CashierID     uuid.UUID         `gorm:"type:uuid;not null;index"`
	CashierName   string            `gorm:"type:varchar(100);not null"`
	Items         []SaleItemModel   `gorm:"foreignKey:SaleID;references:ID"`
	PaymentMethod pos.PaymentMethod `gorm:"type:varchar(20);not null;index"`
	Total         decimal.Decimal   `gorm:"type:decimal(18,4);not null;default:0"`
	Status        pos.SaleStatus    `gorm:"type:varchar(20);not null;default:'completed';index"`
	ReturnedAt    *time.Time
}

// TableName returns the table name for GORM
func (SaleModel) TableName() string {
	return "sales"
}

// ToDomain converts the persistence model to a domain Sale entity.
func (m *SaleModel) ToDomain() *pos.Sale {
	sale := &pos.Sale{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version: m.Version,
		},
		CashierID:     m.CashierID,
		CashierName:   m.CashierName,
		PaymentMethod: m.PaymentMethod,
		Total:         m.Total,
		Status:        m.Status,
		ReturnedAt:    m.ReturnedAt,
		Items:         make([]pos.SaleItem, len(m.Items)),
	}
	for i, item := range m.Items {
		sale.Items[i] = *item.ToDomain()
	}
	return sale
}

// FromDomain populates the persistence model from a domain Sale entity.
func (m *SaleModel) FromDomain(s *pos.Sale) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.CashierID = s.CashierID
	m.CashierName = s.CashierName
	m.PaymentMethod = s.PaymentMethod
	m.Total = s.Total
	m.Status = s.Status
	m.ReturnedAt = s.ReturnedAt
	m.Items = make([]SaleItemModel, len(s.Items))
	for i, item := range s.Items {
		m.Items[i] = *SaleItemModelFromDomain(&item)
	}
}

// SaleModelFromDomain creates a new persistence model from a domain Sale entity.
func SaleModelFromDomain(s *pos.Sale) *SaleModel {
	m := &SaleModel{}
	m.FromDomain(s)
	return m
}

// SaleItemModel is the persistence model for the SaleItem entity.
type SaleItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	SaleID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title     string          `gorm:"type:varchar(200);not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SaleItemModel) TableName() string {
	return "sale_items"
}

// ToDomain converts the persistence model to a domain SaleItem entity.
func (m *SaleItemModel) ToDomain() *pos.SaleItem {
	return &pos.SaleItem{
		ID:        m.ID,
		SaleID:    m.SaleID,
		ProductID: m.ProductID,
		Title:     m.Title,
		Quantity:  m.Quantity,
		UnitPrice: m.UnitPrice,
		Subtotal:  m.Subtotal,
	}
}

// SaleItemModelFromDomain creates a new persistence model from a domain SaleItem entity.
func SaleItemModelFromDomain(item *pos.SaleItem) *SaleItemModel {
	return &SaleItemModel{
		ID:        item.ID,
		SaleID:    item.SaleID,
		ProductID: item.ProductID,
		Title:     item.Title,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
		Subtotal:  item.Subtotal,
	}
}
