package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Daninc24/myshop/internal/domain/ordering"
	"github.com/Daninc24/myshop/internal/domain/shared"
)

// OrderModel is the persistence model for the Order aggregate root.
type OrderModel struct {
	AggregateModel
	UserID          uuid.UUID            `gorm:"type:uuid;not null;index"`
	Items           []OrderItemModel     `gorm:"foreignKey:OrderID;references:ID"`
	Status          ordering.OrderStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	Currency        string               `gorm:"type:varchar(3);not null;default:'USD'"`
	ShippingAddress string               `gorm:"type:varchar(500)"`
	Total           decimal.Decimal      `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order entity.
func (m *OrderModel) ToDomain() *ordering.Order {
	order := &ordering.Order{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version: m.Version,
		},
		UserID:          m.UserID,
		Status:          m.Status,
		Currency:        m.Currency,
		ShippingAddress: m.ShippingAddress,
		Total:           m.Total,
		Items:           make([]ordering.OrderItem, len(m.Items)),
	}
	for i, item := range m.Items {
		order.Items[i] = *item.ToDomain()
	}
	return order
}

// FromDomain populates the persistence model from a domain Order entity.
func (m *OrderModel) FromDomain(o *ordering.Order) {
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	m.UserID = o.UserID
	m.Status = o.Status
	m.Currency = o.Currency
	m.ShippingAddress = o.ShippingAddress
	m.Total = o.Total
	m.Items = make([]OrderItemModel, len(o.Items))
	for i, item := range o.Items {
		m.Items[i] = *OrderItemModelFromDomain(&item)
	}
}

// OrderModelFromDomain creates a new persistence model from a domain Order entity.
func OrderModelFromDomain(o *ordering.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}

// OrderItemModel is the persistence model for the OrderItem entity.
type OrderItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title     string          `gorm:"type:varchar(200);not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain OrderItem entity.
func (m *OrderItemModel) ToDomain() *ordering.OrderItem {
	return &ordering.OrderItem{
		ID:        m.ID,
		OrderID:   m.OrderID,
		ProductID: m.ProductID,
		Title:     m.Title,
		Quantity:  m.Quantity,
		UnitPrice: m.UnitPrice,
		Subtotal:  m.Subtotal,
	}
}

// OrderItemModelFromDomain creates a new persistence model from a domain OrderItem entity.
func OrderItemModelFromDomain(item *ordering.OrderItem) *OrderItemModel {
	return &OrderItemModel{
		ID:        item.ID,
		OrderID:   item.OrderID,
		ProductID: item.ProductID,
		Title:     item.Title,
		Quantity:  item.Quantity,
		UnitPrice: item.UnitPrice,
		Subtotal:  item.Subtotal,
	}
}
