package catalog

import (
	"github.com/Daninc24/myshop/internal/domain/shared"
)

// Event types for the catalog context
const (
	EventTypeProductCreated      = "catalog.product.created"
	EventTypeProductStockChanged = "catalog.product.stock_changed"
)

// ProductCreatedEvent is raised when a new product is created
type ProductCreatedEvent struct {
	shared.BaseDomainEvent
	Title string `json:"title"`
}

// NewProductCreatedEvent creates a ProductCreatedEvent
func NewProductCreatedEvent(p *Product) *ProductCreatedEvent {
	return &ProductCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductCreated, "Product", p.ID),
		Title:           p.Title,
	}
}

// ProductStockChangedEvent is raised whenever stock moves, with the signed delta
type ProductStockChangedEvent struct {
	shared.BaseDomainEvent
	Delta    int `json:"delta"`
	NewStock int `json:"new_stock"`
}

// NewProductStockChangedEvent creates a ProductStockChangedEvent
func NewProductStockChangedEvent(p *Product, delta int) *ProductStockChangedEvent {
	return &ProductStockChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductStockChanged, "Product", p.ID),
		Delta:           delta,
		NewStock:        p.Stock,
	}
}
