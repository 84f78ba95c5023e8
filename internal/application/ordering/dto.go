package ordering

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Daninc24/myshop/internal/domain/ordering"
)

// OrderItemRequest is one requested line in a checkout
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// PlaceOrderRequest represents a checkout request
type PlaceOrderRequest struct {
	Items           []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	Currency        string             `json:"currency" binding:"omitempty,len=3"`
	ShippingAddress string             `json:"shipping_address" binding:"max=500"`
}

// UpdateOrderStatusRequest represents a status write on an order
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderItemResponse represents an order line in API responses
type OrderItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Title     string          `json:"title"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID              uuid.UUID           `json:"id"`
	UserID          uuid.UUID           `json:"user_id"`
	Items           []OrderItemResponse `json:"items"`
	Status          string              `json:"status"`
	Currency        string              `json:"currency"`
	ShippingAddress string              `json:"shipping_address"`
	Total           decimal.Decimal     `json:"total"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// OrderListFilter represents filter options for order lists
type OrderListFilter struct {
	Status   string     `form:"status"`
	UserID   *uuid.UUID `form:"user_id"`
	From     *time.Time `form:"from" time_format:"2006-01-02"`
	To       *time.Time `form:"to" time_format:"2006-01-02"`
	Page     int        `form:"page" binding:"omitempty,min=1"`
	PageSize int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string     `form:"order_by"`
	OrderDir string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToOrderResponse converts a domain Order to OrderResponse
func ToOrderResponse(o *ordering.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Title:     item.Title,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		}
	}
	return OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		Items:           items,
		Status:          string(o.Status),
		Currency:        o.Currency,
		ShippingAddress: o.ShippingAddress,
		Total:           o.Total,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

// ToOrderResponses converts a slice of domain Orders
func ToOrderResponses(orders []ordering.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses
}
