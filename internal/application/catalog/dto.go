package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Daninc24/myshop/internal/domain/catalog"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Title       string          `json:"title" binding:"required,min=1,max=200"`
	Description string          `json:"description" binding:"max=5000"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Stock       int             `json:"stock" binding:"min=0"`
	Category    string          `json:"category" binding:"max=100"`
	Images      string          `json:"images"`
	IsDeal      bool            `json:"is_deal"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Title       *string          `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string          `json:"description" binding:"omitempty,max=5000"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category" binding:"omitempty,max=100"`
	Images      *string          `json:"images"`
	IsDeal      *bool            `json:"is_deal"`
	Active      *bool            `json:"active"`
}

// AdjustStockRequest represents a signed manual stock adjustment
type AdjustStockRequest struct {
	Delta  int    `json:"delta" binding:"required"`
	Reason string `json:"reason" binding:"max=200"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
	Images      string          `json:"images"`
	IsDeal      bool            `json:"is_deal"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Version     int             `json:"version"`
}

// ProductListFilter represents filter options for product lists
type ProductListFilter struct {
	Search   string   `form:"search"`
	Category string   `form:"category"`
	Active   *bool    `form:"active"`
	IsDeal   *bool    `form:"is_deal"`
	MinPrice *float64 `form:"min_price"`
	MaxPrice *float64 `form:"max_price"`
	InStock  *bool    `form:"in_stock"`
	Page     int      `form:"page" binding:"omitempty,min=1"`
	PageSize int      `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string   `form:"order_by"`
	OrderDir string   `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    p.Category,
		Images:      p.Images,
		IsDeal:      p.IsDeal,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Version:     p.Version,
	}
}

// ToProductResponses converts a slice of domain Products
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}
