package catalog

import (
	"strings"
	"time"

	"github.com/Daninc24/myshop/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product represents a sellable catalog item
// It is the aggregate root for catalog and stock operations
type Product struct {
	shared.BaseAggregateRoot
	Title       string          `gorm:"type:varchar(200);not null;index"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Stock       int             `gorm:"not null;default:0"`
	Category    string          `gorm:"type:varchar(100);index"`
	Images      string          `gorm:"type:text"` // JSON array of image URLs
	IsDeal      bool            `gorm:"not null;default:false"`
	Active      bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product with required fields
func NewProduct(title, description string, price decimal.Decimal, stock int, category string) (*Product, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             strings.TrimSpace(title),
		Description:       description,
		Price:             price,
		Stock:             stock,
		Category:          strings.TrimSpace(category),
		Active:            true,
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// SetTitle updates the product title
func (p *Product) SetTitle(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	p.Title = strings.TrimSpace(title)
	p.touch()
	return nil
}

// SetDescription updates the product description
func (p *Product) SetDescription(description string) error {
	if len(description) > 5000 {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot exceed 5000 characters")
	}
	p.Description = description
	p.touch()
	return nil
}

// SetPrice updates the selling price
func (p *Product) SetPrice(price decimal.Decimal) error {
	if err := validatePrice(price); err != nil {
		return err
	}
	p.Price = price
	p.touch()
	return nil
}

// SetCategory updates the product category
func (p *Product) SetCategory(category string) error {
	if len(category) > 100 {
		return shared.NewDomainError("INVALID_CATEGORY", "Category cannot exceed 100 characters")
	}
	p.Category = strings.TrimSpace(category)
	p.touch()
	return nil
}

// SetImages replaces the stored image URL list (JSON encoded)
func (p *Product) SetImages(images string) {
	p.Images = images
	p.touch()
}

// SetDeal toggles the deal flag
func (p *Product) SetDeal(isDeal bool) {
	p.IsDeal = isDeal
	p.touch()
}

// Activate makes the product visible on the storefront
func (p *Product) Activate() {
	p.Active = true
	p.touch()
}

// Deactivate hides the product from the storefront
func (p *Product) Deactivate() {
	p.Active = false
	p.touch()
}

// DecreaseStock removes quantity from stock. Stock never goes negative.
func (p *Product) DecreaseStock(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if p.Stock < quantity {
		return shared.ErrInsufficientStock
	}

	p.Stock -= quantity
	p.touch()

	p.AddDomainEvent(NewProductStockChangedEvent(p, -quantity))

	return nil
}

// IncreaseStock adds quantity back to stock
func (p *Product) IncreaseStock(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	p.Stock += quantity
	p.touch()

	p.AddDomainEvent(NewProductStockChangedEvent(p, quantity))

	return nil
}

// AdjustStock applies a signed delta to stock. Used by admin corrections.
func (p *Product) AdjustStock(delta int) error {
	if delta == 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Adjustment cannot be zero")
	}
	if delta < 0 {
		return p.DecreaseStock(-delta)
	}
	return p.IncreaseStock(delta)
}

// IsInStock returns true if at least one unit is available
func (p *Product) IsInStock() bool {
	return p.Stock > 0
}

func (p *Product) touch() {
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}
	if len(title) > 200 {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot exceed 200 characters")
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	return nil
}
