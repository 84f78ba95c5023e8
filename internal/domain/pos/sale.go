package pos

import (
	"strings"
	"time"

	"github.com/Daninc24/myshop/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod represents how a POS sale was settled
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodMobile PaymentMethod = "mobile"
)

// IsValid returns true if the payment method is a known value
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodMobile:
		return true
	}
	return false
}

// SaleStatus represents the settlement state of a sale
type SaleStatus string

const (
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusReturned  SaleStatus = "returned"
)

// SaleItem is a line item with price snapshots taken at the register
type SaleItem struct {
	ID        uuid.UUID
	SaleID    uuid.UUID
	ProductID uuid.UUID
	Title     string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// NewSaleItem creates a sale line for a product
func NewSaleItem(productID uuid.UUID, title string, quantity int, unitPrice decimal.Decimal) (*SaleItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT_ID", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	return &SaleItem{
		ID:        uuid.New(),
		ProductID: productID,
		Title:     title,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Subtotal:  unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}

// Sale represents an in-person sale recorded at the point of sale
// It is the aggregate root for POS operations
type Sale struct {
	shared.BaseAggregateRoot
	CashierID     uuid.UUID
	CashierName   string
	Items         []SaleItem
	PaymentMethod PaymentMethod
	Total         decimal.Decimal
	Status        SaleStatus
	ReturnedAt    *time.Time
}

// NewSale creates a completed sale from line items
func NewSale(cashierID uuid.UUID, cashierName string, items []*SaleItem, method PaymentMethod) (*Sale, error) {
	if cashierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CASHIER_ID", "Cashier ID cannot be empty")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("EMPTY_SALE", "Sale must contain at least one item")
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Unknown payment method")
	}

	sale := &Sale{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CashierID:         cashierID,
		CashierName:       strings.TrimSpace(cashierName),
		PaymentMethod:     method,
		Status:            SaleStatusCompleted,
		Items:             make([]SaleItem, 0, len(items)),
	}

	for _, item := range items {
		item.SaleID = sale.ID
		sale.Items = append(sale.Items, *item)
	}
	sale.recalculateTotal()

	sale.AddDomainEvent(NewSaleRecordedEvent(sale))

	return sale, nil
}

// MarkReturned reverses the sale. A sale can be returned exactly once.
func (s *Sale) MarkReturned() error {
	if s.Status == SaleStatusReturned {
		return shared.NewDomainError("SALE_ALREADY_RETURNED", "Sale has already been returned")
	}

	now := time.Now()
	s.Status = SaleStatusReturned
	s.ReturnedAt = &now
	s.UpdatedAt = now
	s.IncrementVersion()

	s.AddDomainEvent(NewSaleReturnedEvent(s))

	return nil
}

// IsReturned returns true if the sale has been reversed
func (s *Sale) IsReturned() bool {
	return s.Status == SaleStatusReturned
}

// TotalQuantity returns the number of units across all lines
func (s *Sale) TotalQuantity() int {
	total := 0
	for _, item := range s.Items {
		total += item.Quantity
	}
	return total
}

func (s *Sale) recalculateTotal() {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.Subtotal)
	}
	s.Total = total
}
