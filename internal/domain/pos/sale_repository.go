package pos

import (
	"context"

	"github.com/Daninc24/myshop/internal/domain/shared"
	"github.com/google/uuid"
)

// SaleRepository defines persistence operations for POS sales
type SaleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Sale, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Sale, error)
	FindByCashier(ctx context.Context, cashierID uuid.UUID, filter shared.Filter) ([]Sale, error)
	Save(ctx context.Context, sale *Sale) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
