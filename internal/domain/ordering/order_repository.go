package ordering

import (
	"context"

	"github.com/Daninc24/myshop/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderRepository defines persistence operations for orders
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)
	FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]Order, error)
	Save(ctx context.Context, order *Order) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
