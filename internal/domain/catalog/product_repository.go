package catalog

import (
	"context"

	"github.com/Daninc24/myshop/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductRepository defines persistence operations for products
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)
	Save(ctx context.Context, product *Product) error
	// SaveWithLock persists the product only if the stored version matches,
	// returning shared.ErrConcurrencyConflict on a lost race.
	SaveWithLock(ctx context.Context, product *Product, expectedVersion int) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
