package inventory

import (
	"context"

	"github.com/Daninc24/myshop/internal/domain/shared"
	"github.com/google/uuid"
)

// LogRepository defines persistence operations for inventory logs.
// The log is append-only: there is no update or delete.
type LogRepository interface {
	Append(ctx context.Context, logs ...*Log) error
	FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]Log, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Log, error)
	SumDeltasByProduct(ctx context.Context, productID uuid.UUID) (int64, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
