package advert

import (
	"context"
	"time"

	"github.com/Daninc24/myshop/internal/domain/shared"
	"github.com/google/uuid"
)

// AdvertRepository defines persistence operations for adverts
type AdvertRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Advert, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Advert, error)
	// FindActive returns adverts that are active and whose optional
	// [StartDate, EndDate] window contains the given time. The window
	// check runs database-side.
	FindActive(ctx context.Context, now time.Time) ([]Advert, error)
	Save(ctx context.Context, advert *Advert) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
