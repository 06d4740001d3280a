package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	GetByID(ctx context.Context, id string) (Holiday, error)
	// GetByDate returns the holidays matching the given day, including
	// recurring holidays from earlier years. Empty slice when none match.
	GetByDate(ctx context.Context, date time.Time) ([]Holiday, error)
	// List returns all holidays ordered by date ascending.
	List(ctx context.Context) ([]Holiday, error)
	Update(ctx context.Context, h Holiday) error
	Delete(ctx context.Context, id string) error
}
