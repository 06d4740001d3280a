package regularization

import (
	"context"
	"time"
)

type RegularizationRepository interface {
	Create(ctx context.Context, reg Regularization) (Regularization, error)
	GetByID(ctx context.Context, id string) (Regularization, error)
	// HasPendingForDate reports whether a PENDING request already exists
	// for the employee and day.
	HasPendingForDate(ctx context.Context, employeeID string, date time.Time) (bool, error)
	List(ctx context.Context, filter RegularizationFilter) ([]Regularization, int64, error)
	UpdateStatus(ctx context.Context, reg Regularization) error
}
