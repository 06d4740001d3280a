package schedule

import (
	"context"
	"time"
)

type WorkScheduleRepository interface {
	Create(ctx context.Context, ws WorkSchedule) (WorkSchedule, error)
	GetByID(ctx context.Context, id string) (WorkSchedule, error)
	// GetActiveByEmployee returns the schedule whose effective window
	// contains at. At most one exists per employee; nil when none does.
	GetActiveByEmployee(ctx context.Context, employeeID string, at time.Time) (*WorkSchedule, error)
	Update(ctx context.Context, ws WorkSchedule) error
	Delete(ctx context.Context, id string) error
}
