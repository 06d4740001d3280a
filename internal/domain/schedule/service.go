package schedule

import "context"

// WorkScheduleService defines business logic for work schedule maintenance.
type WorkScheduleService interface {
	// CreateSchedule registers a schedule for an employee. At most one
	// active schedule may exist per employee at any instant.
	CreateSchedule(ctx context.Context, req CreateWorkScheduleRequest) (WorkScheduleResponse, error)

	// GetEmployeeSchedule retrieves the employee's currently active schedule.
	GetEmployeeSchedule(ctx context.Context, employeeID string) (WorkScheduleResponse, error)

	// UpdateSchedule patches an existing schedule.
	UpdateSchedule(ctx context.Context, req UpdateWorkScheduleRequest) (WorkScheduleResponse, error)

	// DeleteSchedule removes a schedule.
	DeleteSchedule(ctx context.Context, id string) error
}
