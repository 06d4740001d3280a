package schedule

import "time"

// WorkSchedule holds an employee's expected working window. Start and end
// times are stored as local wall-clock "HH:mm" strings; the timezone label
// is informational and no conversion beyond it is performed.
type WorkSchedule struct {
	ID                   string
	EmployeeID           string
	StartTime            string
	EndTime              string
	BreakDurationMinutes int
	WorkingDays          []int // weekday indices, 0=Sunday ... 6=Saturday
	TimeZone             string
	IsFlexible           bool
	GracePeriodMinutes   int
	EffectiveFrom        time.Time
	EffectiveTo          *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
