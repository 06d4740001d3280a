package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Upsert inserts the record or, when one already exists for the same
	// (employee, date), overwrites its fields. Identity wins on first
	// insert, fields win on last write.
	Upsert(ctx context.Context, rec Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	// GetByEmployeeAndDate returns nil when no record exists for that day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)
	List(ctx context.Context, filter RecordFilter) ([]Record, int64, error)
	// ListForRange returns every record with date in [from, to] inclusive,
	// optionally restricted to one employee. Used by analytics.
	ListForRange(ctx context.Context, from, to time.Time, employeeID *string) ([]Record, error)
	Update(ctx context.Context, rec Record) error
	Delete(ctx context.Context, id string) error
}

type BreakRepository interface {
	Create(ctx context.Context, b Break) (Break, error)
	GetByID(ctx context.Context, id string) (Break, error)
	// ListByAttendance returns the record's breaks ordered by start time
	// ascending.
	ListByAttendance(ctx context.Context, attendanceID string) ([]Break, error)
	Update(ctx context.Context, b Break) error
	Delete(ctx context.Context, id string) error
}
