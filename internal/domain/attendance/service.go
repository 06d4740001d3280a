package attendance

import (
	"context"
)

// AttendanceService defines business logic for the attendance ledger and
// break tracker.
type AttendanceService interface {
	// CheckIn records the employee's arrival for today, creating or
	// overwriting the day's record.
	CheckIn(ctx context.Context, employeeID string, req CheckInRequest) (RecordResponse, error)

	// CheckOut closes today's record and computes work hours and overtime.
	CheckOut(ctx context.Context, employeeID string, req CheckOutRequest) (RecordResponse, error)

	// RecordAttendance creates a record manually (admin).
	RecordAttendance(ctx context.Context, req RecordAttendanceRequest) (RecordResponse, error)

	// UpdateRecord patches a record manually (admin).
	UpdateRecord(ctx context.Context, req UpdateAttendanceRequest) (RecordResponse, error)

	GetRecord(ctx context.Context, id string) (RecordResponse, error)
	ListRecords(ctx context.Context, filter RecordFilter) (ListRecordsResponse, error)
	DeleteRecord(ctx context.Context, id string) error

	// Break tracker
	CreateBreak(ctx context.Context, req CreateBreakRequest) (BreakResponse, error)
	UpdateBreak(ctx context.Context, req UpdateBreakRequest) (BreakResponse, error)
	DeleteBreak(ctx context.Context, id string) error
	ListBreaks(ctx context.Context, attendanceID string) ([]BreakResponse, error)
}
