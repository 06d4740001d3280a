package attendance

import "errors"

// Attendance domain errors
var (
	ErrNotCheckedInToday = errors.New("no attendance record found for today")

	ErrAttendanceNotFound = errors.New("attendance record not found")

	ErrBreakNotFound             = errors.New("break not found")
	ErrBreakOutsideAttendanceDay = errors.New("break must start on the same day as its attendance record")
	ErrBreakEndBeforeStart       = errors.New("break end time must be after its start time")
)
