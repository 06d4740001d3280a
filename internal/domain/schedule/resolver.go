package schedule

import (
	"fmt"
	"time"
)

// DefaultDailyWorkHours applies when an employee has no schedule.
const DefaultDailyWorkHours = 8.0

// Location resolves the schedule's timezone label. Unknown labels fall
// back to UTC, matching how check-in treats unresolvable branch zones.
func Location(ws *WorkSchedule) *time.Location {
	if ws == nil {
		return time.UTC
	}
	loc, err := time.LoadLocation(ws.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ExpectedCheckIn combines the schedule's start time with the calendar
// date of ref in loc to produce the expected check-in instant.
func ExpectedCheckIn(ws *WorkSchedule, ref time.Time, loc *time.Location) (time.Time, error) {
	return atClock(ws.StartTime, ref, loc)
}

// ExpectedCheckOut combines the schedule's end time with the calendar
// date of ref in loc to produce the expected check-out instant.
func ExpectedCheckOut(ws *WorkSchedule, ref time.Time, loc *time.Location) (time.Time, error) {
	return atClock(ws.EndTime, ref, loc)
}

// ExpectedDailyWorkHours returns the schedule's expected working hours per
// day: the start-to-end span minus the break allowance. Without a schedule
// the default of 8 hours applies.
func ExpectedDailyWorkHours(ws *WorkSchedule) float64 {
	if ws == nil {
		return DefaultDailyWorkHours
	}
	start, err := time.Parse("15:04", ws.StartTime)
	if err != nil {
		return DefaultDailyWorkHours
	}
	end, err := time.Parse("15:04", ws.EndTime)
	if err != nil {
		return DefaultDailyWorkHours
	}
	return end.Sub(start).Hours() - float64(ws.BreakDurationMinutes)/60.0
}

// IsWorkingDay reports whether the given date falls on one of the
// schedule's working weekdays.
func IsWorkingDay(ws *WorkSchedule, date time.Time) bool {
	if ws == nil {
		return false
	}
	weekday := int(date.Weekday())
	for _, d := range ws.WorkingDays {
		if d == weekday {
			return true
		}
	}
	return false
}

func atClock(clock string, ref time.Time, loc *time.Location) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid schedule time %q: %w", clock, err)
	}
	refLocal := ref.In(loc)
	return time.Date(
		refLocal.Year(), refLocal.Month(), refLocal.Day(),
		t.Hour(), t.Minute(), 0, 0,
		loc,
	), nil
}
