package attendance

import (
	"math"
	"time"
)

// ClassifyCheckIn derives the day's status from the expected and actual
// check-in instants. Arriving within the grace period keeps the day
// PRESENT; past it the day is LATE with the full minute difference from
// the expected instant, not from the grace boundary.
//
// The status is recomputed from timestamps on every check-in call rather
// than transitioned; check-out never changes it.
func ClassifyCheckIn(expected, actual time.Time, graceMinutes int) (Status, int) {
	diff := int(math.Floor(actual.Sub(expected).Minutes()))
	if diff > graceMinutes {
		return StatusLate, diff
	}
	return StatusPresent, 0
}

// EarlyDepartureMinutes returns how many minutes before the expected
// check-out the employee left, when past the grace period; zero otherwise.
func EarlyDepartureMinutes(expected, actual time.Time, graceMinutes int) int {
	diff := int(math.Floor(expected.Sub(actual).Minutes()))
	if diff > graceMinutes {
		return diff
	}
	return 0
}

// ClosedBreakMinutes sums the durations of breaks that have been closed.
// Open breaks contribute nothing until an end time is recorded.
func ClosedBreakMinutes(breaks []Break) int {
	total := 0
	for _, b := range breaks {
		if b.EndTime != nil && b.DurationMinutes != nil {
			total += *b.DurationMinutes
		}
	}
	return total
}

// Overtime is work time beyond the expected daily hours; never negative.
func Overtime(workHours, expectedDailyHours float64) float64 {
	return math.Max(0, workHours-expectedDailyHours)
}
