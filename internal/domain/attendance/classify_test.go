package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCheckIn_GraceBoundary(t *testing.T) {
	expected := time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)
	grace := 10

	cases := []struct {
		name       string
		actual     time.Time
		wantStatus Status
		wantLateBy int
	}{
		{"on time", expected, StatusPresent, 0},
		{"before expected", expected.Add(-30 * time.Minute), StatusPresent, 0},
		{"exactly at grace limit", expected.Add(10 * time.Minute), StatusPresent, 0},
		{"one minute past grace", expected.Add(11 * time.Minute), StatusLate, 11},
		{"twelve minutes late", expected.Add(12 * time.Minute), StatusLate, 12},
		{"hours late", expected.Add(2 * time.Hour), StatusLate, 120},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			status, lateBy := ClassifyCheckIn(expected, c.actual, grace)
			assert.Equal(t, c.wantStatus, status)
			assert.Equal(t, c.wantLateBy, lateBy)
		})
	}
}

func TestClassifyCheckIn_ZeroGrace(t *testing.T) {
	expected := time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)

	status, lateBy := ClassifyCheckIn(expected, expected.Add(time.Minute), 0)
	assert.Equal(t, StatusLate, status)
	assert.Equal(t, 1, lateBy)

	status, lateBy = ClassifyCheckIn(expected, expected, 0)
	assert.Equal(t, StatusPresent, status)
	assert.Equal(t, 0, lateBy)
}

func TestEarlyDepartureMinutes(t *testing.T) {
	expected := time.Date(2024, 3, 11, 18, 0, 0, 0, time.UTC)
	grace := 10

	assert.Equal(t, 0, EarlyDepartureMinutes(expected, expected, grace))
	assert.Equal(t, 0, EarlyDepartureMinutes(expected, expected.Add(-10*time.Minute), grace))
	assert.Equal(t, 30, EarlyDepartureMinutes(expected, expected.Add(-30*time.Minute), grace))
	// Leaving after the expected time is never an early departure.
	assert.Equal(t, 0, EarlyDepartureMinutes(expected, expected.Add(time.Hour), grace))
}

func TestClosedBreakMinutes(t *testing.T) {
	end := time.Date(2024, 3, 11, 12, 30, 0, 0, time.UTC)
	thirty := 30
	fifteen := 15

	breaks := []Break{
		{Type: BreakTypeLunch, EndTime: &end, DurationMinutes: &thirty},
		{Type: BreakTypeCoffee, EndTime: &end, DurationMinutes: &fifteen},
		{Type: BreakTypePersonal}, // open break, no contribution
	}

	assert.Equal(t, 45, ClosedBreakMinutes(breaks))
	assert.Equal(t, 0, ClosedBreakMinutes(nil))
}

func TestOvertime(t *testing.T) {
	assert.InDelta(t, 1.5, Overtime(9.5, 8.0), 1e-9)
	assert.InDelta(t, 0.0, Overtime(7.0, 8.0), 1e-9)
	assert.InDelta(t, 0.0, Overtime(8.0, 8.0), 1e-9)
}
