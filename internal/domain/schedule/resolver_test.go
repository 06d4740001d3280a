package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchedule() *WorkSchedule {
	return &WorkSchedule{
		ID:                   "ws-1",
		EmployeeID:           "emp-1",
		StartTime:            "09:00",
		EndTime:              "18:00",
		BreakDurationMinutes: 60,
		WorkingDays:          []int{1, 2, 3, 4, 5},
		TimeZone:             "Asia/Jakarta",
		GracePeriodMinutes:   10,
	}
}

func TestExpectedCheckIn(t *testing.T) {
	ws := testSchedule()
	loc := Location(ws)
	ref := time.Date(2024, 3, 11, 13, 45, 12, 0, loc)

	got, err := ExpectedCheckIn(ws, ref, loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 11, 9, 0, 0, 0, loc), got)
}

func TestExpectedCheckOut(t *testing.T) {
	ws := testSchedule()
	loc := Location(ws)
	ref := time.Date(2024, 3, 11, 8, 0, 0, 0, loc)

	got, err := ExpectedCheckOut(ws, ref, loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 11, 18, 0, 0, 0, loc), got)
}

func TestExpectedCheckIn_RefInOtherZone(t *testing.T) {
	// The reference instant may arrive in UTC; expected times are anchored
	// to the schedule's local calendar date.
	ws := testSchedule()
	loc := Location(ws)
	ref := time.Date(2024, 3, 11, 1, 30, 0, 0, time.UTC) // 08:30 in Jakarta

	got, err := ExpectedCheckIn(ws, ref, loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 11, 9, 0, 0, 0, loc), got)
}

func TestExpectedCheckIn_InvalidClock(t *testing.T) {
	ws := testSchedule()
	ws.StartTime = "9am"

	_, err := ExpectedCheckIn(ws, time.Now(), time.UTC)
	assert.Error(t, err)
}

func TestExpectedDailyWorkHours(t *testing.T) {
	cases := []struct {
		name string
		ws   *WorkSchedule
		want float64
	}{
		{"nil schedule defaults to 8", nil, 8.0},
		{"nine to six minus hour break", testSchedule(), 8.0},
		{
			"half day no break",
			&WorkSchedule{StartTime: "09:00", EndTime: "13:00"},
			4.0,
		},
		{
			"unparseable falls back to default",
			&WorkSchedule{StartTime: "morning", EndTime: "18:00"},
			8.0,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, ExpectedDailyWorkHours(c.ws), 1e-9)
		})
	}
}

func TestLocation_FallbackToUTC(t *testing.T) {
	ws := testSchedule()
	ws.TimeZone = "Nowhere/Invalid"
	assert.Equal(t, time.UTC, Location(ws))
	assert.Equal(t, time.UTC, Location(nil))
}

func TestIsWorkingDay(t *testing.T) {
	ws := testSchedule() // Mon-Fri

	monday := time.Date(2024, 3, 11, 12, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.True(t, IsWorkingDay(ws, monday))
	assert.False(t, IsWorkingDay(ws, sunday))
	assert.False(t, IsWorkingDay(nil, monday))
}
