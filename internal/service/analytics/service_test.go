package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/analytics"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/holiday"
)

// ========================================
// In-memory fakes
// ========================================

type fakeAttendanceRepo struct {
	records []attendance.Record
}

func (f *fakeAttendanceRepo) Upsert(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, _ string) (attendance.Record, error) {
	return attendance.Record{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, _ string, _ time.Time) (*attendance.Record, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) List(_ context.Context, _ attendance.RecordFilter) ([]attendance.Record, int64, error) {
	return f.records, int64(len(f.records)), nil
}

func (f *fakeAttendanceRepo) ListForRange(_ context.Context, from, to time.Time, employeeID *string) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.Date.Before(from) || rec.Date.After(to) {
			continue
		}
		if employeeID != nil && rec.EmployeeID != *employeeID {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, _ attendance.Record) error { return nil }
func (f *fakeAttendanceRepo) Delete(_ context.Context, _ string) error            { return nil }

type fakeHolidayRepo struct {
	holidays []holiday.Holiday
}

func (f *fakeHolidayRepo) Create(_ context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	f.holidays = append(f.holidays, h)
	return h, nil
}

func (f *fakeHolidayRepo) GetByID(_ context.Context, _ string) (holiday.Holiday, error) {
	return holiday.Holiday{}, holiday.ErrHolidayNotFound
}

func (f *fakeHolidayRepo) GetByDate(_ context.Context, date time.Time) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.holidays {
		if h.Matches(date) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHolidayRepo) List(_ context.Context) ([]holiday.Holiday, error) {
	return f.holidays, nil
}

func (f *fakeHolidayRepo) Update(_ context.Context, _ holiday.Holiday) error { return nil }
func (f *fakeHolidayRepo) Delete(_ context.Context, _ string) error          { return nil }

// ========================================
// Helpers
// ========================================

func day(yyyy int, mm time.Month, dd int) time.Time {
	return time.Date(yyyy, mm, dd, 0, 0, 0, 0, time.UTC)
}

func record(employeeID string, date time.Time, status attendance.Status) attendance.Record {
	return attendance.Record{EmployeeID: employeeID, Date: date, Status: status}
}

func withHours(rec attendance.Record, work, overtime float64) attendance.Record {
	rec.WorkHours = &work
	rec.Overtime = &overtime
	return rec
}

// ========================================
// Summary
// ========================================

func TestGetSummary_CountsByStatus(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.Record{
		record("emp-1", day(2026, 3, 2), attendance.StatusPresent),
		record("emp-1", day(2026, 3, 3), attendance.StatusLate),
		record("emp-2", day(2026, 3, 3), attendance.StatusAbsent),
		record("emp-2", day(2026, 3, 4), attendance.StatusOnLeave),
		record("emp-1", day(2026, 4, 1), attendance.StatusPresent), // outside range
	}}
	svc := NewAnalyticsService(attRepo, &fakeHolidayRepo{})

	resp, err := svc.GetSummary(context.Background(), analytics.SummaryRequest{
		StartDate: "2026-03-01",
		EndDate:   "2026-03-31",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Total)
	assert.Equal(t, 1, resp.Present)
	assert.Equal(t, 1, resp.Late)
	assert.Equal(t, 1, resp.Absent)
	assert.Equal(t, 1, resp.OnLeave)
}

func TestGetSummary_EmployeeFilter(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.Record{
		record("emp-1", day(2026, 3, 2), attendance.StatusPresent),
		record("emp-2", day(2026, 3, 2), attendance.StatusAbsent),
	}}
	svc := NewAnalyticsService(attRepo, &fakeHolidayRepo{})

	empID := "emp-1"
	resp, err := svc.GetSummary(context.Background(), analytics.SummaryRequest{
		StartDate:  "2026-03-01",
		EndDate:    "2026-03-31",
		EmployeeID: &empID,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, 0, resp.Absent)
}

func TestGetSummary_InvalidRange(t *testing.T) {
	svc := NewAnalyticsService(&fakeAttendanceRepo{}, &fakeHolidayRepo{})

	_, err := svc.GetSummary(context.Background(), analytics.SummaryRequest{
		StartDate: "2026-03-31",
		EndDate:   "2026-03-01",
	})
	assert.Error(t, err)
}

// ========================================
// Advanced summary
// ========================================

func TestGetAdvancedSummary_AveragesOverPopulatedOnly(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.Record{
		withHours(record("emp-1", day(2026, 3, 2), attendance.StatusPresent), 8.0, 0),
		withHours(record("emp-1", day(2026, 3, 3), attendance.StatusPresent), 8.5, 0.5),
		// No hours recorded; must not drag the average down.
		record("emp-1", day(2026, 3, 4), attendance.StatusAbsent),
	}}
	svc := NewAnalyticsService(attRepo, &fakeHolidayRepo{})

	resp, err := svc.GetAdvancedSummary(context.Background(), analytics.SummaryRequest{
		StartDate: "2026-03-01",
		EndDate:   "2026-03-31",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
	assert.InDelta(t, 8.25, resp.AvgWorkHours, 1e-9)
	assert.InDelta(t, 0.25, resp.AvgOvertime, 1e-9)
}

func TestGetAdvancedSummary_RoundsAggregateToTwoDecimals(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.Record{
		withHours(record("emp-1", day(2026, 3, 2), attendance.StatusPresent), 8.0, 0),
		withHours(record("emp-1", day(2026, 3, 3), attendance.StatusPresent), 8.0, 0),
		withHours(record("emp-1", day(2026, 3, 4), attendance.StatusPresent), 9.0, 1.0),
	}}
	svc := NewAnalyticsService(attRepo, &fakeHolidayRepo{})

	resp, err := svc.GetAdvancedSummary(context.Background(), analytics.SummaryRequest{
		StartDate: "2026-03-01",
		EndDate:   "2026-03-31",
	})
	require.NoError(t, err)
	// 25/3 rounds to 8.33 once, on the aggregate.
	assert.InDelta(t, 8.33, resp.AvgWorkHours, 1e-9)
	assert.InDelta(t, 0.33, resp.AvgOvertime, 1e-9)
}

func TestGetAdvancedSummary_CountsHolidaysIncludingRecurring(t *testing.T) {
	holRepo := &fakeHolidayRepo{holidays: []holiday.Holiday{
		{ID: "h-1", Name: "Nyepi", Date: day(2026, 3, 19), Type: holiday.TypePublic},
		{ID: "h-2", Name: "New Year", Date: day(2020, 1, 1), Type: holiday.TypePublic, IsRecurring: true},
		{ID: "h-3", Name: "Outside", Date: day(2026, 6, 1), Type: holiday.TypeCompany},
	}}
	svc := NewAnalyticsService(&fakeAttendanceRepo{}, holRepo)

	resp, err := svc.GetAdvancedSummary(context.Background(), analytics.SummaryRequest{
		StartDate: "2026-01-01",
		EndDate:   "2026-03-31",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Holidays)
}

// ========================================
// Trends
// ========================================

func TestGetTrends_GroupByDay(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.Record{
		record("emp-1", day(2026, 3, 2), attendance.StatusPresent),
		record("emp-2", day(2026, 3, 2), attendance.StatusLate),
		record("emp-1", day(2026, 3, 3), attendance.StatusPresent),
	}}
	svc := NewAnalyticsService(attRepo, &fakeHolidayRepo{})

	resp, err := svc.GetTrends(context.Background(), analytics.TrendsRequest{
		StartDate: "2026-03-01",
		EndDate:   "2026-03-31",
	})
	require.NoError(t, err)
	assert.Equal(t, analytics.GroupByDay, resp.GroupBy)
	require.Len(t, resp.Buckets, 2)
	assert.Equal(t, "2026-03-02", resp.Buckets[0].Bucket)
	assert.Equal(t, 2, resp.Buckets[0].Total)
	assert.Equal(t, 1, resp.Buckets[0].Late)
	assert.Equal(t, "2026-03-03", resp.Buckets[1].Bucket)
}

func TestGetTrends_WeeksStartOnSunday(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.Record{
		// Sat 2026-03-07 and Sun 2026-03-08 land in different weeks.
		record("emp-1", day(2026, 3, 7), attendance.StatusPresent),
		record("emp-1", day(2026, 3, 8), attendance.StatusPresent),
	}}
	svc := NewAnalyticsService(attRepo, &fakeHolidayRepo{})

	resp, err := svc.GetTrends(context.Background(), analytics.TrendsRequest{
		StartDate: "2026-03-01",
		EndDate:   "2026-03-31",
		GroupBy:   "week",
	})
	require.NoError(t, err)
	require.Len(t, resp.Buckets, 2)
	assert.Equal(t, "2026-03-01", resp.Buckets[0].Bucket)
	assert.Equal(t, "2026-03-08", resp.Buckets[1].Bucket)
}

func TestGetTrends_GroupByMonth(t *testing.T) {
	attRepo := &fakeAttendanceRepo{records: []attendance.Record{
		record("emp-1", day(2026, 3, 2), attendance.StatusPresent),
		record("emp-1", day(2026, 3, 30), attendance.StatusLate),
		record("emp-1", day(2026, 4, 1), attendance.StatusPresent),
	}}
	svc := NewAnalyticsService(attRepo, &fakeHolidayRepo{})

	resp, err := svc.GetTrends(context.Background(), analytics.TrendsRequest{
		StartDate: "2026-03-01",
		EndDate:   "2026-04-30",
		GroupBy:   "month",
	})
	require.NoError(t, err)
	require.Len(t, resp.Buckets, 2)
	assert.Equal(t, "2026-03", resp.Buckets[0].Bucket)
	assert.Equal(t, 2, resp.Buckets[0].Total)
	assert.Equal(t, "2026-04", resp.Buckets[1].Bucket)
	assert.Equal(t, 1, resp.Buckets[1].Total)
}
