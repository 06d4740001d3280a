package analytics

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/analytics"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/holiday"
)

type AnalyticsServiceImpl struct {
	attendance.AttendanceRepository
	holiday.HolidayRepository
}

func NewAnalyticsService(
	attendanceRepo attendance.AttendanceRepository,
	holidayRepo holiday.HolidayRepository,
) analytics.AnalyticsService {
	return &AnalyticsServiceImpl{
		AttendanceRepository: attendanceRepo,
		HolidayRepository:    holidayRepo,
	}
}

// GetSummary implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) GetSummary(ctx context.Context, req analytics.SummaryRequest) (analytics.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return analytics.SummaryResponse{}, err
	}

	from, _ := time.Parse("2006-01-02", req.StartDate)
	to, _ := time.Parse("2006-01-02", req.EndDate)

	records, err := s.AttendanceRepository.ListForRange(ctx, from, to, req.EmployeeID)
	if err != nil {
		return analytics.SummaryResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	resp := analytics.SummaryResponse{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Total:     len(records),
	}
	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent:
			resp.Present++
		case attendance.StatusAbsent:
			resp.Absent++
		case attendance.StatusLate:
			resp.Late++
		case attendance.StatusOnLeave:
			resp.OnLeave++
		}
	}

	return resp, nil
}

// GetAdvancedSummary implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) GetAdvancedSummary(ctx context.Context, req analytics.SummaryRequest) (analytics.AdvancedSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return analytics.AdvancedSummaryResponse{}, err
	}

	from, _ := time.Parse("2006-01-02", req.StartDate)
	to, _ := time.Parse("2006-01-02", req.EndDate)

	records, err := s.AttendanceRepository.ListForRange(ctx, from, to, req.EmployeeID)
	if err != nil {
		return analytics.AdvancedSummaryResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	resp := analytics.AdvancedSummaryResponse{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Total:     len(records),
	}

	// Averages run over records that actually carry the value, not over
	// the whole range. Rounding happens once, on the aggregate.
	var workSum, overtimeSum float64
	var workCount, overtimeCount int

	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent:
			resp.Present++
		case attendance.StatusAbsent:
			resp.Absent++
		case attendance.StatusLate:
			resp.Late++
		case attendance.StatusOnLeave:
			resp.OnLeave++
		case attendance.StatusEarlyDeparture:
			resp.EarlyDeparture++
		case attendance.StatusHalfDay:
			resp.HalfDay++
		}
		if rec.WorkHours != nil {
			workSum += *rec.WorkHours
			workCount++
		}
		if rec.Overtime != nil {
			overtimeSum += *rec.Overtime
			overtimeCount++
		}
	}

	if workCount > 0 {
		resp.AvgWorkHours = round2(workSum / float64(workCount))
	}
	if overtimeCount > 0 {
		resp.AvgOvertime = round2(overtimeSum / float64(overtimeCount))
	}

	holidays, err := s.HolidayRepository.List(ctx)
	if err != nil {
		return analytics.AdvancedSummaryResponse{}, fmt.Errorf("failed to list holidays: %w", err)
	}
	resp.Holidays = countHolidaysInRange(holidays, from, to)

	return resp, nil
}

// GetTrends implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) GetTrends(ctx context.Context, req analytics.TrendsRequest) (analytics.TrendsResponse, error) {
	if err := req.Validate(); err != nil {
		return analytics.TrendsResponse{}, err
	}
	groupBy := strings.ToLower(req.GroupBy)

	from, _ := time.Parse("2006-01-02", req.StartDate)
	to, _ := time.Parse("2006-01-02", req.EndDate)

	records, err := s.AttendanceRepository.ListForRange(ctx, from, to, req.EmployeeID)
	if err != nil {
		return analytics.TrendsResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	buckets := make(map[string]*analytics.TrendBucket)
	for _, rec := range records {
		key := bucketKey(rec.Date, groupBy)
		b, ok := buckets[key]
		if !ok {
			b = &analytics.TrendBucket{Bucket: key}
			buckets[key] = b
		}
		switch rec.Status {
		case attendance.StatusPresent:
			b.Present++
		case attendance.StatusAbsent:
			b.Absent++
		case attendance.StatusLate:
			b.Late++
		case attendance.StatusOnLeave:
			b.OnLeave++
		case attendance.StatusEarlyDeparture:
			b.EarlyDeparture++
		case attendance.StatusHalfDay:
			b.HalfDay++
		}
		b.Total++
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	resp := analytics.TrendsResponse{
		GroupBy: groupBy,
		Buckets: make([]analytics.TrendBucket, 0, len(keys)),
	}
	for _, key := range keys {
		resp.Buckets = append(resp.Buckets, *buckets[key])
	}

	return resp, nil
}

// bucketKey maps a record's date to its trend bucket label. Weeks start on
// Sunday and are labeled by that Sunday's date.
func bucketKey(date time.Time, groupBy string) string {
	switch groupBy {
	case analytics.GroupByWeek:
		sunday := date.AddDate(0, 0, -int(date.Weekday()))
		return sunday.Format("2006-01-02")
	case analytics.GroupByMonth:
		return date.Format("2006-01")
	default:
		return date.Format("2006-01-02")
	}
}

// countHolidaysInRange counts the distinct days in [from, to] on which a
// holiday falls, expanding recurring holidays into each covered year.
func countHolidaysInRange(holidays []holiday.Holiday, from, to time.Time) int {
	seen := make(map[string]bool)
	for _, h := range holidays {
		if h.IsRecurring {
			for year := from.Year(); year <= to.Year(); year++ {
				occurrence := time.Date(year, h.Date.Month(), h.Date.Day(), 0, 0, 0, 0, time.UTC)
				if !occurrence.Before(from) && !occurrence.After(to) {
					seen[occurrence.Format("2006-01-02")] = true
				}
			}
			continue
		}
		if !h.Date.Before(from) && !h.Date.After(to) {
			seen[h.Date.Format("2006-01-02")] = true
		}
	}
	return len(seen)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
