package attendance

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/employee"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/schedule"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	attendance.BreakRepository
	employee.EmployeeRepository
	schedule.WorkScheduleRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	breakRepo attendance.BreakRepository,
	employeeRepo employee.EmployeeRepository,
	workScheduleRepo schedule.WorkScheduleRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository:   attendanceRepo,
		BreakRepository:        breakRepo,
		EmployeeRepository:     employeeRepo,
		WorkScheduleRepository: workScheduleRepo,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// locationFor picks the wall-clock zone for day-window arithmetic: the
// schedule's zone when one exists, the employee's otherwise, UTC as the
// last resort.
func locationFor(ws *schedule.WorkSchedule, emp employee.Employee) *time.Location {
	if ws != nil {
		return schedule.Location(ws)
	}
	loc, err := time.LoadLocation(emp.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// dayKey truncates a local instant to its calendar day, normalized to UTC
// midnight for the DATE column.
func dayKey(local time.Time) time.Time {
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

func resolveTimestamp(raw *string) time.Time {
	if raw != nil && *raw != "" {
		if t, err := time.Parse(time.RFC3339, *raw); err == nil {
			return t
		}
	}
	return time.Now().UTC()
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID string, req attendance.CheckInRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if !emp.CanRecordAttendance() {
		return attendance.RecordResponse{}, employee.ErrEmployeeInactive
	}

	now := resolveTimestamp(req.Timestamp)

	ws, err := a.WorkScheduleRepository.GetActiveByEmployee(ctx, employeeID, now)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get active schedule: %w", err)
	}

	loc := locationFor(ws, emp)
	nowLocal := now.In(loc)
	day := dayKey(nowLocal)

	status := attendance.StatusPresent
	var expectedIn, expectedOut *time.Time
	var lateBy *int

	if ws != nil {
		expIn, err := schedule.ExpectedCheckIn(ws, nowLocal, loc)
		if err != nil {
			return attendance.RecordResponse{}, err
		}
		expOut, err := schedule.ExpectedCheckOut(ws, nowLocal, loc)
		if err != nil {
			return attendance.RecordResponse{}, err
		}
		expectedIn = &expIn
		expectedOut = &expOut

		var late int
		status, late = attendance.ClassifyCheckIn(expIn, nowLocal, ws.GracePeriodMinutes)
		if status == attendance.StatusLate {
			lateBy = &late
		}
	}

	// A re-check-in on the same day overwrites the check-in fields of the
	// existing record instead of being rejected.
	rec := attendance.Record{EmployeeID: employeeID, Date: day}
	if existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, day); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to look up today's record: %w", err)
	} else if existing != nil {
		rec = *existing
	}

	rec.CheckIn = &now
	rec.Status = status
	rec.ExpectedCheckIn = expectedIn
	rec.ExpectedCheckOut = expectedOut
	rec.LateByMinutes = lateBy
	rec.Location = req.Location
	rec.Latitude = req.Latitude
	rec.Longitude = req.Longitude
	if req.LocationType != nil {
		lt := attendance.LocationType(strings.ToUpper(*req.LocationType))
		rec.LocationType = &lt
	}

	saved, err := a.AttendanceRepository.Upsert(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to save attendance record: %w", err)
	}

	return mapRecordToResponse(saved), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID string, req attendance.CheckOutRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	now := resolveTimestamp(req.Timestamp)

	ws, err := a.WorkScheduleRepository.GetActiveByEmployee(ctx, employeeID, now)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get active schedule: %w", err)
	}

	loc := locationFor(ws, emp)
	nowLocal := now.In(loc)
	day := dayKey(nowLocal)

	rec, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to look up today's record: %w", err)
	}
	if rec == nil || rec.CheckIn == nil {
		return attendance.RecordResponse{}, attendance.ErrNotCheckedInToday
	}

	breaks, err := a.BreakRepository.ListByAttendance(ctx, rec.ID)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to list breaks: %w", err)
	}

	totalHours := now.Sub(*rec.CheckIn).Hours()
	workHours := totalHours - float64(attendance.ClosedBreakMinutes(breaks))/60.0
	overtime := attendance.Overtime(workHours, schedule.ExpectedDailyWorkHours(ws))

	rec.CheckOut = &now
	rec.TotalHours = &totalHours
	rec.WorkHours = &workHours
	rec.Overtime = &overtime
	if req.Location != nil {
		rec.Location = req.Location
	}
	if req.Latitude != nil {
		rec.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		rec.Longitude = req.Longitude
	}

	// Early departure only flags minutes; the day's status stays whatever
	// check-in computed.
	if ws != nil {
		expOut, err := schedule.ExpectedCheckOut(ws, nowLocal, loc)
		if err != nil {
			return attendance.RecordResponse{}, err
		}
		rec.ExpectedCheckOut = &expOut
		if early := attendance.EarlyDepartureMinutes(expOut, nowLocal, ws.GracePeriodMinutes); early > 0 {
			rec.EarlyByMinutes = &early
		}
	}

	if err := a.AttendanceRepository.Update(ctx, *rec); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return mapRecordToResponse(*rec), nil
}

// RecordAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) RecordAttendance(ctx context.Context, req attendance.RecordAttendanceRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if !emp.CanRecordAttendance() {
		return attendance.RecordResponse{}, employee.ErrEmployeeInactive
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	rec := attendance.Record{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     attendance.Status(strings.ToUpper(req.Status)),
		Location:   req.Location,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Notes:      req.Notes,
	}
	if req.LocationType != nil {
		lt := attendance.LocationType(strings.ToUpper(*req.LocationType))
		rec.LocationType = &lt
	}
	if req.CheckIn != nil && *req.CheckIn != "" {
		t, _ := time.Parse(time.RFC3339, *req.CheckIn)
		rec.CheckIn = &t
	}
	if req.CheckOut != nil && *req.CheckOut != "" {
		t, _ := time.Parse(time.RFC3339, *req.CheckOut)
		rec.CheckOut = &t
	}
	if rec.CheckIn != nil && rec.CheckOut != nil {
		totalHours := rec.CheckOut.Sub(*rec.CheckIn).Hours()
		rec.TotalHours = &totalHours
		rec.WorkHours = &totalHours
	}

	saved, err := a.AttendanceRepository.Upsert(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to save attendance record: %w", err)
	}

	return mapRecordToResponse(saved), nil
}

// UpdateRecord implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) UpdateRecord(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	rec, err := a.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	if req.EmployeeID != nil && *req.EmployeeID != rec.EmployeeID {
		emp, err := a.EmployeeRepository.GetByID(ctx, *req.EmployeeID)
		if err != nil {
			return attendance.RecordResponse{}, err
		}
		if !emp.CanRecordAttendance() {
			return attendance.RecordResponse{}, employee.ErrEmployeeInactive
		}
		rec.EmployeeID = *req.EmployeeID
	}

	if req.CheckIn != nil && *req.CheckIn != "" {
		t, _ := time.Parse(time.RFC3339, *req.CheckIn)
		rec.CheckIn = &t
	}
	if req.CheckOut != nil && *req.CheckOut != "" {
		t, _ := time.Parse(time.RFC3339, *req.CheckOut)
		rec.CheckOut = &t
	}
	if req.Status != nil {
		rec.Status = attendance.Status(strings.ToUpper(*req.Status))
	}
	if req.Location != nil {
		rec.Location = req.Location
	}
	if req.Latitude != nil {
		rec.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		rec.Longitude = req.Longitude
	}
	if req.LocationType != nil {
		lt := attendance.LocationType(strings.ToUpper(*req.LocationType))
		rec.LocationType = &lt
	}
	if req.Notes != nil {
		rec.Notes = req.Notes
	}

	// Recompute hour totals when both stamps are present after the edit.
	if rec.CheckIn != nil && rec.CheckOut != nil {
		breaks, err := a.BreakRepository.ListByAttendance(ctx, rec.ID)
		if err != nil {
			return attendance.RecordResponse{}, fmt.Errorf("failed to list breaks: %w", err)
		}
		totalHours := rec.CheckOut.Sub(*rec.CheckIn).Hours()
		workHours := totalHours - float64(attendance.ClosedBreakMinutes(breaks))/60.0
		rec.TotalHours = &totalHours
		rec.WorkHours = &workHours
	}

	if err := a.AttendanceRepository.Update(ctx, rec); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return mapRecordToResponse(rec), nil
}

// GetRecord implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetRecord(ctx context.Context, id string) (attendance.RecordResponse, error) {
	rec, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	return mapRecordToResponse(rec), nil
}

// ListRecords implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListRecords(ctx context.Context, filter attendance.RecordFilter) (attendance.ListRecordsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListRecordsResponse{}, err
	}

	records, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListRecordsResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}

	return attendance.ListRecordsResponse{
		TotalCount: total,
		Take:       filter.Take,
		Skip:       filter.Skip,
		Records:    responses,
	}, nil
}

// DeleteRecord implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	return a.AttendanceRepository.Delete(ctx, id)
}

// CreateBreak implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CreateBreak(ctx context.Context, req attendance.CreateBreakRequest) (attendance.BreakResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.BreakResponse{}, err
	}

	rec, err := a.AttendanceRepository.GetByID(ctx, req.AttendanceID)
	if err != nil {
		return attendance.BreakResponse{}, err
	}

	start, _ := time.Parse(time.RFC3339, req.StartTime)
	if start.Format("2006-01-02") != rec.Date.Format("2006-01-02") {
		return attendance.BreakResponse{}, attendance.ErrBreakOutsideAttendanceDay
	}

	b := attendance.Break{
		AttendanceID: rec.ID,
		Type:         attendance.BreakType(strings.ToUpper(req.Type)),
		StartTime:    start,
		Notes:        req.Notes,
	}

	if req.EndTime != nil && *req.EndTime != "" {
		end, _ := time.Parse(time.RFC3339, *req.EndTime)
		if !end.After(start) {
			return attendance.BreakResponse{}, attendance.ErrBreakEndBeforeStart
		}
		duration := int(math.Floor(end.Sub(start).Minutes()))
		b.EndTime = &end
		b.DurationMinutes = &duration
	}

	saved, err := a.BreakRepository.Create(ctx, b)
	if err != nil {
		return attendance.BreakResponse{}, fmt.Errorf("failed to create break: %w", err)
	}

	return mapBreakToResponse(saved), nil
}

// UpdateBreak implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) UpdateBreak(ctx context.Context, req attendance.UpdateBreakRequest) (attendance.BreakResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.BreakResponse{}, err
	}

	b, err := a.BreakRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.BreakResponse{}, err
	}

	if req.Type != nil {
		b.Type = attendance.BreakType(strings.ToUpper(*req.Type))
	}
	if req.Notes != nil {
		b.Notes = req.Notes
	}

	if req.StartTime != nil && *req.StartTime != "" {
		start, _ := time.Parse(time.RFC3339, *req.StartTime)
		rec, err := a.AttendanceRepository.GetByID(ctx, b.AttendanceID)
		if err != nil {
			return attendance.BreakResponse{}, err
		}
		if start.Format("2006-01-02") != rec.Date.Format("2006-01-02") {
			return attendance.BreakResponse{}, attendance.ErrBreakOutsideAttendanceDay
		}
		b.StartTime = start
	}

	if req.EndTime != nil && *req.EndTime != "" {
		end, _ := time.Parse(time.RFC3339, *req.EndTime)
		b.EndTime = &end
	}

	// Re-derive the duration whenever the break is closed.
	if b.EndTime != nil {
		if !b.EndTime.After(b.StartTime) {
			return attendance.BreakResponse{}, attendance.ErrBreakEndBeforeStart
		}
		duration := int(math.Floor(b.EndTime.Sub(b.StartTime).Minutes()))
		b.DurationMinutes = &duration
	}

	if err := a.BreakRepository.Update(ctx, b); err != nil {
		return attendance.BreakResponse{}, fmt.Errorf("failed to update break: %w", err)
	}

	return mapBreakToResponse(b), nil
}

// DeleteBreak implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DeleteBreak(ctx context.Context, id string) error {
	return a.BreakRepository.Delete(ctx, id)
}

// ListBreaks implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListBreaks(ctx context.Context, attendanceID string) ([]attendance.BreakResponse, error) {
	if _, err := a.AttendanceRepository.GetByID(ctx, attendanceID); err != nil {
		return nil, err
	}

	breaks, err := a.BreakRepository.ListByAttendance(ctx, attendanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list breaks: %w", err)
	}

	responses := make([]attendance.BreakResponse, 0, len(breaks))
	for _, b := range breaks {
		responses = append(responses, mapBreakToResponse(b))
	}
	return responses, nil
}

// mapRecordToResponse converts a Record entity to RecordResponse.
func mapRecordToResponse(rec attendance.Record) attendance.RecordResponse {
	var locationType *string
	if rec.LocationType != nil {
		lt := string(*rec.LocationType)
		locationType = &lt
	}

	return attendance.RecordResponse{
		ID:               rec.ID,
		EmployeeID:       rec.EmployeeID,
		EmployeeName:     rec.EmployeeName,
		Date:             rec.Date.Format("2006-01-02"),
		CheckIn:          timePtrToString(rec.CheckIn),
		CheckOut:         timePtrToString(rec.CheckOut),
		Status:           string(rec.Status),
		ExpectedCheckIn:  timePtrToString(rec.ExpectedCheckIn),
		ExpectedCheckOut: timePtrToString(rec.ExpectedCheckOut),
		LateByMinutes:    rec.LateByMinutes,
		EarlyByMinutes:   rec.EarlyByMinutes,
		WorkHours:        rec.WorkHours,
		TotalHours:       rec.TotalHours,
		Overtime:         rec.Overtime,
		Location:         rec.Location,
		Latitude:         rec.Latitude,
		Longitude:        rec.Longitude,
		LocationType:     locationType,
		IsRegularized:    rec.IsRegularized,
		RegularizationID: rec.RegularizationID,
		Notes:            rec.Notes,
		CreatedAt:        rec.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:        rec.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// mapBreakToResponse converts a Break entity to BreakResponse.
func mapBreakToResponse(b attendance.Break) attendance.BreakResponse {
	start := b.StartTime.Format("2006-01-02 15:04:05")
	return attendance.BreakResponse{
		ID:              b.ID,
		AttendanceID:    b.AttendanceID,
		Type:            string(b.Type),
		StartTime:       start,
		EndTime:         timePtrToString(b.EndTime),
		DurationMinutes: b.DurationMinutes,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:       b.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
