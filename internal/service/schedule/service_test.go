package schedule

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/employee"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/schedule"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

type fakeScheduleRepo struct {
	schedules map[string]schedule.WorkSchedule
	seq       int
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{schedules: make(map[string]schedule.WorkSchedule)}
}

func (f *fakeScheduleRepo) Create(_ context.Context, ws schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	f.seq++
	ws.ID = fmt.Sprintf("ws-%d", f.seq)
	ws.CreatedAt = time.Now().UTC()
	ws.UpdatedAt = ws.CreatedAt
	f.schedules[ws.ID] = ws
	return ws, nil
}

func (f *fakeScheduleRepo) GetByID(_ context.Context, id string) (schedule.WorkSchedule, error) {
	ws, ok := f.schedules[id]
	if !ok {
		return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
	}
	return ws, nil
}

func (f *fakeScheduleRepo) GetActiveByEmployee(_ context.Context, employeeID string, at time.Time) (*schedule.WorkSchedule, error) {
	for _, ws := range f.schedules {
		if ws.EmployeeID != employeeID {
			continue
		}
		if at.Before(ws.EffectiveFrom) {
			continue
		}
		if ws.EffectiveTo != nil && at.After(*ws.EffectiveTo) {
			continue
		}
		found := ws
		return &found, nil
	}
	return nil, nil
}

func (f *fakeScheduleRepo) Update(_ context.Context, ws schedule.WorkSchedule) error {
	if _, ok := f.schedules[ws.ID]; !ok {
		return schedule.ErrScheduleNotFound
	}
	f.schedules[ws.ID] = ws
	return nil
}

func (f *fakeScheduleRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.schedules[id]; !ok {
		return schedule.ErrScheduleNotFound
	}
	delete(f.schedules, id)
	return nil
}

const testEmployeeID = "emp-1"

func newTestService() (schedule.WorkScheduleService, *fakeScheduleRepo) {
	repo := newFakeScheduleRepo()
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		testEmployeeID: {ID: testEmployeeID, Status: employee.StatusActive, TimeZone: "Asia/Jakarta"},
	}}
	return NewWorkScheduleService(repo, empRepo), repo
}

func createRequest() schedule.CreateWorkScheduleRequest {
	return schedule.CreateWorkScheduleRequest{
		EmployeeID:           testEmployeeID,
		StartTime:            "09:00",
		EndTime:              "18:00",
		BreakDurationMinutes: 60,
		WorkingDays:          []int{1, 2, 3, 4, 5},
		TimeZone:             "Asia/Jakarta",
		GracePeriodMinutes:   10,
		EffectiveFrom:        "2026-01-01",
	}
}

func TestCreateSchedule_ComputesExpectedDailyHours(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.CreateSchedule(context.Background(), createRequest())
	require.NoError(t, err)
	assert.InDelta(t, 8.0, resp.ExpectedDailyHours, 1e-9)
}

func TestCreateSchedule_RejectsSecondActiveSchedule(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateSchedule(ctx, createRequest())
	require.NoError(t, err)

	_, err = svc.CreateSchedule(ctx, createRequest())
	assert.ErrorIs(t, err, schedule.ErrActiveScheduleExists)
}

func TestCreateSchedule_UnknownEmployee(t *testing.T) {
	svc, _ := newTestService()

	req := createRequest()
	req.EmployeeID = "ghost"
	_, err := svc.CreateSchedule(context.Background(), req)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreateSchedule_InvalidTimeZone(t *testing.T) {
	svc, _ := newTestService()

	req := createRequest()
	req.TimeZone = "Mars/Olympus"
	_, err := svc.CreateSchedule(context.Background(), req)
	assert.Error(t, err)
}

func TestGetEmployeeSchedule_NoneActive(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetEmployeeSchedule(context.Background(), testEmployeeID)
	assert.ErrorIs(t, err, schedule.ErrScheduleNotFound)
}

func TestUpdateSchedule_PatchesFields(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateSchedule(ctx, createRequest())
	require.NoError(t, err)

	grace := 15
	endTime := "17:30"
	updated, err := svc.UpdateSchedule(ctx, schedule.UpdateWorkScheduleRequest{
		ID:                 created.ID,
		EndTime:            &endTime,
		GracePeriodMinutes: &grace,
	})
	require.NoError(t, err)
	assert.Equal(t, "17:30", updated.EndTime)
	assert.Equal(t, 15, updated.GracePeriodMinutes)
	assert.InDelta(t, 7.5, updated.ExpectedDailyHours, 1e-9)
}
