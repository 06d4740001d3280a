package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/employee"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/schedule"
)

type WorkScheduleServiceImpl struct {
	schedule.WorkScheduleRepository
	employee.EmployeeRepository
}

func NewWorkScheduleService(
	workScheduleRepo schedule.WorkScheduleRepository,
	employeeRepo employee.EmployeeRepository,
) schedule.WorkScheduleService {
	return &WorkScheduleServiceImpl{
		WorkScheduleRepository: workScheduleRepo,
		EmployeeRepository:     employeeRepo,
	}
}

// CreateSchedule implements schedule.WorkScheduleService.
func (s *WorkScheduleServiceImpl) CreateSchedule(ctx context.Context, req schedule.CreateWorkScheduleRequest) (schedule.WorkScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	effectiveFrom, _ := time.Parse("2006-01-02", req.EffectiveFrom)

	// One active schedule per employee at any instant.
	active, err := s.WorkScheduleRepository.GetActiveByEmployee(ctx, req.EmployeeID, effectiveFrom)
	if err != nil {
		return schedule.WorkScheduleResponse{}, fmt.Errorf("failed to check active schedule: %w", err)
	}
	if active != nil {
		return schedule.WorkScheduleResponse{}, schedule.ErrActiveScheduleExists
	}

	ws := schedule.WorkSchedule{
		EmployeeID:           req.EmployeeID,
		StartTime:            req.StartTime,
		EndTime:              req.EndTime,
		BreakDurationMinutes: req.BreakDurationMinutes,
		WorkingDays:          req.WorkingDays,
		TimeZone:             req.TimeZone,
		IsFlexible:           req.IsFlexible,
		GracePeriodMinutes:   req.GracePeriodMinutes,
		EffectiveFrom:        effectiveFrom,
	}
	if req.EffectiveTo != nil && *req.EffectiveTo != "" {
		t, _ := time.Parse("2006-01-02", *req.EffectiveTo)
		ws.EffectiveTo = &t
	}

	saved, err := s.WorkScheduleRepository.Create(ctx, ws)
	if err != nil {
		return schedule.WorkScheduleResponse{}, fmt.Errorf("failed to create work schedule: %w", err)
	}

	return mapScheduleToResponse(saved), nil
}

// GetEmployeeSchedule implements schedule.WorkScheduleService.
func (s *WorkScheduleServiceImpl) GetEmployeeSchedule(ctx context.Context, employeeID string) (schedule.WorkScheduleResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	ws, err := s.WorkScheduleRepository.GetActiveByEmployee(ctx, employeeID, time.Now().UTC())
	if err != nil {
		return schedule.WorkScheduleResponse{}, fmt.Errorf("failed to get active schedule: %w", err)
	}
	if ws == nil {
		return schedule.WorkScheduleResponse{}, schedule.ErrScheduleNotFound
	}

	return mapScheduleToResponse(*ws), nil
}

// UpdateSchedule implements schedule.WorkScheduleService.
func (s *WorkScheduleServiceImpl) UpdateSchedule(ctx context.Context, req schedule.UpdateWorkScheduleRequest) (schedule.WorkScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	ws, err := s.WorkScheduleRepository.GetByID(ctx, req.ID)
	if err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	if req.StartTime != nil {
		ws.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		ws.EndTime = *req.EndTime
	}
	if req.BreakDurationMinutes != nil {
		ws.BreakDurationMinutes = *req.BreakDurationMinutes
	}
	if len(req.WorkingDays) > 0 {
		ws.WorkingDays = req.WorkingDays
	}
	if req.TimeZone != nil {
		ws.TimeZone = *req.TimeZone
	}
	if req.IsFlexible != nil {
		ws.IsFlexible = *req.IsFlexible
	}
	if req.GracePeriodMinutes != nil {
		ws.GracePeriodMinutes = *req.GracePeriodMinutes
	}
	if req.EffectiveTo != nil && *req.EffectiveTo != "" {
		t, _ := time.Parse("2006-01-02", *req.EffectiveTo)
		ws.EffectiveTo = &t
	}

	if err := s.WorkScheduleRepository.Update(ctx, ws); err != nil {
		return schedule.WorkScheduleResponse{}, fmt.Errorf("failed to update work schedule: %w", err)
	}

	return mapScheduleToResponse(ws), nil
}

// DeleteSchedule implements schedule.WorkScheduleService.
func (s *WorkScheduleServiceImpl) DeleteSchedule(ctx context.Context, id string) error {
	return s.WorkScheduleRepository.Delete(ctx, id)
}

func mapScheduleToResponse(ws schedule.WorkSchedule) schedule.WorkScheduleResponse {
	var effectiveTo *string
	if ws.EffectiveTo != nil {
		s := ws.EffectiveTo.Format("2006-01-02")
		effectiveTo = &s
	}

	return schedule.WorkScheduleResponse{
		ID:                   ws.ID,
		EmployeeID:           ws.EmployeeID,
		StartTime:            ws.StartTime,
		EndTime:              ws.EndTime,
		BreakDurationMinutes: ws.BreakDurationMinutes,
		WorkingDays:          ws.WorkingDays,
		TimeZone:             ws.TimeZone,
		IsFlexible:           ws.IsFlexible,
		GracePeriodMinutes:   ws.GracePeriodMinutes,
		EffectiveFrom:        ws.EffectiveFrom.Format("2006-01-02"),
		EffectiveTo:          effectiveTo,
		ExpectedDailyHours:   schedule.ExpectedDailyWorkHours(&ws),
		CreatedAt:            ws.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:            ws.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
