package regularization

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/employee"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/regularization"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/database"
)

type RegularizationServiceImpl struct {
	tx database.TxRunner
	regularization.RegularizationRepository
	attendance.AttendanceRepository
	employee.EmployeeRepository
}

func NewRegularizationService(
	tx database.TxRunner,
	regularizationRepo regularization.RegularizationRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) regularization.RegularizationService {
	return &RegularizationServiceImpl{
		tx:                       tx,
		RegularizationRepository: regularizationRepo,
		AttendanceRepository:     attendanceRepo,
		EmployeeRepository:       employeeRepo,
	}
}

// CreateRequest implements regularization.RegularizationService.
func (s *RegularizationServiceImpl) CreateRequest(ctx context.Context, req regularization.CreateRegularizationRequest) (regularization.RegularizationResponse, error) {
	if err := req.Validate(); err != nil {
		return regularization.RegularizationResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return regularization.RegularizationResponse{}, err
	}
	if !emp.CanRecordAttendance() {
		return regularization.RegularizationResponse{}, employee.ErrEmployeeInactive
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if date.After(today) {
		return regularization.RegularizationResponse{}, regularization.ErrFutureDateNotAllowed
	}

	pending, err := s.RegularizationRepository.HasPendingForDate(ctx, req.EmployeeID, date)
	if err != nil {
		return regularization.RegularizationResponse{}, fmt.Errorf("failed to check pending regularizations: %w", err)
	}
	if pending {
		return regularization.RegularizationResponse{}, regularization.ErrDuplicateRegularization
	}

	reg := regularization.Regularization{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Reason:     strings.TrimSpace(req.Reason),
		Status:     regularization.StatusPending,
	}
	if req.RequestedCheckIn != nil && *req.RequestedCheckIn != "" {
		t, _ := time.Parse(time.RFC3339, *req.RequestedCheckIn)
		reg.RequestedCheckIn = &t
	}
	if req.RequestedCheckOut != nil && *req.RequestedCheckOut != "" {
		t, _ := time.Parse(time.RFC3339, *req.RequestedCheckOut)
		reg.RequestedCheckOut = &t
	}

	saved, err := s.RegularizationRepository.Create(ctx, reg)
	if err != nil {
		return regularization.RegularizationResponse{}, fmt.Errorf("failed to create regularization request: %w", err)
	}

	return mapRegularizationToResponse(saved), nil
}

// Approve implements regularization.RegularizationService.
func (s *RegularizationServiceImpl) Approve(ctx context.Context, req regularization.ApproveRegularizationRequest) (regularization.RegularizationResponse, error) {
	if strings.TrimSpace(req.ApprovedByID) == "" {
		return regularization.RegularizationResponse{}, regularization.ErrApproverRequired
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.ApprovedByID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return regularization.RegularizationResponse{}, regularization.ErrApproverNotFound
		}
		return regularization.RegularizationResponse{}, err
	}

	reg, err := s.RegularizationRepository.GetByID(ctx, req.ID)
	if err != nil {
		return regularization.RegularizationResponse{}, err
	}
	if reg.IsTerminal() {
		return regularization.RegularizationResponse{}, regularization.ErrAlreadyProcessed
	}

	now := time.Now().UTC()
	reg.Status = regularization.StatusApproved
	reg.ApprovedByID = &req.ApprovedByID
	reg.ApprovedAt = &now

	// Status flip and ledger patch commit or roll back together.
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.RegularizationRepository.UpdateStatus(txCtx, reg); err != nil {
			return fmt.Errorf("failed to update regularization status: %w", err)
		}
		return s.applyToAttendance(txCtx, reg)
	})
	if err != nil {
		return regularization.RegularizationResponse{}, err
	}

	return mapRegularizationToResponse(reg), nil
}

// applyToAttendance writes the requested stamps into the day's attendance
// record, creating it as REGULARIZED-PRESENT when no record exists.
func (s *RegularizationServiceImpl) applyToAttendance(ctx context.Context, reg regularization.Regularization) error {
	rec, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, reg.EmployeeID, reg.Date)
	if err != nil {
		return fmt.Errorf("failed to look up attendance record: %w", err)
	}

	if rec == nil {
		rec = &attendance.Record{
			EmployeeID: reg.EmployeeID,
			Date:       reg.Date,
			Status:     attendance.StatusPresent,
		}
	}

	if reg.RequestedCheckIn != nil {
		rec.CheckIn = reg.RequestedCheckIn
	}
	if reg.RequestedCheckOut != nil {
		rec.CheckOut = reg.RequestedCheckOut
	}
	if rec.CheckIn != nil && rec.CheckOut != nil {
		totalHours := rec.CheckOut.Sub(*rec.CheckIn).Hours()
		rec.TotalHours = &totalHours
		rec.WorkHours = &totalHours
	}
	rec.IsRegularized = true
	rec.RegularizationID = &reg.ID
	note := "Regularized: " + reg.Reason
	rec.Notes = &note
	// A corrected day is no longer late or absent.
	rec.Status = attendance.StatusPresent
	rec.LateByMinutes = nil
	rec.EarlyByMinutes = nil

	if _, err := s.AttendanceRepository.Upsert(ctx, *rec); err != nil {
		return fmt.Errorf("failed to patch attendance record: %w", err)
	}
	return nil
}

// Reject implements regularization.RegularizationService.
func (s *RegularizationServiceImpl) Reject(ctx context.Context, req regularization.RejectRegularizationRequest) (regularization.RegularizationResponse, error) {
	if strings.TrimSpace(req.ApprovedByID) == "" {
		return regularization.RegularizationResponse{}, regularization.ErrApproverRequired
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return regularization.RegularizationResponse{}, regularization.ErrRejectionReasonRequired
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.ApprovedByID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return regularization.RegularizationResponse{}, regularization.ErrApproverNotFound
		}
		return regularization.RegularizationResponse{}, err
	}

	reg, err := s.RegularizationRepository.GetByID(ctx, req.ID)
	if err != nil {
		return regularization.RegularizationResponse{}, err
	}
	if reg.IsTerminal() {
		return regularization.RegularizationResponse{}, regularization.ErrAlreadyProcessed
	}

	now := time.Now().UTC()
	reg.Status = regularization.StatusRejected
	reg.ApprovedByID = &req.ApprovedByID
	reg.ApprovedAt = &now
	reg.RejectedReason = &reason

	if err := s.RegularizationRepository.UpdateStatus(ctx, reg); err != nil {
		return regularization.RegularizationResponse{}, fmt.Errorf("failed to update regularization status: %w", err)
	}

	return mapRegularizationToResponse(reg), nil
}

// Get implements regularization.RegularizationService.
func (s *RegularizationServiceImpl) Get(ctx context.Context, id string) (regularization.RegularizationResponse, error) {
	reg, err := s.RegularizationRepository.GetByID(ctx, id)
	if err != nil {
		return regularization.RegularizationResponse{}, err
	}
	return mapRegularizationToResponse(reg), nil
}

// List implements regularization.RegularizationService.
func (s *RegularizationServiceImpl) List(ctx context.Context, filter regularization.RegularizationFilter) (regularization.ListRegularizationsResponse, error) {
	if err := filter.Validate(); err != nil {
		return regularization.ListRegularizationsResponse{}, err
	}

	regs, total, err := s.RegularizationRepository.List(ctx, filter)
	if err != nil {
		return regularization.ListRegularizationsResponse{}, fmt.Errorf("failed to list regularization requests: %w", err)
	}

	responses := make([]regularization.RegularizationResponse, 0, len(regs))
	for _, reg := range regs {
		responses = append(responses, mapRegularizationToResponse(reg))
	}

	return regularization.ListRegularizationsResponse{
		TotalCount:      total,
		Take:            filter.Take,
		Skip:            filter.Skip,
		Regularizations: responses,
	}, nil
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

func mapRegularizationToResponse(reg regularization.Regularization) regularization.RegularizationResponse {
	return regularization.RegularizationResponse{
		ID:                reg.ID,
		EmployeeID:        reg.EmployeeID,
		EmployeeName:      reg.EmployeeName,
		Date:              reg.Date.Format("2006-01-02"),
		RequestedCheckIn:  timePtrToString(reg.RequestedCheckIn),
		RequestedCheckOut: timePtrToString(reg.RequestedCheckOut),
		Reason:            reg.Reason,
		Status:            string(reg.Status),
		ApprovedByID:      reg.ApprovedByID,
		ApprovedAt:        timePtrToString(reg.ApprovedAt),
		RejectedReason:    reg.RejectedReason,
		CreatedAt:         reg.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:         reg.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
