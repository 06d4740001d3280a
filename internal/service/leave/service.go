package leave

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/employee"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/leave"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/regularization"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	employee.EmployeeRepository
}

func NewLeaveService(
	leaveRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRepo,
		EmployeeRepository:     employeeRepo,
	}
}

// CreateRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateRequest(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if !emp.CanRecordAttendance() {
		return leave.LeaveResponse{}, employee.ErrEmployeeInactive
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	if start.After(end) {
		return leave.LeaveResponse{}, leave.ErrInvalidDateRange
	}

	request := leave.Request{
		EmployeeID: req.EmployeeID,
		Type:       leave.Type(strings.ToUpper(req.Type)),
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	}

	saved, err := s.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return mapLeaveToResponse(saved), nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, req leave.ApproveLeaveRequest) (leave.LeaveResponse, error) {
	return s.process(ctx, req.ID, req.ApprovedByID, leave.StatusApproved)
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.RejectLeaveRequest) (leave.LeaveResponse, error) {
	return s.process(ctx, req.ID, req.ApprovedByID, leave.StatusRejected)
}

func (s *LeaveServiceImpl) process(ctx context.Context, id, approverID string, status leave.Status) (leave.LeaveResponse, error) {
	if strings.TrimSpace(approverID) == "" {
		return leave.LeaveResponse{}, regularization.ErrApproverRequired
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, approverID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return leave.LeaveResponse{}, regularization.ErrApproverNotFound
		}
		return leave.LeaveResponse{}, err
	}

	request, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if request.IsTerminal() {
		return leave.LeaveResponse{}, leave.ErrAlreadyProcessed
	}

	request.Status = status
	request.ApprovedByID = &approverID

	if err := s.LeaveRequestRepository.UpdateStatus(ctx, request); err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to update leave request status: %w", err)
	}

	return mapLeaveToResponse(request), nil
}

// Get implements leave.LeaveService.
func (s *LeaveServiceImpl) Get(ctx context.Context, id string) (leave.LeaveResponse, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return mapLeaveToResponse(request), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveResponse{}, err
	}

	requests, total, err := s.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, mapLeaveToResponse(request))
	}

	return leave.ListLeaveResponse{
		TotalCount: total,
		Take:       filter.Take,
		Skip:       filter.Skip,
		Requests:   responses,
	}, nil
}

func mapLeaveToResponse(request leave.Request) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:           request.ID,
		EmployeeID:   request.EmployeeID,
		EmployeeName: request.EmployeeName,
		Type:         string(request.Type),
		StartDate:    request.StartDate.Format("2006-01-02"),
		EndDate:      request.EndDate.Format("2006-01-02"),
		Reason:       request.Reason,
		Status:       string(request.Status),
		ApprovedByID: request.ApprovedByID,
		CreatedAt:    request.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:    request.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
