package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/employee"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/leave"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/regularization"
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

type fakeLeaveRepo struct {
	requests map[string]leave.Request
	seq      int
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]leave.Request)}
}

func (f *fakeLeaveRepo) Create(_ context.Context, req leave.Request) (leave.Request, error) {
	f.seq++
	req.ID = fmt.Sprintf("lv-%d", f.seq)
	req.CreatedAt = time.Now().UTC()
	req.UpdatedAt = req.CreatedAt
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, id string) (leave.Request, error) {
	req, ok := f.requests[id]
	if !ok {
		return leave.Request{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (f *fakeLeaveRepo) List(_ context.Context, filter leave.LeaveFilter) ([]leave.Request, int64, error) {
	var out []leave.Request
	for _, req := range f.requests {
		if filter.EmployeeID != nil && req.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, req)
	}
	return out, int64(len(out)), nil
}

func (f *fakeLeaveRepo) UpdateStatus(_ context.Context, req leave.Request) error {
	if _, ok := f.requests[req.ID]; !ok {
		return leave.ErrLeaveRequestNotFound
	}
	f.requests[req.ID] = req
	return nil
}

const (
	testEmployeeID = "emp-1"
	testApproverID = "mgr-1"
)

func newTestService() leave.LeaveService {
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		testEmployeeID: {ID: testEmployeeID, Status: employee.StatusActive, TimeZone: "UTC"},
		testApproverID: {ID: testApproverID, Status: employee.StatusActive, TimeZone: "UTC"},
	}}
	return NewLeaveService(newFakeLeaveRepo(), empRepo)
}

func annualLeave() leave.CreateLeaveRequest {
	return leave.CreateLeaveRequest{
		EmployeeID: testEmployeeID,
		Type:       "ANNUAL",
		StartDate:  "2026-04-06",
		EndDate:    "2026-04-10",
	}
}

func TestCreateRequest_StartsPending(t *testing.T) {
	svc := newTestService()

	resp, err := svc.CreateRequest(context.Background(), annualLeave())
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusPending), resp.Status)
}

func TestCreateRequest_RejectsInvertedRange(t *testing.T) {
	svc := newTestService()

	req := annualLeave()
	req.StartDate = "2026-04-10"
	req.EndDate = "2026-04-06"
	_, err := svc.CreateRequest(context.Background(), req)
	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
}

func TestCreateRequest_SingleDayRangeAllowed(t *testing.T) {
	svc := newTestService()

	req := annualLeave()
	req.StartDate = "2026-04-06"
	req.EndDate = "2026-04-06"
	_, err := svc.CreateRequest(context.Background(), req)
	assert.NoError(t, err)
}

func TestApprove_SetsApprover(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateRequest(ctx, annualLeave())
	require.NoError(t, err)

	resp, err := svc.Approve(ctx, leave.ApproveLeaveRequest{
		ID:           created.ID,
		ApprovedByID: testApproverID,
	})
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusApproved), resp.Status)
	require.NotNil(t, resp.ApprovedByID)
	assert.Equal(t, testApproverID, *resp.ApprovedByID)
}

func TestApprove_RejectsTerminalRequest(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.CreateRequest(ctx, annualLeave())
	require.NoError(t, err)

	_, err = svc.Reject(ctx, leave.RejectLeaveRequest{
		ID:           created.ID,
		ApprovedByID: testApproverID,
	})
	require.NoError(t, err)

	_, err = svc.Approve(ctx, leave.ApproveLeaveRequest{
		ID:           created.ID,
		ApprovedByID: testApproverID,
	})
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

func TestApprove_RequiresApprover(t *testing.T) {
	svc := newTestService()

	_, err := svc.Approve(context.Background(), leave.ApproveLeaveRequest{ID: "lv-1"})
	assert.ErrorIs(t, err, regularization.ErrApproverRequired)
}
