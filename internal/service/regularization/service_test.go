package regularization

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/employee"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/regularization"
)

// ========================================
// In-memory fakes
// ========================================

type fakeTxRunner struct{}

func (fakeTxRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

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

type fakeRegularizationRepo struct {
	requests map[string]regularization.Regularization
	seq      int
}

func newFakeRegularizationRepo() *fakeRegularizationRepo {
	return &fakeRegularizationRepo{requests: make(map[string]regularization.Regularization)}
}

func (f *fakeRegularizationRepo) Create(_ context.Context, reg regularization.Regularization) (regularization.Regularization, error) {
	f.seq++
	reg.ID = fmt.Sprintf("reg-%d", f.seq)
	reg.CreatedAt = time.Now().UTC()
	reg.UpdatedAt = reg.CreatedAt
	f.requests[reg.ID] = reg
	return reg, nil
}

func (f *fakeRegularizationRepo) GetByID(_ context.Context, id string) (regularization.Regularization, error) {
	reg, ok := f.requests[id]
	if !ok {
		return regularization.Regularization{}, regularization.ErrRegularizationNotFound
	}
	return reg, nil
}

func (f *fakeRegularizationRepo) HasPendingForDate(_ context.Context, employeeID string, date time.Time) (bool, error) {
	for _, reg := range f.requests {
		if reg.EmployeeID == employeeID && reg.Date.Equal(date) && reg.Status == regularization.StatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRegularizationRepo) List(_ context.Context, filter regularization.RegularizationFilter) ([]regularization.Regularization, int64, error) {
	var out []regularization.Regularization
	for _, reg := range f.requests {
		if filter.EmployeeID != nil && reg.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, reg)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRegularizationRepo) UpdateStatus(_ context.Context, reg regularization.Regularization) error {
	if _, ok := f.requests[reg.ID]; !ok {
		return regularization.ErrRegularizationNotFound
	}
	reg.UpdatedAt = time.Now().UTC()
	f.requests[reg.ID] = reg
	return nil
}

type fakeAttendanceRepo struct {
	records map[string]attendance.Record
	seq     int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Record)}
}

func (f *fakeAttendanceRepo) Upsert(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	for id, existing := range f.records {
		if existing.EmployeeID == rec.EmployeeID && existing.Date.Equal(rec.Date) {
			rec.ID = id
			f.records[id] = rec
			return rec, nil
		}
	}
	f.seq++
	rec.ID = fmt.Sprintf("att-%d", f.seq)
	f.records[rec.ID] = rec
	return rec, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Record, error) {
	rec, ok := f.records[id]
	if !ok {
		return attendance.Record{}, attendance.ErrAttendanceNotFound
	}
	return rec, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && rec.Date.Equal(date) {
			found := rec
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) List(_ context.Context, _ attendance.RecordFilter) ([]attendance.Record, int64, error) {
	return nil, 0, nil
}

func (f *fakeAttendanceRepo) ListForRange(_ context.Context, _, _ time.Time, _ *string) ([]attendance.Record, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, rec attendance.Record) error {
	f.records[rec.ID] = rec
	return nil
}

func (f *fakeAttendanceRepo) Delete(_ context.Context, id string) error {
	delete(f.records, id)
	return nil
}

// ========================================
// Harness
// ========================================

const (
	testEmployeeID = "emp-1"
	testApproverID = "mgr-1"
)

func newTestService() (regularization.RegularizationService, *fakeRegularizationRepo, *fakeAttendanceRepo) {
	regRepo := newFakeRegularizationRepo()
	attRepo := newFakeAttendanceRepo()
	empRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		testEmployeeID: {ID: testEmployeeID, Status: employee.StatusActive, TimeZone: "UTC"},
		testApproverID: {ID: testApproverID, Status: employee.StatusActive, TimeZone: "UTC"},
	}}
	svc := NewRegularizationService(fakeTxRunner{}, regRepo, attRepo, empRepo)
	return svc, regRepo, attRepo
}

func strPtr(s string) *string { return &s }

func pendingRequest(date string) regularization.CreateRegularizationRequest {
	return regularization.CreateRegularizationRequest{
		EmployeeID:        testEmployeeID,
		Date:              date,
		RequestedCheckIn:  strPtr(date + "T09:00:00Z"),
		RequestedCheckOut: strPtr(date + "T17:30:00Z"),
		Reason:            "forgot to clock in after the client visit",
	}
}

// ========================================
// Create
// ========================================

func TestCreateRequest_RejectsFutureDate(t *testing.T) {
	svc, _, _ := newTestService()

	future := time.Now().UTC().AddDate(0, 0, 2).Format("2006-01-02")
	_, err := svc.CreateRequest(context.Background(), pendingRequest(future))
	assert.ErrorIs(t, err, regularization.ErrFutureDateNotAllowed)
}

func TestCreateRequest_RejectsDuplicatePending(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateRequest(ctx, pendingRequest("2026-03-02"))
	require.NoError(t, err)

	_, err = svc.CreateRequest(ctx, pendingRequest("2026-03-02"))
	assert.ErrorIs(t, err, regularization.ErrDuplicateRegularization)
}

func TestCreateRequest_RejectsShortReason(t *testing.T) {
	svc, _, _ := newTestService()

	req := pendingRequest("2026-03-02")
	req.Reason = "oops"
	_, err := svc.CreateRequest(context.Background(), req)
	assert.Error(t, err)
}

func TestCreateRequest_StartsPending(t *testing.T) {
	svc, _, _ := newTestService()

	resp, err := svc.CreateRequest(context.Background(), pendingRequest("2026-03-02"))
	require.NoError(t, err)
	assert.Equal(t, string(regularization.StatusPending), resp.Status)
	assert.Nil(t, resp.ApprovedByID)
}

// ========================================
// Approve
// ========================================

func TestApprove_PatchesExistingAttendanceRecord(t *testing.T) {
	svc, _, attRepo := newTestService()
	ctx := context.Background()

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	seeded, err := attRepo.Upsert(ctx, attendance.Record{
		EmployeeID: testEmployeeID,
		Date:       day,
		Status:     attendance.StatusAbsent,
	})
	require.NoError(t, err)

	created, err := svc.CreateRequest(ctx, pendingRequest("2026-03-02"))
	require.NoError(t, err)

	resp, err := svc.Approve(ctx, regularization.ApproveRegularizationRequest{
		ID:           created.ID,
		ApprovedByID: testApproverID,
	})
	require.NoError(t, err)
	assert.Equal(t, string(regularization.StatusApproved), resp.Status)

	patched, err := attRepo.GetByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, patched.Status)
	assert.True(t, patched.IsRegularized)
	require.NotNil(t, patched.RegularizationID)
	assert.Equal(t, created.ID, *patched.RegularizationID)
	require.NotNil(t, patched.CheckIn)
	require.NotNil(t, patched.CheckOut)
	require.NotNil(t, patched.WorkHours)
	assert.InDelta(t, 8.5, *patched.WorkHours, 1e-9)
	require.NotNil(t, patched.Notes)
	assert.Equal(t, "Regularized: forgot to clock in after the client visit", *patched.Notes)
	assert.Len(t, attRepo.records, 1)
}

func TestApprove_CreatesAttendanceRecordWhenAbsent(t *testing.T) {
	svc, _, attRepo := newTestService()
	ctx := context.Background()

	created, err := svc.CreateRequest(ctx, pendingRequest("2026-03-02"))
	require.NoError(t, err)

	_, err = svc.Approve(ctx, regularization.ApproveRegularizationRequest{
		ID:           created.ID,
		ApprovedByID: testApproverID,
	})
	require.NoError(t, err)

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	rec, err := attRepo.GetByEmployeeAndDate(ctx, testEmployeeID, day)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.True(t, rec.IsRegularized)
}

func TestApprove_RejectsTerminalRequest(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateRequest(ctx, pendingRequest("2026-03-02"))
	require.NoError(t, err)

	_, err = svc.Approve(ctx, regularization.ApproveRegularizationRequest{
		ID:           created.ID,
		ApprovedByID: testApproverID,
	})
	require.NoError(t, err)

	_, err = svc.Approve(ctx, regularization.ApproveRegularizationRequest{
		ID:           created.ID,
		ApprovedByID: testApproverID,
	})
	assert.ErrorIs(t, err, regularization.ErrAlreadyProcessed)
}

func TestApprove_RequiresApprover(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Approve(context.Background(), regularization.ApproveRegularizationRequest{ID: "reg-1"})
	assert.ErrorIs(t, err, regularization.ErrApproverRequired)
}

func TestApprove_UnknownApprover(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateRequest(ctx, pendingRequest("2026-03-02"))
	require.NoError(t, err)

	_, err = svc.Approve(ctx, regularization.ApproveRegularizationRequest{
		ID:           created.ID,
		ApprovedByID: "ghost",
	})
	assert.ErrorIs(t, err, regularization.ErrApproverNotFound)
}

// ========================================
// Reject
// ========================================

func TestReject_RequiresReason(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateRequest(ctx, pendingRequest("2026-03-02"))
	require.NoError(t, err)

	_, err = svc.Reject(ctx, regularization.RejectRegularizationRequest{
		ID:           created.ID,
		ApprovedByID: testApproverID,
	})
	assert.ErrorIs(t, err, regularization.ErrRejectionReasonRequired)
}

func TestReject_DoesNotTouchAttendance(t *testing.T) {
	svc, _, attRepo := newTestService()
	ctx := context.Background()

	created, err := svc.CreateRequest(ctx, pendingRequest("2026-03-02"))
	require.NoError(t, err)

	resp, err := svc.Reject(ctx, regularization.RejectRegularizationRequest{
		ID:           created.ID,
		ApprovedByID: testApproverID,
		Reason:       "no supporting evidence",
	})
	require.NoError(t, err)
	assert.Equal(t, string(regularization.StatusRejected), resp.Status)
	require.NotNil(t, resp.RejectedReason)
	assert.Equal(t, "no supporting evidence", *resp.RejectedReason)
	assert.Empty(t, attRepo.records)
}

func TestReject_AllowsNewRequestForSameDay(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateRequest(ctx, pendingRequest("2026-03-02"))
	require.NoError(t, err)

	_, err = svc.Reject(ctx, regularization.RejectRegularizationRequest{
		ID:           created.ID,
		ApprovedByID: testApproverID,
		Reason:       "wrong timestamps supplied",
	})
	require.NoError(t, err)

	// Rejected is terminal, so a fresh request for the day is allowed.
	_, err = svc.CreateRequest(ctx, pendingRequest("2026-03-02"))
	assert.NoError(t, err)
}
