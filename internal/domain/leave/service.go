package leave

import "context"

// LeaveService drives the leave request workflow. Approval does not touch
// the attendance ledger; leave days are not auto-marked ON_LEAVE.
type LeaveService interface {
	CreateRequest(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	Approve(ctx context.Context, req ApproveLeaveRequest) (LeaveResponse, error)
	Reject(ctx context.Context, req RejectLeaveRequest) (LeaveResponse, error)
	Get(ctx context.Context, id string) (LeaveResponse, error)
	List(ctx context.Context, filter LeaveFilter) (ListLeaveResponse, error)
}
