package regularization

import "context"

// RegularizationService drives the request/approve/reject workflow.
// PENDING is the only non-terminal state.
type RegularizationService interface {
	// CreateRequest files a correction request for a past (or current)
	// day. At most one pending request per employee and day.
	CreateRequest(ctx context.Context, req CreateRegularizationRequest) (RegularizationResponse, error)

	// Approve transitions PENDING to APPROVED and, in the same
	// transaction, writes the requested stamps into the day's attendance
	// record, creating it when absent.
	Approve(ctx context.Context, req ApproveRegularizationRequest) (RegularizationResponse, error)

	// Reject transitions PENDING to REJECTED with a mandatory reason.
	Reject(ctx context.Context, req RejectRegularizationRequest) (RegularizationResponse, error)

	Get(ctx context.Context, id string) (RegularizationResponse, error)
	List(ctx context.Context, filter RegularizationFilter) (ListRegularizationsResponse, error)
}
