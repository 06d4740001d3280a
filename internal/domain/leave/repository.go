package leave

import "context"

type LeaveRequestRepository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	List(ctx context.Context, filter LeaveFilter) ([]Request, int64, error)
	UpdateStatus(ctx context.Context, req Request) error
}
