package holiday

import "context"

// HolidayService maintains the holiday reference list. Classification
// does not consult it; analytics does.
type HolidayService interface {
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	Get(ctx context.Context, id string) (HolidayResponse, error)
	List(ctx context.Context) ([]HolidayResponse, error)
	Update(ctx context.Context, req UpdateHolidayRequest) (HolidayResponse, error)
	Delete(ctx context.Context, id string) error
}
