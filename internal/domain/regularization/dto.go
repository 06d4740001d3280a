package regularization

import (
	"strings"

	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/validator"
)

type CreateRegularizationRequest struct {
	EmployeeID        string  `json:"-"`
	Date              string  `json:"date"` // YYYY-MM-DD
	RequestedCheckIn  *string `json:"requested_check_in,omitempty"`
	RequestedCheckOut *string `json:"requested_check_out,omitempty"`
	Reason            string  `json:"reason"`
}

func (r *CreateRegularizationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	reason := strings.TrimSpace(r.Reason)
	if len(reason) < 10 {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must be at least 10 characters",
		})
	}
	if len(reason) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not exceed 500 characters",
		})
	}

	if r.RequestedCheckIn != nil && *r.RequestedCheckIn != "" {
		if _, ok := validator.IsValidDateTime(*r.RequestedCheckIn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "requested_check_in",
				Message: "requested_check_in must be a valid ISO8601 datetime",
			})
		}
	}

	if r.RequestedCheckOut != nil && *r.RequestedCheckOut != "" {
		if _, ok := validator.IsValidDateTime(*r.RequestedCheckOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "requested_check_out",
				Message: "requested_check_out must be a valid ISO8601 datetime",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ApproveRegularizationRequest struct {
	ID           string `json:"-"`
	ApprovedByID string `json:"approved_by_id"`
}

type RejectRegularizationRequest struct {
	ID           string `json:"-"`
	ApprovedByID string `json:"approved_by_id"`
	Reason       string `json:"reason"`
}

type RegularizationFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Status     *string `json:"status,omitempty"`
	StartDate  *string `json:"start_date,omitempty"`
	EndDate    *string `json:"end_date,omitempty"`

	Take int `json:"take"`
	Skip int `json:"skip"`
}

func (f *RegularizationFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Take < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "take",
			Message: "take must be a positive number",
		})
	}
	if f.Take == 0 {
		f.Take = 50 // Default page size
	}
	if f.Take > 200 {
		errs = append(errs, validator.ValidationError{
			Field:   "take",
			Message: "take must not exceed 200",
		})
	}

	if f.Skip < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "skip",
			Message: "skip must not be negative",
		})
	}

	if f.Status != nil && !validator.IsInSlice(strings.ToUpper(*f.Status), StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: PENDING, APPROVED, REJECTED",
		})
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RegularizationResponse struct {
	ID                string  `json:"id"`
	EmployeeID        string  `json:"employee_id"`
	EmployeeName      *string `json:"employee_name,omitempty"`
	Date              string  `json:"date"`
	RequestedCheckIn  *string `json:"requested_check_in,omitempty"`
	RequestedCheckOut *string `json:"requested_check_out,omitempty"`
	Reason            string  `json:"reason"`
	Status            string  `json:"status"`
	ApprovedByID      *string `json:"approved_by_id,omitempty"`
	ApprovedAt        *string `json:"approved_at,omitempty"`
	RejectedReason    *string `json:"rejected_reason,omitempty"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

type ListRegularizationsResponse struct {
	TotalCount      int64                    `json:"total_count"`
	Take            int                      `json:"take"`
	Skip            int                      `json:"skip"`
	Regularizations []RegularizationResponse `json:"regularizations"`
}
