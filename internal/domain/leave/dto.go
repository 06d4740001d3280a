package leave

import (
	"strings"

	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	EmployeeID string  `json:"-"`
	Type       string  `json:"type"`
	StartDate  string  `json:"start_date"` // YYYY-MM-DD
	EndDate    string  `json:"end_date"`   // YYYY-MM-DD
	Reason     *string `json:"reason,omitempty"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsInSlice(strings.ToUpper(r.Type), TypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: ANNUAL, SICK, UNPAID, MATERNITY, OTHER",
		})
	}

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ApproveLeaveRequest struct {
	ID           string `json:"-"`
	ApprovedByID string `json:"approved_by_id"`
}

type RejectLeaveRequest struct {
	ID           string `json:"-"`
	ApprovedByID string `json:"approved_by_id"`
}

type LeaveFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Status     *string `json:"status,omitempty"`

	Take int `json:"take"`
	Skip int `json:"skip"`
}

func (f *LeaveFilter) Validate() error {
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Type         string  `json:"type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Reason       *string `json:"reason,omitempty"`
	Status       string  `json:"status"`
	ApprovedByID *string `json:"approved_by_id,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type ListLeaveResponse struct {
	TotalCount int64           `json:"total_count"`
	Take       int             `json:"take"`
	Skip       int             `json:"skip"`
	Requests   []LeaveResponse `json:"requests"`
}
