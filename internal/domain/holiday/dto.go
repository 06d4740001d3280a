package holiday

import (
	"strings"

	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Name        string  `json:"name"`
	Date        string  `json:"date"` // YYYY-MM-DD
	Type        string  `json:"type"`
	IsRecurring bool    `json:"is_recurring"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsInSlice(strings.ToUpper(r.Type), TypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: PUBLIC, COMPANY, REGIONAL",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateHolidayRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	Date        *string `json:"date,omitempty"`
	Type        *string `json:"type,omitempty"`
	IsRecurring *bool   `json:"is_recurring,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *UpdateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Date != nil && *r.Date != "" {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Type != nil && !validator.IsInSlice(strings.ToUpper(*r.Type), TypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: PUBLIC, COMPANY, REGIONAL",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type HolidayResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	IsRecurring bool    `json:"is_recurring"`
	Description *string `json:"description,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
