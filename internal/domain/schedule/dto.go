package schedule

import (
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/validator"
)

type CreateWorkScheduleRequest struct {
	EmployeeID           string  `json:"employee_id"`
	StartTime            string  `json:"start_time"` // HH:mm
	EndTime              string  `json:"end_time"`   // HH:mm
	BreakDurationMinutes int     `json:"break_duration_minutes"`
	WorkingDays          []int   `json:"working_days"`
	TimeZone             string  `json:"timezone"`
	IsFlexible           bool    `json:"is_flexible"`
	GracePeriodMinutes   int     `json:"grace_period_minutes"`
	EffectiveFrom        string  `json:"effective_from"` // YYYY-MM-DD
	EffectiveTo          *string `json:"effective_to,omitempty"`
}

func (r *CreateWorkScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidClockTime(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:mm format",
		})
	}

	if _, ok := validator.IsValidClockTime(r.EndTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:mm format",
		})
	}

	if r.BreakDurationMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_duration_minutes",
			Message: "break_duration_minutes must not be negative",
		})
	}

	if r.GracePeriodMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_period_minutes",
			Message: "grace_period_minutes must not be negative",
		})
	}

	if len(r.WorkingDays) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "working_days",
			Message: "working_days is required",
		})
	}
	for _, d := range r.WorkingDays {
		if d < 0 || d > 6 {
			errs = append(errs, validator.ValidationError{
				Field:   "working_days",
				Message: "working_days entries must be weekday indices between 0 and 6",
			})
			break
		}
	}

	if !validator.IsValidTimeZone(r.TimeZone) {
		errs = append(errs, validator.ValidationError{
			Field:   "timezone",
			Message: "timezone must be a valid IANA zone label",
		})
	}

	if _, ok := validator.IsValidDate(r.EffectiveFrom); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "effective_from",
			Message: "effective_from must be in YYYY-MM-DD format",
		})
	}

	if r.EffectiveTo != nil && *r.EffectiveTo != "" {
		if _, ok := validator.IsValidDate(*r.EffectiveTo); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "effective_to",
				Message: "effective_to must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateWorkScheduleRequest struct {
	ID                   string  `json:"-"`
	StartTime            *string `json:"start_time,omitempty"`
	EndTime              *string `json:"end_time,omitempty"`
	BreakDurationMinutes *int    `json:"break_duration_minutes,omitempty"`
	WorkingDays          []int   `json:"working_days,omitempty"`
	TimeZone             *string `json:"timezone,omitempty"`
	IsFlexible           *bool   `json:"is_flexible,omitempty"`
	GracePeriodMinutes   *int    `json:"grace_period_minutes,omitempty"`
	EffectiveTo          *string `json:"effective_to,omitempty"`
}

func (r *UpdateWorkScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartTime != nil {
		if _, ok := validator.IsValidClockTime(*r.StartTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time must be in HH:mm format",
			})
		}
	}

	if r.EndTime != nil {
		if _, ok := validator.IsValidClockTime(*r.EndTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be in HH:mm format",
			})
		}
	}

	if r.BreakDurationMinutes != nil && *r.BreakDurationMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_duration_minutes",
			Message: "break_duration_minutes must not be negative",
		})
	}

	if r.GracePeriodMinutes != nil && *r.GracePeriodMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_period_minutes",
			Message: "grace_period_minutes must not be negative",
		})
	}

	for _, d := range r.WorkingDays {
		if d < 0 || d > 6 {
			errs = append(errs, validator.ValidationError{
				Field:   "working_days",
				Message: "working_days entries must be weekday indices between 0 and 6",
			})
			break
		}
	}

	if r.TimeZone != nil && !validator.IsValidTimeZone(*r.TimeZone) {
		errs = append(errs, validator.ValidationError{
			Field:   "timezone",
			Message: "timezone must be a valid IANA zone label",
		})
	}

	if r.EffectiveTo != nil && *r.EffectiveTo != "" {
		if _, ok := validator.IsValidDate(*r.EffectiveTo); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "effective_to",
				Message: "effective_to must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WorkScheduleResponse struct {
	ID                   string  `json:"id"`
	EmployeeID           string  `json:"employee_id"`
	StartTime            string  `json:"start_time"`
	EndTime              string  `json:"end_time"`
	BreakDurationMinutes int     `json:"break_duration_minutes"`
	WorkingDays          []int   `json:"working_days"`
	TimeZone             string  `json:"timezone"`
	IsFlexible           bool    `json:"is_flexible"`
	GracePeriodMinutes   int     `json:"grace_period_minutes"`
	EffectiveFrom        string  `json:"effective_from"`
	EffectiveTo          *string `json:"effective_to,omitempty"`
	ExpectedDailyHours   float64 `json:"expected_daily_hours"`
	CreatedAt            string  `json:"created_at"`
	UpdatedAt            string  `json:"updated_at"`
}
