package analytics

import (
	"strings"

	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/validator"
)

type SummaryRequest struct {
	StartDate  string  `json:"start_date"` // YYYY-MM-DD, inclusive
	EndDate    string  `json:"end_date"`   // YYYY-MM-DD, inclusive
	EmployeeID *string `json:"employee_id,omitempty"`
}

func (r *SummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must not be after end_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

const (
	GroupByDay   = "day"
	GroupByWeek  = "week"
	GroupByMonth = "month"
)

type TrendsRequest struct {
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	GroupBy    string  `json:"group_by"` // day, week, month
	EmployeeID *string `json:"employee_id,omitempty"`
}

func (r *TrendsRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must not be after end_date",
		})
	}

	if r.GroupBy == "" {
		r.GroupBy = GroupByDay // Default grouping
	}
	if !validator.IsInSlice(strings.ToLower(r.GroupBy), []string{GroupByDay, GroupByWeek, GroupByMonth}) {
		errs = append(errs, validator.ValidationError{
			Field:   "group_by",
			Message: "group_by must be one of: day, week, month",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SummaryResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Present   int    `json:"present"`
	Absent    int    `json:"absent"`
	Late      int    `json:"late"`
	OnLeave   int    `json:"on_leave"`
	Total     int    `json:"total"`
}

type AdvancedSummaryResponse struct {
	StartDate      string  `json:"start_date"`
	EndDate        string  `json:"end_date"`
	Present        int     `json:"present"`
	Absent         int     `json:"absent"`
	Late           int     `json:"late"`
	OnLeave        int     `json:"on_leave"`
	EarlyDeparture int     `json:"early_departure"`
	HalfDay        int     `json:"half_day"`
	Total          int     `json:"total"`
	AvgWorkHours   float64 `json:"avg_work_hours"` // over populated records only, 2 decimals
	AvgOvertime    float64 `json:"avg_overtime"`   // over populated records only, 2 decimals
	Holidays       int     `json:"holidays"`       // holidays falling inside the range
}

type TrendBucket struct {
	Bucket         string `json:"bucket"` // YYYY-MM-DD for day/week, YYYY-MM for month
	Present        int    `json:"present"`
	Absent         int    `json:"absent"`
	Late           int    `json:"late"`
	OnLeave        int    `json:"on_leave"`
	EarlyDeparture int    `json:"early_departure"`
	HalfDay        int    `json:"half_day"`
	Total          int    `json:"total"`
}

type TrendsResponse struct {
	GroupBy string        `json:"group_by"`
	Buckets []TrendBucket `json:"buckets"`
}
