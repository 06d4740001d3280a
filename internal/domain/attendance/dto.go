package attendance

import (
	"strings"

	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// CHECK-IN / CHECK-OUT DTOs
// ========================================

type CheckInRequest struct {
	Timestamp    *string  `json:"timestamp,omitempty"` // ISO8601, defaults to now
	Location     *string  `json:"location,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	LocationType *string  `json:"location_type,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Timestamp != nil && *r.Timestamp != "" {
		if _, ok := validator.IsValidDateTime(*r.Timestamp); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be a valid ISO8601 datetime",
			})
		}
	}

	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.LocationType != nil && !validator.IsInSlice(strings.ToUpper(*r.LocationType), LocationTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "location_type",
			Message: "location_type must be one of: OFFICE, REMOTE, HYBRID, FIELD",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	Timestamp *string  `json:"timestamp,omitempty"` // ISO8601, defaults to now
	Location  *string  `json:"location,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Timestamp != nil && *r.Timestamp != "" {
		if _, ok := validator.IsValidDateTime(*r.Timestamp); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "timestamp",
				Message: "timestamp must be a valid ISO8601 datetime",
			})
		}
	}

	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// MANUAL ENTRY DTOs
// ========================================

// RecordAttendanceRequest lets an admin create a day's record directly,
// bypassing the check-in/out math.
type RecordAttendanceRequest struct {
	EmployeeID   string   `json:"employee_id"`
	Date         string   `json:"date"` // YYYY-MM-DD
	CheckIn      *string  `json:"check_in,omitempty"`
	CheckOut     *string  `json:"check_out,omitempty"`
	Status       string   `json:"status"`
	Location     *string  `json:"location,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	LocationType *string  `json:"location_type,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
}

func (r *RecordAttendanceRequest) Validate() error {
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

	if !validator.IsInSlice(strings.ToUpper(r.Status), StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: PRESENT, ABSENT, LATE, ON_LEAVE, EARLY_DEPARTURE, HALF_DAY",
		})
	}

	if r.CheckIn != nil && *r.CheckIn != "" {
		if _, ok := validator.IsValidDateTime(*r.CheckIn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in",
				Message: "check_in must be a valid ISO8601 datetime",
			})
		}
	}

	if r.CheckOut != nil && *r.CheckOut != "" {
		if _, ok := validator.IsValidDateTime(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out",
				Message: "check_out must be a valid ISO8601 datetime",
			})
		}
	}

	if r.LocationType != nil && !validator.IsInSlice(strings.ToUpper(*r.LocationType), LocationTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "location_type",
			Message: "location_type must be one of: OFFICE, REMOTE, HYBRID, FIELD",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateAttendanceRequest fixes wrong attendance data after the fact.
type UpdateAttendanceRequest struct {
	ID           string   `json:"-"`
	EmployeeID   *string  `json:"employee_id,omitempty"`
	CheckIn      *string  `json:"check_in,omitempty"`
	CheckOut     *string  `json:"check_out,omitempty"`
	Status       *string  `json:"status,omitempty"`
	Location     *string  `json:"location,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	LocationType *string  `json:"location_type,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !validator.IsInSlice(strings.ToUpper(*r.Status), StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: PRESENT, ABSENT, LATE, ON_LEAVE, EARLY_DEPARTURE, HALF_DAY",
		})
	}

	if r.CheckIn != nil && *r.CheckIn != "" {
		if _, ok := validator.IsValidDateTime(*r.CheckIn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in",
				Message: "check_in must be a valid ISO8601 datetime",
			})
		}
	}

	if r.CheckOut != nil && *r.CheckOut != "" {
		if _, ok := validator.IsValidDateTime(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out",
				Message: "check_out must be a valid ISO8601 datetime",
			})
		}
	}

	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.LocationType != nil && !validator.IsInSlice(strings.ToUpper(*r.LocationType), LocationTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "location_type",
			Message: "location_type must be one of: OFFICE, REMOTE, HYBRID, FIELD",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// LIST DTOs
// ========================================

type RecordFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Status     *string `json:"status,omitempty"`

	Take int `json:"take"`
	Skip int `json:"skip"`
}

func (f *RecordFilter) Validate() error {
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
			Message: "status must be one of: PRESENT, ABSENT, LATE, ON_LEAVE, EARLY_DEPARTURE, HALF_DAY",
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

// ========================================
// BREAK DTOs
// ========================================

type CreateBreakRequest struct {
	AttendanceID string  `json:"-"`
	Type         string  `json:"type"`
	StartTime    string  `json:"start_time"`         // ISO8601
	EndTime      *string `json:"end_time,omitempty"` // ISO8601; absent = open break
	Notes        *string `json:"notes,omitempty"`
}

func (r *CreateBreakRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(strings.ToUpper(r.Type), BreakTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: LUNCH, COFFEE, PERSONAL, OTHER",
		})
	}

	if _, ok := validator.IsValidDateTime(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be a valid ISO8601 datetime",
		})
	}

	if r.EndTime != nil && *r.EndTime != "" {
		if _, ok := validator.IsValidDateTime(*r.EndTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be a valid ISO8601 datetime",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateBreakRequest struct {
	ID        string  `json:"-"`
	Type      *string `json:"type,omitempty"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

func (r *UpdateBreakRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Type != nil && !validator.IsInSlice(strings.ToUpper(*r.Type), BreakTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: LUNCH, COFFEE, PERSONAL, OTHER",
		})
	}

	if r.StartTime != nil && *r.StartTime != "" {
		if _, ok := validator.IsValidDateTime(*r.StartTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time must be a valid ISO8601 datetime",
			})
		}
	}

	if r.EndTime != nil && *r.EndTime != "" {
		if _, ok := validator.IsValidDateTime(*r.EndTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be a valid ISO8601 datetime",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// RESPONSES
// ========================================

type RecordResponse struct {
	ID               string   `json:"id"`
	EmployeeID       string   `json:"employee_id"`
	EmployeeName     *string  `json:"employee_name,omitempty"`
	Date             string   `json:"date"`
	CheckIn          *string  `json:"check_in,omitempty"`
	CheckOut         *string  `json:"check_out,omitempty"`
	Status           string   `json:"status"`
	ExpectedCheckIn  *string  `json:"expected_check_in,omitempty"`
	ExpectedCheckOut *string  `json:"expected_check_out,omitempty"`
	LateByMinutes    *int     `json:"late_by_minutes,omitempty"`
	EarlyByMinutes   *int     `json:"early_by_minutes,omitempty"`
	WorkHours        *float64 `json:"work_hours,omitempty"`
	TotalHours       *float64 `json:"total_hours,omitempty"`
	Overtime         *float64 `json:"overtime,omitempty"`
	Location         *string  `json:"location,omitempty"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	LocationType     *string  `json:"location_type,omitempty"`
	IsRegularized    bool     `json:"is_regularized"`
	RegularizationID *string  `json:"regularization_id,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
	CreatedAt        string   `json:"created_at"`
	UpdatedAt        string   `json:"updated_at"`
}

type ListRecordsResponse struct {
	TotalCount int64            `json:"total_count"`
	Take       int              `json:"take"`
	Skip       int              `json:"skip"`
	Records    []RecordResponse `json:"records"`
}

type BreakResponse struct {
	ID              string  `json:"id"`
	AttendanceID    string  `json:"attendance_id"`
	Type            string  `json:"type"`
	StartTime       string  `json:"start_time"`
	EndTime         *string `json:"end_time,omitempty"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}
