package response

import (
	"errors"
	"net/http"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/employee"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/holiday"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/leave"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/regularization"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/schedule"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses with stable codes.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "EMPLOYEE_NOT_FOUND", "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Conflict(w, "EMPLOYEE_INACTIVE", "Employee is not eligible for attendance actions")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "ATTENDANCE_NOT_FOUND", "Attendance record not found")
	case errors.Is(err, attendance.ErrNotCheckedInToday):
		NotFound(w, "ATTENDANCE_NOT_FOUND", "No attendance record found for today")
	case errors.Is(err, attendance.ErrBreakNotFound):
		NotFound(w, "BREAK_NOT_FOUND", "Break not found")
	case errors.Is(err, attendance.ErrBreakOutsideAttendanceDay):
		UnprocessableEntity(w, "INVALID_BREAK_DATE", "Break must start on the same day as its attendance record")
	case errors.Is(err, attendance.ErrBreakEndBeforeStart):
		UnprocessableEntity(w, "INVALID_BREAK_DATE", "Break end time must be after its start time")

	// Regularization domain errors
	case errors.Is(err, regularization.ErrRegularizationNotFound):
		NotFound(w, "REGULARIZATION_NOT_FOUND", "Regularization request not found")
	case errors.Is(err, regularization.ErrAlreadyProcessed):
		Conflict(w, "REGULARIZATION_ALREADY_PROCESSED", "Regularization request already processed")
	case errors.Is(err, regularization.ErrDuplicateRegularization):
		Conflict(w, "DUPLICATE_REGULARIZATION", "A pending regularization already exists for this date")
	case errors.Is(err, regularization.ErrFutureDateNotAllowed):
		UnprocessableEntity(w, "FUTURE_DATE_NOT_ALLOWED", "Regularization date cannot be in the future")
	case errors.Is(err, regularization.ErrApproverRequired):
		UnprocessableEntity(w, "APPROVER_REQUIRED", "Approver is required")
	case errors.Is(err, regularization.ErrApproverNotFound):
		NotFound(w, "APPROVER_NOT_FOUND", "Approver not found")
	case errors.Is(err, regularization.ErrRejectionReasonRequired):
		UnprocessableEntity(w, "REJECTION_REASON_REQUIRED", "Rejection reason is required")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "LEAVE_REQUEST_NOT_FOUND", "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "LEAVE_ALREADY_PROCESSED", "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidDateRange):
		UnprocessableEntity(w, "INVALID_DATE_RANGE", "Start date must not be after end date")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "HOLIDAY_NOT_FOUND", "Holiday not found")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "SCHEDULE_NOT_FOUND", "Work schedule not found")
	case errors.Is(err, schedule.ErrActiveScheduleExists):
		Conflict(w, "ACTIVE_SCHEDULE_EXISTS", "Employee already has an active work schedule")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
