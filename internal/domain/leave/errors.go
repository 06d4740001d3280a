package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrAlreadyProcessed     = errors.New("leave request has already been approved or rejected")
	ErrInvalidDateRange     = errors.New("start date must not be after end date")
)
