package regularization

import "errors"

var (
	ErrRegularizationNotFound  = errors.New("regularization request not found")
	ErrAlreadyProcessed        = errors.New("regularization has already been approved or rejected")
	ErrDuplicateRegularization = errors.New("a pending regularization already exists for this date")
	ErrFutureDateNotAllowed    = errors.New("regularization date cannot be in the future")
	ErrApproverRequired        = errors.New("approver is required")
	ErrApproverNotFound        = errors.New("approver not found")
	ErrRejectionReasonRequired = errors.New("rejection reason is required")
)
