package regularization

import "time"

// Regularization is a retroactive correction request for a day's
// attendance. Approval is the only transition with a side effect: it
// patches (or creates) the day's attendance record.
type Regularization struct {
	ID                string
	EmployeeID        string
	Date              time.Time // day precision
	RequestedCheckIn  *time.Time
	RequestedCheckOut *time.Time
	Reason            string
	Status            Status
	ApprovedByID      *string
	ApprovedAt        *time.Time
	RejectedReason    *string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// DTO
	EmployeeName *string
}

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

var StatusValues = []string{
	string(StatusPending),
	string(StatusApproved),
	string(StatusRejected),
}

// IsTerminal reports whether the request has already been processed.
func (r Regularization) IsTerminal() bool {
	return r.Status == StatusApproved || r.Status == StatusRejected
}
