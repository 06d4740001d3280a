package leave

import "time"

type Request struct {
	ID           string
	EmployeeID   string
	Type         Type
	StartDate    time.Time
	EndDate      time.Time
	Reason       *string
	Status       Status
	ApprovedByID *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO
	EmployeeName *string
}

type Type string

const (
	TypeAnnual    Type = "ANNUAL"
	TypeSick      Type = "SICK"
	TypeUnpaid    Type = "UNPAID"
	TypeMaternity Type = "MATERNITY"
	TypeOther     Type = "OTHER"
)

var TypeValues = []string{
	string(TypeAnnual),
	string(TypeSick),
	string(TypeUnpaid),
	string(TypeMaternity),
	string(TypeOther),
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
func (r Request) IsTerminal() bool {
	return r.Status == StatusApproved || r.Status == StatusRejected
}
