package employee

import "time"

type Employee struct {
	ID        string
	FullName  string
	Status    Status
	TimeZone  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Status string

const (
	StatusActive     Status = "ACTIVE"
	StatusInactive   Status = "INACTIVE"
	StatusProbation  Status = "PROBATION"
	StatusTerminated Status = "TERMINATED"
	StatusResigned   Status = "RESIGNED"
)

// CanRecordAttendance reports whether the employee is eligible for
// attendance actions. Only active and probation employees are.
func (e Employee) CanRecordAttendance() bool {
	return e.Status == StatusActive || e.Status == StatusProbation
}
