package employee

import "context"

// EmployeeRepository is the read-only view into the employee directory.
// Directory CRUD lives in a separate back-office service; this core only
// performs existence and eligibility lookups.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
}
