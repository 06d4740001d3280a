package holiday

import "time"

// Holiday is a read-only reference for classification and analytics
// consumers. Recurring holidays repeat on the same month and day every
// year.
type Holiday struct {
	ID          string
	Name        string
	Date        time.Time
	Type        Type
	IsRecurring bool
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Type string

const (
	TypePublic   Type = "PUBLIC"
	TypeCompany  Type = "COMPANY"
	TypeRegional Type = "REGIONAL"
)

var TypeValues = []string{
	string(TypePublic),
	string(TypeCompany),
	string(TypeRegional),
}

// Matches reports whether the holiday falls on the given date, honoring
// recurrence.
func (h Holiday) Matches(date time.Time) bool {
	if h.IsRecurring {
		return h.Date.Month() == date.Month() && h.Date.Day() == date.Day()
	}
	return h.Date.Year() == date.Year() && h.Date.Month() == date.Month() && h.Date.Day() == date.Day()
}
