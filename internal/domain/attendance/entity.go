package attendance

import (
	"time"
)

type Record struct {
	ID               string
	EmployeeID       string
	Date             time.Time // working day, truncated to local midnight
	CheckIn          *time.Time
	CheckOut         *time.Time
	Status           Status
	ExpectedCheckIn  *time.Time
	ExpectedCheckOut *time.Time
	LateByMinutes    *int
	EarlyByMinutes   *int
	WorkHours        *float64
	TotalHours       *float64
	Overtime         *float64
	Location         *string
	Latitude         *float64
	Longitude        *float64
	LocationType     *LocationType
	IsRegularized    bool
	RegularizationID *string
	Notes            *string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// DTO
	EmployeeName *string
}

type Status string

const (
	StatusPresent        Status = "PRESENT"
	StatusAbsent         Status = "ABSENT"
	StatusLate           Status = "LATE"
	StatusOnLeave        Status = "ON_LEAVE"
	StatusEarlyDeparture Status = "EARLY_DEPARTURE"
	StatusHalfDay        Status = "HALF_DAY"
)

var StatusValues = []string{
	string(StatusPresent),
	string(StatusAbsent),
	string(StatusLate),
	string(StatusOnLeave),
	string(StatusEarlyDeparture),
	string(StatusHalfDay),
}

type LocationType string

const (
	LocationTypeOffice LocationType = "OFFICE"
	LocationTypeRemote LocationType = "REMOTE"
	LocationTypeHybrid LocationType = "HYBRID"
	LocationTypeField  LocationType = "FIELD"
)

var LocationTypeValues = []string{
	string(LocationTypeOffice),
	string(LocationTypeRemote),
	string(LocationTypeHybrid),
	string(LocationTypeField),
}

type Break struct {
	ID              string
	AttendanceID    string
	Type            BreakType
	StartTime       time.Time
	EndTime         *time.Time
	DurationMinutes *int
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type BreakType string

const (
	BreakTypeLunch    BreakType = "LUNCH"
	BreakTypeCoffee   BreakType = "COFFEE"
	BreakTypePersonal BreakType = "PERSONAL"
	BreakTypeOther    BreakType = "OTHER"
)

var BreakTypeValues = []string{
	string(BreakTypeLunch),
	string(BreakTypeCoffee),
	string(BreakTypePersonal),
	string(BreakTypeOther),
}
