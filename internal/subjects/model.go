package subjects

import "time"

// Subject is a case subject (employee) in a reintegration trajectory.
type Subject struct {
	ID            string
	EmployerID    string
	FullName      string
	DateOfBirth   *time.Time
	FunctionTitle string
	FirstSickDay  *time.Time
	CreatedAt     time.Time
}
