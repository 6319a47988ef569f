package employee

import "time"

// Employee master data. EmployeeCode is the business identifier ("employee_id"
// on the wire); it is unique and immutable once issued, unlike the server id.
type Employee struct {
	ID           string
	EmployeeCode string
	FullName     string
	Email        string
	Department   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
