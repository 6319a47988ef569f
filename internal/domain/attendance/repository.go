package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
type AttendanceRepository interface {
	// Create inserts a new record for a day that has none yet
	Create(ctx context.Context, rec Record) (Record, error)

	// UpdateStatus overwrites the status of an existing record
	UpdateStatus(ctx context.Context, id string, status Status) (Record, error)

	// GetByEmployeeAndDate returns the single record for (employee, day),
	// or nil when none exists
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)

	// ListByEmployee returns an employee's records, newest date first
	ListByEmployee(ctx context.Context, employeeID string, filter ListFilter) ([]Record, error)

	// DeleteByEmployee removes all records for an employee; used when the
	// employee itself is deleted
	DeleteByEmployee(ctx context.Context, employeeID string) error
}
