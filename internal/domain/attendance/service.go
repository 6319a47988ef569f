package attendance

import "context"

// AttendanceService defines business logic for attendance operations.
// Mark is the single write authority: it alone enforces date validity, so a
// client that skips its own display gating still cannot write a future day.
type AttendanceService interface {
	// Mark records or overwrites an employee's status for a day.
	// Rejects unknown employees and future dates.
	Mark(ctx context.Context, employeeID string, req MarkRequest) (RecordResponse, error)

	// CheckExisting reports whether a record already exists for (employee, day)
	CheckExisting(ctx context.Context, employeeID string, date string) (ExistsResponse, error)

	// ListByEmployee returns an employee's records, newest date first
	ListByEmployee(ctx context.Context, employeeID string, filter ListFilter) ([]RecordResponse, error)
}
