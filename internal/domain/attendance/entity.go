package attendance

import (
	"strings"
	"time"
)

// Status is one of exactly two display buckets. The domain intentionally has no
// third "unknown" state: anything that is not a case-insensitive "present" is Absent.
type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

// Classify maps a raw status string into a display bucket, case-insensitively.
func Classify(raw string) Status {
	if strings.EqualFold(raw, string(StatusPresent)) {
		return StatusPresent
	}
	return StatusAbsent
}

// IsValidStatus reports whether raw is an accepted input status. Inputs are
// stricter than display classification: only the two canonical values may be written.
func IsValidStatus(raw string) bool {
	return strings.EqualFold(raw, string(StatusPresent)) || strings.EqualFold(raw, string(StatusAbsent))
}

// Record is one employee's attendance for one calendar day.
// Identity is (EmployeeID, Date); at most one record exists per pair. A second
// mark for the same day is a status change on the existing record, never a new row.
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time // calendar day, time component always zero
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
