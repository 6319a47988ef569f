package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound    = errors.New("attendance record not found")
	ErrInvalidDate           = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidStatus         = errors.New("status must be Present or Absent")
	ErrFutureDateNotAllowed  = errors.New("cannot mark attendance for a future date")
	ErrNoPendingConfirmation = errors.New("no confirmation is pending")
)
