package attendance

import (
	"github.com/hrmslite/hrms-backend-go/internal/pkg/dateutil"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/validator"
)

// MarkRequest is the write payload for one day's status.
type MarkRequest struct {
	Date   string `json:"date"`   // YYYY-MM-DD
	Status string `json:"status"` // Present | Absent
}

func (r MarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status is required"})
	} else if !IsValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be Present or Absent"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RecordResponse is the wire shape of a Record.
type RecordResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     Status `json:"status"`
}

func NewRecordResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		Date:       dateutil.FormatDate(rec.Date),
		Status:     rec.Status,
	}
}

// ExistsResponse answers "is there already a record for this employee and day".
type ExistsResponse struct {
	Exists bool   `json:"exists"`
	Status Status `json:"status,omitempty"`
	ID     string `json:"id,omitempty"`
}

// ListFilter narrows an employee's record listing to an optional date range.
type ListFilter struct {
	StartDate *string
	EndDate   *string
}

// CheckState distinguishes the three outcomes of an existence check. CheckError
// is deliberately a separate case even though the marking flow treats it like
// NotFound: the distinction matters for tests and for any future policy change.
type CheckState int

const (
	CheckNotFound CheckState = iota
	CheckFound
	CheckError
)

// CheckResult is the resolver-facing view of an existence check.
type CheckResult struct {
	State  CheckState
	Status Status // set only when State == CheckFound
	Err    error  // set only when State == CheckError
}

// ConfirmationRequest is the ephemeral payload behind a "change existing mark?"
// dialog. It lives only in the resolver's single pending slot and is discarded
// on confirm or cancel, never persisted.
type ConfirmationRequest struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Date         string `json:"date"`
	FromStatus   Status `json:"from_status"`
	ToStatus     Status `json:"to_status"`
	Message      string `json:"message"`
}

// Notification tones surfaced to the UI layer.
const (
	ToneSuccess = "success"
	ToneDanger  = "danger"
)

// Notification is the triggering contract for a toast; rendering is the UI's concern.
type Notification struct {
	Message string `json:"message"`
	Tone    string `json:"tone"`
}

// OutcomeState is the terminal state of one marking attempt.
type OutcomeState string

const (
	OutcomeSettled              OutcomeState = "settled"
	OutcomeAwaitingConfirmation OutcomeState = "awaiting_confirmation"
	OutcomeFailed               OutcomeState = "failed"
	OutcomeCancelled            OutcomeState = "cancelled"
)

// MarkOutcome reports how a marking attempt ended. Confirmation is set only for
// awaiting_confirmation; Notification for settled and failed; Record for settled.
type MarkOutcome struct {
	State        OutcomeState         `json:"state"`
	Confirmation *ConfirmationRequest `json:"confirmation,omitempty"`
	Notification *Notification        `json:"notification,omitempty"`
	Record       *RecordResponse      `json:"record,omitempty"`
}
