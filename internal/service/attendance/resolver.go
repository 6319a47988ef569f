package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/hrmslite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
)

// fallbackName is used when the employee lookup fails; marking still proceeds.
const fallbackName = "Employee"

// MarkingResolverImpl is the check-then-write state machine behind the marking
// UI. One resolver holds one pending confirmation slot and one viewed-employee
// record cache; both are guarded by mu. The existence check is advisory and
// racy by design: the attendance service remains the sole write authority.
type MarkingResolverImpl struct {
	mu sync.Mutex

	attendanceService attendance.AttendanceService
	employeeService   employee.EmployeeService

	pending          *attendance.ConfirmationRequest
	viewedEmployeeID string
	cache            []attendance.RecordResponse
}

func NewMarkingResolver(attendanceService attendance.AttendanceService, employeeService employee.EmployeeService) *MarkingResolverImpl {
	return &MarkingResolverImpl{
		attendanceService: attendanceService,
		employeeService:   employeeService,
	}
}

// RequestMark implements attendance.MarkingResolver.
//
// Checking: when a record already exists for (employee, date) the attempt parks
// a ConfirmationRequest and waits; any earlier pending request is replaced,
// last request wins. When the check itself fails the attempt proceeds as a
// direct write: an inability to check must not block marking (it might simply
// be the first time marking).
func (r *MarkingResolverImpl) RequestMark(ctx context.Context, employeeID, date, status string) attendance.MarkOutcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := r.lookupName(ctx, employeeID)

	check := r.checkExisting(ctx, employeeID, date)
	switch check.State {
	case attendance.CheckFound:
		toStatus := attendance.Classify(status)
		req := &attendance.ConfirmationRequest{
			EmployeeID:   employeeID,
			EmployeeName: name,
			Date:         date,
			FromStatus:   check.Status,
			ToStatus:     toStatus,
			Message: fmt.Sprintf(
				"Attendance for %s on %s is already marked as %q. Do you want to change it to %q?",
				name, date, check.Status, toStatus,
			),
		}
		r.pending = req
		confirmation := *req
		return attendance.MarkOutcome{
			State:        attendance.OutcomeAwaitingConfirmation,
			Confirmation: &confirmation,
		}

	case attendance.CheckError:
		slog.Warn("failed to check existing attendance, proceeding with marking",
			"employee_id", employeeID, "date", date, "error", check.Err)
	}

	return r.applyWrite(ctx, employeeID, name, date, status, false)
}

// Confirm implements attendance.MarkingResolver. The pending request is
// consumed before the write so a failure never leaves a stale dialog behind.
func (r *MarkingResolverImpl) Confirm(ctx context.Context) (attendance.MarkOutcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pending == nil {
		return attendance.MarkOutcome{}, attendance.ErrNoPendingConfirmation
	}

	req := *r.pending
	r.pending = nil

	return r.applyWrite(ctx, req.EmployeeID, req.EmployeeName, req.Date, string(req.ToStatus), true), nil
}

// Cancel implements attendance.MarkingResolver. Silent no-op when nothing is pending.
func (r *MarkingResolverImpl) Cancel() attendance.MarkOutcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pending = nil
	return attendance.MarkOutcome{State: attendance.OutcomeCancelled}
}

// Pending implements attendance.MarkingResolver.
func (r *MarkingResolverImpl) Pending() *attendance.ConfirmationRequest {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pending == nil {
		return nil
	}
	copied := *r.pending
	return &copied
}

// ViewEmployee implements attendance.MarkingResolver.
func (r *MarkingResolverImpl) ViewEmployee(ctx context.Context, employeeID string) ([]attendance.RecordResponse, error) {
	records, err := r.attendanceService.ListByEmployee(ctx, employeeID, attendance.ListFilter{})
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.viewedEmployeeID = employeeID
	r.cache = records
	r.mu.Unlock()

	return records, nil
}

// Records implements attendance.MarkingResolver.
func (r *MarkingResolverImpl) Records() []attendance.RecordResponse {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]attendance.RecordResponse, len(r.cache))
	copy(out, r.cache)
	return out
}

// applyWrite performs the write and produces the terminal outcome. Callers hold mu.
func (r *MarkingResolverImpl) applyWrite(ctx context.Context, employeeID, name, date, status string, confirmed bool) attendance.MarkOutcome {
	rec, err := r.attendanceService.Mark(ctx, employeeID, attendance.MarkRequest{Date: date, Status: status})
	if err != nil {
		slog.Error("failed to mark attendance", "employee_id", employeeID, "date", date, "error", err)
		message := "Failed to mark attendance. Note: Cannot mark for future dates."
		if confirmed {
			message = "Failed to update attendance."
		}
		return attendance.MarkOutcome{
			State:        attendance.OutcomeFailed,
			Notification: &attendance.Notification{Message: message, Tone: attendance.ToneDanger},
		}
	}

	// Targeted invalidation: only the viewed employee's cache is refreshed.
	if r.viewedEmployeeID == employeeID {
		if refreshed, err := r.attendanceService.ListByEmployee(ctx, employeeID, attendance.ListFilter{}); err != nil {
			slog.Warn("failed to refresh attendance cache after write", "employee_id", employeeID, "error", err)
		} else {
			r.cache = refreshed
		}
	}

	tone := attendance.ToneSuccess
	if rec.Status == attendance.StatusAbsent {
		tone = attendance.ToneDanger
	}
	verb := "marked as"
	if confirmed {
		verb = "updated to"
	}

	return attendance.MarkOutcome{
		State: attendance.OutcomeSettled,
		Notification: &attendance.Notification{
			Message: fmt.Sprintf("Attendance %s %s for %s on %s", verb, rec.Status, name, date),
			Tone:    tone,
		},
		Record: &rec,
	}
}

// checkExisting folds the service call into the three-case result. CheckError
// and CheckNotFound take the same branch downstream, deliberately, but stay
// distinct cases so the policy remains visible and testable.
func (r *MarkingResolverImpl) checkExisting(ctx context.Context, employeeID, date string) attendance.CheckResult {
	res, err := r.attendanceService.CheckExisting(ctx, employeeID, date)
	if err != nil {
		return attendance.CheckResult{State: attendance.CheckError, Err: err}
	}
	if !res.Exists {
		return attendance.CheckResult{State: attendance.CheckNotFound}
	}
	return attendance.CheckResult{State: attendance.CheckFound, Status: res.Status}
}

func (r *MarkingResolverImpl) lookupName(ctx context.Context, employeeID string) string {
	emp, err := r.employeeService.GetByID(ctx, employeeID)
	if err != nil {
		return fallbackName
	}
	return emp.FullName
}
