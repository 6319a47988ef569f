package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/hrmslite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/dateutil"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository

	// now is swappable so date-boundary behavior is testable
	now func() time.Time
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		now:                  time.Now,
	}
}

// WithClock overrides the service's notion of "now". Test hook.
func (a *AttendanceServiceImpl) WithClock(now func() time.Time) *AttendanceServiceImpl {
	a.now = now
	return a
}

// Mark implements attendance.AttendanceService. The server is the authority on
// date validity: future days are rejected here regardless of any client-side
// gating. A mark on a day that already has a record overwrites its status.
func (a *AttendanceServiceImpl) Mark(ctx context.Context, employeeID string, req attendance.MarkRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	date, err := dateutil.ParseDate(req.Date)
	if err != nil {
		return attendance.RecordResponse{}, attendance.ErrInvalidDate
	}

	if dateutil.IsFuture(date, a.now()) {
		return attendance.RecordResponse{}, attendance.ErrFutureDateNotAllowed
	}

	if _, err := a.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return attendance.RecordResponse{}, err
	}

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}

	status := attendance.Classify(req.Status)

	if existing != nil {
		updated, err := a.AttendanceRepository.UpdateStatus(ctx, existing.ID, status)
		if err != nil {
			return attendance.RecordResponse{}, fmt.Errorf("failed to overwrite attendance status: %w", err)
		}
		return attendance.NewRecordResponse(updated), nil
	}

	created, err := a.AttendanceRepository.Create(ctx, attendance.Record{
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
	})
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return attendance.NewRecordResponse(created), nil
}

// CheckExisting implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckExisting(ctx context.Context, employeeID string, date string) (attendance.ExistsResponse, error) {
	day, err := dateutil.ParseDate(date)
	if err != nil {
		return attendance.ExistsResponse{}, attendance.ErrInvalidDate
	}

	rec, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return attendance.ExistsResponse{}, fmt.Errorf("failed to check attendance existence: %w", err)
	}
	if rec == nil {
		return attendance.ExistsResponse{Exists: false}, nil
	}

	return attendance.ExistsResponse{
		Exists: true,
		Status: rec.Status,
		ID:     rec.ID,
	}, nil
}

// ListByEmployee implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListByEmployee(ctx context.Context, employeeID string, filter attendance.ListFilter) ([]attendance.RecordResponse, error) {
	records, err := a.AttendanceRepository.ListByEmployee(ctx, employeeID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for employee %s: %w", employeeID, err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.NewRecordResponse(rec))
	}
	return responses, nil
}
