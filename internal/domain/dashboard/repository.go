package dashboard

import (
	"context"
	"time"

	"github.com/hrmslite/hrms-backend-go/internal/domain/attendance"
)

// DashboardRepository defines the aggregate queries behind the daily summary.
type DashboardRepository interface {
	// CountEmployees returns the total number of known employees, not filtered by date
	CountEmployees(ctx context.Context) (int64, error)

	// CountAttendanceByDateAndStatus counts records on a day with the given status
	CountAttendanceByDateAndStatus(ctx context.Context, date time.Time, status attendance.Status) (int64, error)

	// ListRecentActivity returns the latest records across all employees, newest first
	ListRecentActivity(ctx context.Context, limit int) ([]ActivityItem, error)
}
