package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/hrmslite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmslite/hrms-backend-go/internal/domain/dashboard"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/database"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/dateutil"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

// CountEmployees implements dashboard.DashboardRepository.
func (d *dashboardRepository) CountEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, d.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

// CountAttendanceByDateAndStatus implements dashboard.DashboardRepository.
func (d *dashboardRepository) CountAttendanceByDateAndStatus(ctx context.Context, date time.Time, status attendance.Status) (int64, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT COUNT(*)
		FROM attendance_records
		WHERE date = $1 AND status = $2
	`

	var count int64
	if err := q.QueryRow(ctx, query, date, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count attendance by date and status: %w", err)
	}
	return count, nil
}

// ListRecentActivity implements dashboard.DashboardRepository.
func (d *dashboardRepository) ListRecentActivity(ctx context.Context, limit int) ([]dashboard.ActivityItem, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT a.id, a.employee_id, e.employee_code, a.date, a.status
		FROM attendance_records a
		LEFT JOIN employees e ON e.id = a.employee_id
		ORDER BY a.created_at DESC, a.id DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent activity: %w", err)
	}
	defer rows.Close()

	var items []dashboard.ActivityItem
	for rows.Next() {
		var item dashboard.ActivityItem
		var code *string
		var date time.Time
		if err := rows.Scan(&item.RecordID, &item.EmployeeID, &code, &date, &item.Status); err != nil {
			return nil, fmt.Errorf("failed to scan activity item: %w", err)
		}
		if code != nil {
			item.EmployeeCode = *code
		}
		item.Date = dateutil.FormatDate(date)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recent activity: %w", err)
	}

	return items, nil
}
