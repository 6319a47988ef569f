package dashboard

import (
	"sort"
	"time"

	"github.com/hrmslite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmslite/hrms-backend-go/internal/domain/dashboard"
	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/dateutil"
)

// Aggregate derives a DailySummary from in-memory data, for callers that hold
// the full record set instead of a database. Same derivation rules as the
// repository-backed path: only records dated asOf count, an employee with no
// record that day lands in neither present nor absent, and recent activity is
// the newest recentLimit records across all employees.
func Aggregate(asOf time.Time, employees []employee.Employee, records []attendance.Record, recentLimit int) dashboard.DailySummary {
	day := dateutil.DateOnly(asOf)

	var present, absent int64
	for _, rec := range records {
		if !dateutil.DateOnly(rec.Date).Equal(day) {
			continue
		}
		if attendance.Classify(string(rec.Status)) == attendance.StatusPresent {
			present++
		} else {
			absent++
		}
	}

	codeByID := make(map[string]string, len(employees))
	for _, emp := range employees {
		codeByID[emp.ID] = emp.EmployeeCode
	}

	sorted := make([]attendance.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if recentLimit >= 0 && len(sorted) > recentLimit {
		sorted = sorted[:recentLimit]
	}

	recent := make([]dashboard.ActivityItem, 0, len(sorted))
	for _, rec := range sorted {
		recent = append(recent, dashboard.ActivityItem{
			RecordID:     rec.ID,
			EmployeeID:   rec.EmployeeID,
			EmployeeCode: codeByID[rec.EmployeeID],
			Date:         dateutil.FormatDate(rec.Date),
			Status:       string(rec.Status),
		})
	}

	total := int64(len(employees))
	unmarked := total - present - absent
	if unmarked < 0 {
		unmarked = 0
	}

	return dashboard.DailySummary{
		Date:               dateutil.FormatDate(day),
		TotalEmployees:     total,
		TotalPresentToday:  present,
		TotalAbsentToday:   absent,
		TotalUnmarkedToday: unmarked,
		RecentActivity:     recent,
	}
}
