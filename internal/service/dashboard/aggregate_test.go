package dashboard

import (
	"testing"
	"time"

	"github.com/hrmslite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/dateutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(value string) time.Time {
	t, err := time.Parse(dateutil.DateFormat, value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAggregate_UnmarkedCountInNeitherBucket(t *testing.T) {
	employees := []employee.Employee{
		{ID: "E1", EmployeeCode: "EMP-001"},
		{ID: "E2", EmployeeCode: "EMP-002"},
		{ID: "E3", EmployeeCode: "EMP-003"},
	}
	records := []attendance.Record{
		{ID: "r1", EmployeeID: "E1", Date: day("2024-06-10"), Status: attendance.StatusPresent},
		{ID: "r2", EmployeeID: "E2", Date: day("2024-06-10"), Status: attendance.StatusPresent},
	}

	summary := Aggregate(day("2024-06-10"), employees, records, 5)

	assert.Equal(t, int64(3), summary.TotalEmployees)
	assert.Equal(t, int64(2), summary.TotalPresentToday)
	assert.Equal(t, int64(0), summary.TotalAbsentToday)
	assert.Equal(t, int64(1), summary.TotalUnmarkedToday)
}

func TestAggregate_OnlyRecordsForTheDayCount(t *testing.T) {
	employees := []employee.Employee{
		{ID: "E1", EmployeeCode: "EMP-001"},
		{ID: "E2", EmployeeCode: "EMP-002"},
	}
	records := []attendance.Record{
		{ID: "r1", EmployeeID: "E1", Date: day("2024-06-10"), Status: attendance.StatusAbsent},
		{ID: "r2", EmployeeID: "E1", Date: day("2024-06-09"), Status: attendance.StatusPresent},
		{ID: "r3", EmployeeID: "E2", Date: day("2024-06-08"), Status: attendance.StatusPresent},
	}

	summary := Aggregate(day("2024-06-10"), employees, records, 5)

	assert.Equal(t, "2024-06-10", summary.Date)
	assert.Equal(t, int64(0), summary.TotalPresentToday)
	assert.Equal(t, int64(1), summary.TotalAbsentToday)
	assert.Equal(t, int64(1), summary.TotalUnmarkedToday)
}

func TestAggregate_RecentActivityNewestFirstAndLimited(t *testing.T) {
	employees := []employee.Employee{{ID: "E1", EmployeeCode: "EMP-001"}}

	base := time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)
	var records []attendance.Record
	for i := 0; i < 7; i++ {
		records = append(records, attendance.Record{
			ID:         string(rune('a' + i)),
			EmployeeID: "E1",
			Date:       day("2024-06-10"),
			Status:     attendance.StatusPresent,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		})
	}

	summary := Aggregate(day("2024-06-10"), employees, records, 5)

	require.Len(t, summary.RecentActivity, 5)
	assert.Equal(t, "g", summary.RecentActivity[0].RecordID)
	assert.Equal(t, "c", summary.RecentActivity[4].RecordID)
	assert.Equal(t, "EMP-001", summary.RecentActivity[0].EmployeeCode)
	assert.Equal(t, "2024-06-10", summary.RecentActivity[0].Date)
}

func TestAggregate_Empty(t *testing.T) {
	summary := Aggregate(day("2024-06-10"), nil, nil, 5)

	assert.Equal(t, int64(0), summary.TotalEmployees)
	assert.Equal(t, int64(0), summary.TotalUnmarkedToday)
	assert.Empty(t, summary.RecentActivity)
}
