package calendar

import (
	"testing"
	"time"

	"github.com/hrmslite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmslite/hrms-backend-go/internal/domain/calendar"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/dateutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonth_GridShape(t *testing.T) {
	service := NewCalendarService(time.Sunday)
	today := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	// June 2024 starts on a Saturday and has 30 days.
	grid := service.BuildMonth(nil, 2024, time.June, today)

	assert.Equal(t, 2024, grid.Year)
	assert.Equal(t, "June", grid.MonthName)
	assert.Equal(t, 6, grid.FirstWeekday)
	assert.Equal(t, 30, grid.DaysInMonth)
	require.Len(t, grid.Cells, 36)

	for i := 0; i < grid.FirstWeekday; i++ {
		assert.Zero(t, grid.Cells[i].Day, "leading cells are blanks")
	}
	assert.Equal(t, 1, grid.Cells[grid.FirstWeekday].Day)
	assert.Equal(t, 30, grid.Cells[len(grid.Cells)-1].Day, "no trailing padding")
}

func TestBuildMonth_CellCountAcrossMonths(t *testing.T) {
	service := NewCalendarService(time.Sunday)
	today := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	for year := 2020; year <= 2025; year++ {
		for month := time.January; month <= time.December; month++ {
			grid := service.BuildMonth(nil, year, month, today)
			want := dateutil.FirstWeekdayOfMonth(year, month) + dateutil.DaysInMonth(year, month)
			assert.Len(t, grid.Cells, want, "%d-%02d", year, month)
		}
	}
}

func TestBuildMonth_RecordMatching(t *testing.T) {
	service := NewCalendarService(time.Sunday)
	today := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	records := []attendance.RecordResponse{
		{ID: "r1", EmployeeID: "E1", Date: "2024-06-03", Status: attendance.StatusPresent},
		{ID: "r2", EmployeeID: "E1", Date: "2024-06-04", Status: attendance.StatusAbsent},
		{ID: "r3", EmployeeID: "E1", Date: "2024-05-31", Status: attendance.StatusPresent}, // other month
	}

	grid := service.BuildMonth(records, 2024, time.June, today)

	var matched int
	for _, cell := range grid.Cells {
		if !cell.HasRecord {
			assert.Nil(t, cell.Status)
			continue
		}
		matched++
		require.NotNil(t, cell.Status)
		switch cell.Day {
		case 3:
			assert.Equal(t, attendance.StatusPresent, *cell.Status)
		case 4:
			assert.Equal(t, attendance.StatusAbsent, *cell.Status)
		default:
			t.Fatalf("unexpected record on day %d", cell.Day)
		}
	}
	assert.Equal(t, 2, matched)
}

func TestBuildMonth_DayFlags(t *testing.T) {
	service := NewCalendarService(time.Sunday)
	today := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	grid := service.BuildMonth(nil, 2024, time.June, today)

	cellFor := func(day int) calendar.DayCell {
		for _, cell := range grid.Cells {
			if cell.Day == day {
				return cell
			}
		}
		t.Fatalf("day %d not found", day)
		return calendar.DayCell{}
	}

	past := cellFor(14)
	assert.False(t, past.Future)
	assert.True(t, past.Markable)

	todayCell := cellFor(15)
	assert.False(t, todayCell.Future)
	assert.True(t, todayCell.Markable)

	future := cellFor(16)
	assert.True(t, future.Future)
	assert.True(t, future.WeeklyOff) // 2024-06-16 is a Sunday
	assert.False(t, future.Markable)

	offDay := cellFor(9) // past Sunday
	assert.True(t, offDay.WeeklyOff)
	assert.False(t, offDay.Markable)
}

func TestBuildMonth_NormalizesOutOfRangeMonth(t *testing.T) {
	service := NewCalendarService(time.Sunday)
	today := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	grid := service.BuildMonth(nil, 2024, time.Month(13), today)

	assert.Equal(t, 2025, grid.Year)
	assert.Equal(t, int(time.January), grid.Month)
}

func TestViewStateNavigation(t *testing.T) {
	tests := []struct {
		name string
		from ViewState
		move func(ViewState) ViewState
		want ViewState
	}{
		{
			name: "prev within year",
			from: ViewState{Year: 2024, Month: time.June},
			move: ViewState.Prev,
			want: ViewState{Year: 2024, Month: time.May},
		},
		{
			name: "prev across year boundary",
			from: ViewState{Year: 2024, Month: time.January},
			move: ViewState.Prev,
			want: ViewState{Year: 2023, Month: time.December},
		},
		{
			name: "next within year",
			from: ViewState{Year: 2024, Month: time.June},
			move: ViewState.Next,
			want: ViewState{Year: 2024, Month: time.July},
		},
		{
			name: "next across year boundary",
			from: ViewState{Year: 2024, Month: time.December},
			move: ViewState.Next,
			want: ViewState{Year: 2025, Month: time.January},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.move(tt.from))
		})
	}
}

func TestNavigationRoundTrip(t *testing.T) {
	start := ViewState{Year: 2024, Month: time.June}
	assert.Equal(t, start, start.Prev().Next())
	assert.Equal(t, start, start.Next().Prev())
}
