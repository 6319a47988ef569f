package calendar

import (
	"time"

	"github.com/hrmslite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmslite/hrms-backend-go/internal/domain/calendar"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/dateutil"
)

// Service renders month grids from record sets. It is a pure transformation:
// no lookups, no writes, and navigation touches only the viewed month.
type Service struct {
	weeklyOff time.Weekday
}

func NewCalendarService(weeklyOff time.Weekday) *Service {
	return &Service{weeklyOff: weeklyOff}
}

// ViewState is the navigable (year, month) pair of a calendar widget.
type ViewState struct {
	Year  int
	Month time.Month
}

// Prev moves the view one month back, rolling over year boundaries.
func (v ViewState) Prev() ViewState {
	year, month := dateutil.NormalizeMonth(v.Year, int(v.Month)-1)
	return ViewState{Year: year, Month: month}
}

// Next moves the view one month forward, rolling over year boundaries.
func (v ViewState) Next() ViewState {
	year, month := dateutil.NormalizeMonth(v.Year, int(v.Month)+1)
	return ViewState{Year: year, Month: month}
}

// BuildMonth renders one month: FirstWeekday leading blank cells, then one cell
// per day 1..DaysInMonth. No trailing padding. Records are matched by their
// YYYY-MM-DD date string; at most one record can match a day.
func (s *Service) BuildMonth(records []attendance.RecordResponse, year int, month time.Month, today time.Time) calendar.MonthGrid {
	year, month = dateutil.NormalizeMonth(year, int(month))

	byDate := make(map[string]attendance.RecordResponse, len(records))
	for _, rec := range records {
		byDate[rec.Date] = rec
	}

	firstWeekday := dateutil.FirstWeekdayOfMonth(year, month)
	days := dateutil.DaysInMonth(year, month)

	cells := make([]calendar.DayCell, 0, firstWeekday+days)
	for i := 0; i < firstWeekday; i++ {
		cells = append(cells, calendar.DayCell{})
	}

	for day := 1; day <= days; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, today.Location())
		cell := calendar.DayCell{
			Day:       day,
			Date:      dateutil.FormatDate(date),
			Future:    dateutil.IsFuture(date, today),
			WeeklyOff: dateutil.IsWeeklyOff(date, s.weeklyOff),
			Markable:  dateutil.IsMarkable(date, today, s.weeklyOff),
		}
		if rec, ok := byDate[cell.Date]; ok {
			status := attendance.Classify(string(rec.Status))
			cell.HasRecord = true
			cell.Status = &status
		}
		cells = append(cells, cell)
	}

	return calendar.MonthGrid{
		Year:         year,
		Month:        int(month),
		MonthName:    month.String(),
		FirstWeekday: firstWeekday,
		DaysInMonth:  days,
		Cells:        cells,
	}
}
