package calendar

import "github.com/hrmslite/hrms-backend-go/internal/domain/attendance"

// DayCell is one cell of the month grid. Leading blank cells have Day == 0 and
// all flags false. Markable is a visual affordance only; the write path decides
// writability on its own.
type DayCell struct {
	Day       int                `json:"day"` // 0 for a leading blank
	Date      string             `json:"date,omitempty"`
	HasRecord bool               `json:"has_record"`
	Status    *attendance.Status `json:"status,omitempty"`
	Future    bool               `json:"future"`
	WeeklyOff bool               `json:"weekly_off"`
	Markable  bool               `json:"markable"`
}

// MonthGrid is a rendered month: FirstWeekday leading blanks followed by one
// cell per day. No trailing padding is added.
type MonthGrid struct {
	Year         int       `json:"year"`
	Month        int       `json:"month"` // 1..12
	MonthName    string    `json:"month_name"`
	FirstWeekday int       `json:"first_weekday"` // 0 = Sunday
	DaysInMonth  int       `json:"days_in_month"`
	Cells        []DayCell `json:"cells"`
}
