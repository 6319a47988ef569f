package dateutil

import "time"

// DateFormat is the wire format for calendar days ("YYYY-MM-DD", local, no time component).
const DateFormat = "2006-01-02"

// DaysInMonth returns the number of calendar days in the given month, leap-year aware.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekdayOfMonth returns the weekday index of day 1, with 0 = Sunday.
func FirstWeekdayOfMonth(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// NormalizeMonth rolls out-of-range months into the adjacent year, so month 0
// becomes December of the previous year and month 13 becomes January of the next.
func NormalizeMonth(year, month int) (int, time.Month) {
	t := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}

// DateOnly truncates a timestamp to its calendar day in the same location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsFuture reports whether date falls after today at day granularity.
// Time-of-day components on either argument are ignored.
func IsFuture(date, today time.Time) bool {
	return DateOnly(date).After(DateOnly(today))
}

// IsWeeklyOff reports whether the date falls on the designated non-working weekday.
func IsWeeklyOff(date time.Time, off time.Weekday) bool {
	return date.Weekday() == off
}

// IsMarkable reports whether a day should be offered for marking in the UI.
// This is a display affordance only; the write path enforces date validity itself.
func IsMarkable(date, today time.Time, off time.Weekday) bool {
	return !IsFuture(date, today) && !IsWeeklyOff(date, off)
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}

// FormatDate renders a timestamp as its "YYYY-MM-DD" calendar day.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}
