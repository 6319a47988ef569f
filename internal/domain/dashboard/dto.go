package dashboard

// DailySummary is derived, never stored. It is computed on demand and is not
// invalidated when a mark happens elsewhere; callers wanting fresh numbers
// after a write must re-request it.
type DailySummary struct {
	Date               string         `json:"date"` // YYYY-MM-DD the counts are "as of"
	TotalEmployees     int64          `json:"total_employees"`
	TotalPresentToday  int64          `json:"total_present_today"`
	TotalAbsentToday   int64          `json:"total_absent_today"`
	TotalUnmarkedToday int64          `json:"total_unmarked_today"`
	RecentActivity     []ActivityItem `json:"recent_activity"`
}

// ActivityItem is one row of the recent-activity feed, newest first.
type ActivityItem struct {
	RecordID     string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeCode string `json:"employee_code,omitempty"`
	Date         string `json:"date"`
	Status       string `json:"status"`
}
