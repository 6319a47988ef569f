package dashboard

import "context"

// DashboardService defines the summary operations.
type DashboardService interface {
	// GetTodaySummary computes the summary as of the current local day
	GetTodaySummary(ctx context.Context) (*DailySummary, error)

	// GetSummary computes the summary as of a YYYY-MM-DD day; empty means today
	GetSummary(ctx context.Context, date string) (*DailySummary, error)
}
