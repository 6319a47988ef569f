package dashboard

import (
	"context"
	"time"

	"github.com/hrmslite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmslite/hrms-backend-go/internal/domain/dashboard"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/dateutil"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository

	recentLimit int
	now         func() time.Time
}

func NewDashboardService(repo dashboard.DashboardRepository, recentLimit int) *DashboardServiceImpl {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		recentLimit:         recentLimit,
		now:                 time.Now,
	}
}

// WithClock overrides the service's notion of "now". Test hook.
func (s *DashboardServiceImpl) WithClock(now func() time.Time) *DashboardServiceImpl {
	s.now = now
	return s
}

// parseDate parses YYYY-MM-DD; empty means today, malformed is an error.
func (s *DashboardServiceImpl) parseDate(date string) (time.Time, error) {
	if date == "" {
		return dateutil.DateOnly(s.now()), nil
	}
	parsed, err := dateutil.ParseDate(date)
	if err != nil {
		return time.Time{}, attendance.ErrInvalidDate
	}
	return parsed, nil
}

// GetTodaySummary implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetTodaySummary(ctx context.Context) (*dashboard.DailySummary, error) {
	return s.GetSummary(ctx, "")
}

// GetSummary implements dashboard.DashboardService. The four queries are
// independent, so they fan out in parallel.
func (s *DashboardServiceImpl) GetSummary(ctx context.Context, date string) (*dashboard.DailySummary, error) {
	asOf, err := s.parseDate(date)
	if err != nil {
		return nil, err
	}

	var (
		totalEmployees int64
		presentToday   int64
		absentToday    int64
		recent         []dashboard.ActivityItem
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		totalEmployees, err = s.CountEmployees(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		presentToday, err = s.CountAttendanceByDateAndStatus(gCtx, asOf, attendance.StatusPresent)
		return err
	})

	g.Go(func() error {
		var err error
		absentToday, err = s.CountAttendanceByDateAndStatus(gCtx, asOf, attendance.StatusAbsent)
		return err
	})

	g.Go(func() error {
		var err error
		recent, err = s.ListRecentActivity(gCtx, s.recentLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	unmarked := totalEmployees - presentToday - absentToday
	if unmarked < 0 {
		unmarked = 0
	}

	return &dashboard.DailySummary{
		Date:               dateutil.FormatDate(asOf),
		TotalEmployees:     totalEmployees,
		TotalPresentToday:  presentToday,
		TotalAbsentToday:   absentToday,
		TotalUnmarkedToday: unmarked,
		RecentActivity:     recent,
	}, nil
}
