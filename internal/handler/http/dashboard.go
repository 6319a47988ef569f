package http

import (
	"net/http"

	"github.com/hrmslite/hrms-backend-go/internal/domain/dashboard"
	"github.com/hrmslite/hrms-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetTodaySummary returns the daily attendance summary
	GetTodaySummary(w http.ResponseWriter, r *http.Request)
	// GetSummary returns the summary for an arbitrary day
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetTodaySummary handles GET /attendance/summary/today
func (h *dashboardHandlerImpl) GetTodaySummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetTodaySummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetSummary handles GET /attendance/summary?date=YYYY-MM-DD
func (h *dashboardHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date") // default: today

	result, err := h.dashboardService.GetSummary(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
