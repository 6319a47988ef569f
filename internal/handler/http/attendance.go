package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hrmslite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmslite/hrms-backend-go/internal/handler/http/response"
	calendarService "github.com/hrmslite/hrms-backend-go/internal/service/calendar"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	Check(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	Calendar(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	calendarService   *calendarService.Service
}

func NewAttendanceHandler(svc attendance.AttendanceService, cal *calendarService.Service) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: svc,
		calendarService:   cal,
	}
}

// Mark handles POST /attendance/{employeeID}
func (h *attendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var req attendance.MarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode attendance payload", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Mark(r.Context(), employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded", result)
}

// Check handles GET /attendance/check/{employeeID}/{date}
func (h *attendanceHandlerImpl) Check(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	date := chi.URLParam(r, "date")

	result, err := h.attendanceService.CheckExisting(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListByEmployee handles GET /attendance/{employeeID}
func (h *attendanceHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	filter := attendance.ListFilter{}
	if v := r.URL.Query().Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		filter.EndDate = &v
	}

	result, err := h.attendanceService.ListByEmployee(r.Context(), employeeID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Calendar handles GET /attendance/{employeeID}/calendar?year=&month=
// Out-of-range months roll into the adjacent year, so month=0 renders
// December of the previous year.
func (h *attendanceHandlerImpl) Calendar(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	now := time.Now()
	year := now.Year()
	month := int(now.Month())

	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		year = parsed
	}
	if v := r.URL.Query().Get("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "month must be a number", nil)
			return
		}
		month = parsed
	}

	records, err := h.attendanceService.ListByEmployee(r.Context(), employeeID, attendance.ListFilter{})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	grid := h.calendarService.BuildMonth(records, year, time.Month(month), now)
	response.Success(w, grid)
}
