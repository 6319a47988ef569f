package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrmslite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmslite/hrms-backend-go/internal/handler/http/response"
)

// MarkingHandler exposes the conflict-resolving marking session. The resolver
// behind it holds one pending confirmation at a time, mirroring the single
// confirm dialog of the attendance screen.
type MarkingHandler interface {
	Request(w http.ResponseWriter, r *http.Request)
	Confirm(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	View(w http.ResponseWriter, r *http.Request)
}

type markingHandlerImpl struct {
	resolver attendance.MarkingResolver
}

func NewMarkingHandler(resolver attendance.MarkingResolver) MarkingHandler {
	return &markingHandlerImpl{resolver: resolver}
}

type markingRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

// Request handles POST /attendance/marking
func (h *markingHandlerImpl) Request(w http.ResponseWriter, r *http.Request) {
	var req markingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode marking payload", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	outcome := h.resolver.RequestMark(r.Context(), req.EmployeeID, req.Date, req.Status)
	response.Success(w, outcome)
}

// Confirm handles POST /attendance/marking/confirm
func (h *markingHandlerImpl) Confirm(w http.ResponseWriter, r *http.Request) {
	outcome, err := h.resolver.Confirm(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, outcome)
}

// Cancel handles POST /attendance/marking/cancel
func (h *markingHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	outcome := h.resolver.Cancel()
	response.Success(w, outcome)
}

// View handles POST /attendance/marking/view/{employeeID}; it selects the
// employee whose records the session caches and returns them.
func (h *markingHandlerImpl) View(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	records, err := h.resolver.ViewEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
