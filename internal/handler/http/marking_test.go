package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/hrmslite/hrms-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	outcome attendance.MarkOutcome
	err     error

	lastEmployeeID string
	lastDate       string
	lastStatus     string
	cancelled      bool
}

func (f *fakeResolver) RequestMark(ctx context.Context, employeeID, date, status string) attendance.MarkOutcome {
	f.lastEmployeeID = employeeID
	f.lastDate = date
	f.lastStatus = status
	return f.outcome
}

func (f *fakeResolver) Confirm(ctx context.Context) (attendance.MarkOutcome, error) {
	if f.err != nil {
		return attendance.MarkOutcome{}, f.err
	}
	return f.outcome, nil
}

func (f *fakeResolver) Cancel() attendance.MarkOutcome {
	f.cancelled = true
	return attendance.MarkOutcome{State: attendance.OutcomeCancelled}
}

func (f *fakeResolver) Pending() *attendance.ConfirmationRequest {
	return f.outcome.Confirmation
}

func (f *fakeResolver) ViewEmployee(ctx context.Context, employeeID string) ([]attendance.RecordResponse, error) {
	f.lastEmployeeID = employeeID
	return []attendance.RecordResponse{{ID: "r1", EmployeeID: employeeID}}, f.err
}

func (f *fakeResolver) Records() []attendance.RecordResponse {
	return nil
}

func markingTestRouter(resolver attendance.MarkingResolver) chi.Router {
	handler := NewMarkingHandler(resolver)
	r := chi.NewRouter()
	r.Post("/attendance/marking", handler.Request)
	r.Post("/attendance/marking/confirm", handler.Confirm)
	r.Post("/attendance/marking/cancel", handler.Cancel)
	r.Post("/attendance/marking/view/{employeeID}", handler.View)
	return r
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestMarkingRequest_Settled(t *testing.T) {
	resolver := &fakeResolver{outcome: attendance.MarkOutcome{
		State: attendance.OutcomeSettled,
		Notification: &attendance.Notification{
			Message: "Attendance marked as Present for Alice Johnson on 2024-06-10",
			Tone:    attendance.ToneSuccess,
		},
	}}
	router := markingTestRouter(resolver)

	payload, _ := json.Marshal(map[string]string{
		"employee_id": "E1",
		"date":        "2024-06-10",
		"status":      "Present",
	})
	req := httptest.NewRequest(http.MethodPost, "/attendance/marking", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "E1", resolver.lastEmployeeID)
	assert.Equal(t, "2024-06-10", resolver.lastDate)
	assert.Equal(t, "Present", resolver.lastStatus)

	body := decodeResponse(t, rec)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, string(attendance.OutcomeSettled), data["state"])
}

func TestMarkingRequest_AwaitingConfirmation(t *testing.T) {
	resolver := &fakeResolver{outcome: attendance.MarkOutcome{
		State: attendance.OutcomeAwaitingConfirmation,
		Confirmation: &attendance.ConfirmationRequest{
			EmployeeID: "E1",
			FromStatus: attendance.StatusAbsent,
			ToStatus:   attendance.StatusPresent,
			Message:    `Attendance for Alice Johnson on 2024-06-10 is already marked as "Absent". Do you want to change it to "Present"?`,
		},
	}}
	router := markingTestRouter(resolver)

	payload, _ := json.Marshal(map[string]string{
		"employee_id": "E1",
		"date":        "2024-06-10",
		"status":      "Present",
	})
	req := httptest.NewRequest(http.MethodPost, "/attendance/marking", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, string(attendance.OutcomeAwaitingConfirmation), data["state"])
	confirmation := data["confirmation"].(map[string]interface{})
	assert.Contains(t, confirmation["message"], "Absent")
	assert.Contains(t, confirmation["message"], "Present")
}

func TestMarkingRequest_MalformedBody(t *testing.T) {
	router := markingTestRouter(&fakeResolver{})

	req := httptest.NewRequest(http.MethodPost, "/attendance/marking", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, false, body["success"])
}

func TestMarkingConfirm_NoPending(t *testing.T) {
	resolver := &fakeResolver{err: attendance.ErrNoPendingConfirmation}
	router := markingTestRouter(resolver)

	req := httptest.NewRequest(http.MethodPost, "/attendance/marking/confirm", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestMarkingCancel(t *testing.T) {
	resolver := &fakeResolver{}
	router := markingTestRouter(resolver)

	req := httptest.NewRequest(http.MethodPost, "/attendance/marking/cancel", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resolver.cancelled)
	body := decodeResponse(t, rec)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, string(attendance.OutcomeCancelled), data["state"])
}

func TestMarkingView(t *testing.T) {
	resolver := &fakeResolver{}
	router := markingTestRouter(resolver)

	req := httptest.NewRequest(http.MethodPost, "/attendance/marking/view/E1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "E1", resolver.lastEmployeeID)
	body := decodeResponse(t, rec)
	records := body["data"].([]interface{})
	assert.Len(t, records, 1)
}
