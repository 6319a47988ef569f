package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	createErr error
	updateErr error
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if f.createErr != nil {
		return employee.EmployeeResponse{}, f.createErr
	}
	return employee.EmployeeResponse{ID: "E1", EmployeeCode: req.EmployeeCode}, nil
}

func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{ID: id}, nil
}

func (f *fakeEmployeeService) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return nil, nil
}

func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if f.updateErr != nil {
		return employee.EmployeeResponse{}, f.updateErr
	}
	return employee.EmployeeResponse{ID: id, EmployeeCode: req.EmployeeCode}, nil
}

func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error {
	return nil
}

func employeeTestRouter(svc employee.EmployeeService) chi.Router {
	handler := NewEmployeeHandler(svc)
	r := chi.NewRouter()
	r.Post("/employees", handler.Create)
	r.Put("/employees/{id}", handler.Update)
	return r
}

func employeePayload(t *testing.T) *bytes.Reader {
	payload, err := json.Marshal(map[string]string{
		"employee_id": "EMP-001",
		"full_name":   "Alice Johnson",
		"email":       "alice@example.com",
		"department":  "Engineering",
	})
	if err != nil {
		t.Fatal(err)
	}
	return bytes.NewReader(payload)
}

func TestEmployeeCreate_DuplicateIsConflict(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "duplicate employee code", err: employee.ErrEmployeeCodeExists},
		{name: "duplicate email", err: employee.ErrEmailExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := employeeTestRouter(&fakeEmployeeService{createErr: tt.err})

			req := httptest.NewRequest(http.MethodPost, "/employees", employeePayload(t))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusConflict, rec.Code)
		})
	}
}

func TestEmployeeUpdate_DuplicateIsBadRequest(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "duplicate employee code", err: employee.ErrEmployeeCodeExists},
		{name: "duplicate email", err: employee.ErrEmailExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := employeeTestRouter(&fakeEmployeeService{updateErr: tt.err})

			req := httptest.NewRequest(http.MethodPut, "/employees/E1", employeePayload(t))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestEmployeeUpdate_NotFound(t *testing.T) {
	router := employeeTestRouter(&fakeEmployeeService{updateErr: employee.ErrEmployeeNotFound})

	req := httptest.NewRequest(http.MethodPut, "/employees/ghost", employeePayload(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
