package employee

import (
	"context"
	"fmt"

	"github.com/hrmslite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/database"
	"github.com/hrmslite/hrms-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository, attendanceRepo attendance.AttendanceRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepo,
		attendanceRepo:     attendanceRepo,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.GetByEmployeeCode(ctx, req.EmployeeCode)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee code: %w", err)
	}
	if existing != nil {
		return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
	}

	existing, err = s.GetByEmail(ctx, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		EmployeeCode: req.EmployeeCode,
		FullName:     req.FullName,
		Email:        req.Email,
		Department:   req.Department,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee.NewEmployeeResponse(created), nil
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, presentDays, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for i, emp := range employees {
		resp := employee.NewEmployeeResponse(emp)
		resp.PresentDays = presentDays[i]
		responses = append(responses, resp)
	}
	return responses, nil
}

// Update implements employee.EmployeeService. Uniqueness is re-checked only
// when the code or email actually changes.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.EmployeeCode != current.EmployeeCode {
		existing, err := s.GetByEmployeeCode(ctx, req.EmployeeCode)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee code: %w", err)
		}
		if existing != nil {
			return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
		}
	}

	if req.Email != current.Email {
		existing, err := s.GetByEmail(ctx, req.Email)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
		}
		if existing != nil {
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		}
	}

	updated, err := s.EmployeeRepository.Update(ctx, id, employee.Employee{
		EmployeeCode: req.EmployeeCode,
		FullName:     req.FullName,
		Email:        req.Email,
		Department:   req.Department,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return employee.NewEmployeeResponse(updated), nil
}

// Delete implements employee.EmployeeService. The employee and their attendance
// rows go together or not at all.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.EmployeeRepository.GetByID(ctx, id); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.attendanceRepo.DeleteByEmployee(txCtx, id); err != nil {
			return err
		}
		return s.EmployeeRepository.Delete(txCtx, id)
	})
}
