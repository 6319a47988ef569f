package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	if newEmployee.ID == "" {
		newEmployee.ID = uuid.NewString()
	}

	query := `
		INSERT INTO employees (id, employee_code, full_name, email, department)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newEmployee.ID,
		newEmployee.EmployeeCode,
		newEmployee.FullName,
		newEmployee.Email,
		newEmployee.Department,
	).Scan(&newEmployee.CreatedAt, &newEmployee.UpdatedAt)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return newEmployee, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, employee_code, full_name, email, department, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.EmployeeCode, &emp.FullName, &emp.Email, &emp.Department,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return emp, nil
}

// GetByEmployeeCode implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmployeeCode(ctx context.Context, employeeCode string) (*employee.Employee, error) {
	return e.getByField(ctx, "employee_code", employeeCode)
}

// GetByEmail implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	return e.getByField(ctx, "email", email)
}

func (e *employeeRepositoryImpl) getByField(ctx context.Context, field, value string) (*employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf(`
		SELECT id, employee_code, full_name, email, department, created_at, updated_at
		FROM employees
		WHERE %s = $1
		LIMIT 1
	`, field)

	var emp employee.Employee
	err := q.QueryRow(ctx, query, value).Scan(
		&emp.ID, &emp.EmployeeCode, &emp.FullName, &emp.Email, &emp.Department,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employee by %s: %w", field, err)
	}

	return &emp, nil
}

// List implements employee.EmployeeRepository. Present-day counts are computed
// in the same query so listing stays a single round trip.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, []int64, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT e.id, e.employee_code, e.full_name, e.email, e.department, e.created_at, e.updated_at,
			   COUNT(a.id) FILTER (WHERE a.status = 'Present') AS present_days
		FROM employees e
		LEFT JOIN attendance_records a ON a.employee_id = e.id
		GROUP BY e.id
		ORDER BY e.created_at ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	var presentDays []int64
	for rows.Next() {
		var emp employee.Employee
		var count int64
		if err := rows.Scan(
			&emp.ID, &emp.EmployeeCode, &emp.FullName, &emp.Email, &emp.Department,
			&emp.CreatedAt, &emp.UpdatedAt, &count,
		); err != nil {
			return nil, nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
		presentDays = append(presentDays, count)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read employees: %w", err)
	}

	return employees, presentDays, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, id string, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET employee_code = $1, full_name = $2, email = $3, department = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id, employee_code, full_name, email, department, created_at, updated_at
	`

	var updated employee.Employee
	err := q.QueryRow(ctx, query,
		emp.EmployeeCode, emp.FullName, emp.Email, emp.Department, id,
	).Scan(
		&updated.ID, &updated.EmployeeCode, &updated.FullName, &updated.Email, &updated.Department,
		&updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return updated, nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
