package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmployeeCode(ctx context.Context, employeeCode string) (*Employee, error)
	GetByEmail(ctx context.Context, email string) (*Employee, error)

	// List returns all employees with their Present-day counts attached
	List(ctx context.Context) ([]Employee, []int64, error)

	Update(ctx context.Context, id string, emp Employee) (Employee, error)

	// Delete removes the employee row only; attendance rows are the attendance
	// repository's to remove, inside the same transaction
	Delete(ctx context.Context, id string) error
}
