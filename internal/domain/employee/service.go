package employee

import "context"

// EmployeeService defines business logic for employee master data.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
	Update(ctx context.Context, id string, req CreateEmployeeRequest) (EmployeeResponse, error)

	// Delete removes the employee together with all their attendance records
	Delete(ctx context.Context, id string) error
}
