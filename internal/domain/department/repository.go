package department

import "context"

// Repository - interface for the departments table
type Repository interface {
	GetAll(ctx context.Context) ([]Department, error)
	GetByID(ctx context.Context, id int64) (Department, error)
	// Ensure returns the id of the named department, creating it when the
	// directory sync reports a department we have not seen yet.
	Ensure(ctx context.Context, name string) (int64, error)
}

// AccessRepository - interface for the employee_department_access table
type AccessRepository interface {
	// ViewableDepartmentIDs returns the departments the employee may view:
	// explicit can-view grants plus their own department when set.
	ViewableDepartmentIDs(ctx context.Context, employeeID int64, ownDepartmentID *int64) ([]int64, error)
	ApprovableDepartmentIDs(ctx context.Context, employeeID int64) ([]int64, error)
	GetByEmployee(ctx context.Context, employeeID int64) ([]AccessGrant, error)
	Grant(ctx context.Context, employeeID, departmentID int64, canView, canApprove bool, grantedBy *int64) error
	Revoke(ctx context.Context, employeeID, departmentID int64) error
}

// ManagerRepository - interface for the department_managers table
type ManagerRepository interface {
	// ManagerOf returns nil when the department has no manager assigned.
	ManagerOf(ctx context.Context, departmentID int64) (*int64, error)
	ManagedDepartmentIDs(ctx context.Context, employeeID int64) ([]int64, error)
	Upsert(ctx context.Context, departmentID, managerEmployeeID int64) error
}
