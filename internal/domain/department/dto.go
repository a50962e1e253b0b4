package department

import "context"

// GrantRequest creates or updates one cross-department access grant.
type GrantRequest struct {
	EmployeeID   int64 `json:"employee_id"`
	DepartmentID int64 `json:"department_id"`
	CanView      bool  `json:"can_view"`
	CanApprove   bool  `json:"can_approve"`
}

// AssignManagerRequest sets a department's manager.
type AssignManagerRequest struct {
	DepartmentID      int64 `json:"department_id"`
	ManagerEmployeeID int64 `json:"manager_employee_id"`
}

// Service covers the department master data and its admin surface. Listing
// is open to any authenticated employee; grants and manager assignment are
// admin only.
type Service interface {
	Departments(ctx context.Context) ([]Department, error)
	Grants(ctx context.Context, actorID, employeeID int64) ([]AccessGrant, error)
	Grant(ctx context.Context, actorID int64, req GrantRequest) error
	Revoke(ctx context.Context, actorID, employeeID, departmentID int64) error
	AssignManager(ctx context.Context, actorID int64, req AssignManagerRequest) error
}
