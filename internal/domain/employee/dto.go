package employee

import "context"

// SearchResult is the employee-search response shape.
type SearchResult struct {
	EmployeeID     int64   `json:"employee_id"`
	DisplayName    string  `json:"display_name"`
	SamAccountName string  `json:"sam_account_name"`
	Email          *string `json:"email,omitempty"`
	DepartmentID   *int64  `json:"department_id,omitempty"`
}

// UpsertOverrideRequest carries an admin override edit. Absent fields clear
// the corresponding override.
type UpsertOverrideRequest struct {
	EmployeeID   int64  `json:"employee_id"`
	DepartmentID *int64 `json:"department_id,omitempty"`
	ManagerID    *int64 `json:"manager_id,omitempty"`
	IsApprover   *bool  `json:"is_approver,omitempty"`
	IsAdmin      *bool  `json:"is_admin,omitempty"`
	IsHidden     *bool  `json:"is_hidden,omitempty"`
}

// Service covers the employee lookup and override admin surface. Search is
// open to anyone who can manage someone; override edits are admin only.
type Service interface {
	Search(ctx context.Context, actorID int64, query string) ([]SearchResult, error)
	Overrides(ctx context.Context, actorID int64) ([]Override, error)
	UpsertOverride(ctx context.Context, actorID int64, req UpsertOverrideRequest) error
	ClearOverride(ctx context.Context, actorID, employeeID int64) error
}
