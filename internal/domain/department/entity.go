package department

import "time"

type Department struct {
	ID                int64
	Name              string
	ColorHex          *string
	IsActive          bool
	SortOrder         int
	DefaultApproverID *int64
}

// AccessGrant is an explicit cross-department visibility/approval grant.
type AccessGrant struct {
	ID           int64
	EmployeeID   int64
	DepartmentID int64
	CanView      bool
	CanApprove   bool
	GrantedAt    time.Time
	GrantedByID  *int64
}
