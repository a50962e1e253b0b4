package access

import "context"

// Scope is the resolved visibility of an actor: either a single employee
// (self-service mode) or a set of department ids plus the "include employees
// with no department" flag.
type Scope struct {
	// EmployeeID is set in single-employee mode; department fields are
	// ignored when it is non-nil.
	EmployeeID          *int64
	DepartmentIDs       []int64
	IncludeNoDepartment bool
}

// Empty reports whether the scope can match no employee at all. Callers
// short-circuit with empty results instead of querying the stores.
func (s Scope) Empty() bool {
	return s.EmployeeID == nil && len(s.DepartmentIDs) == 0 && !s.IncludeNoDepartment
}

// SingleEmployee builds a self-service scope for one employee.
func SingleEmployee(employeeID int64) Scope {
	return Scope{EmployeeID: &employeeID}
}

// Resolution is the outcome of resolving an actor's visibility.
type Resolution struct {
	Scope     Scope
	CanManage bool
	IsAdmin   bool
}

// Service resolves view scopes and edit authorization for actors.
type Service interface {
	// ResolveScope computes the departments the actor may see, intersected
	// with the explicit department filter when one is supplied. An unknown
	// actor resolves to an empty scope, never an error.
	ResolveScope(ctx context.Context, actorID int64, requestedDeptIDs []int64) (Resolution, error)

	// CanEdit reports whether the actor may mutate the target employee's
	// records: admin, manager of the target's effective department, or
	// holder of a can-approve grant on that department.
	CanEdit(ctx context.Context, actorID, targetEmployeeID int64) (bool, error)
}
