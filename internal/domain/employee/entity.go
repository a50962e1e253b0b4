package employee

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// Employee is a directory-synced person record. Department, manager and role
// flags are base values; per-employee overrides are layered on top via
// ResolveEffective.
type Employee struct {
	ID             int64
	ADObjectID     uuid.UUID
	SamAccountName string
	DisplayName    string
	Email          *string
	DepartmentID   *int64
	ManagerID      *int64
	IsActive       bool
	IsAdmin        bool
	IsApprover     bool

	// PasswordHash is set only for accounts with a local password login.
	PasswordHash *string
	LastSyncedAt *time.Time
}

// Override is a sparse admin-entered patch over directory-synced base data.
// Nil fields leave the base value untouched.
type Override struct {
	EmployeeID   int64
	DepartmentID *int64
	ManagerID    *int64
	IsApprover   *bool
	IsAdmin      *bool
	IsHidden     *bool
}

// IsEmpty reports whether every override field is unset.
func (o Override) IsEmpty() bool {
	return o.DepartmentID == nil && o.ManagerID == nil &&
		o.IsApprover == nil && o.IsAdmin == nil && o.IsHidden == nil
}

// ResolveEffective applies an override patch atop a base employee. A nil
// override returns the base unchanged.
func ResolveEffective(base Employee, ovr *Override) Employee {
	if ovr == nil {
		return base
	}
	eff := base
	if ovr.DepartmentID != nil {
		eff.DepartmentID = ovr.DepartmentID
	}
	if ovr.ManagerID != nil {
		eff.ManagerID = ovr.ManagerID
	}
	if ovr.IsApprover != nil {
		eff.IsApprover = *ovr.IsApprover
	}
	if ovr.IsAdmin != nil {
		eff.IsAdmin = *ovr.IsAdmin
	}
	return eff
}

// Hidden reports whether the override removes the employee from all
// aggregated views.
func (o *Override) Hidden() bool {
	return o != nil && o.IsHidden != nil && *o.IsHidden
}

// Initials derives display initials: first letter of the first and last name
// tokens, uppercased. A single-token name takes its first two characters.
func Initials(displayName string) string {
	tokens := strings.Fields(displayName)
	switch len(tokens) {
	case 0:
		return ""
	case 1:
		r := []rune(tokens[0])
		if len(r) == 1 {
			return string(unicode.ToUpper(r[0]))
		}
		return strings.ToUpper(string(r[:2]))
	default:
		first := []rune(tokens[0])[0]
		last := []rune(tokens[len(tokens)-1])[0]
		return string(unicode.ToUpper(first)) + string(unicode.ToUpper(last))
	}
}

// Member is the slim shape the weekly grid iterates over: one in-scope,
// active, non-hidden employee with their effective department.
type Member struct {
	ID           int64
	DisplayName  string
	DepartmentID *int64
}
