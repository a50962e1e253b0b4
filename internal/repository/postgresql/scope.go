package postgresql

import (
	"fmt"
	"strings"

	"github.com/availboard/availboard-backend-go/internal/domain/access"
)

// scopeConditions renders the employee-visibility scope as SQL conditions.
// The enclosing query must alias employees as e and left join
// employee_overrides as o; conditions cover active, hidden-override,
// single-employee mode and effective-department membership.
func scopeConditions(scope access.Scope, args []any) ([]string, []any) {
	conds := []string{
		"e.is_active",
		"COALESCE(o.is_hidden, false) = false",
	}

	if scope.EmployeeID != nil {
		args = append(args, *scope.EmployeeID)
		conds = append(conds, fmt.Sprintf("e.id = $%d", len(args)))
		return conds, args
	}

	const effectiveDept = "COALESCE(o.department_id, e.department_id)"

	var parts []string
	if len(scope.DepartmentIDs) > 0 {
		args = append(args, scope.DepartmentIDs)
		parts = append(parts, fmt.Sprintf("%s = ANY($%d)", effectiveDept, len(args)))
	}
	if scope.IncludeNoDepartment {
		parts = append(parts, effectiveDept+" IS NULL")
	}

	if len(parts) == 0 {
		// Callers short-circuit empty scopes, but keep the query honest.
		conds = append(conds, "false")
	} else {
		conds = append(conds, "("+strings.Join(parts, " OR ")+")")
	}
	return conds, args
}
