package access

import (
	"context"
	"errors"

	"github.com/availboard/availboard-backend-go/internal/domain/access"
	"github.com/availboard/availboard-backend-go/internal/domain/department"
	"github.com/availboard/availboard-backend-go/internal/domain/employee"
)

type accessServiceImpl struct {
	employees   employee.Repository
	overrides   employee.OverrideRepository
	departments department.Repository
	deptAccess  department.AccessRepository
	deptManager department.ManagerRepository
}

func NewAccessService(
	employees employee.Repository,
	overrides employee.OverrideRepository,
	departments department.Repository,
	deptAccess department.AccessRepository,
	deptManager department.ManagerRepository,
) access.Service {
	return &accessServiceImpl{
		employees:   employees,
		overrides:   overrides,
		departments: departments,
		deptAccess:  deptAccess,
		deptManager: deptManager,
	}
}

// effective loads an employee with their override patch applied.
func (s *accessServiceImpl) effective(ctx context.Context, employeeID int64) (employee.Employee, *employee.Override, error) {
	base, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return employee.Employee{}, nil, err
	}
	ovr, err := s.overrides.Get(ctx, employeeID)
	if err != nil {
		return employee.Employee{}, nil, err
	}
	return employee.ResolveEffective(base, ovr), ovr, nil
}

func (s *accessServiceImpl) ResolveScope(ctx context.Context, actorID int64, requestedDeptIDs []int64) (access.Resolution, error) {
	eff, _, err := s.effective(ctx, actorID)
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		// Unknown actor sees nothing; not an error path.
		return access.Resolution{}, nil
	}
	if err != nil {
		return access.Resolution{}, err
	}
	if !eff.IsActive {
		return access.Resolution{}, nil
	}

	managed, err := s.deptManager.ManagedDepartmentIDs(ctx, actorID)
	if err != nil {
		return access.Resolution{}, err
	}

	canManage := eff.IsAdmin || eff.IsApprover || len(managed) > 0
	if !canManage {
		// Self-service only: department logic is bypassed entirely.
		return access.Resolution{Scope: access.SingleEmployee(actorID)}, nil
	}

	var visible []int64
	includeNoDept := false
	if eff.IsAdmin {
		departments, err := s.departments.GetAll(ctx)
		if err != nil {
			return access.Resolution{}, err
		}
		for _, d := range departments {
			visible = append(visible, d.ID)
		}
		// An explicit department subset never implicitly pulls in
		// unassigned employees.
		includeNoDept = len(requestedDeptIDs) == 0
	} else {
		visible, err = s.deptAccess.ViewableDepartmentIDs(ctx, actorID, eff.DepartmentID)
		if err != nil {
			return access.Resolution{}, err
		}
	}

	// Explicit filters narrow, never widen.
	if len(requestedDeptIDs) > 0 {
		visible = intersect(visible, requestedDeptIDs)
	}

	return access.Resolution{
		Scope: access.Scope{
			DepartmentIDs:       visible,
			IncludeNoDepartment: includeNoDept,
		},
		CanManage: true,
		IsAdmin:   eff.IsAdmin,
	}, nil
}

func (s *accessServiceImpl) CanEdit(ctx context.Context, actorID, targetEmployeeID int64) (bool, error) {
	actor, _, err := s.effective(ctx, actorID)
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !actor.IsActive {
		return false, nil
	}
	if actor.IsAdmin {
		return true, nil
	}

	target, _, err := s.effective(ctx, targetEmployeeID)
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if target.DepartmentID == nil {
		return false, nil
	}

	managerID, err := s.deptManager.ManagerOf(ctx, *target.DepartmentID)
	if err != nil {
		return false, err
	}
	if managerID != nil && *managerID == actorID {
		return true, nil
	}

	approvable, err := s.deptAccess.ApprovableDepartmentIDs(ctx, actorID)
	if err != nil {
		return false, err
	}
	for _, id := range approvable {
		if id == *target.DepartmentID {
			return true, nil
		}
	}
	return false, nil
}

func intersect(base, filter []int64) []int64 {
	allowed := make(map[int64]struct{}, len(filter))
	for _, id := range filter {
		allowed[id] = struct{}{}
	}
	var result []int64
	for _, id := range base {
		if _, ok := allowed[id]; ok {
			result = append(result, id)
		}
	}
	return result
}
