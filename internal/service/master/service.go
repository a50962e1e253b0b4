package master

import (
	"context"

	"github.com/availboard/availboard-backend-go/internal/domain/access"
	"github.com/availboard/availboard-backend-go/internal/domain/availability"
	"github.com/availboard/availboard-backend-go/internal/domain/department"
)

// DepartmentServiceImpl serves the department catalog plus its admin-only
// grant and manager surface.
type DepartmentServiceImpl struct {
	accessService  access.Service
	departmentRepo department.Repository
	accessRepo     department.AccessRepository
	managerRepo    department.ManagerRepository
}

func NewDepartmentService(
	accessService access.Service,
	departmentRepo department.Repository,
	accessRepo department.AccessRepository,
	managerRepo department.ManagerRepository,
) department.Service {
	return &DepartmentServiceImpl{
		accessService:  accessService,
		departmentRepo: departmentRepo,
		accessRepo:     accessRepo,
		managerRepo:    managerRepo,
	}
}

func (s *DepartmentServiceImpl) Departments(ctx context.Context) ([]department.Department, error) {
	departments, err := s.departmentRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if departments == nil {
		departments = []department.Department{}
	}
	return departments, nil
}

func (s *DepartmentServiceImpl) requireAdmin(ctx context.Context, actorID int64) error {
	res, err := s.accessService.ResolveScope(ctx, actorID, nil)
	if err != nil {
		return err
	}
	if !res.IsAdmin {
		return access.ErrForbidden
	}
	return nil
}

func (s *DepartmentServiceImpl) Grants(ctx context.Context, actorID, employeeID int64) ([]department.AccessGrant, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	grants, err := s.accessRepo.GetByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if grants == nil {
		grants = []department.AccessGrant{}
	}
	return grants, nil
}

func (s *DepartmentServiceImpl) Grant(ctx context.Context, actorID int64, req department.GrantRequest) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return err
	}
	return s.accessRepo.Grant(ctx, req.EmployeeID, req.DepartmentID, req.CanView, req.CanApprove, &actorID)
}

func (s *DepartmentServiceImpl) Revoke(ctx context.Context, actorID, employeeID, departmentID int64) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	return s.accessRepo.Revoke(ctx, employeeID, departmentID)
}

func (s *DepartmentServiceImpl) AssignManager(ctx context.Context, actorID int64, req department.AssignManagerRequest) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return err
	}
	return s.managerRepo.Upsert(ctx, req.DepartmentID, req.ManagerEmployeeID)
}

// TypeServiceImpl serves the availability type catalog.
type TypeServiceImpl struct {
	typeRepo availability.TypeRepository
}

func NewTypeService(typeRepo availability.TypeRepository) availability.Service {
	return &TypeServiceImpl{typeRepo: typeRepo}
}

func (s *TypeServiceImpl) Types(ctx context.Context) ([]availability.Type, error) {
	types, err := s.typeRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if types == nil {
		types = []availability.Type{}
	}
	return types, nil
}
