package employee

import (
	"context"
	"strings"

	"github.com/availboard/availboard-backend-go/internal/domain/access"
	"github.com/availboard/availboard-backend-go/internal/domain/employee"
)

const searchLimit = 20

type EmployeeServiceImpl struct {
	accessService access.Service
	employeeRepo  employee.Repository
	overrideRepo  employee.OverrideRepository
}

func NewEmployeeService(
	accessService access.Service,
	employeeRepo employee.Repository,
	overrideRepo employee.OverrideRepository,
) employee.Service {
	return &EmployeeServiceImpl{
		accessService: accessService,
		employeeRepo:  employeeRepo,
		overrideRepo:  overrideRepo,
	}
}

func (s *EmployeeServiceImpl) Search(ctx context.Context, actorID int64, query string) ([]employee.SearchResult, error) {
	res, err := s.accessService.ResolveScope(ctx, actorID, nil)
	if err != nil {
		return nil, err
	}
	if !res.CanManage {
		return nil, access.ErrForbidden
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return []employee.SearchResult{}, nil
	}

	matches, err := s.employeeRepo.Search(ctx, query, searchLimit)
	if err != nil {
		return nil, err
	}
	results := make([]employee.SearchResult, 0, len(matches))
	for _, m := range matches {
		results = append(results, employee.SearchResult{
			EmployeeID:     m.ID,
			DisplayName:    m.DisplayName,
			SamAccountName: m.SamAccountName,
			Email:          m.Email,
			DepartmentID:   m.DepartmentID,
		})
	}
	return results, nil
}

func (s *EmployeeServiceImpl) requireAdmin(ctx context.Context, actorID int64) error {
	res, err := s.accessService.ResolveScope(ctx, actorID, nil)
	if err != nil {
		return err
	}
	if !res.IsAdmin {
		return access.ErrForbidden
	}
	return nil
}

func (s *EmployeeServiceImpl) Overrides(ctx context.Context, actorID int64) ([]employee.Override, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	overrides, err := s.overrideRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if overrides == nil {
		overrides = []employee.Override{}
	}
	return overrides, nil
}

func (s *EmployeeServiceImpl) UpsertOverride(ctx context.Context, actorID int64, req employee.UpsertOverrideRequest) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return err
	}

	ovr := employee.Override{
		EmployeeID:   req.EmployeeID,
		DepartmentID: req.DepartmentID,
		ManagerID:    req.ManagerID,
		IsApprover:   req.IsApprover,
		IsAdmin:      req.IsAdmin,
		IsHidden:     req.IsHidden,
	}
	// A patch with nothing left in it is just a clear.
	if ovr.IsEmpty() {
		return s.overrideRepo.Clear(ctx, req.EmployeeID)
	}
	return s.overrideRepo.Upsert(ctx, ovr)
}

func (s *EmployeeServiceImpl) ClearOverride(ctx context.Context, actorID, employeeID int64) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	return s.overrideRepo.Clear(ctx, employeeID)
}
