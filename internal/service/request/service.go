package request

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/availboard/availboard-backend-go/internal/domain/access"
	"github.com/availboard/availboard-backend-go/internal/domain/department"
	"github.com/availboard/availboard-backend-go/internal/domain/employee"
	"github.com/availboard/availboard-backend-go/internal/domain/notification"
	"github.com/availboard/availboard-backend-go/internal/domain/request"
)

type RequestServiceImpl struct {
	accessService access.Service
	requestRepo   request.Repository
	employeeRepo  employee.Repository
	overrideRepo  employee.OverrideRepository
	managerRepo   department.ManagerRepository
	notifications notification.Service
}

func NewRequestService(
	accessService access.Service,
	requestRepo request.Repository,
	employeeRepo employee.Repository,
	overrideRepo employee.OverrideRepository,
	managerRepo department.ManagerRepository,
	notifications notification.Service,
) request.Service {
	return &RequestServiceImpl{
		accessService: accessService,
		requestRepo:   requestRepo,
		employeeRepo:  employeeRepo,
		overrideRepo:  overrideRepo,
		managerRepo:   managerRepo,
		notifications: notifications,
	}
}

func (s *RequestServiceImpl) effective(ctx context.Context, employeeID int64) (employee.Employee, error) {
	base, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return employee.Employee{}, err
	}
	ovr, err := s.overrideRepo.Get(ctx, employeeID)
	if err != nil {
		return employee.Employee{}, err
	}
	return employee.ResolveEffective(base, ovr), nil
}

func (s *RequestServiceImpl) Create(ctx context.Context, actorID int64, req request.CreateRequest) (int64, error) {
	start, err := time.Parse(time.RFC3339, req.Start)
	if err != nil {
		return 0, request.ErrInvalidRange
	}
	end, err := time.Parse(time.RFC3339, req.End)
	if err != nil {
		return 0, request.ErrInvalidRange
	}
	if !end.After(start) {
		return 0, request.ErrInvalidRange
	}

	id, err := s.requestRepo.Create(ctx, request.Request{
		EmployeeID:  actorID,
		TypeID:      req.TypeID,
		Start:       start,
		End:         end,
		Status:      request.StatusPending,
		Note:        req.Note,
		SubmittedAt: time.Now(),
	})
	if err != nil {
		return 0, err
	}

	s.notifyManager(ctx, actorID, id)
	return id, nil
}

// notifyManager tells the submitter's department manager about a new pending
// request. Failures here never fail the submit.
func (s *RequestServiceImpl) notifyManager(ctx context.Context, employeeID, requestID int64) {
	emp, err := s.effective(ctx, employeeID)
	if err != nil || emp.DepartmentID == nil {
		return
	}
	managerID, err := s.managerRepo.ManagerOf(ctx, *emp.DepartmentID)
	if err != nil || managerID == nil || *managerID == employeeID {
		return
	}
	url := "/requests/pending"
	s.notifications.Notify(ctx, *managerID,
		"New availability request",
		fmt.Sprintf("%s submitted an availability request", emp.DisplayName),
		&url)
}

func (s *RequestServiceImpl) Mine(ctx context.Context, actorID int64) ([]request.Row, error) {
	rows, err := s.requestRepo.GetMine(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []request.Row{}
	}
	return rows, nil
}

func (s *RequestServiceImpl) Pending(ctx context.Context, actorID int64) ([]request.Row, error) {
	actor, err := s.effective(ctx, actorID)
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		return []request.Row{}, nil
	}
	if err != nil {
		return nil, err
	}

	var rows []request.Row
	switch {
	case actor.IsAdmin || actor.IsApprover:
		rows, err = s.requestRepo.GetPending(ctx)
	default:
		managed, mErr := s.managerRepo.ManagedDepartmentIDs(ctx, actorID)
		if mErr != nil {
			return nil, mErr
		}
		if len(managed) == 0 {
			return []request.Row{}, nil
		}
		rows, err = s.requestRepo.GetPendingForDepartments(ctx, managed)
	}
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []request.Row{}
	}
	return rows, nil
}

func (s *RequestServiceImpl) Decide(ctx context.Context, actorID int64, req request.DecideRequest) error {
	target, err := s.requestRepo.GetByID(ctx, req.RequestID)
	if err != nil {
		return err
	}

	allowed, err := s.accessService.CanEdit(ctx, actorID, target.EmployeeID)
	if err != nil {
		return err
	}
	if !allowed {
		return access.ErrForbidden
	}

	decided, err := s.requestRepo.Decide(ctx, req.RequestID, actorID, req.Approve, req.Note)
	if err != nil {
		return err
	}
	if !decided {
		return request.ErrAlreadyDecided
	}

	outcome := "approved"
	if !req.Approve {
		outcome = "rejected"
	}
	url := "/requests/mine"
	s.notifications.Notify(ctx, target.EmployeeID,
		"Availability request "+outcome,
		fmt.Sprintf("Your availability request was %s", outcome),
		&url)
	return nil
}
