package request

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/availboard/availboard-backend-go/internal/domain/access"
	"github.com/availboard/availboard-backend-go/internal/domain/department"
	"github.com/availboard/availboard-backend-go/internal/domain/employee"
	"github.com/availboard/availboard-backend-go/internal/domain/notification"
	"github.com/availboard/availboard-backend-go/internal/domain/request"
)

type fakeAccess struct {
	canEdit bool
}

func (f *fakeAccess) ResolveScope(context.Context, int64, []int64) (access.Resolution, error) {
	return access.Resolution{}, nil
}

func (f *fakeAccess) CanEdit(context.Context, int64, int64) (bool, error) {
	return f.canEdit, nil
}

type fakeRequestRepo struct {
	request.Repository

	byID    map[int64]request.Request
	created *request.Request
	nextID  int64

	pending     []request.Row
	pendingFor  []request.Row
	forDeptArgs []int64

	decided       bool
	decideApprove *bool
}

func (f *fakeRequestRepo) Create(_ context.Context, req request.Request) (int64, error) {
	f.created = &req
	f.nextID++
	return f.nextID, nil
}

func (f *fakeRequestRepo) GetByID(_ context.Context, id int64) (request.Request, error) {
	r, ok := f.byID[id]
	if !ok {
		return request.Request{}, request.ErrRequestNotFound
	}
	return r, nil
}

func (f *fakeRequestRepo) GetPending(context.Context) ([]request.Row, error) {
	return f.pending, nil
}

func (f *fakeRequestRepo) GetPendingForDepartments(_ context.Context, ids []int64) ([]request.Row, error) {
	f.forDeptArgs = ids
	return f.pendingFor, nil
}

func (f *fakeRequestRepo) Decide(_ context.Context, _, _ int64, approve bool, _ *string) (bool, error) {
	f.decideApprove = &approve
	return f.decided, nil
}

type fakeEmployeeRepo struct {
	employee.Repository
	byID map[int64]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (employee.Employee, error) {
	emp, ok := f.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

type fakeOverrideRepo struct {
	employee.OverrideRepository
}

func (f *fakeOverrideRepo) Get(context.Context, int64) (*employee.Override, error) {
	return nil, nil
}

type fakeManagerRepo struct {
	department.ManagerRepository
	managers map[int64]int64
	managed  map[int64][]int64
}

func (f *fakeManagerRepo) ManagerOf(_ context.Context, departmentID int64) (*int64, error) {
	id, ok := f.managers[departmentID]
	if !ok {
		return nil, nil
	}
	return &id, nil
}

func (f *fakeManagerRepo) ManagedDepartmentIDs(_ context.Context, employeeID int64) ([]int64, error) {
	return f.managed[employeeID], nil
}

type recordedNotification struct {
	to    int64
	title string
}

type fakeNotifier struct {
	sent []recordedNotification
}

func (f *fakeNotifier) Notify(_ context.Context, to int64, title, _ string, _ *string) {
	f.sent = append(f.sent, recordedNotification{to: to, title: title})
}

func (f *fakeNotifier) UnreadCount(context.Context, int64) (int, error) { return 0, nil }
func (f *fakeNotifier) Latest(context.Context, int64) ([]notification.Notification, error) {
	return nil, nil
}
func (f *fakeNotifier) MarkRead(context.Context, int64, int64) error { return nil }

type fixture struct {
	access    *fakeAccess
	requests  *fakeRequestRepo
	employees *fakeEmployeeRepo
	managers  *fakeManagerRepo
	notifier  *fakeNotifier
	svc       request.Service
}

func newFixture() *fixture {
	f := &fixture{
		access:    &fakeAccess{},
		requests:  &fakeRequestRepo{byID: map[int64]request.Request{}},
		employees: &fakeEmployeeRepo{byID: map[int64]employee.Employee{}},
		managers:  &fakeManagerRepo{managers: map[int64]int64{}, managed: map[int64][]int64{}},
		notifier:  &fakeNotifier{},
	}
	f.svc = NewRequestService(f.access, f.requests, f.employees, &fakeOverrideRepo{}, f.managers, f.notifier)
	return f
}

func int64Ptr(v int64) *int64 { return &v }

func TestCreateRejectsInvalidRange(t *testing.T) {
	f := newFixture()

	cases := []struct {
		name       string
		start, end string
	}{
		{"end before start", "2025-03-06T00:00:00Z", "2025-03-04T00:00:00Z"},
		{"zero length", "2025-03-04T00:00:00Z", "2025-03-04T00:00:00Z"},
		{"unparseable start", "yesterday", "2025-03-04T00:00:00Z"},
		{"unparseable end", "2025-03-04T00:00:00Z", "next week"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.Create(context.Background(), 1, request.CreateRequest{
				TypeID: 1, Start: tc.start, End: tc.end,
			})
			assert.ErrorIs(t, err, request.ErrInvalidRange)
		})
	}
	assert.Nil(t, f.requests.created)
}

func TestCreateNotifiesManager(t *testing.T) {
	f := newFixture()
	f.employees.byID[1] = employee.Employee{ID: 1, DisplayName: "Bea Ortiz", DepartmentID: int64Ptr(10), IsActive: true}
	f.managers.managers[10] = 5

	id, err := f.svc.Create(context.Background(), 1, request.CreateRequest{
		TypeID: 2, Start: "2025-03-04T00:00:00Z", End: "2025-03-06T00:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	require.NotNil(t, f.requests.created)
	assert.Equal(t, request.StatusPending, f.requests.created.Status)
	assert.Equal(t, time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), f.requests.created.Start)

	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, int64(5), f.notifier.sent[0].to)
}

func TestCreateSelfManagedSkipsNotification(t *testing.T) {
	f := newFixture()
	f.employees.byID[1] = employee.Employee{ID: 1, DisplayName: "Bea Ortiz", DepartmentID: int64Ptr(10), IsActive: true}
	f.managers.managers[10] = 1 // manages their own department

	_, err := f.svc.Create(context.Background(), 1, request.CreateRequest{
		TypeID: 2, Start: "2025-03-04T00:00:00Z", End: "2025-03-06T00:00:00Z",
	})
	require.NoError(t, err)
	assert.Empty(t, f.notifier.sent)
}

func TestPendingBranches(t *testing.T) {
	f := newFixture()
	all := []request.Row{{RequestID: 1}, {RequestID: 2}}
	scoped := []request.Row{{RequestID: 2}}
	f.requests.pending = all
	f.requests.pendingFor = scoped

	f.employees.byID[1] = employee.Employee{ID: 1, IsActive: true, IsAdmin: true}
	f.employees.byID[2] = employee.Employee{ID: 2, IsActive: true, IsApprover: true}
	f.employees.byID[3] = employee.Employee{ID: 3, IsActive: true}
	f.managers.managed[3] = []int64{20}
	f.employees.byID[4] = employee.Employee{ID: 4, IsActive: true}

	rows, err := f.svc.Pending(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, all, rows)

	rows, err = f.svc.Pending(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, all, rows)

	rows, err = f.svc.Pending(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, scoped, rows)
	assert.Equal(t, []int64{20}, f.requests.forDeptArgs)

	// A plain employee decides nothing and sees an empty queue.
	rows, err = f.svc.Pending(context.Background(), 4)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDecideForbidden(t *testing.T) {
	f := newFixture()
	f.requests.byID[7] = request.Request{ID: 7, EmployeeID: 2, Status: request.StatusPending}
	f.access.canEdit = false

	err := f.svc.Decide(context.Background(), 1, request.DecideRequest{RequestID: 7, Approve: true})
	assert.ErrorIs(t, err, access.ErrForbidden)
}

func TestDecideNotFound(t *testing.T) {
	f := newFixture()
	f.access.canEdit = true

	err := f.svc.Decide(context.Background(), 1, request.DecideRequest{RequestID: 99, Approve: true})
	assert.ErrorIs(t, err, request.ErrRequestNotFound)
}

func TestDecideAlreadyDecided(t *testing.T) {
	f := newFixture()
	f.access.canEdit = true
	f.requests.byID[7] = request.Request{ID: 7, EmployeeID: 2, Status: request.StatusApproved}
	f.requests.decided = false

	err := f.svc.Decide(context.Background(), 1, request.DecideRequest{RequestID: 7, Approve: true})
	assert.ErrorIs(t, err, request.ErrAlreadyDecided)
	assert.Empty(t, f.notifier.sent)
}

func TestDecideNotifiesEmployee(t *testing.T) {
	f := newFixture()
	f.access.canEdit = true
	f.requests.byID[7] = request.Request{ID: 7, EmployeeID: 2, Status: request.StatusPending}
	f.requests.decided = true

	err := f.svc.Decide(context.Background(), 1, request.DecideRequest{RequestID: 7, Approve: false})
	require.NoError(t, err)
	require.NotNil(t, f.requests.decideApprove)
	assert.False(t, *f.requests.decideApprove)

	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, int64(2), f.notifier.sent[0].to)
	assert.Equal(t, "Availability request rejected", f.notifier.sent[0].title)
}
