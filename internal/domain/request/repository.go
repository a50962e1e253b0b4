package request

import (
	"context"
	"time"

	"github.com/availboard/availboard-backend-go/internal/domain/access"
)

// Repository - interface for the availability_requests table
type Repository interface {
	Create(ctx context.Context, req Request) (int64, error)
	GetByID(ctx context.Context, id int64) (Request, error)
	GetMine(ctx context.Context, employeeID int64) ([]Row, error)

	// GetPending lists all pending requests, oldest first.
	GetPending(ctx context.Context) ([]Row, error)

	// GetPendingForDepartments lists pending requests of employees whose
	// effective department is in the set.
	GetPendingForDepartments(ctx context.Context, departmentIDs []int64) ([]Row, error)

	// Decide transitions a Pending request; it reports false when the row
	// was not pending (already decided or missing).
	Decide(ctx context.Context, id, approverID int64, approve bool, note *string) (bool, error)

	// ApprovedEntries returns approved requests overlapping [start, end)
	// for active, non-hidden employees in scope.
	ApprovedEntries(ctx context.Context, start, end time.Time, scope access.Scope) ([]Entry, error)
}
