package schedule

import (
	"context"
	"time"

	"github.com/availboard/availboard-backend-go/internal/domain/access"
)

// Repository - interface for the schedule_blocks table
type Repository interface {
	// DayBlocks returns one day's blocks for one employee, null starts
	// first, then ascending start, end, id.
	DayBlocks(ctx context.Context, employeeID int64, date time.Time) ([]Entry, error)

	// Entries returns all blocks with date in [from, to) for employees in
	// scope, same ordering within a day. Active, non-hidden employees only.
	Entries(ctx context.Context, from, to time.Time, scope access.Scope) ([]Entry, error)

	// ReplaceDay atomically replaces the employee's blocks for one day
	// (delete then insert in a single transaction).
	ReplaceDay(ctx context.Context, employeeID int64, date time.Time, blocks []NewBlock, updatedBy int64) error

	DeleteDay(ctx context.Context, employeeID int64, date time.Time) error
}
