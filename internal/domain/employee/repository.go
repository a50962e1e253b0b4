package employee

import (
	"context"

	"github.com/google/uuid"

	"github.com/availboard/availboard-backend-go/internal/domain/access"
)

// Repository - interface for the employees table
type Repository interface {
	GetByID(ctx context.Context, id int64) (Employee, error)
	GetBySam(ctx context.Context, sam string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	GetByADObjectID(ctx context.Context, adObjectID uuid.UUID) (Employee, error)

	// Upsert is the entry point the directory-sync collaborator calls:
	// match on AD object id, update base fields, insert when missing.
	Upsert(ctx context.Context, emp Employee) (int64, error)

	// Search returns active employees ranked by display name match.
	Search(ctx context.Context, query string, limit int) ([]Employee, error)

	// ListInScope returns every active, non-hidden employee inside the
	// scope with their effective department, ordered by display name.
	ListInScope(ctx context.Context, scope access.Scope) ([]Member, error)
}

// OverrideRepository - interface for the employee_overrides table
type OverrideRepository interface {
	// Get returns nil when no override row exists.
	Get(ctx context.Context, employeeID int64) (*Override, error)
	GetAll(ctx context.Context) ([]Override, error)
	Upsert(ctx context.Context, ovr Override) error
	// Clear removes the override row entirely.
	Clear(ctx context.Context, employeeID int64) error
}
