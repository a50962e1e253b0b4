package request

import "context"

// CreateRequest is the submit payload. Start/End are RFC 3339 timestamps.
type CreateRequest struct {
	TypeID int64   `json:"type_id"`
	Start  string  `json:"start"`
	End    string  `json:"end"`
	Note   *string `json:"note,omitempty"`
}

// DecideRequest approves or rejects one pending request.
type DecideRequest struct {
	RequestID int64   `json:"request_id"`
	Approve   bool    `json:"approve"`
	Note      *string `json:"note,omitempty"`
}

// Service covers the request lifecycle: submit, list, decide.
type Service interface {
	Create(ctx context.Context, actorID int64, req CreateRequest) (int64, error)
	Mine(ctx context.Context, actorID int64) ([]Row, error)
	// Pending lists what the actor may decide: everything for admins and
	// approvers, managed departments' requests for managers.
	Pending(ctx context.Context, actorID int64) ([]Row, error)
	Decide(ctx context.Context, actorID int64, req DecideRequest) error
}
