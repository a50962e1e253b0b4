package request

import "time"

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Request is an employee-submitted, approver-decided time span. Status moves
// from Pending to Approved or Rejected exactly once and is never reopened.
type Request struct {
	ID           int64
	EmployeeID   int64
	TypeID       int64
	Start        time.Time
	End          time.Time
	Status       Status
	Note         *string
	ApproverID   *int64
	SubmittedAt  time.Time
	DecisionAt   *time.Time
	DecisionNote *string
}

// Row is a request joined with employee, approver and type for listings.
type Row struct {
	RequestID    int64      `json:"request_id"`
	EmployeeID   int64      `json:"employee_id"`
	EmployeeName string     `json:"employee_name"`
	TypeID       int64      `json:"type_id"`
	TypeCode     string     `json:"type_code"`
	TypeLabel    string     `json:"type_label"`
	TypeColorHex string     `json:"type_color_hex"`
	Start        time.Time  `json:"start"`
	End          time.Time  `json:"end"`
	Status       Status     `json:"status"`
	Note         *string    `json:"note,omitempty"`
	ApproverID   *int64     `json:"approver_id,omitempty"`
	ApproverName *string    `json:"approver_name,omitempty"`
	SubmittedAt  time.Time  `json:"submitted_at"`
	DecisionAt   *time.Time `json:"decision_at,omitempty"`
	DecisionNote *string    `json:"decision_note,omitempty"`
}

// Entry is an approved request joined with its employee and type, the
// strongly-typed intermediate the aggregation engine consumes.
type Entry struct {
	ID           int64
	EmployeeID   int64
	EmployeeName string
	DepartmentID *int64
	TypeID       int64
	TypeCode     string
	TypeLabel    string
	ColorHex     string
	Start        time.Time
	End          time.Time
	Note         *string
}

// Overlaps reports half-open interval intersection with [start, end):
// the same rule everywhere a request is matched to a day or range.
func (e Entry) Overlaps(start, end time.Time) bool {
	return e.Start.Before(end) && e.End.After(start)
}
