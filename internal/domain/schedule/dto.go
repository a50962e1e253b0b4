package schedule

import "context"

// BlockInput is one block in a replace-day payload. Times are "hh:mm";
// unparseable times are treated as absent (all-day), matching the permissive
// handling of the rest of the query surface.
type BlockInput struct {
	TypeID       int64   `json:"type_id"`
	Start        *string `json:"start,omitempty"`
	End          *string `json:"end,omitempty"`
	CustomerName *string `json:"customer_name,omitempty"`
	Activity     *string `json:"activity,omitempty"`
	Note         *string `json:"note,omitempty"`
}

// ReplaceDayRequest replaces the whole day. An empty block list deletes the
// day.
type ReplaceDayRequest struct {
	EmployeeID int64        `json:"employee_id"`
	Date       string       `json:"date"` // yyyy-mm-dd
	Blocks     []BlockInput `json:"blocks"`
}

// DayRequest addresses one (employee, date) pair.
type DayRequest struct {
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"`
}

// BlockResponse is the API shape of a stored block.
type BlockResponse struct {
	ScheduleBlockID int64   `json:"schedule_block_id"`
	TypeID          int64   `json:"type_id"`
	TypeCode        string  `json:"type_code"`
	TypeLabel       string  `json:"type_label"`
	ColorHex        string  `json:"color_hex"`
	Start           *string `json:"start,omitempty"`
	End             *string `json:"end,omitempty"`
	CustomerName    *string `json:"customer_name,omitempty"`
	Activity        *string `json:"activity,omitempty"`
	Note            *string `json:"note,omitempty"`
}

// DayResponse is the get-day API shape.
type DayResponse struct {
	Exists     bool            `json:"exists"`
	EmployeeID int64           `json:"employee_id,omitempty"`
	Date       string          `json:"date,omitempty"`
	Blocks     []BlockResponse `json:"blocks"`
}

// Service exposes day-scoped schedule editing behind the can-edit check.
type Service interface {
	Day(ctx context.Context, actorID, employeeID int64, date string) (DayResponse, error)
	ReplaceDay(ctx context.Context, actorID int64, req ReplaceDayRequest) error
	DeleteDay(ctx context.Context, actorID int64, req DayRequest) error
}
