package board

import (
	"context"
	"time"

	"github.com/availboard/availboard-backend-go/internal/domain/schedule"
)

// Origin tags which store a flat calendar event came from. Events carry the
// tag explicitly instead of encoding it in the sign of the id.
type Origin string

const (
	OriginRequest Origin = "request"
	OriginBlock   Origin = "block"
)

// Synthetic type shown when a grid cell holds blocks of more than one type.
const (
	MixTypeCode  = "MIX"
	MixTypeLabel = "Multiple"
	MixColorHex  = "#343a40"
)

// EventProps is the extendedProps payload of a calendar event.
type EventProps struct {
	EmployeeID   int64   `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	TypeCode     string  `json:"type_code"`
	Note         *string `json:"note,omitempty"`
}

// Event is one flat calendar entry, shaped for the calendar frontend.
type Event struct {
	ID              int64      `json:"id"`
	Origin          Origin     `json:"origin"`
	Title           string     `json:"title"`
	Start           time.Time  `json:"start"`
	End             time.Time  `json:"end"`
	TypeCode        string     `json:"type_code"`
	BackgroundColor string     `json:"background_color"`
	BorderColor     string     `json:"border_color"`
	ExtendedProps   EventProps `json:"extended_props"`
}

// SnapshotEmployee is one person inside a snapshot group.
type SnapshotEmployee struct {
	EmployeeID   int64      `json:"employee_id"`
	DisplayName  string     `json:"display_name"`
	Initials     string     `json:"initials"`
	DepartmentID *int64     `json:"department_id,omitempty"`
	ReturnsAt    *time.Time `json:"returns_at,omitempty"`
}

// SnapshotGroup is one availability type with everyone covered by it today.
type SnapshotGroup struct {
	TypeCode  string             `json:"type_code"`
	TypeLabel string             `json:"type_label"`
	ColorHex  string             `json:"color_hex"`
	Count     int                `json:"count"`
	Employees []SnapshotEmployee `json:"employees"`
}

// CellBlock is one schedule block attached to a weekly-grid cell.
type CellBlock struct {
	TypeID       int64               `json:"type_id"`
	TypeCode     string              `json:"type_code"`
	TypeLabel    string              `json:"type_label"`
	ColorHex     string              `json:"color_hex"`
	Start        *schedule.TimeOfDay `json:"start,omitempty"`
	End          *schedule.TimeOfDay `json:"end,omitempty"`
	CustomerName *string             `json:"customer_name,omitempty"`
	Activity     *string             `json:"activity,omitempty"`
	Note         *string             `json:"note,omitempty"`
}

// Cell is one (employee, day) cell of the weekly grid. A nil cell means the
// day is empty. Blocks is nil when the cell is covered by a request.
type Cell struct {
	TypeCode string      `json:"type_code"`
	TypeLabel string     `json:"type_label"`
	ColorHex string      `json:"color_hex"`
	Blocks   []CellBlock `json:"blocks,omitempty"`
	Details  *string     `json:"details,omitempty"`
}

// Row is one employee's week.
type Row struct {
	EmployeeID   int64    `json:"employee_id"`
	DisplayName  string   `json:"display_name"`
	Initials     string   `json:"initials"`
	DepartmentID *int64   `json:"department_id,omitempty"`
	Days         [7]*Cell `json:"days"`
}

// WeeklyGrid is the full weekly view: one row per in-scope employee, seven
// ordered day cells each.
type WeeklyGrid struct {
	WeekStart string    `json:"week_start"`
	WeekEnd   string    `json:"week_end"`
	Days      [7]string `json:"days"`
	DayNames  [7]string `json:"day_names"`
	Rows      []Row     `json:"rows"`
}

// TypeFilter narrows both stores by availability type, by id or by code.
// An empty filter matches everything.
type TypeFilter struct {
	IDs   []int64
	Codes []string
}

func (f TypeFilter) IsEmpty() bool { return len(f.IDs) == 0 && len(f.Codes) == 0 }

// Matches reports whether a record of the given type passes the filter.
func (f TypeFilter) Matches(typeID int64, typeCode string) bool {
	if f.IsEmpty() {
		return true
	}
	for _, id := range f.IDs {
		if id == typeID {
			return true
		}
	}
	for _, code := range f.Codes {
		if code == typeCode {
			return true
		}
	}
	return false
}

// Filters are the caller-supplied narrowing parameters of every board view.
type Filters struct {
	DepartmentIDs []int64
	Types         TypeFilter
}

// Service is the aggregation engine: three read-only views merging approved
// requests and schedule blocks under a resolved visibility scope.
type Service interface {
	Events(ctx context.Context, actorID int64, start, end time.Time, f Filters) ([]Event, error)
	TodaySnapshot(ctx context.Context, actorID int64, f Filters) ([]SnapshotGroup, error)
	// WeeklyGrid renders the week starting at weekStart; a nil weekStart
	// means the most recent Monday.
	WeeklyGrid(ctx context.Context, actorID int64, weekStart *time.Time, f Filters) (WeeklyGrid, error)
}

// StartOfWeek returns the most recent Monday at midnight, in t's location.
func StartOfWeek(t time.Time) time.Time {
	d := DateOf(t)
	diff := (int(d.Weekday()) - int(time.Monday) + 7) % 7
	return d.AddDate(0, 0, -diff)
}

// DateOf truncates to midnight, keeping the location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
