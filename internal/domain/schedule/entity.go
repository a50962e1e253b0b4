package schedule

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time within a day, stored as minutes since
// midnight. Schedule blocks use it for their optional start/end times.
type TimeOfDay int

// ParseTimeOfDay parses "hh:mm".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Minutes returns minutes since midnight.
func (t TimeOfDay) Minutes() int { return int(t) }

// At anchors the time of day on a calendar date.
func (t TimeOfDay) At(date time.Time) time.Time {
	return date.Add(time.Duration(t) * time.Minute)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid time of day %s", data)
	}
	parsed, err := ParseTimeOfDay(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Block is one manager- or self-entered schedule entry for a single day.
// Zero, one or many blocks may exist per (employee, date); a day's set is
// always replaced whole.
type Block struct {
	ID           int64
	EmployeeID   int64
	Date         time.Time // midnight, date-only semantics
	TypeID       int64
	Start        *TimeOfDay // both nil means all-day
	End          *TimeOfDay
	CustomerName *string
	Activity     *string
	Note         *string
	UpdatedByID  int64
	UpdatedAt    time.Time
}

// NewBlock is the write shape for ReplaceDay.
type NewBlock struct {
	TypeID       int64
	Start        *TimeOfDay
	End          *TimeOfDay
	CustomerName *string
	Activity     *string
	Note         *string
}

// Entry is a block joined with its employee and availability type, the
// strongly-typed intermediate the aggregation engine consumes.
type Entry struct {
	ID           int64
	EmployeeID   int64
	EmployeeName string
	DepartmentID *int64
	Date         time.Time
	TypeID       int64
	TypeCode     string
	TypeLabel    string
	ColorHex     string
	Start        *TimeOfDay
	End          *TimeOfDay
	CustomerName *string
	Activity     *string
	Note         *string
}

// Span converts the block to a concrete time span: a nil start means
// midnight, a nil end means the start of the next day.
func (e Entry) Span() (start, end time.Time) {
	start = e.Date
	if e.Start != nil {
		start = e.Start.At(e.Date)
	}
	end = e.Date.AddDate(0, 0, 1)
	if e.End != nil {
		end = e.End.At(e.Date)
	}
	return start, end
}

// AllDay reports whether the block has no start or end time.
func (e Entry) AllDay() bool { return e.Start == nil && e.End == nil }
