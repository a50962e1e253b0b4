package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/availboard/availboard-backend-go/internal/domain/board"
	"github.com/availboard/availboard-backend-go/internal/domain/employee"
	"github.com/availboard/availboard-backend-go/internal/domain/request"
	"github.com/availboard/availboard-backend-go/internal/domain/schedule"
)

var berlin = time.FixedZone("CET", 1*60*60)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, berlin)
}

func approvedEntry(id, employeeID int64, name string, typeCode string, start, end time.Time) request.Entry {
	return request.Entry{
		ID: id, EmployeeID: employeeID, EmployeeName: name,
		TypeID: typeIDFor(typeCode), TypeCode: typeCode, TypeLabel: labelFor(typeCode), ColorHex: colorFor(typeCode),
		Start: start, End: end,
	}
}

func blockEntry(t *testing.T, id, employeeID int64, name string, date time.Time, typeCode, start, end string) schedule.Entry {
	t.Helper()
	e := schedule.Entry{
		ID: id, EmployeeID: employeeID, EmployeeName: name, Date: date,
		TypeID: typeIDFor(typeCode), TypeCode: typeCode, TypeLabel: labelFor(typeCode), ColorHex: colorFor(typeCode),
	}
	if start != "" {
		e.Start = tod(t, start)
	}
	if end != "" {
		e.End = tod(t, end)
	}
	return e
}

func typeIDFor(code string) int64 {
	switch code {
	case "VACATION":
		return 1
	case "SICK":
		return 2
	case "CUSTOMER":
		return 3
	case "TRAINING":
		return 4
	default:
		return 9
	}
}

func labelFor(code string) string {
	switch code {
	case "VACATION":
		return "Vacation"
	case "SICK":
		return "Sick"
	case "CUSTOMER":
		return "Customer Visit"
	case "TRAINING":
		return "Training"
	default:
		return code
	}
}

func colorFor(code string) string {
	switch code {
	case "VACATION":
		return "#198754"
	case "SICK":
		return "#dc3545"
	case "CUSTOMER":
		return "#0d6efd"
	default:
		return "#6c757d"
	}
}

func TestBuildEventsMergesBothOrigins(t *testing.T) {
	reqs := []request.Entry{
		approvedEntry(10, 1, "Bea Ortiz", "VACATION", day(2025, 3, 3), day(2025, 3, 6)),
	}
	blocks := []schedule.Entry{
		blockEntry(t, 20, 2, "Adam Stone", day(2025, 3, 4), "CUSTOMER", "09:00", "13:00"),
		blockEntry(t, 21, 2, "Adam Stone", day(2025, 3, 4), "TRAINING", "", ""),
	}

	events := buildEvents(reqs, blocks, board.TypeFilter{})
	require.Len(t, events, 3)

	// Ordered by employee name, then start.
	assert.Equal(t, "Adam Stone", events[0].ExtendedProps.EmployeeName)
	assert.Equal(t, board.OriginBlock, events[0].Origin)
	assert.Equal(t, int64(21), events[0].ID)
	assert.Equal(t, day(2025, 3, 4), events[0].Start)
	assert.Equal(t, day(2025, 3, 5), events[0].End)

	assert.Equal(t, int64(20), events[1].ID)
	assert.Equal(t, day(2025, 3, 4).Add(9*time.Hour), events[1].Start)
	assert.Equal(t, day(2025, 3, 4).Add(13*time.Hour), events[1].End)

	assert.Equal(t, board.OriginRequest, events[2].Origin)
	assert.Equal(t, "Bea Ortiz - VACATION", events[2].Title)
	assert.Equal(t, "#198754", events[2].BackgroundColor)
}

func TestBuildEventsTypeFilter(t *testing.T) {
	reqs := []request.Entry{
		approvedEntry(10, 1, "Bea Ortiz", "VACATION", day(2025, 3, 3), day(2025, 3, 6)),
		approvedEntry(11, 2, "Adam Stone", "SICK", day(2025, 3, 3), day(2025, 3, 4)),
	}
	blocks := []schedule.Entry{
		blockEntry(t, 20, 3, "Cara Wu", day(2025, 3, 4), "CUSTOMER", "09:00", "13:00"),
	}

	byID := buildEvents(reqs, blocks, board.TypeFilter{IDs: []int64{typeIDFor("SICK")}})
	require.Len(t, byID, 1)
	assert.Equal(t, int64(11), byID[0].ID)

	byCode := buildEvents(reqs, blocks, board.TypeFilter{Codes: []string{"CUSTOMER", "VACATION"}})
	require.Len(t, byCode, 2)
}

func TestBuildSnapshotRequestSuppressesBlocks(t *testing.T) {
	today := day(2025, 3, 4)
	reqs := []request.Entry{
		approvedEntry(10, 1, "Bea Ortiz", "VACATION", day(2025, 3, 3), day(2025, 3, 7)),
	}
	blocks := []schedule.Entry{
		// Same employee also has a block today; the request wins.
		blockEntry(t, 20, 1, "Bea Ortiz", today, "CUSTOMER", "09:00", "13:00"),
	}

	groups := buildSnapshot(reqs, blocks, today, board.TypeFilter{})
	require.Len(t, groups, 1)
	assert.Equal(t, "VACATION", groups[0].TypeCode)
	assert.Equal(t, 1, groups[0].Count)
	require.NotNil(t, groups[0].Employees[0].ReturnsAt)
	assert.Equal(t, day(2025, 3, 7), *groups[0].Employees[0].ReturnsAt)
}

func TestBuildSnapshotLongestRequestWins(t *testing.T) {
	today := day(2025, 3, 4)
	reqs := []request.Entry{
		approvedEntry(10, 1, "Bea Ortiz", "SICK", day(2025, 3, 4), day(2025, 3, 5)),
		approvedEntry(11, 1, "Bea Ortiz", "VACATION", day(2025, 3, 2), day(2025, 3, 9)),
	}

	groups := buildSnapshot(reqs, nil, today, board.TypeFilter{})
	require.Len(t, groups, 1)
	assert.Equal(t, "VACATION", groups[0].TypeCode)
	assert.Equal(t, day(2025, 3, 9), *groups[0].Employees[0].ReturnsAt)
}

func TestBuildSnapshotHalfOpenOverlap(t *testing.T) {
	today := day(2025, 3, 4)
	reqs := []request.Entry{
		// Ends exactly at today's midnight: already over.
		approvedEntry(10, 1, "Bea Ortiz", "VACATION", day(2025, 3, 1), today),
		// Starts exactly at tomorrow's midnight: not yet started.
		approvedEntry(11, 2, "Adam Stone", "SICK", day(2025, 3, 5), day(2025, 3, 6)),
	}

	groups := buildSnapshot(reqs, nil, today, board.TypeFilter{})
	assert.Empty(t, groups)
}

func TestBuildSnapshotBlockRepresentativeAndGrouping(t *testing.T) {
	today := day(2025, 3, 4)
	blocks := []schedule.Entry{
		blockEntry(t, 21, 1, "Bea Ortiz", today, "CUSTOMER", "13:00", "16:00"),
		blockEntry(t, 20, 1, "Bea Ortiz", today, "CUSTOMER", "09:00", "12:00"),
		blockEntry(t, 22, 2, "Adam Stone", today, "VACATION", "", ""),
	}

	groups := buildSnapshot(nil, blocks, today, board.TypeFilter{})
	require.Len(t, groups, 2)

	// Groups ordered by label: Customer Visit before Vacation.
	assert.Equal(t, "CUSTOMER", groups[0].TypeCode)
	require.Len(t, groups[0].Employees, 1)
	// Earliest block of the day represents the employee; returnsAt is its end.
	assert.Equal(t, today.Add(12*time.Hour), *groups[0].Employees[0].ReturnsAt)
	assert.Equal(t, "BO", groups[0].Employees[0].Initials)

	assert.Equal(t, "VACATION", groups[1].TypeCode)
	// All-day block returns at next midnight.
	assert.Equal(t, day(2025, 3, 5), *groups[1].Employees[0].ReturnsAt)
}

func TestBuildWeeklyGridHeader(t *testing.T) {
	ws := day(2025, 3, 3) // a Monday

	grid := buildWeeklyGrid(ws, nil, nil, nil, board.TypeFilter{})
	assert.Equal(t, "2025-03-03", grid.WeekStart)
	assert.Equal(t, "2025-03-10", grid.WeekEnd)
	assert.Equal(t, "2025-03-03", grid.Days[0])
	assert.Equal(t, "2025-03-09", grid.Days[6])
	assert.Equal(t, "Mon 3/3", grid.DayNames[0])
	assert.Equal(t, "Sun 9/3", grid.DayNames[6])
	assert.Empty(t, grid.Rows)
}

func TestBuildWeeklyGridRequestPrecedence(t *testing.T) {
	ws := day(2025, 3, 3)
	members := []employee.Member{{ID: 1, DisplayName: "Bea Ortiz"}}
	reqs := []request.Entry{
		approvedEntry(10, 1, "Bea Ortiz", "VACATION", day(2025, 3, 4), day(2025, 3, 6)),
	}
	blocks := []schedule.Entry{
		// Tuesday block is shadowed by the request, Thursday block shows.
		blockEntry(t, 20, 1, "Bea Ortiz", day(2025, 3, 4), "CUSTOMER", "09:00", "13:00"),
		blockEntry(t, 21, 1, "Bea Ortiz", day(2025, 3, 6), "CUSTOMER", "09:00", "13:00"),
	}

	grid := buildWeeklyGrid(ws, members, reqs, blocks, board.TypeFilter{})
	require.Len(t, grid.Rows, 1)
	row := grid.Rows[0]
	assert.Equal(t, "BO", row.Initials)

	assert.Nil(t, row.Days[0]) // Monday empty

	require.NotNil(t, row.Days[1]) // Tuesday: request
	assert.Equal(t, "VACATION", row.Days[1].TypeCode)
	assert.Nil(t, row.Days[1].Blocks)
	require.NotNil(t, row.Days[2]) // Wednesday: request still covering
	assert.Equal(t, "VACATION", row.Days[2].TypeCode)

	require.NotNil(t, row.Days[3]) // Thursday: the request ended at midnight
	assert.Equal(t, "CUSTOMER", row.Days[3].TypeCode)
	require.Len(t, row.Days[3].Blocks, 1)
}

func TestBuildWeeklyGridEarliestRequestWinsDay(t *testing.T) {
	ws := day(2025, 3, 3)
	members := []employee.Member{{ID: 1, DisplayName: "Bea Ortiz"}}
	reqs := []request.Entry{
		approvedEntry(11, 1, "Bea Ortiz", "SICK", day(2025, 3, 4), day(2025, 3, 6)),
		approvedEntry(10, 1, "Bea Ortiz", "VACATION", day(2025, 3, 2), day(2025, 3, 5)),
	}

	grid := buildWeeklyGrid(ws, members, reqs, nil, board.TypeFilter{})
	require.Len(t, grid.Rows, 1)
	// Tuesday overlaps both; the earlier-starting vacation wins.
	require.NotNil(t, grid.Rows[0].Days[1])
	assert.Equal(t, "VACATION", grid.Rows[0].Days[1].TypeCode)
	// Wednesday is covered only by the sick request.
	require.NotNil(t, grid.Rows[0].Days[2])
	assert.Equal(t, "SICK", grid.Rows[0].Days[2].TypeCode)
}

func TestBuildWeeklyGridTypeFilterDropsUnmatchedMembers(t *testing.T) {
	ws := day(2025, 3, 3)
	members := []employee.Member{
		{ID: 1, DisplayName: "Bea Ortiz"},
		{ID: 2, DisplayName: "Adam Stone"},
		{ID: 3, DisplayName: "Cara Wu"},
	}
	reqs := []request.Entry{
		approvedEntry(10, 1, "Bea Ortiz", "VACATION", day(2025, 3, 4), day(2025, 3, 6)),
	}
	blocks := []schedule.Entry{
		blockEntry(t, 20, 2, "Adam Stone", day(2025, 3, 5), "CUSTOMER", "09:00", "13:00"),
	}

	unfiltered := buildWeeklyGrid(ws, members, reqs, blocks, board.TypeFilter{})
	assert.Len(t, unfiltered.Rows, 3)

	filtered := buildWeeklyGrid(ws, members, reqs, blocks, board.TypeFilter{Codes: []string{"CUSTOMER"}})
	require.Len(t, filtered.Rows, 1)
	assert.Equal(t, int64(2), filtered.Rows[0].EmployeeID)
	// The vacation request no longer exists for precedence purposes.
	assert.Nil(t, filtered.Rows[0].Days[1])
	require.NotNil(t, filtered.Rows[0].Days[2])
	assert.Equal(t, "CUSTOMER", filtered.Rows[0].Days[2].TypeCode)
}

func TestBuildWeeklyGridMixedCell(t *testing.T) {
	ws := day(2025, 3, 3)
	members := []employee.Member{{ID: 1, DisplayName: "Bea Ortiz"}}
	blocks := []schedule.Entry{
		blockEntry(t, 20, 1, "Bea Ortiz", day(2025, 3, 3), "CUSTOMER", "09:00", "12:00"),
		blockEntry(t, 21, 1, "Bea Ortiz", day(2025, 3, 3), "TRAINING", "13:00", "17:00"),
	}

	grid := buildWeeklyGrid(ws, members, nil, blocks, board.TypeFilter{})
	require.Len(t, grid.Rows, 1)
	cell := grid.Rows[0].Days[0]
	require.NotNil(t, cell)
	assert.Equal(t, board.MixTypeCode, cell.TypeCode)
	assert.Len(t, cell.Blocks, 2)
}
