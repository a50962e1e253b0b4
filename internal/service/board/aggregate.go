package board

import (
	"sort"
	"time"

	"github.com/availboard/availboard-backend-go/internal/domain/board"
	"github.com/availboard/availboard-backend-go/internal/domain/employee"
	"github.com/availboard/availboard-backend-go/internal/domain/request"
	"github.com/availboard/availboard-backend-go/internal/domain/schedule"
)

// buildEvents flattens approved requests and schedule blocks into one
// calendar event list. Both sources appear side by side: no precedence is
// applied at this shape, a day may carry a request event and a block event
// for the same employee.
func buildEvents(requests []request.Entry, blocks []schedule.Entry, filter board.TypeFilter) []board.Event {
	events := make([]board.Event, 0, len(requests)+len(blocks))

	for _, r := range requests {
		if !filter.Matches(r.TypeID, r.TypeCode) {
			continue
		}
		events = append(events, board.Event{
			ID:              r.ID,
			Origin:          board.OriginRequest,
			Title:           r.EmployeeName + " - " + r.TypeCode,
			Start:           r.Start,
			End:             r.End,
			TypeCode:        r.TypeCode,
			BackgroundColor: r.ColorHex,
			BorderColor:     r.ColorHex,
			ExtendedProps: board.EventProps{
				EmployeeID:   r.EmployeeID,
				EmployeeName: r.EmployeeName,
				TypeCode:     r.TypeCode,
				Note:         r.Note,
			},
		})
	}

	for _, b := range blocks {
		if !filter.Matches(b.TypeID, b.TypeCode) {
			continue
		}
		start, end := b.Span()
		events = append(events, board.Event{
			ID:              b.ID,
			Origin:          board.OriginBlock,
			Title:           b.EmployeeName + " - " + b.TypeCode,
			Start:           start,
			End:             end,
			TypeCode:        b.TypeCode,
			BackgroundColor: b.ColorHex,
			BorderColor:     b.ColorHex,
			ExtendedProps: board.EventProps{
				EmployeeID:   b.EmployeeID,
				EmployeeName: b.EmployeeName,
				TypeCode:     b.TypeCode,
				Note:         b.Note,
			},
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].ExtendedProps.EmployeeName != events[j].ExtendedProps.EmployeeName {
			return events[i].ExtendedProps.EmployeeName < events[j].ExtendedProps.EmployeeName
		}
		return events[i].Start.Before(events[j].Start)
	})
	return events
}

// buildSnapshot groups today's coverage by availability type. An approved
// request covering today suppresses every schedule block of that employee,
// so nobody is counted under two types at once.
func buildSnapshot(requests []request.Entry, blocks []schedule.Entry, today time.Time, filter board.TypeFilter) []board.SnapshotGroup {
	tomorrow := today.AddDate(0, 0, 1)

	type covering struct {
		typeCode, typeLabel, colorHex string
		employeeID                    int64
		employeeName                  string
		departmentID                  *int64
		returnsAt                     time.Time
	}

	// One covering request per employee: the one keeping them away the
	// longest; request id as the stable tie-break.
	coveringByEmp := make(map[int64]request.Entry)
	for _, r := range requests {
		if !filter.Matches(r.TypeID, r.TypeCode) {
			continue
		}
		if !r.Overlaps(today, tomorrow) {
			continue
		}
		cur, ok := coveringByEmp[r.EmployeeID]
		if !ok || r.End.After(cur.End) || (r.End.Equal(cur.End) && r.ID < cur.ID) {
			coveringByEmp[r.EmployeeID] = r
		}
	}

	var entries []covering
	for _, r := range coveringByEmp {
		entries = append(entries, covering{
			typeCode:     r.TypeCode,
			typeLabel:    r.TypeLabel,
			colorHex:     r.ColorHex,
			employeeID:   r.EmployeeID,
			employeeName: r.EmployeeName,
			departmentID: r.DepartmentID,
			returnsAt:    r.End,
		})
	}

	// One representative block per remaining employee, by the canonical
	// in-day ordering.
	blocksByEmp := make(map[int64][]schedule.Entry)
	for _, b := range blocks {
		if !filter.Matches(b.TypeID, b.TypeCode) {
			continue
		}
		if _, hasCovering := coveringByEmp[b.EmployeeID]; hasCovering {
			continue
		}
		blocksByEmp[b.EmployeeID] = append(blocksByEmp[b.EmployeeID], b)
	}
	for _, dayBlocks := range blocksByEmp {
		sortBlocks(dayBlocks)
		b := dayBlocks[0]
		_, spanEnd := b.Span()
		entries = append(entries, covering{
			typeCode:     b.TypeCode,
			typeLabel:    b.TypeLabel,
			colorHex:     b.ColorHex,
			employeeID:   b.EmployeeID,
			employeeName: b.EmployeeName,
			departmentID: b.DepartmentID,
			returnsAt:    spanEnd,
		})
	}

	groupIndex := make(map[string]int)
	var groups []board.SnapshotGroup
	for _, e := range entries {
		idx, ok := groupIndex[e.typeCode]
		if !ok {
			idx = len(groups)
			groupIndex[e.typeCode] = idx
			groups = append(groups, board.SnapshotGroup{
				TypeCode:  e.typeCode,
				TypeLabel: e.typeLabel,
				ColorHex:  e.colorHex,
			})
		}
		returnsAt := e.returnsAt
		groups[idx].Employees = append(groups[idx].Employees, board.SnapshotEmployee{
			EmployeeID:   e.employeeID,
			DisplayName:  e.employeeName,
			Initials:     employee.Initials(e.employeeName),
			DepartmentID: e.departmentID,
			ReturnsAt:    &returnsAt,
		})
	}

	for i := range groups {
		sort.Slice(groups[i].Employees, func(a, b int) bool {
			ea, eb := groups[i].Employees[a], groups[i].Employees[b]
			if ea.DisplayName != eb.DisplayName {
				return ea.DisplayName < eb.DisplayName
			}
			return ea.EmployeeID < eb.EmployeeID
		})
		groups[i].Count = len(groups[i].Employees)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].TypeLabel != groups[j].TypeLabel {
			return groups[i].TypeLabel < groups[j].TypeLabel
		}
		return groups[i].TypeCode < groups[j].TypeCode
	})
	return groups
}

// buildWeeklyGrid renders one row per member with seven day cells. An
// approved request overlapping a day wins that day outright; otherwise every
// block of the day attaches to the cell. With an active type filter, members
// without a single matching record in the whole week are dropped.
func buildWeeklyGrid(weekStart time.Time, members []employee.Member, requests []request.Entry, blocks []schedule.Entry, filter board.TypeFilter) board.WeeklyGrid {
	grid := board.WeeklyGrid{
		WeekStart: weekStart.Format("2006-01-02"),
		WeekEnd:   weekStart.AddDate(0, 0, 7).Format("2006-01-02"),
	}
	var days [7]time.Time
	for i := 0; i < 7; i++ {
		days[i] = weekStart.AddDate(0, 0, i)
		grid.Days[i] = days[i].Format("2006-01-02")
		grid.DayNames[i] = days[i].Format("Mon 2/1")
	}

	// Records whose type fails the filter are treated as absent; the
	// precedence rules then run on what remains.
	requestsByEmp := make(map[int64][]request.Entry)
	for _, r := range requests {
		if !filter.Matches(r.TypeID, r.TypeCode) {
			continue
		}
		requestsByEmp[r.EmployeeID] = append(requestsByEmp[r.EmployeeID], r)
	}
	blocksByEmpDay := make(map[int64]map[string][]schedule.Entry)
	for _, b := range blocks {
		if !filter.Matches(b.TypeID, b.TypeCode) {
			continue
		}
		key := b.Date.Format("2006-01-02")
		if blocksByEmpDay[b.EmployeeID] == nil {
			blocksByEmpDay[b.EmployeeID] = make(map[string][]schedule.Entry)
		}
		blocksByEmpDay[b.EmployeeID][key] = append(blocksByEmpDay[b.EmployeeID][key], b)
	}

	grid.Rows = make([]board.Row, 0, len(members))
	for _, m := range members {
		row := board.Row{
			EmployeeID:   m.ID,
			DisplayName:  m.DisplayName,
			Initials:     employee.Initials(m.DisplayName),
			DepartmentID: m.DepartmentID,
		}

		hasAny := false
		for i := 0; i < 7; i++ {
			dayStart := days[i]
			dayEnd := days[i].AddDate(0, 0, 1)

			// Request precedence is absolute per day: blocks are not
			// even considered when a request covers the day.
			if r, ok := coveringRequest(requestsByEmp[m.ID], dayStart, dayEnd); ok {
				row.Days[i] = &board.Cell{
					TypeCode:  r.TypeCode,
					TypeLabel: r.TypeLabel,
					ColorHex:  r.ColorHex,
				}
				hasAny = true
				continue
			}

			dayBlocks := blocksByEmpDay[m.ID][grid.Days[i]]
			if cell := summarize(dayBlocks); cell != nil {
				row.Days[i] = cell
				hasAny = true
			}
		}

		// "Find who has type X this week" mode: unmatched employees are
		// excluded entirely, not just blanked.
		if !filter.IsEmpty() && !hasAny {
			continue
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid
}

// coveringRequest picks the request covering [dayStart, dayEnd), earliest
// start first, id as the stable tie-break.
func coveringRequest(requests []request.Entry, dayStart, dayEnd time.Time) (request.Entry, bool) {
	var best request.Entry
	found := false
	for _, r := range requests {
		if !r.Overlaps(dayStart, dayEnd) {
			continue
		}
		if !found || r.Start.Before(best.Start) || (r.Start.Equal(best.Start) && r.ID < best.ID) {
			best = r
			found = true
		}
	}
	return best, found
}

// sortBlocks orders blocks the canonical way: all-day (null start) first,
// then ascending start, end, insertion id.
func sortBlocks(blocks []schedule.Entry) {
	sort.Slice(blocks, func(i, j int) bool {
		a, b := blocks[i], blocks[j]
		if (a.Start == nil) != (b.Start == nil) {
			return a.Start == nil
		}
		if a.Start != nil && b.Start != nil && *a.Start != *b.Start {
			return *a.Start < *b.Start
		}
		if (a.End == nil) != (b.End == nil) {
			return a.End == nil
		}
		if a.End != nil && b.End != nil && *a.End != *b.End {
			return *a.End < *b.End
		}
		return a.ID < b.ID
	})
}
