package board

import (
	"strings"

	"github.com/availboard/availboard-backend-go/internal/domain/board"
	"github.com/availboard/availboard-backend-go/internal/domain/schedule"
)

// summarize collapses a day's blocks into one grid cell. A single distinct
// type keeps its own code and color; two or more distinct types show as the
// synthetic mixed type. The blocks themselves ride along untouched so the
// frontend can expand the cell.
func summarize(blocks []schedule.Entry) *board.Cell {
	if len(blocks) == 0 {
		return nil
	}
	sortBlocks(blocks)

	cell := &board.Cell{
		TypeCode:  blocks[0].TypeCode,
		TypeLabel: blocks[0].TypeLabel,
		ColorHex:  blocks[0].ColorHex,
	}
	for _, b := range blocks[1:] {
		if b.TypeCode != cell.TypeCode {
			cell.TypeCode = board.MixTypeCode
			cell.TypeLabel = board.MixTypeLabel
			cell.ColorHex = board.MixColorHex
			break
		}
	}

	cell.Blocks = make([]board.CellBlock, 0, len(blocks))
	for _, b := range blocks {
		cell.Blocks = append(cell.Blocks, board.CellBlock{
			TypeID:       b.TypeID,
			TypeCode:     b.TypeCode,
			TypeLabel:    b.TypeLabel,
			ColorHex:     b.ColorHex,
			Start:        b.Start,
			End:          b.End,
			CustomerName: b.CustomerName,
			Activity:     b.Activity,
			Note:         b.Note,
		})
	}

	details := cellDetails(blocks)
	cell.Details = &details
	return cell
}

// cellDetails renders the tooltip text: one line per block, in the canonical
// block order.
func cellDetails(blocks []schedule.Entry) string {
	lines := make([]string, 0, len(blocks))
	for _, b := range blocks {
		var when string
		if b.Start == nil && b.End == nil {
			when = "All-day"
		} else {
			var sb strings.Builder
			if b.Start != nil {
				sb.WriteString(b.Start.String())
			}
			sb.WriteString("-")
			if b.End != nil {
				sb.WriteString(b.End.String())
			}
			when = strings.Trim(sb.String(), "-")
		}

		parts := []string{strings.TrimSpace(when + " " + b.TypeLabel)}
		if b.CustomerName != nil && strings.TrimSpace(*b.CustomerName) != "" {
			parts = append(parts, "Customer: "+strings.TrimSpace(*b.CustomerName))
		}
		if b.Activity != nil && strings.TrimSpace(*b.Activity) != "" {
			parts = append(parts, "Activity: "+strings.TrimSpace(*b.Activity))
		}
		if b.Note != nil && strings.TrimSpace(*b.Note) != "" {
			parts = append(parts, strings.TrimSpace(*b.Note))
		}
		lines = append(lines, strings.Join(parts, " • "))
	}
	return strings.Join(lines, "\n")
}
