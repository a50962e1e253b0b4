package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/availboard/availboard-backend-go/internal/domain/board"
	"github.com/availboard/availboard-backend-go/internal/domain/schedule"
)

func tod(t *testing.T, s string) *schedule.TimeOfDay {
	t.Helper()
	v, err := schedule.ParseTimeOfDay(s)
	require.NoError(t, err)
	return &v
}

func strPtr(s string) *string { return &s }

func TestSummarizeEmpty(t *testing.T) {
	assert.Nil(t, summarize(nil))
	assert.Nil(t, summarize([]schedule.Entry{}))
}

func TestSummarizeSingleType(t *testing.T) {
	blocks := []schedule.Entry{
		{
			ID: 1, TypeID: 3, TypeCode: "CUSTOMER", TypeLabel: "Customer Visit", ColorHex: "#0d6efd",
			Start: tod(t, "09:00"), End: tod(t, "13:00"),
			CustomerName: strPtr("Acme Corp"),
		},
		{
			ID: 2, TypeID: 3, TypeCode: "CUSTOMER", TypeLabel: "Customer Visit", ColorHex: "#0d6efd",
			Start: tod(t, "14:00"), End: tod(t, "16:00"),
		},
	}

	cell := summarize(blocks)
	require.NotNil(t, cell)
	assert.Equal(t, "CUSTOMER", cell.TypeCode)
	assert.Equal(t, "Customer Visit", cell.TypeLabel)
	assert.Equal(t, "#0d6efd", cell.ColorHex)
	assert.Len(t, cell.Blocks, 2)

	require.NotNil(t, cell.Details)
	assert.Equal(t,
		"09:00-13:00 Customer Visit • Customer: Acme Corp\n14:00-16:00 Customer Visit",
		*cell.Details)
}

func TestSummarizeMixedTypes(t *testing.T) {
	blocks := []schedule.Entry{
		{ID: 1, TypeID: 3, TypeCode: "CUSTOMER", TypeLabel: "Customer Visit", ColorHex: "#0d6efd", Start: tod(t, "09:00"), End: tod(t, "12:00")},
		{ID: 2, TypeID: 5, TypeCode: "TRAINING", TypeLabel: "Training", ColorHex: "#6f42c1", Start: tod(t, "13:00"), End: tod(t, "17:00")},
	}

	cell := summarize(blocks)
	require.NotNil(t, cell)
	assert.Equal(t, board.MixTypeCode, cell.TypeCode)
	assert.Equal(t, board.MixTypeLabel, cell.TypeLabel)
	assert.Equal(t, board.MixColorHex, cell.ColorHex)

	// The underlying blocks keep their own types.
	require.Len(t, cell.Blocks, 2)
	assert.Equal(t, "CUSTOMER", cell.Blocks[0].TypeCode)
	assert.Equal(t, "TRAINING", cell.Blocks[1].TypeCode)
}

func TestSummarizeAllDayFirst(t *testing.T) {
	blocks := []schedule.Entry{
		{ID: 7, TypeID: 5, TypeCode: "TRAINING", TypeLabel: "Training", Start: tod(t, "08:00"), End: tod(t, "10:00")},
		{ID: 9, TypeID: 2, TypeCode: "OFFSITE", TypeLabel: "Offsite"},
	}

	cell := summarize(blocks)
	require.NotNil(t, cell)
	require.Len(t, cell.Blocks, 2)
	assert.Equal(t, "OFFSITE", cell.Blocks[0].TypeCode)
	assert.Equal(t, "TRAINING", cell.Blocks[1].TypeCode)

	require.NotNil(t, cell.Details)
	assert.Equal(t, "All-day Offsite\n08:00-10:00 Training", *cell.Details)
}

func TestCellDetailsPartialTimesAndExtras(t *testing.T) {
	blocks := []schedule.Entry{
		{ID: 1, TypeCode: "SHIFT", TypeLabel: "Late Shift", Start: tod(t, "14:00")},
		{ID: 2, TypeCode: "SHIFT", TypeLabel: "Early Shift", End: tod(t, "11:30")},
		{
			ID: 3, TypeCode: "CUSTOMER", TypeLabel: "Customer Visit",
			Start: tod(t, "09:00"), End: tod(t, "10:00"),
			CustomerName: strPtr("Globex"), Activity: strPtr("Quarterly review"), Note: strPtr("bring badge"),
		},
	}

	got := cellDetails(blocks)
	assert.Equal(t,
		"14:00 Late Shift\n"+
			"11:30 Early Shift\n"+
			"09:00-10:00 Customer Visit • Customer: Globex • Activity: Quarterly review • bring badge",
		got)
}

func TestCellDetailsSkipsBlankExtras(t *testing.T) {
	blocks := []schedule.Entry{
		{ID: 1, TypeCode: "OFFSITE", TypeLabel: "Offsite", CustomerName: strPtr("  "), Note: strPtr("")},
	}
	assert.Equal(t, "All-day Offsite", cellDetails(blocks))
}
