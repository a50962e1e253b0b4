package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfWeek(t *testing.T) {
	// 2025-03-05 is a Wednesday.
	wed := time.Date(2025, 3, 5, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), StartOfWeek(wed))

	// A Monday is already the start of its week.
	mon := time.Date(2025, 3, 3, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), StartOfWeek(mon))

	// Sunday belongs to the week that began the previous Monday.
	sun := time.Date(2025, 3, 9, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), StartOfWeek(sun))
}

func TestTypeFilterMatches(t *testing.T) {
	assert.True(t, TypeFilter{}.Matches(1, "SICK"))

	f := TypeFilter{IDs: []int64{2}, Codes: []string{"REMOTE"}}
	assert.True(t, f.Matches(2, "SICK"))
	assert.True(t, f.Matches(9, "REMOTE"))
	assert.False(t, f.Matches(9, "SICK"))
	assert.False(t, f.IsEmpty())
}
