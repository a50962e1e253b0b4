package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseIntCSV(t *testing.T) {
	assert.Nil(t, parseIntCSV(""))
	assert.Nil(t, parseIntCSV("  "))
	assert.Equal(t, []int64{1, 2, 3}, parseIntCSV("1,2,3"))
	assert.Equal(t, []int64{1, 3}, parseIntCSV(" 1 , x, 3 "))
	assert.Equal(t, []int64{42}, parseIntCSV(",,42,"))
	// Nothing parseable narrows to nothing, not to an error.
	assert.Nil(t, parseIntCSV("a,b"))
}

func TestParseCodeCSV(t *testing.T) {
	assert.Nil(t, parseCodeCSV(""))
	assert.Equal(t, []string{"SICK", "VACATION"}, parseCodeCSV("SICK, VACATION"))
	assert.Equal(t, []string{"REMOTE"}, parseCodeCSV(",REMOTE,,"))
}

func TestParseTimeParam(t *testing.T) {
	got, ok := parseTimeParam("2025-03-04T09:30:00Z")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 3, 4, 9, 30, 0, 0, time.UTC), got)

	got, ok = parseTimeParam("2025-03-04")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), got)

	_, ok = parseTimeParam("next tuesday")
	assert.False(t, ok)
}
