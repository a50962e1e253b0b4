package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	got, err := ParseTimeOfDay("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9*60+30, got.Minutes())
	assert.Equal(t, "09:30", got.String())

	got, err = ParseTimeOfDay("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Minutes())

	_, err = ParseTimeOfDay("9:30am")
	assert.Error(t, err)
	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err)
}

func TestTimeOfDayJSON(t *testing.T) {
	v := TimeOfDay(13*60 + 45)
	data, err := v.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"13:45"`, string(data))

	var parsed TimeOfDay
	require.NoError(t, parsed.UnmarshalJSON([]byte(`"08:15"`)))
	assert.Equal(t, 8*60+15, parsed.Minutes())

	assert.Error(t, parsed.UnmarshalJSON([]byte(`815`)))
}

func TestEntrySpan(t *testing.T) {
	date := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	start := TimeOfDay(9 * 60)
	end := TimeOfDay(13 * 60)

	e := Entry{Date: date, Start: &start, End: &end}
	s, x := e.Span()
	assert.Equal(t, date.Add(9*time.Hour), s)
	assert.Equal(t, date.Add(13*time.Hour), x)
	assert.False(t, e.AllDay())

	// No times at all spans the whole day.
	e = Entry{Date: date}
	s, x = e.Span()
	assert.Equal(t, date, s)
	assert.Equal(t, date.AddDate(0, 0, 1), x)
	assert.True(t, e.AllDay())

	// Open-ended block runs to the next midnight.
	e = Entry{Date: date, Start: &start}
	s, x = e.Span()
	assert.Equal(t, date.Add(9*time.Hour), s)
	assert.Equal(t, date.AddDate(0, 0, 1), x)
}
