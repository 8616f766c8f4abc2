package period

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		raw  string
		want Date
	}{
		{"2024-03-05", Date{2024, 3, 5}},
		{"2024-03-05T10:30:00Z", Date{2024, 3, 5}},
		{"05/03/2024", Date{2024, 3, 5}},
		{"05-03-2024", Date{2024, 3, 5}},
		{"2024/03/05", Date{2024, 3, 5}},
		{" 31/12/2023 ", Date{2023, 12, 31}},
		// Month 31 is impossible for DD/MM, so the general parser reads it as MM/DD.
		{"12/31/2023", Date{2023, 12, 31}},
		{"Mar 5, 2024", Date{2024, 3, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := Parse(tt.raw)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRejects(t *testing.T) {
	for _, raw := range []string{"", "yesterday", "2024-13-01", "30/02/2024", "INV-1000"} {
		_, ok := Parse(raw)
		assert.False(t, ok, raw)
	}
}

func TestKey(t *testing.T) {
	assert.Equal(t, "2024", Key(Year, "05/03/2024"))
	assert.Equal(t, "2024-03", Key(Month, "2024-03-05"))
	assert.Equal(t, "2024-03", Key(Month, "2024/03/31"))
	assert.Equal(t, "2024-03-W1", Key(Week, "2024-03-05"))
	assert.Equal(t, "2024-03-W2", Key(Week, "07-03-2024"))
	assert.Equal(t, "2024-03-W5", Key(Week, "2024-03-31"))
	assert.Equal(t, "05/03/2024", Key(Day, "05/03/2024"))
	assert.Equal(t, Unknown, Key(Month, "someday"))
	assert.Equal(t, "someday", Key(Day, "someday"))
}

func TestWeekOfMonthIsNotCalendarWeek(t *testing.T) {
	// 2024-03-06 (Wed) and 2024-03-07 (Thu) share a calendar week but not a bucket.
	assert.NotEqual(t, Key(Week, "2024-03-06"), Key(Week, "2024-03-07"))
	assert.Equal(t, 1, WeekOfMonth(1))
	assert.Equal(t, 2, WeekOfMonth(7))
	assert.Equal(t, 5, WeekOfMonth(28))
}

func TestSortKey(t *testing.T) {
	assert.Equal(t, "2024-03-05", SortKey(Day, "05/03/2024"))
	assert.Equal(t, "2024-03", SortKey(Month, "05/03/2024"))
	assert.Equal(t, "", SortKey(Year, "garbage"))
}

func TestParseGranularity(t *testing.T) {
	g, err := ParseGranularity("Month")
	require.NoError(t, err)
	assert.Equal(t, Month, g)

	_, err = ParseGranularity("quarter")
	assert.ErrorIs(t, err, ErrUnknownGranularity)
}

func TestISO(t *testing.T) {
	assert.Equal(t, "2023-12-31", ISO("31-12-2023"))
	assert.Equal(t, "", ISO("n/a"))
}
