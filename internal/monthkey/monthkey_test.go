package monthkey

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAndParse(t *testing.T) {
	tests := []struct {
		year, month int
		key         string
	}{
		{2026, 2, "2026-02"},
		{2025, 12, "2025-12"},
		{999, 1, "0999-01"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.key, Format(tt.year, tt.month))

		year, month, err := Parse(tt.key)
		require.NoError(t, err)
		assert.Equal(t, tt.year, year)
		assert.Equal(t, tt.month, month)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, key := range []string{"", "2026", "2026-13", "2026-00", "26-02", "2026-2", "2026-xx", "abcd-01"} {
		_, _, err := Parse(key)
		assert.Error(t, err, "Parse(%q)", key)
		assert.False(t, Valid(key))
	}
}

func TestLastDay(t *testing.T) {
	assert.Equal(t, 28, LastDay(2026, 2))
	assert.Equal(t, 29, LastDay(2028, 2)) // leap year
	assert.Equal(t, 30, LastDay(2026, 4))
	assert.Equal(t, 31, LastDay(2026, 12))
}

func TestDateClamping(t *testing.T) {
	d, err := Date("2026-02", 31)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), d)

	d, err = Date("2026-04", 31)
	require.NoError(t, err)
	assert.Equal(t, 30, d.Day())

	d, err = Date("2026-01", 15)
	require.NoError(t, err)
	assert.Equal(t, 15, d.Day())
}

func TestPrevNext(t *testing.T) {
	prev, err := Prev("2026-01")
	require.NoError(t, err)
	assert.Equal(t, "2025-12", prev)

	next, err := Next("2025-12")
	require.NoError(t, err)
	assert.Equal(t, "2026-01", next)

	next, err = Next("2026-06")
	require.NoError(t, err)
	assert.Equal(t, "2026-07", next)
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("2026-02", time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)))
	assert.False(t, Contains("2026-02", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
}
