package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	// Wednesday 11 March 2026, 15:30 local
	at := time.Date(2026, time.March, 11, 15, 30, 0, 0, loc)

	today, err := ParsePeriod("", "", "", at, loc)
	require.NoError(t, err)
	assert.True(t, today.From.Equal(time.Date(2026, time.March, 11, 0, 0, 0, 0, loc)))
	assert.True(t, today.Contains(at))
	assert.False(t, today.Contains(at.Add(9*time.Hour)))

	week, err := ParsePeriod("week", "", "", at, loc)
	require.NoError(t, err)
	assert.True(t, week.From.Equal(time.Date(2026, time.March, 9, 0, 0, 0, 0, loc)))
	assert.Equal(t, 15, week.To.Day())

	month, err := ParsePeriod("month", "", "", at, loc)
	require.NoError(t, err)
	assert.True(t, month.From.Equal(time.Date(2026, time.March, 1, 0, 0, 0, 0, loc)))
	assert.Equal(t, 31, month.To.Day())

	custom, err := ParsePeriod("", "2026-02-01", "2026-02-03", at, loc)
	require.NoError(t, err)
	assert.True(t, custom.From.Equal(time.Date(2026, time.February, 1, 0, 0, 0, 0, loc)))
	assert.True(t, custom.Contains(time.Date(2026, time.February, 3, 23, 59, 0, 0, loc)))
	assert.False(t, custom.Contains(time.Date(2026, time.February, 4, 0, 0, 0, 0, loc)))
}

func TestParsePeriod_Rejects(t *testing.T) {
	at := time.Date(2026, time.March, 11, 12, 0, 0, 0, time.UTC)

	for _, tc := range []struct{ name, from, to string }{
		{"year", "", ""},
		{"", "2026-02-01", ""},
		{"", "2026-02-05", "2026-02-01"},
		{"", "yesterday", "2026-02-01"},
	} {
		_, err := ParsePeriod(tc.name, tc.from, tc.to, at, time.UTC)
		assert.ErrorIs(t, err, ErrInvalidPeriod, "%+v", tc)
	}
}
