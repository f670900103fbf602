package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateAcceptedFormats(t *testing.T) {
	testCases := []struct {
		input string
		want  time.Time
	}{
		{"2026-01-02", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"2026/01/02", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"20260102", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"02-01-2026", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"  2026-01-02  ", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)},
		// RFC3339 timestamps are truncated to their date component.
		{"2026-01-02T15:04:05Z", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseDate(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseDateAmbiguousSlashPrecedence(t *testing.T) {
	// DD/MM/YYYY is tried before MM/DD/YYYY: day 3, month 4, not April 3rd
	// read as month-first.
	got, err := ParseDate("03/04/2026")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC), got)

	// A day value only valid as DD/MM still parses via the first layout.
	got, err = ParseDate("25/12/2026")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC), got)

	// Month-first input that can't be day-first falls through to MM/DD/YYYY.
	got, err = ParseDate("12/25/2026")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 12, 25, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDateRejectsBadInput(t *testing.T) {
	for _, input := range []string{"", "   ", "not-a-date", "2026-13-40", "02.01.2026"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDate(input)
			assert.ErrorIs(t, err, ErrDateFormat)
		})
	}
}

func TestDateOnly(t *testing.T) {
	loc := time.FixedZone("JST", 9*3600)
	ts := time.Date(2026, 7, 14, 23, 30, 0, 0, loc)
	assert.Equal(t, time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC), DateOnly(ts))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2026-01-02", FormatDate(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)))
}
