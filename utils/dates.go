package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrDateFormat is returned when an input matches none of the accepted
// date layouts.
var ErrDateFormat = errors.New("unparseable date")

// dateLayouts are tried in this exact order; first match wins. DD/MM/YYYY
// sits before MM/DD/YYYY, so an ambiguous "03/04/2026" resolves as day 3,
// month 4. Existing spreadsheet imports depend on that tie-break.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"01/02/2006",
	"20060102",
	"02-01-2006",
	"01-02-2006",
}

// ParseDate converts a heterogeneous date string into a calendar date at
// midnight UTC. RFC3339 timestamps are accepted and truncated to their date
// component.
func ParseDate(input string) (time.Time, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty date string", ErrDateFormat)
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOnly(t), nil
		}
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DateOnly(t), nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrDateFormat, input)
}

// DateOnly truncates a timestamp to its calendar date at midnight UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a calendar date in the canonical YYYY-MM-DD form.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
