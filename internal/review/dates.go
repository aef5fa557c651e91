package review

import (
	"fmt"
	"time"
)

// DayFormat is the day-granularity date layout used at every API edge:
// seed strings, persisted due dates, and the caller-supplied "today".
const DayFormat = "2006-01-02"

// ParseDay parses an ISO YYYY-MM-DD string. A malformed date is a caller
// bug, surfaced as a validation error rather than coerced.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// FormatDay renders a time as an ISO YYYY-MM-DD string.
func FormatDay(t time.Time) string {
	return t.Format(DayFormat)
}
