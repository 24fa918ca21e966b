package utils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date form every date in the system is exchanged
// in. Comparisons on dates of this form are plain string comparisons.
const DateLayout = "2006-01-02"

// NormalizeDate reduces any timestamp-bearing date input to YYYY-MM-DD and
// validates it. Parsing anchors to local midnight, not UTC, so date-only
// strings never shift across the day boundary. An empty input normalizes to
// the empty string.
func NormalizeDate(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", nil
	}
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		s = s[:i]
	}
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: expected YYYY-MM-DD", input)
	}
	return t.Format(DateLayout), nil
}

// Today returns the current local calendar date as YYYY-MM-DD.
func Today() string {
	return time.Now().Format(DateLayout)
}

// DateInRange reports whether date falls inside [start, end] inclusive.
// All three values must already be normalized YYYY-MM-DD strings.
func DateInRange(date, start, end string) bool {
	return date >= start && date <= end
}
