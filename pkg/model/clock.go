package model

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay bounds arrival times: valid arrivals are 0..MinutesPerDay-1.
const MinutesPerDay = 24 * 60

// ParseClock converts "hours:minutes" to minutes since midnight. Each field
// is one or two digits and may be padded with spaces, so "8:5" and "12 : 15"
// are accepted. Hours must be 0-23 and minutes 0-59.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	hours, ok1 := clockField(hh)
	minutes, ok2 := clockField(mm)
	if !ok1 || !ok2 || hours > 23 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return hours*60 + minutes, nil
}

// ParseDuration parses a service duration written as HH:MM. The result is
// always strictly positive.
func ParseDuration(s string) (int, error) {
	m, err := ParseClock(s)
	if err != nil || m <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	return m, nil
}

// FormatClock renders minutes as HH:MM. Hours are not wrapped at 24, so a
// completion after midnight prints as e.g. 25:10.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// clockField accepts one or two ASCII digits.
func clockField(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 2 {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}
