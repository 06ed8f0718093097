package report

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDuration rejects durations that are negative or carry
// sub-second precision; the formatter never clamps silently.
var ErrInvalidDuration = errors.New("duration must be a non-negative whole number of seconds")

var durationUnits = []struct {
	name string
	secs int64
}{
	{"week", 7 * 24 * 3600},
	{"day", 24 * 3600},
	{"hour", 3600},
	{"minute", 60},
	{"second", 1},
}

// FormatDuration renders a whole-second duration as a human-readable phrase,
// largest units first, zero units omitted: "1 week, 2 days and 3 hours".
// A zero duration renders as "0 seconds".
func FormatDuration(d time.Duration) (string, error) {
	if d < 0 || d%time.Second != 0 {
		return "", fmt.Errorf("%w: %v", ErrInvalidDuration, d)
	}

	secs := int64(d / time.Second)
	if secs == 0 {
		return "0 seconds", nil
	}

	parts := make([]string, 0, len(durationUnits))
	for _, unit := range durationUnits {
		n := secs / unit.secs
		secs %= unit.secs
		switch {
		case n == 0:
			continue
		case n == 1:
			parts = append(parts, "1 "+unit.name)
		default:
			parts = append(parts, fmt.Sprintf("%d %ss", n, unit.name))
		}
	}

	if len(parts) == 1 {
		return parts[0], nil
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1], nil
}
