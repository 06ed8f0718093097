package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		name string
		in   time.Duration
		want string
	}{
		{"zero", 0, "0 seconds"},
		{"singleSecond", time.Second, "1 second"},
		{"seconds", 59 * time.Second, "59 seconds"},
		{"minuteAndSecond", 61 * time.Second, "1 minute and 1 second"},
		{"exactHour", time.Hour, "1 hour"},
		{"hourMinuteSecond", 3661 * time.Second, "1 hour, 1 minute and 1 second"},
		{"dayRollover", 90061 * time.Second, "1 day, 1 hour, 1 minute and 1 second"},
		{"skipsZeroUnits", (48*3600 + 30) * time.Second, "2 days and 30 seconds"},
		{"weeks", (7*24*3600*2 + 3*24*3600) * time.Second, "2 weeks and 3 days"},
		{"fullSpread", (7*24*3600 + 2*24*3600 + 3*3600) * time.Second, "1 week, 2 days and 3 hours"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FormatDuration(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatDurationRejectsNegative(t *testing.T) {
	_, err := FormatDuration(-time.Second)
	require.ErrorIs(t, err, ErrInvalidDuration)
}

func TestFormatDurationRejectsSubSecond(t *testing.T) {
	_, err := FormatDuration(1500 * time.Millisecond)
	require.ErrorIs(t, err, ErrInvalidDuration)
}
