package procs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNormalizesAllowList(t *testing.T) {
	c := New([]string{" chrome.exe ", "", "dwm.exe", "dwm.exe"})
	assert.Len(t, c.allow, 2)
	assert.True(t, c.matches("chrome.exe"))
	assert.True(t, c.matches("dwm.exe"))
	assert.False(t, c.matches("bash"))
}

func TestEmptyAllowListMatchesEverything(t *testing.T) {
	c := New(nil)
	assert.True(t, c.matches("anything"))
	assert.True(t, c.matches(""))
}

func TestRoundTenth(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1.24, 1.2},
		{1.25, 1.3},
		{99.99, 100.0},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, roundTenth(tc.in), 1e-9)
	}
}

func TestSnapshotHonorsAllowList(t *testing.T) {
	c := New([]string{"no-process-has-this-name-7f3a"})
	records, err := c.Snapshot(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSnapshotNeverReportsNegativeRuntime(t *testing.T) {
	c := New(nil)
	// sample "now" far in the past so any real create time is newer
	records, err := c.Snapshot(context.Background(), time.Unix(0, 0))
	require.NoError(t, err)
	for _, rec := range records {
		assert.GreaterOrEqual(t, rec.Runtime, int64(0))
	}
}
