package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBannerIncludesWordmark(t *testing.T) {
	banner := Banner()
	assert.Contains(t, banner, "procwatch")
	assert.Contains(t, banner, "process resource monitor")

	lines := strings.Split(strings.TrimSpace(banner), "\n")
	require.GreaterOrEqual(t, len(lines), 8, "expected multi-line banner")
}

func TestBannerUsesGradientColors(t *testing.T) {
	banner := Banner()
	colors := []string{bold, emberRed, amber, gold, leafGreen, teal, skyBlue, violet, orchid, steelGray}
	for _, color := range colors {
		assert.Contains(t, banner, color)
	}
}

func TestClearScreenOutsideTerminal(t *testing.T) {
	// under go test stdout is not a terminal; must be a silent no-op
	ClearScreen()
}

func TestQuietTerminalOutsideTerminal(t *testing.T) {
	restore := QuietTerminal()
	require.NotNil(t, restore)
	restore()
}
