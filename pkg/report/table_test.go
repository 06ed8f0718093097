package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysward/procwatch/pkg/types"
)

func sampleRows() []types.MetricRecord {
	return []types.MetricRecord{
		{PID: 1, Name: "init", CPU: types.Float64(0.5), Memory: types.Float64(12.0), Runtime: 86400},
		{PID: 4321, Name: "browser", CPU: types.Float64(42.3), Memory: types.Float64(1024.7), Runtime: 75},
	}
}

func TestRenderTableEmptyInputs(t *testing.T) {
	assert.Empty(t, RenderTable(nil, sampleRows()), "no columns")
	assert.Empty(t, RenderTable(ProcessColumns(), nil), "no rows")
}

func TestRenderTableLayout(t *testing.T) {
	out := RenderTable(ProcessColumns(), sampleRows())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6, "rule, header, rule, two rows, rule")

	assert.True(t, strings.HasPrefix(lines[0], "+"))
	assert.Equal(t, lines[0], lines[2])
	assert.Equal(t, lines[0], lines[len(lines)-1])

	// every line spans the same width
	for _, line := range lines {
		assert.Len(t, line, len(lines[0]))
	}

	assert.Contains(t, lines[1], "process_name")
	assert.Contains(t, out, "42.3 %")
	assert.Contains(t, out, "1024.7 MB")
	assert.Contains(t, out, "86400 sec.")
}

func TestRenderTableIdempotent(t *testing.T) {
	rows := sampleRows()
	first := RenderTable(ProcessColumns(), rows)
	second := RenderTable(ProcessColumns(), rows)
	assert.Equal(t, first, second)
}

func TestRenderTableColumnWidths(t *testing.T) {
	narrow := Column{
		Header: "id",
		Align:  AlignRight,
		Cell:   func(r types.MetricRecord) string { return intCell(int64(r.PID), "") },
	}
	wideHeader := Column{
		Header: "a_rather_long_header",
		Align:  AlignLeft,
		Cell:   func(r types.MetricRecord) string { return textCell(r.Name) },
	}

	rows := []types.MetricRecord{{PID: 1234567, Name: "x"}}
	out := RenderTable([]Column{narrow, wideHeader}, rows)

	// value wider than header: dashes span the value plus padding
	assert.Contains(t, out, "+"+strings.Repeat("-", len("1234567")+2)+"+")
	// header wider than value: dashes span the header plus padding
	assert.Contains(t, out, strings.Repeat("-", len("a_rather_long_header")+2)+"+")
}

func TestRenderTableWidthTracksRowSet(t *testing.T) {
	wide := []types.MetricRecord{{PID: 1, Name: "very-long-process-name", Runtime: 1}}
	short := []types.MetricRecord{{PID: 1, Name: "sh", Runtime: 1}}

	wideOut := RenderTable(ProcessColumns(), wide)
	shortOut := RenderTable(ProcessColumns(), short)
	assert.NotEqual(t,
		len(strings.SplitN(wideOut, "\n", 2)[0]),
		len(strings.SplitN(shortOut, "\n", 2)[0]),
		"width must be recomputed from the current rows")
}

func TestRenderTableAbsentMetrics(t *testing.T) {
	rows := []types.MetricRecord{{PID: 7, Name: "zombie", Runtime: 3}}
	out := RenderTable(ProcessColumns(), rows)
	assert.Contains(t, out, "n/a")
}

func TestRenderTableAlignment(t *testing.T) {
	rows := []types.MetricRecord{{PID: 5, Name: "ab", CPU: types.Float64(1.0), Memory: types.Float64(2.0), Runtime: 9}}
	out := RenderTable(ProcessColumns(), rows)
	lines := strings.Split(out, "\n")
	dataLine := lines[3]

	// process_id is right-aligned under its 10-char header, name left-aligned
	assert.True(t, strings.HasPrefix(dataLine, "|          5 |"), "got %q", dataLine)
	assert.Contains(t, dataLine, "| ab           |")
}
