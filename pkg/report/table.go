package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sysward/procwatch/pkg/types"
)

// Align selects which side of a column cells are padded on.
type Align int

const (
	// AlignLeft pads cell values on the right.
	AlignLeft Align = iota
	// AlignRight pads cell values on the left.
	AlignRight
)

// Column describes one table field: the header text, the cell alignment,
// and how a record's value becomes its display string. The rendered string
// carries any unit suffix, so width accounting never truncates units.
type Column struct {
	Header string
	Align  Align
	Cell   func(types.MetricRecord) string
}

const absentCell = "n/a"

// The cell formats form a closed set: integers with a unit suffix,
// fixed-point values with a unit suffix, and plain strings.

func intCell(v int64, suffix string) string {
	return strconv.FormatInt(v, 10) + suffix
}

func fixedCell(v *float64, suffix string) string {
	if v == nil {
		return absentCell
	}
	return fmt.Sprintf("%.1f%s", *v, suffix)
}

func textCell(s string) string { return s }

// ProcessColumns returns the standard column set for process tables.
func ProcessColumns() []Column {
	return []Column{
		{Header: "process_id", Align: AlignRight, Cell: func(r types.MetricRecord) string { return intCell(int64(r.PID), "") }},
		{Header: "process_name", Align: AlignLeft, Cell: func(r types.MetricRecord) string { return textCell(r.Name) }},
		{Header: "cpu_usage", Align: AlignRight, Cell: func(r types.MetricRecord) string { return fixedCell(r.CPU, " %") }},
		{Header: "memory_usage", Align: AlignRight, Cell: func(r types.MetricRecord) string { return fixedCell(r.Memory, " MB") }},
		{Header: "runtime", Align: AlignRight, Cell: func(r types.MetricRecord) string { return intCell(r.Runtime, " sec.") }},
	}
}

// RenderTable draws an aligned ASCII table: rule, header, rule, one line per
// row, rule. Column widths are recomputed from the current row set on every
// call, so the same record can render at different widths depending on its
// neighbours. Empty columns or rows yield an empty string; a header-only
// table is never emitted.
func RenderTable(columns []Column, rows []types.MetricRecord) string {
	if len(columns) == 0 || len(rows) == 0 {
		return ""
	}

	widths := make([]int, len(columns))
	for i, col := range columns {
		widths[i] = len(col.Header)
	}
	cells := make([][]string, len(rows))
	for r, row := range rows {
		line := make([]string, len(columns))
		for i, col := range columns {
			value := col.Cell(row)
			line[i] = value
			if len(value) > widths[i] {
				widths[i] = len(value)
			}
		}
		cells[r] = line
	}

	var b strings.Builder
	rule := ruleLine(widths)

	b.WriteString(rule)
	for i, col := range columns {
		// headers are always left-aligned, data cells follow the column
		writeCell(&b, col.Header, widths[i], AlignLeft)
	}
	b.WriteString("|\n")
	b.WriteString(rule)

	for _, line := range cells {
		for i, value := range line {
			writeCell(&b, value, widths[i], columns[i].Align)
		}
		b.WriteString("|\n")
	}
	b.WriteString(rule)

	return b.String()
}

// ruleLine builds a horizontal border: a "+" at every column boundary joined
// by dashes spanning the column width plus one padding space on each side.
func ruleLine(widths []int) string {
	var b strings.Builder
	for _, w := range widths {
		b.WriteString("+")
		b.WriteString(strings.Repeat("-", w+2))
	}
	b.WriteString("+\n")
	return b.String()
}

func writeCell(b *strings.Builder, value string, width int, align Align) {
	if align == AlignRight {
		fmt.Fprintf(b, "| %*s ", width, value)
		return
	}
	fmt.Fprintf(b, "| %-*s ", width, value)
}
