// Package report turns evaluated process snapshots into aligned text reports.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/sysward/procwatch/pkg/evaluate"
	"github.com/sysward/procwatch/pkg/types"
)

const separatorWidth = 120

const cpuAdvice = `Suggestion:
1. Restart your computer/laptop to clear all running processes
2. End/restart processes that consume too much CPU
3. Update drivers to enhance CPU efficiency
4. Scan for malwares or other harmful softwares
`

const memoryAdvice = `Suggestion:
Turn off the processes that occupies too much memory
`

const runtimeAdvice = `Suggestion:
Turn off unused processes to prevent them from occupying CPU and memory
NOTE: Only close them if necessary. Turning off necessary programs may result in system failure.
`

// CaptureLabel formats a sample time the way reports reference it,
// e.g. "at 14:05:09 on 2026-08-27".
func CaptureLabel(t time.Time) string {
	return t.Format("at 15:04:05 on 2006-01-02")
}

// Separator is the rule emitted between consecutive cycle reports.
func Separator() string {
	return strings.Repeat("-", separatorWidth) + "\n\n"
}

// Compose assembles the full text report for one snapshot: the snapshot
// table, then one section per non-empty violation set (count line, subset
// table, fixed advisory text). Pure with respect to its inputs; the caller
// decides where the text goes.
func Compose(label string, snapshot []types.MetricRecord, v evaluate.Violations, th types.Thresholds) string {
	var b strings.Builder

	if len(snapshot) == 0 {
		fmt.Fprintf(&b, "No processes observed %s\n", label)
		return b.String()
	}

	fmt.Fprintf(&b, "Monitored processes recorded\n%s\ncan be seen in the following table.\n\n", label)
	b.WriteString(RenderTable(ProcessColumns(), snapshot))

	if v.Empty() {
		fmt.Fprintf(&b, "\nNo problematic processes found %s\n", label)
		return b.String()
	}

	b.WriteString("\nBeware:\n")
	if len(v.CPU) > 0 {
		fmt.Fprintf(&b, "%d %s WITH HIGH CPU USAGE (OVER %.1f %%) DETECTED:\n", len(v.CPU), processWord(len(v.CPU)), th.CPUPercent)
		b.WriteString(RenderTable(ProcessColumns(), v.CPU))
		b.WriteString(cpuAdvice)
		b.WriteString("\n")
	}
	if len(v.Memory) > 0 {
		fmt.Fprintf(&b, "%d %s WITH HIGH MEMORY USAGE (OVER %.1f MB) DETECTED:\n", len(v.Memory), processWord(len(v.Memory)), th.MemoryMB)
		b.WriteString(RenderTable(ProcessColumns(), v.Memory))
		b.WriteString(memoryAdvice)
		b.WriteString("\n")
	}
	if len(v.Runtime) > 0 {
		phrase, err := FormatDuration(time.Duration(th.RuntimeSeconds) * time.Second)
		if err != nil {
			// thresholds are validated at startup, so this only guards a
			// caller that skipped validation
			phrase = fmt.Sprintf("%d seconds", th.RuntimeSeconds)
		}
		fmt.Fprintf(&b, "%d %s WITH RUNTIME OVER %s DETECTED:\n", len(v.Runtime), processWord(len(v.Runtime)), strings.ToUpper(phrase))
		b.WriteString(RenderTable(ProcessColumns(), v.Runtime))
		b.WriteString(runtimeAdvice)
	}

	return b.String()
}

func processWord(n int) string {
	if n == 1 {
		return "PROCESS"
	}
	return "PROCESSES"
}
