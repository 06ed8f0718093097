// Package evaluate classifies process snapshots against resource thresholds.
package evaluate

import "github.com/sysward/procwatch/pkg/types"

// Violations holds the subsets of a snapshot that exceeded each threshold.
// The three checks are independent, so one record can appear in several sets;
// each set preserves the snapshot's relative order.
type Violations struct {
	CPU     []types.MetricRecord
	Memory  []types.MetricRecord
	Runtime []types.MetricRecord
}

// Empty reports whether no violation of any kind was found.
func (v Violations) Empty() bool {
	return len(v.CPU) == 0 && len(v.Memory) == 0 && len(v.Runtime) == 0
}

// Evaluate tests every record in the snapshot against the thresholds.
// A metric that was unavailable at sample time is skipped for that one
// check rather than treated as a violation; runtime is always present.
// Pure function: same snapshot and thresholds always yield the same sets.
func Evaluate(snapshot []types.MetricRecord, th types.Thresholds) Violations {
	var v Violations
	for _, rec := range snapshot {
		if rec.CPU != nil && *rec.CPU > th.CPUPercent {
			v.CPU = append(v.CPU, rec)
		}
		if rec.Memory != nil && *rec.Memory > th.MemoryMB {
			v.Memory = append(v.Memory, rec)
		}
		if rec.Runtime > th.RuntimeSeconds {
			v.Runtime = append(v.Runtime, rec)
		}
	}
	return v
}
