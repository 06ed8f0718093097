// Package procs samples per-process metrics from the operating system.
package procs

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/sysward/procwatch/pkg/types"
)

// Collector enumerates OS processes and converts them into metric records.
// An empty allow-list matches every process.
type Collector struct {
	allow map[string]struct{}
	cpus  float64
}

// New builds a collector scoped to the given process names.
func New(allowList []string) *Collector {
	allow := make(map[string]struct{}, len(allowList))
	for _, name := range allowList {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		allow[name] = struct{}{}
	}
	return &Collector{allow: allow}
}

// Snapshot captures one metric record per visible process at the given
// instant. A process that exits or denies access mid-enumeration is dropped
// and the snapshot continues; an unavailable CPU or memory reading leaves
// that single metric unset rather than dropping the record.
func (c *Collector) Snapshot(ctx context.Context, now time.Time) ([]types.MetricRecord, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("enumerating processes: %w", err)
	}
	cpus := c.logicalCPUs(ctx)

	records := make([]types.MetricRecord, 0, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		if !c.matches(name) {
			continue
		}
		createdMs, err := p.CreateTimeWithContext(ctx)
		if err != nil {
			continue
		}

		runtime := now.Unix() - createdMs/1000
		if runtime < 0 {
			runtime = 0
		}
		rec := types.MetricRecord{PID: p.Pid, Name: name, Runtime: runtime}

		// gopsutil reports CPU relative to a single core; normalize to the
		// whole machine like the thresholds expect
		if pct, err := p.CPUPercentWithContext(ctx); err == nil {
			rec.CPU = types.Float64(roundTenth(pct / cpus))
		}
		if info, err := p.MemoryInfoWithContext(ctx); err == nil && info != nil {
			rec.Memory = types.Float64(roundTenth(float64(info.RSS) / 1024 / 1024))
		}

		records = append(records, rec)
	}
	return records, nil
}

func (c *Collector) matches(name string) bool {
	if len(c.allow) == 0 {
		return true
	}
	_, ok := c.allow[name]
	return ok
}

func (c *Collector) logicalCPUs(ctx context.Context) float64 {
	if c.cpus > 0 {
		return c.cpus
	}
	n, err := cpu.CountsWithContext(ctx, true)
	if err != nil || n <= 0 {
		n = 1
	}
	c.cpus = float64(n)
	return c.cpus
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
