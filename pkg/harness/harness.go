// Package harness validates the monitoring pipeline under a synthetic load.
package harness

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sysward/procwatch/pkg/evaluate"
	"github.com/sysward/procwatch/pkg/monitor"
	"github.com/sysward/procwatch/pkg/report"
	"github.com/sysward/procwatch/pkg/types"
	"github.com/sysward/procwatch/pkg/workload"
)

// Capture is one snapshot taken during a harness run, paired with the
// capture-time label reports reference it by.
type Capture struct {
	Label    string
	TakenAt  time.Time
	Snapshot []types.MetricRecord
}

// Options configures one harness run.
type Options struct {
	// Duration bounds both the load generator and the sampler.
	Duration time.Duration
	// WorkPercent is the share of each time slice the load generator burns.
	WorkPercent int
	// SamplePeriod is the gap between captures; defaults to one second.
	SamplePeriod time.Duration
	Source       monitor.SnapshotSource
}

// Run drives two units of work concurrently for the configured duration:
// the CPU load generator and a sampler appending captures to an owned
// buffer. Both are joined before the buffer is returned, so callers read it
// with no locking and evaluation never overlaps capture.
func Run(ctx context.Context, opts Options) ([]Capture, error) {
	if opts.Source == nil {
		return nil, errors.New("harness: snapshot source is required")
	}
	if opts.Duration <= 0 {
		return nil, errors.New("harness: duration must be positive")
	}
	if opts.SamplePeriod <= 0 {
		opts.SamplePeriod = time.Second
	}

	var captures []Capture
	var sampleErr error

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		workload.CPULoad(ctx, opts.WorkPercent, opts.Duration)
	}()

	go func() {
		defer wg.Done()
		deadline := time.Now().Add(opts.Duration)
		for time.Now().Before(deadline) {
			if ctx.Err() != nil {
				return
			}
			now := time.Now()
			snapshot, err := opts.Source.Snapshot(ctx, now)
			if err != nil {
				// a failed capture is dropped; the run keeps sampling
				sampleErr = err
			} else {
				captures = append(captures, Capture{
					Label:    report.CaptureLabel(now),
					TakenAt:  now,
					Snapshot: snapshot,
				})
			}

			select {
			case <-ctx.Done():
				return
			case <-time.After(opts.SamplePeriod):
			}
		}
	}()

	wg.Wait()
	return captures, sampleErr
}

// Report evaluates every capture independently and composes one report per
// capture, concatenated with separator rules for inspection.
func Report(captures []Capture, th types.Thresholds) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total snapshots taken during the monitoring test: %d\n\n", len(captures))
	for i, c := range captures {
		violations := evaluate.Evaluate(c.Snapshot, th)
		b.WriteString(report.Compose(c.Label, c.Snapshot, violations, th))
		if i+1 < len(captures) {
			b.WriteString("\n" + report.Separator())
		}
	}
	return b.String()
}
