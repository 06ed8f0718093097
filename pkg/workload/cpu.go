// Package workload generates a controlled synthetic CPU load for testing.
package workload

import (
	"context"
	"time"
)

// slice keeps the duty cycle short so the load stays smooth and stable.
const slice = 100 * time.Millisecond

// CPULoad busy-works for workPercent of every time slice and sleeps the
// remainder, holding CPU usage near a constant level until the duration
// elapses or ctx is cancelled.
func CPULoad(ctx context.Context, workPercent int, duration time.Duration) {
	if workPercent < 0 {
		workPercent = 0
	}
	if workPercent > 100 {
		workPercent = 100
	}
	workTime := slice * time.Duration(workPercent) / 100
	idleTime := slice - workTime

	deadline := time.Now().Add(duration)
	for time.Now().Before(deadline) {
		if ctx.Err() != nil {
			return
		}

		start := time.Now()
		for time.Since(start) < workTime {
			// burn the work share of this slice
		}

		// resting lets the scheduler run other processes, which keeps the
		// generated load flat instead of creeping upward
		if idleTime > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(idleTime):
			}
		}
	}
}
