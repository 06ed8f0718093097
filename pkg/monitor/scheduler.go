// Package monitor runs the periodic sample-evaluate-report loop.
package monitor

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/sysward/procwatch/pkg/evaluate"
	"github.com/sysward/procwatch/pkg/report"
	"github.com/sysward/procwatch/pkg/sink"
	"github.com/sysward/procwatch/pkg/types"
)

// SnapshotSource produces one snapshot of process metrics per call.
type SnapshotSource interface {
	Snapshot(ctx context.Context, now time.Time) ([]types.MetricRecord, error)
}

// Config carries the scheduler's injected settings; nothing is read from
// globals, so tests can run with arbitrary thresholds and intervals.
type Config struct {
	Interval   time.Duration
	Thresholds types.Thresholds
	// Clear, when set, runs before each report is written (screen clearing).
	Clear func()
}

// Scheduler alternates between sampling and waiting until its context is
// cancelled. One cycle is: snapshot, evaluate, compose, deliver to the sink.
type Scheduler struct {
	source SnapshotSource
	out    sink.Sink
	cfg    Config
	log    *zap.Logger
	now    func() time.Time
}

// New validates the configuration and builds a scheduler.
func New(source SnapshotSource, out sink.Sink, cfg Config, log *zap.Logger) (*Scheduler, error) {
	if source == nil {
		return nil, errors.New("monitor: snapshot source is required")
	}
	if out == nil {
		return nil, errors.New("monitor: sink is required")
	}
	if cfg.Thresholds.CPUPercent < 0 || cfg.Thresholds.MemoryMB < 0 || cfg.Thresholds.RuntimeSeconds < 0 {
		return nil, errors.New("monitor: thresholds must be non-negative")
	}
	if cfg.Interval <= 0 {
		cfg.Interval = types.DefaultIntervalSeconds * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{source: source, out: out, cfg: cfg, log: log, now: time.Now}, nil
}

// Run loops until ctx is cancelled. Cancellation is honored only between
// cycles: a report that has begun is always delivered in full, and
// cancellation is a normal return, not an error.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		s.cycle(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// cycle performs one sampling pass. Failures never abort the loop: a failed
// snapshot skips the report, a failed sink write is logged and the next
// cycle proceeds.
func (s *Scheduler) cycle(ctx context.Context) {
	now := s.now()
	snapshot, err := s.source.Snapshot(ctx, now)
	if err != nil {
		s.log.Error("snapshot failed", zap.Error(err))
		return
	}

	violations := evaluate.Evaluate(snapshot, s.cfg.Thresholds)
	text := report.Compose(report.CaptureLabel(now), snapshot, violations, s.cfg.Thresholds)

	if s.cfg.Clear != nil {
		s.cfg.Clear()
	}
	if err := s.out.Write(text); err != nil {
		s.log.Error("report delivery failed", zap.Error(err))
		return
	}
	if err := s.out.Write(report.Separator()); err != nil {
		s.log.Error("separator delivery failed", zap.Error(err))
	}

	s.log.Debug("cycle complete",
		zap.Int("processes", len(snapshot)),
		zap.Int("cpu_violations", len(violations.CPU)),
		zap.Int("mem_violations", len(violations.Memory)),
		zap.Int("runtime_violations", len(violations.Runtime)),
	)
}
