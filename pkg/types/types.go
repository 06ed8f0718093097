package types

// DefaultIntervalSeconds is how long the monitor waits between sampling cycles.
const DefaultIntervalSeconds = 60

// MetricRecord is one per-process sample taken at a single sampling instant.
// Records are built fresh every cycle and discarded once the cycle's report
// has been emitted; PIDs are reused by the OS, so a record has no identity
// beyond the snapshot it belongs to.
type MetricRecord struct {
	PID     int32
	Name    string
	CPU     *float64 // percent of one full machine, nil when unavailable
	Memory  *float64 // resident set in MB (bytes / 1024^2), nil when unavailable
	Runtime int64    // whole seconds since the process started
}

// Thresholds holds the limits a process sample is classified against.
// Comparison is always strict greater-than.
type Thresholds struct {
	CPUPercent     float64
	MemoryMB       float64
	RuntimeSeconds int64
}

// DefaultThresholds returns the documented default limits:
// 70 % CPU, 500 MB resident memory, one hour of runtime.
func DefaultThresholds() Thresholds {
	return Thresholds{
		CPUPercent:     70.0,
		MemoryMB:       500.0,
		RuntimeSeconds: 3600,
	}
}

// Float64 returns a pointer to v, for building records with optional metrics.
func Float64(v float64) *float64 { return &v }
