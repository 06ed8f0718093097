// Package sink delivers rendered reports to the console and a session log.
package sink

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Sink accepts one block of report text per call.
type Sink interface {
	Write(text string) error
}

// FileName derives the session log name from the monitoring start time.
func FileName(start time.Time) string {
	return start.Format("system_monitoring-2006-01-02-15_04_05.txt")
}

// TestFileName derives the log name used by harness runs.
func TestFileName(start time.Time) string {
	return start.Format("system_monitoring-test-2006-01-02-15_04_05.txt")
}

// LogSink appends report text to a log file and mirrors it to a console
// writer. The file is opened per write and closed immediately: nothing
// holds a handle across goroutines and every write reaches disk before
// Write returns.
type LogSink struct {
	path    string
	console io.Writer
}

// New creates the log directory if needed and returns a sink writing to
// dir/name. Console output is skipped when console is nil.
func New(dir, name string, console io.Writer) (*LogSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory %s: %w", dir, err)
	}
	return &LogSink{path: filepath.Join(dir, name), console: console}, nil
}

// Path returns the full log file path.
func (s *LogSink) Path() string { return s.path }

// Write appends text to the log and mirrors it to the console. A log
// failure is still followed by the console attempt, and every failure is
// returned rather than swallowed.
func (s *LogSink) Write(text string) error {
	var errs error

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		errs = fmt.Errorf("opening log %s: %w", s.path, err)
	} else {
		if _, err := f.WriteString(text); err != nil {
			errs = errors.Join(errs, fmt.Errorf("appending to log %s: %w", s.path, err))
		}
		if err := f.Close(); err != nil {
			errs = errors.Join(errs, fmt.Errorf("closing log %s: %w", s.path, err))
		}
	}

	if s.console != nil {
		if _, err := fmt.Fprint(s.console, text); err != nil {
			errs = errors.Join(errs, fmt.Errorf("writing console report: %w", err))
		}
	}
	return errs
}
