// Package config loads monitor settings from YAML, .env files, and the
// environment. Malformed configuration fails at startup, never mid-run.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/sysward/procwatch/pkg/types"
)

const envPrefix = "PROCWATCH_"

// Config is the monitor's runtime configuration. Precedence, lowest to
// highest: built-in defaults, YAML file, environment (optionally seeded
// from a .env file).
type Config struct {
	IntervalSeconds int        `yaml:"interval_seconds"`
	Thresholds      Thresholds `yaml:"thresholds"`
	// Processes is the allow-list of process names; empty means all.
	Processes []string `yaml:"processes"`
	LogDir    string   `yaml:"log_dir"`
}

// Thresholds mirrors types.Thresholds for YAML decoding.
type Thresholds struct {
	CPUPercent     float64 `yaml:"cpu_percent"`
	MemoryMB       float64 `yaml:"memory_mb"`
	RuntimeSeconds int64   `yaml:"runtime_seconds"`
}

// Default returns the documented defaults: 60s interval, 70 % / 500 MB /
// 3600 s thresholds, all processes, ./logs.
func Default() Config {
	th := types.DefaultThresholds()
	return Config{
		IntervalSeconds: types.DefaultIntervalSeconds,
		Thresholds: Thresholds{
			CPUPercent:     th.CPUPercent,
			MemoryMB:       th.MemoryMB,
			RuntimeSeconds: th.RuntimeSeconds,
		},
		LogDir: "logs",
	}
}

// Load reads the optional YAML file at path, seeds the environment from an
// optional .env file, applies PROCWATCH_* overrides, and validates.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	// a missing .env is fine; only the environment is authoritative
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(envPrefix + "INTERVAL_SECONDS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sINTERVAL_SECONDS %q: %w", envPrefix, v, err)
		}
		c.IntervalSeconds = n
	}
	if v, ok := os.LookupEnv(envPrefix + "CPU_THRESHOLD"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %sCPU_THRESHOLD %q: %w", envPrefix, v, err)
		}
		c.Thresholds.CPUPercent = f
	}
	if v, ok := os.LookupEnv(envPrefix + "MEM_THRESHOLD"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %sMEM_THRESHOLD %q: %w", envPrefix, v, err)
		}
		c.Thresholds.MemoryMB = f
	}
	if v, ok := os.LookupEnv(envPrefix + "RUNTIME_THRESHOLD"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %sRUNTIME_THRESHOLD %q: %w", envPrefix, v, err)
		}
		c.Thresholds.RuntimeSeconds = n
	}
	if v, ok := os.LookupEnv(envPrefix + "PROCESSES"); ok {
		c.Processes = splitList(v)
	}
	if v, ok := os.LookupEnv(envPrefix + "LOG_DIR"); ok {
		c.LogDir = v
	}
	return nil
}

// Validate rejects configurations the monitor must never start with.
func (c Config) Validate() error {
	if c.IntervalSeconds <= 0 {
		return errors.New("config: interval_seconds must be positive")
	}
	if c.Thresholds.CPUPercent < 0 || c.Thresholds.MemoryMB < 0 || c.Thresholds.RuntimeSeconds < 0 {
		return errors.New("config: thresholds must be non-negative")
	}
	if c.LogDir == "" {
		return errors.New("config: log_dir must not be empty")
	}
	return nil
}

// Interval returns the sampling interval as a duration.
func (c Config) Interval() time.Duration {
	return time.Duration(c.IntervalSeconds) * time.Second
}

// ThresholdValues converts the YAML thresholds into the evaluator's type.
func (c Config) ThresholdValues() types.Thresholds {
	return types.Thresholds{
		CPUPercent:     c.Thresholds.CPUPercent,
		MemoryMB:       c.Thresholds.MemoryMB,
		RuntimeSeconds: c.Thresholds.RuntimeSeconds,
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
