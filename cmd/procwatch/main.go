package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/sysward/procwatch/pkg/collector/procs"
	"github.com/sysward/procwatch/pkg/config"
	"github.com/sysward/procwatch/pkg/monitor"
	"github.com/sysward/procwatch/pkg/report"
	"github.com/sysward/procwatch/pkg/sink"
	"github.com/sysward/procwatch/pkg/ui"
)

type runFlags struct {
	configPath string
	interval   time.Duration
	logDir     string
	cpuTh      float64
	memTh      float64
	runtimeTh  int64
	debug      bool
}

func parseFlags() runFlags {
	var f runFlags
	flag.StringVar(&f.configPath, "config", "", "path to a YAML config file")
	flag.DurationVar(&f.interval, "interval", 0, "override the sampling interval (e.g. 30s, 1m)")
	flag.StringVar(&f.logDir, "log-dir", "", "override the report log directory")
	flag.Float64Var(&f.cpuTh, "cpu-threshold", -1, "override the CPU threshold in percent")
	flag.Float64Var(&f.memTh, "mem-threshold", -1, "override the memory threshold in MB")
	flag.Int64Var(&f.runtimeTh, "runtime-threshold", -1, "override the runtime threshold in seconds")
	flag.BoolVar(&f.debug, "debug", false, "enable debug logging")
	flag.Parse()
	return f
}

func main() {
	flags := parseFlags()

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "procwatch: %v\n", err)
		os.Exit(1)
	}

	interval := cfg.Interval()
	if flags.interval > 0 {
		interval = flags.interval
	}
	thresholds := cfg.ThresholdValues()
	if flags.cpuTh >= 0 {
		thresholds.CPUPercent = flags.cpuTh
	}
	if flags.memTh >= 0 {
		thresholds.MemoryMB = flags.memTh
	}
	if flags.runtimeTh >= 0 {
		thresholds.RuntimeSeconds = flags.runtimeTh
	}
	logDir := cfg.LogDir
	if flags.logDir != "" {
		logDir = flags.logDir
	}

	logger := newLogger(flags.debug)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out, err := sink.New(logDir, sink.FileName(time.Now()), os.Stdout)
	if err != nil {
		logger.Fatal("opening report sink", zap.Error(err))
	}

	sched, err := monitor.New(procs.New(cfg.Processes), out, monitor.Config{
		Interval:   interval,
		Thresholds: thresholds,
		Clear:      ui.ClearScreen,
	}, logger)
	if err != nil {
		logger.Fatal("building scheduler", zap.Error(err))
	}

	restoreEcho := ui.QuietTerminal()
	defer restoreEcho()

	fmt.Print(ui.Banner())
	fmt.Printf("Welcome to the system-monitoring application.\n")
	fmt.Printf("While monitoring, it records the result to %s about every %s.\n", out.Path(), intervalPhrase(interval))
	fmt.Printf("Press Ctrl+C to close this application.\n\n")

	if err := sched.Run(ctx); err != nil {
		logger.Fatal("monitoring stopped", zap.Error(err))
	}

	// interrupt is the normal exit path: final status line, success status
	fmt.Println("\nNow shutting this application down....")
}

func newLogger(debug bool) *zap.Logger {
	var logger *zap.Logger
	var err error
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "procwatch: initializing logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}

func intervalPhrase(interval time.Duration) string {
	phrase, err := report.FormatDuration(interval)
	if err != nil {
		return interval.String()
	}
	return phrase
}
