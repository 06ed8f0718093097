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
	"github.com/sysward/procwatch/pkg/harness"
	"github.com/sysward/procwatch/pkg/sink"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	duration := flag.Duration("duration", 10*time.Second, "how long the load and sampling run")
	workPercent := flag.Int("work", 70, "share of each time slice spent generating CPU load, in percent")
	logDir := flag.String("log-dir", "", "override the report log directory")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "procwatch-harness: %v\n", err)
		os.Exit(1)
	}
	dir := cfg.LogDir
	if *logDir != "" {
		dir = *logDir
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "procwatch-harness: initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("This test will monitor the resources in the operating system.\n")
	fmt.Printf("It will last about %v, with %d%% of the time spent on CPU loading.\n\n", *duration, *workPercent)
	fmt.Println("Now testing monitoring processes...")

	captures, err := harness.Run(ctx, harness.Options{
		Duration:    *duration,
		WorkPercent: *workPercent,
		Source:      procs.New(cfg.Processes),
	})
	if err != nil {
		// dropped captures are reported but do not fail the run
		logger.Warn("some captures failed", zap.Error(err))
	}

	out, err := sink.New(dir, sink.TestFileName(time.Now()), os.Stdout)
	if err != nil {
		logger.Fatal("opening report sink", zap.Error(err))
	}
	if err := out.Write(harness.Report(captures, cfg.ThresholdValues())); err != nil {
		logger.Fatal("writing test report", zap.Error(err))
	}

	fmt.Println("Test completed.")
}
