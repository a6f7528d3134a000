// sqrtcheck stress-tests the square root cache with random keys and exits
// non-zero the moment a cached answer disagrees with direct computation.
//
// Usage:
//
//	sqrtcheck [options]
//
// Options:
//
//	-n, --iterations     Stop after this many checks (default: 0, run until interrupted)
//	-r, --report-every   Print "i=<n>" every this many checks (default: 100)
//	-s, --seed           Random seed; 0 seeds from the runtime (default: 0)
//	-c, --config         Settings file to hot reload (verify.report_every, verify.iterations, verify.log_level)
//	    --log-level      debug, info, warn or error (default: info)
//	    --metrics-addr   Serve Prometheus metrics on this address (default: disabled)
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/agilira/sqrtcache"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"
)

// Exit codes
const (
	exitOK       = 0
	exitFailure  = 1
	exitBadUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// options holds parsed command line flags.
type options struct {
	iterations  int64
	reportEvery int64
	seed        uint64
	configPath  string
	logLevel    string
	metricsAddr string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("sqrtcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Int64VarP(&opts.iterations, "iterations", "n", 0, "stop after this many checks (0 runs until interrupted)")
	fs.Int64VarP(&opts.reportEvery, "report-every", "r", sqrtcache.DefaultReportEvery, "print progress every this many checks")
	fs.Uint64VarP(&opts.seed, "seed", "s", 0, "random seed (0 seeds from the runtime)")
	fs.StringVarP(&opts.configPath, "config", "c", "", "settings file to hot reload")
	fs.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	fs.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

// run executes the verifier and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "sqrtcheck: %v\n", err)
		return exitBadUsage
	}

	level, err := zapcore.ParseLevel(opts.logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "sqrtcheck: %v\n", err)
		return exitBadUsage
	}

	zl, atom := newLogger(stderr, level)
	defer func() { _ = zl.Sync() }()
	logger := zapLogger{sugar: zl.Sugar()}

	config := sqrtcache.Config{
		Random: sqrtcache.NewRandomSource(opts.seed),
		Logger: logger,
	}

	if opts.metricsAddr != "" {
		ms, err := newMetricsServer(opts.metricsAddr)
		if err != nil {
			logger.Error("failed to set up metrics", "error", err)
			return exitFailure
		}
		config.MetricsCollector = ms.collector
		ms.start(logger)
		defer ms.shutdown(logger)
	}

	cache := sqrtcache.NewCache(config)

	verifier, err := sqrtcache.NewVerifier(cache, sqrtcache.VerifierConfig{
		Iterations:  opts.iterations,
		ReportEvery: opts.reportEvery,
		Output:      stdout,
	})
	if err != nil {
		logger.Error("invalid configuration", "error", err, "code", sqrtcache.GetErrorCode(err))
		return exitFailure
	}

	if opts.configPath != "" {
		hc, err := sqrtcache.NewHotConfig(verifier, sqrtcache.HotConfigOptions{
			ConfigPath: opts.configPath,
			OnReload: func(_, newSettings sqrtcache.HotSettings) {
				if newSettings.LogLevel == "" {
					return
				}
				if l, err := zapcore.ParseLevel(newSettings.LogLevel); err == nil {
					atom.SetLevel(l)
				} else {
					logger.Warn("ignoring invalid log level", "log_level", newSettings.LogLevel)
				}
			},
		})
		if err != nil {
			logger.Error("failed to watch config", "path", opts.configPath, "error", err)
			return exitFailure
		}
		if err := hc.Start(); err != nil {
			logger.Error("failed to start config watcher", "path", opts.configPath, "error", err)
			return exitFailure
		}
		defer func() { _ = hc.Stop() }()
	}

	if err := verifier.Run(ctx); err != nil {
		logger.Error("verification failed",
			"error", err,
			"code", sqrtcache.GetErrorCode(err),
			"context", sqrtcache.GetErrorContext(err))
		return exitFailure
	}

	return exitOK
}
