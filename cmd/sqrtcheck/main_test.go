// main_test.go: tests for the sqrtcheck command
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRun_BoundedIterations(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-n", "250", "--report-every", "100", "--seed", "7"}, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("exit code = %d, want %d; stderr:\n%s", code, exitOK, stderr.String())
	}

	want := "i=0\ni=100\ni=200\n"
	if diff := cmp.Diff(want, stdout.String()); diff != "" {
		t.Errorf("progress output mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_DefaultReportInterval(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"--iterations=201", "--log-level=error"}, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("exit code = %d, want %d; stderr:\n%s", code, exitOK, stderr.String())
	}
	if got := stdout.String(); got != "i=0\ni=100\ni=200\n" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestRun_CancelledContextStopsCleanly(t *testing.T) {
	var stdout, stderr bytes.Buffer

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if code := run(ctx, nil, &stdout, &stderr); code != exitOK {
		t.Fatalf("exit code = %d, want %d", code, exitOK)
	}
	if stdout.Len() != 0 {
		t.Errorf("expected no progress output, got %q", stdout.String())
	}
}

func TestRun_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"unknown flag", []string{"--bogus"}, exitBadUsage},
		{"positional argument", []string{"extra"}, exitBadUsage},
		{"bad log level", []string{"--log-level", "loud"}, exitBadUsage},
		{"negative iterations", []string{"--iterations=-5"}, exitFailure},
		{"negative report interval", []string{"--report-every=-1"}, exitFailure},
		{"help", []string{"--help"}, exitOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if got := run(context.Background(), tt.args, &stdout, &stderr); got != tt.want {
				t.Errorf("exit code = %d, want %d; stderr:\n%s", got, tt.want, stderr.String())
			}
		})
	}
}

func TestRun_InvalidIterationsIsLogged(t *testing.T) {
	var stdout, stderr bytes.Buffer

	run(context.Background(), []string{"--iterations=-5"}, &stdout, &stderr)
	if !strings.Contains(stderr.String(), "SQRTCACHE_INVALID_ITERATIONS") {
		t.Errorf("expected error code in log output, got:\n%s", stderr.String())
	}
}

func TestZapLogger_ForwardsKeyvals(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zapLogger{sugar: zap.New(core).Sugar()}

	logger.Debug("evicted slot", "slot", 3, "key", uint8(9))
	logger.Info("started")
	logger.Warn("careful")
	logger.Error("square root mismatch", "key", uint8(42))

	entries := logs.All()
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}

	levels := []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}
	for i, e := range entries {
		if e.Level != levels[i] {
			t.Errorf("entry %d level = %v, want %v", i, e.Level, levels[i])
		}
	}

	fields := entries[0].ContextMap()
	if fields["slot"] != int64(3) {
		t.Errorf("slot field = %v (%T), want 3", fields["slot"], fields["slot"])
	}
	if fields["key"] != uint8(9) {
		t.Errorf("key field = %v (%T), want 9", fields["key"], fields["key"])
	}
}

func TestNewLogger_AtomicLevel(t *testing.T) {
	var buf bytes.Buffer
	zl, atom := newLogger(&buf, zapcore.InfoLevel)
	logger := zapLogger{sugar: zl.Sugar()}

	logger.Debug("hidden")
	atom.SetLevel(zapcore.DebugLevel)
	logger.Debug("visible")
	_ = zl.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line logged at info level:\n%s", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("debug line missing after level change:\n%s", out)
	}
}
