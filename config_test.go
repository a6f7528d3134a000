// config_test.go: unit tests for sqrtcache configuration
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package sqrtcache

import (
	"bytes"
	"os"
	"testing"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	var config Config
	config.ApplyDefaults()

	if config.Random == nil {
		t.Error("expected default RandomSource")
	}
	if _, ok := config.Logger.(NoOpLogger); !ok {
		t.Errorf("expected NoOpLogger, got %T", config.Logger)
	}
	if _, ok := config.TimeProvider.(*monotonicTimeProvider); !ok {
		t.Errorf("expected monotonicTimeProvider, got %T", config.TimeProvider)
	}
	if _, ok := config.MetricsCollector.(NoOpMetricsCollector); !ok {
		t.Errorf("expected NoOpMetricsCollector, got %T", config.MetricsCollector)
	}
}

func TestConfig_ApplyDefaultsKeepsExplicitValues(t *testing.T) {
	src := &sequenceSource{}
	metrics := &recordingCollector{}
	clock := &stepTimeProvider{}
	config := Config{Random: src, MetricsCollector: metrics, TimeProvider: clock}

	config.ApplyDefaults()
	if config.TimeProvider != TimeProvider(clock) {
		t.Error("explicit TimeProvider was replaced")
	}
	if config.Random != RandomSource(src) {
		t.Error("explicit RandomSource was replaced")
	}
	if config.MetricsCollector != MetricsCollector(metrics) {
		t.Error("explicit MetricsCollector was replaced")
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if config.Random == nil || config.Logger == nil || config.TimeProvider == nil || config.MetricsCollector == nil {
		t.Errorf("DefaultConfig left fields unset: %+v", config)
	}
}

func TestVerifierConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      VerifierConfig
		wantErr     bool
		wantEvery   int64
		wantStdout  bool
		wantIterate int64
	}{
		{
			name:       "empty config uses defaults",
			config:     VerifierConfig{},
			wantEvery:  DefaultReportEvery,
			wantStdout: true,
		},
		{
			name:        "explicit values kept",
			config:      VerifierConfig{Iterations: 500, ReportEvery: 7, Output: &bytes.Buffer{}},
			wantEvery:   7,
			wantIterate: 500,
		},
		{
			name:    "negative iterations rejected",
			config:  VerifierConfig{Iterations: -1},
			wantErr: true,
		},
		{
			name:    "negative report interval rejected",
			config:  VerifierConfig{ReportEvery: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := tt.config
			err := config.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !IsConfigError(err) {
					t.Errorf("expected config error, got %v", err)
				}
				return
			}

			if config.ReportEvery != tt.wantEvery {
				t.Errorf("ReportEvery = %d, want %d", config.ReportEvery, tt.wantEvery)
			}
			if config.Iterations != tt.wantIterate {
				t.Errorf("Iterations = %d, want %d", config.Iterations, tt.wantIterate)
			}
			if tt.wantStdout && config.Output != os.Stdout {
				t.Errorf("expected os.Stdout, got %T", config.Output)
			}
		})
	}
}

func TestSystemTimeProvider(t *testing.T) {
	tp := &systemTimeProvider{}
	if tp.Now() <= 0 {
		t.Error("expected a positive timestamp")
	}
}

func TestVerifierConfig_DefaultTimeProvider(t *testing.T) {
	var config VerifierConfig
	if err := config.Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if _, ok := config.TimeProvider.(*systemTimeProvider); !ok {
		t.Errorf("expected systemTimeProvider, got %T", config.TimeProvider)
	}
}

// The cached clock only moves every 500µs; a single query must still
// register a non-zero duration on the default query clock.
func TestMonotonicTimeProvider_Resolution(t *testing.T) {
	tp := newMonotonicTimeProvider()

	prev := tp.Now()
	if prev < 0 {
		t.Fatalf("expected non-negative reading, got %d", prev)
	}

	advanced := false
	for i := 0; i < 1000; i++ {
		now := tp.Now()
		if now < prev {
			t.Fatalf("clock went backwards: %d after %d", now, prev)
		}
		if now > prev {
			advanced = true
			if now-prev >= 500_000 {
				t.Errorf("step of %dns is as coarse as the cached clock", now-prev)
			}
			break
		}
		prev = now
	}
	if !advanced {
		t.Error("clock did not advance over 1000 readings")
	}
}
