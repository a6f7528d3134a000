// config.go: configuration for sqrtcache
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package sqrtcache

import (
	"io"
	"os"
	"time"

	"github.com/agilira/go-timecache"
)

// Config holds configuration parameters for the cache.
// Capacity is fixed at CacheSize and cannot be configured.
type Config struct {
	// Random supplies slot indices for miss insertion.
	// If nil, NewRandomSource(0) is used.
	Random RandomSource

	// Logger is used for debugging and monitoring.
	// If nil, NoOpLogger is used. Default: NoOpLogger.
	Logger Logger

	// TimeProvider times each QueryOrInsert for MetricsCollector.RecordQuery.
	// A query takes well under a microsecond, so this must be a
	// high-resolution clock. If nil, a monotonic clock is used.
	TimeProvider TimeProvider

	// MetricsCollector receives query, insert, eviction and skip events.
	// If nil, NoOpMetricsCollector is used (zero overhead).
	MetricsCollector MetricsCollector
}

// ApplyDefaults fills unset fields. Every Config is valid: capacity is
// fixed, so there is nothing to reject.
//
// This method is automatically called by NewCache, so you typically don't
// need to call it manually.
func (c *Config) ApplyDefaults() {
	if c.Random == nil {
		c.Random = NewRandomSource(0)
	}

	if c.Logger == nil {
		c.Logger = NoOpLogger{}
	}

	if c.TimeProvider == nil {
		c.TimeProvider = newMonotonicTimeProvider()
	}

	if c.MetricsCollector == nil {
		c.MetricsCollector = NoOpMetricsCollector{}
	}
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Random:           NewRandomSource(0),
		Logger:           NoOpLogger{},
		TimeProvider:     newMonotonicTimeProvider(),
		MetricsCollector: NoOpMetricsCollector{},
	}
}

// VerifierConfig holds configuration parameters for a Verifier.
type VerifierConfig struct {
	// Iterations bounds the number of checks Run performs.
	// 0 means run until the context is cancelled. Must be >= 0.
	Iterations int64

	// ReportEvery is how many iterations pass between "i=<n>" progress lines.
	// 0 selects DefaultReportEvery. Must be >= 0.
	ReportEvery int64

	// Output receives progress lines. Default: os.Stdout.
	Output io.Writer

	// Random supplies verification inputs.
	// If nil, the cache's own RandomSource is shared.
	Random RandomSource

	// Logger for verifier lifecycle events.
	// If nil, the cache's logger is used.
	Logger Logger

	// TimeProvider timestamps the start and end of Run for the elapsed time
	// and throughput it logs. If nil, a go-timecache backed clock is used.
	TimeProvider TimeProvider
}

// Validate checks explicit values and applies defaults for the rest.
func (c *VerifierConfig) Validate() error {
	if c.Iterations < 0 {
		return NewErrInvalidIterations(c.Iterations)
	}

	if c.ReportEvery < 0 {
		return NewErrInvalidReportEvery(c.ReportEvery)
	}
	if c.ReportEvery == 0 {
		c.ReportEvery = DefaultReportEvery
	}

	if c.Output == nil {
		c.Output = os.Stdout
	}

	if c.TimeProvider == nil {
		c.TimeProvider = &systemTimeProvider{}
	}

	return nil
}

// systemTimeProvider is the go-timecache clock. It is refreshed every
// 500µs, which suits run-level timing but not single queries.
type systemTimeProvider struct{}

func (t *systemTimeProvider) Now() int64 {
	return timecache.CachedTimeNano()
}

// monotonicTimeProvider reports nanoseconds since its creation from the
// monotonic clock, so differences resolve single queries.
type monotonicTimeProvider struct {
	base time.Time
}

func newMonotonicTimeProvider() *monotonicTimeProvider {
	return &monotonicTimeProvider{base: time.Now()}
}

func (t *monotonicTimeProvider) Now() int64 {
	return int64(time.Since(t.base))
}
