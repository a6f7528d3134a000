// interfaces.go: public interfaces for sqrtcache
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package sqrtcache

// RandomSource supplies the randomness used by the cache and the verifier.
// The cache draws one slot index per miss candidate; the verifier draws one
// input per iteration. Implementations need not be safe for concurrent use.
type RandomSource interface {
	// Uint8 returns a value uniformly distributed over [0, 255].
	Uint8() uint8

	// IntN returns a value uniformly distributed over [0, n).
	// n is always CacheSize when called by the cache.
	IntN(n int) int
}

// Logger defines a minimal logging interface with zero overhead.
// Implementations should use structured logging and be allocation-free.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs.
	Debug(msg string, keyvals ...interface{})

	// Info logs an info message with optional key-value pairs.
	Info(msg string, keyvals ...interface{})

	// Warn logs a warning message with optional key-value pairs.
	Warn(msg string, keyvals ...interface{})

	// Error logs an error message with optional key-value pairs.
	Error(msg string, keyvals ...interface{})
}

// NoOpLogger is a logger that does nothing. Used as default to avoid nil checks.
type NoOpLogger struct{}

// Debug does nothing (no-op implementation).
func (NoOpLogger) Debug(msg string, keyvals ...interface{}) {}

// Info does nothing (no-op implementation).
func (NoOpLogger) Info(msg string, keyvals ...interface{}) {}

// Warn does nothing (no-op implementation).
func (NoOpLogger) Warn(msg string, keyvals ...interface{}) {}

// Error does nothing (no-op implementation).
func (NoOpLogger) Error(msg string, keyvals ...interface{}) {}

// TimeProvider provides the current time in nanoseconds. Only differences
// between two readings are used, so the epoch is up to the implementation.
type TimeProvider interface {
	// Now returns the current time in nanoseconds.
	Now() int64
}

// MetricsCollector receives cache events. The cache itself keeps no counters;
// anything that wants hit ratios or eviction rates aggregates them here.
//
// All methods are called synchronously from QueryOrInsert and must be fast.
type MetricsCollector interface {
	// RecordQuery records a QueryOrInsert call with its latency and whether
	// it was answered from an existing slot.
	RecordQuery(latencyNs int64, hit bool)

	// RecordInsert records a slot being overwritten by a miss candidate.
	RecordInsert()

	// RecordEviction records an insert that displaced an entry for a
	// different key.
	RecordEviction()

	// RecordSkip records a miss candidate outside [0, 255] that was not stored.
	RecordSkip()
}

// NoOpMetricsCollector is a metrics collector that does nothing.
// Used as default to avoid nil checks.
type NoOpMetricsCollector struct{}

// RecordQuery does nothing.
func (NoOpMetricsCollector) RecordQuery(latencyNs int64, hit bool) {}

// RecordInsert does nothing.
func (NoOpMetricsCollector) RecordInsert() {}

// RecordEviction does nothing.
func (NoOpMetricsCollector) RecordEviction() {}

// RecordSkip does nothing.
func (NoOpMetricsCollector) RecordSkip() {}
