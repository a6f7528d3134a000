// collector.go: OpenTelemetry MetricsCollector for sqrtcache
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package otel

import (
	"context"
	"errors"

	"github.com/agilira/sqrtcache"
	"go.opentelemetry.io/otel/metric"
)

// DefaultMeterName is the meter name used unless WithMeterName is given.
const DefaultMeterName = "github.com/agilira/sqrtcache"

// OTelMetricsCollector implements sqrtcache.MetricsCollector using OpenTelemetry.
//
// Thread-safety: Safe for concurrent use by multiple goroutines.
type OTelMetricsCollector struct {
	queryLatency metric.Int64Histogram // QueryOrInsert latency histogram
	hits         metric.Int64Counter   // Queries answered from a slot
	misses       metric.Int64Counter   // Queries that inserted
	inserts      metric.Int64Counter   // Slots overwritten
	evictions    metric.Int64Counter   // Overwrites of a different key
	skips        metric.Int64Counter   // Out-of-domain candidates
}

// Options for configuring OTelMetricsCollector.
type Options struct {
	// MeterName is the name of the OpenTelemetry meter.
	// Default: DefaultMeterName
	MeterName string
}

// Option is a functional option for configuring OTelMetricsCollector.
type Option func(*Options)

// WithMeterName sets a custom meter name.
func WithMeterName(name string) Option {
	return func(o *Options) {
		o.MeterName = name
	}
}

// NewOTelMetricsCollector creates a new OpenTelemetry metrics collector.
//
// Returns an error if provider is nil or an instrument cannot be created.
func NewOTelMetricsCollector(provider metric.MeterProvider, opts ...Option) (*OTelMetricsCollector, error) {
	if provider == nil {
		return nil, errors.New("meter provider cannot be nil")
	}

	options := Options{
		MeterName: DefaultMeterName,
	}
	for _, opt := range opts {
		opt(&options)
	}

	meter := provider.Meter(options.MeterName)
	collector := &OTelMetricsCollector{}

	var err error
	collector.queryLatency, err = meter.Int64Histogram(
		"sqrtcache_query_latency_ns",
		metric.WithDescription("Latency of QueryOrInsert operations in nanoseconds"),
		metric.WithUnit("ns"),
	)
	if err != nil {
		return nil, err
	}

	counters := []struct {
		dst  *metric.Int64Counter
		name string
		desc string
	}{
		{&collector.hits, "sqrtcache_hits_total", "Total number of cache hits"},
		{&collector.misses, "sqrtcache_misses_total", "Total number of cache misses"},
		{&collector.inserts, "sqrtcache_inserts_total", "Total number of slots overwritten by miss candidates"},
		{&collector.evictions, "sqrtcache_evictions_total", "Total number of inserts that displaced a different key"},
		{&collector.skips, "sqrtcache_skipped_candidates_total", "Total number of out-of-domain candidates not stored"},
	}
	for _, c := range counters {
		*c.dst, err = meter.Int64Counter(c.name, metric.WithDescription(c.desc))
		if err != nil {
			return nil, err
		}
	}

	return collector, nil
}

// RecordQuery records a QueryOrInsert call: its latency, and a hit or miss.
func (c *OTelMetricsCollector) RecordQuery(latencyNs int64, hit bool) {
	ctx := context.Background()

	c.queryLatency.Record(ctx, latencyNs)

	if hit {
		c.hits.Add(ctx, 1)
	} else {
		c.misses.Add(ctx, 1)
	}
}

// RecordInsert increments the inserts counter.
func (c *OTelMetricsCollector) RecordInsert() {
	c.inserts.Add(context.Background(), 1)
}

// RecordEviction increments the evictions counter.
func (c *OTelMetricsCollector) RecordEviction() {
	c.evictions.Add(context.Background(), 1)
}

// RecordSkip increments the skipped candidates counter.
func (c *OTelMetricsCollector) RecordSkip() {
	c.skips.Add(context.Background(), 1)
}

// Compile-time interface check
var _ sqrtcache.MetricsCollector = (*OTelMetricsCollector)(nil)
