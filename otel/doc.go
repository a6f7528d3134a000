// Package otel provides OpenTelemetry integration for sqrtcache metrics.
//
// # Overview
//
// This package implements the sqrtcache.MetricsCollector interface using
// OpenTelemetry. The cache itself keeps no counters; it only reports events,
// and this collector turns them into OTEL instruments that any backend
// (Prometheus, OTLP, stdout) can export.
//
// # Quick Start
//
//	import (
//	    "github.com/agilira/sqrtcache"
//	    sqrtotel "github.com/agilira/sqrtcache/otel"
//	    "go.opentelemetry.io/otel/exporters/prometheus"
//	    "go.opentelemetry.io/otel/sdk/metric"
//	)
//
//	exporter, err := prometheus.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	provider := metric.NewMeterProvider(metric.WithReader(exporter))
//	defer provider.Shutdown(context.Background())
//
//	collector, err := sqrtotel.NewOTelMetricsCollector(provider)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cache := sqrtcache.NewCache(sqrtcache.Config{
//	    MetricsCollector: collector,
//	})
//
// # Metrics Exposed
//
// Histograms:
//   - sqrtcache_query_latency_ns: QueryOrInsert() latency in nanoseconds
//
// Counters:
//   - sqrtcache_hits_total: queries answered from an existing slot
//   - sqrtcache_misses_total: queries that computed and inserted
//   - sqrtcache_inserts_total: slots overwritten by miss candidates
//   - sqrtcache_evictions_total: inserts that displaced a different key
//   - sqrtcache_skipped_candidates_total: out-of-domain neighbours not stored
//
// # Prometheus Queries
//
// Hit ratio:
//
//	rate(sqrtcache_hits_total[5m]) /
//	(rate(sqrtcache_hits_total[5m]) + rate(sqrtcache_misses_total[5m]))
//
// Evictions per insert:
//
//	rate(sqrtcache_evictions_total[5m]) / rate(sqrtcache_inserts_total[5m])
//
// # Thread Safety
//
// The OTEL instruments are safe for concurrent use, so one collector may be
// shared by several caches.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package otel
