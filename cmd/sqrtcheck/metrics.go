// metrics.go: Prometheus endpoint for the OpenTelemetry collector
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/agilira/sqrtcache"
	sqrtotel "github.com/agilira/sqrtcache/otel"
	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/sdk/metric"
)

// metricsServer exposes cache metrics on /metrics.
type metricsServer struct {
	provider  *metric.MeterProvider
	server    *http.Server
	collector *sqrtotel.OTelMetricsCollector
}

// newMetricsServer wires an OTEL provider to a private Prometheus registry
// so repeated construction never collides on the default registerer.
func newMetricsServer(addr string) (*metricsServer, error) {
	registry := promclient.NewRegistry()

	exporter, err := prometheus.New(prometheus.WithRegisterer(registry))
	if err != nil {
		return nil, err
	}

	provider := metric.NewMeterProvider(
		metric.WithReader(exporter),
		metric.WithView(metric.NewView(
			metric.Instrument{Name: "sqrtcache_query_latency_ns"},
			metric.Stream{
				Aggregation: metric.AggregationExplicitBucketHistogram{
					Boundaries: []float64{100, 500, 1000, 5000, 10000, 50000, 100000},
				},
			},
		)),
	)

	collector, err := sqrtotel.NewOTelMetricsCollector(provider)
	if err != nil {
		_ = provider.Shutdown(context.Background())
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return &metricsServer{
		provider:  provider,
		collector: collector,
		server: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}, nil
}

// start serves in the background; listen errors are logged.
func (m *metricsServer) start(logger sqrtcache.Logger) {
	go func() {
		if err := m.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "addr", m.server.Addr, "error", err)
		}
	}()
	logger.Info("metrics available", "url", "http://"+m.server.Addr+"/metrics")
}

// shutdown stops the HTTP server and flushes the provider.
func (m *metricsServer) shutdown(logger sqrtcache.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := m.server.Shutdown(ctx); err != nil {
		logger.Warn("metrics server shutdown failed", "error", err)
	}
	if err := m.provider.Shutdown(ctx); err != nil {
		logger.Warn("meter provider shutdown failed", "error", err)
	}
}
