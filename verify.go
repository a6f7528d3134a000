// verify.go: randomized self-check of the square root cache
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package sqrtcache

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
)

// Verifier repeatedly queries a Cache with random keys and compares every
// answer against Sqrt. Run, Step and Count must be called from one
// goroutine; SetReportEvery and SetIterations may be called from any.
type Verifier struct {
	cache  *Cache
	rng    RandomSource
	out    io.Writer
	logger Logger
	clock  TimeProvider

	// Adjustable while running (hot reload)
	iterations  atomic.Int64
	reportEvery atomic.Int64

	count int64
}

// NewVerifier creates a verifier for cache. Unless config.Random is set the
// verifier shares the cache's RandomSource, so a single generator feeds both
// input selection and slot selection.
func NewVerifier(cache *Cache, config VerifierConfig) (*Verifier, error) {
	if cache == nil {
		return nil, NewErrNilCache("verifier")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if config.Random == nil {
		config.Random = cache.rng
	}
	if config.Logger == nil {
		config.Logger = cache.logger
	}

	v := &Verifier{
		cache:  cache,
		rng:    config.Random,
		out:    config.Output,
		logger: config.Logger,
		clock:  config.TimeProvider,
	}
	v.iterations.Store(config.Iterations)
	v.reportEvery.Store(config.ReportEvery)

	return v, nil
}

// Run performs checks until the iteration bound is reached or ctx is
// cancelled, both of which return nil. Before iteration i it writes
// "i=<i>" when i is a multiple of the report interval, starting at 0.
// The first mismatch stops the run and is returned; see IsMismatch.
func (v *Verifier) Run(ctx context.Context) error {
	v.logger.Info("verification started",
		"iterations", v.iterations.Load(),
		"report_every", v.reportEvery.Load())

	start := v.clock.Now()
	first := v.count

	for {
		if err := ctx.Err(); err != nil {
			v.logger.Info("verification stopped", "completed", v.count,
				"elapsed_ns", v.clock.Now()-start, "reason", err.Error())
			return nil
		}

		if limit := v.iterations.Load(); limit > 0 && v.count >= limit {
			elapsed := v.clock.Now() - start
			v.logger.Info("verification finished", "completed", v.count,
				"elapsed_ns", elapsed, "checks_per_sec", checksPerSecond(v.count-first, elapsed))
			return nil
		}

		if every := v.reportEvery.Load(); v.count%every == 0 {
			if _, err := fmt.Fprintf(v.out, "i=%d\n", v.count); err != nil {
				return NewErrOutputFailed(v.count, err)
			}
		}

		if err := v.Step(); err != nil {
			return err
		}
	}
}

// Step performs exactly one check without writing progress output.
func (v *Verifier) Step() error {
	key := v.rng.Uint8()
	cached := v.cache.QueryOrInsert(key)
	expected, _ := Sqrt(int(key))

	if cached != expected {
		err := NewErrMismatch(key, cached, expected, v.count)
		v.logger.Error("square root mismatch",
			"key", key, "cached", cached, "expected", expected, "iteration", v.count)
		return err
	}

	v.count++
	return nil
}

// checksPerSecond is 0 when elapsed is below the clock's resolution.
func checksPerSecond(checks int64, elapsedNs int64) float64 {
	if elapsedNs <= 0 {
		return 0
	}
	return float64(checks) * 1e9 / float64(elapsedNs)
}

// Count returns the number of checks that have passed.
func (v *Verifier) Count() int64 {
	return v.count
}

// SetReportEvery changes the progress interval. Non-positive values are ignored.
func (v *Verifier) SetReportEvery(every int64) {
	if every > 0 {
		v.reportEvery.Store(every)
	}
}

// SetIterations changes the iteration bound; 0 removes it.
// Negative values are ignored.
func (v *Verifier) SetIterations(iterations int64) {
	if iterations >= 0 {
		v.iterations.Store(iterations)
	}
}
