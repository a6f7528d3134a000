// Package sqrtcache provides a bounded, allocation-free cache of integer
// square roots together with a randomized self-check that proves it answers
// correctly.
//
// # Overview
//
// The cache stores exactly CacheSize (100) slots of (key, root) pairs, both
// 8-bit. It trades O(1) lookup for zero-overhead fixed storage:
//   - Lookup: linear scan, first matching key wins
//   - Miss: compute the root for key-1, key and key+1 and write each one to a
//     uniformly random slot (neighbour prefetch with random replacement)
//   - No LRU/LFU bookkeeping, no resizing, no empty marker
//
// Neighbour candidates outside [0, 255] (key-1 for key 0, key+1 for key 255)
// still consume their random draw but are not stored, so they can never
// wrap around and shadow a valid key.
//
// # Quick Start
//
//	cache := sqrtcache.NewCache(sqrtcache.Config{
//	    Random: sqrtcache.NewRandomSource(42),
//	})
//
//	fmt.Println(cache.QueryOrInsert(16)) // 4
//	fmt.Println(cache.QueryOrInsert(15)) // 3, likely a hit from the prefetch
//
// # Verification
//
// Verifier drives the cache with random keys and compares every answer to
// Sqrt. It prints "i=<n>" every ReportEvery iterations and stops on the first
// mismatch with an error for which IsMismatch reports true:
//
//	verifier, err := sqrtcache.NewVerifier(cache, sqrtcache.VerifierConfig{
//	    Iterations: 100_000,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := verifier.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Deterministic Runs
//
// All randomness comes from the RandomSource passed in Config. A fixed seed
// (NewRandomSource(seed)) or a custom source makes eviction reproducible.
//
// # Observability
//
// Config.Logger and Config.MetricsCollector receive miss, insert, eviction
// and skip events; the cache keeps no counters of its own. The otel
// subpackage provides an OpenTelemetry MetricsCollector. HotConfig reloads
// verifier settings from a file via Argus.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package sqrtcache
