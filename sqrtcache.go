// Package sqrtcache provides a fixed-capacity, randomly-evicted lookup cache
// for integer square roots of 8-bit values.
//
// Example usage:
//
//	cache := sqrtcache.NewCache(sqrtcache.Config{
//		Random: sqrtcache.NewRandomSource(42),
//	})
//
//	root := cache.QueryOrInsert(200) // 14
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package sqrtcache

import "math"

const (
	// Version of the sqrtcache library
	Version = "v0.1.0-dev"

	// CacheSize is the fixed number of slots in every cache.
	CacheSize = 100

	// KeyMin and KeyMax bound the domain of keys that can be stored.
	KeyMin = 0
	KeyMax = math.MaxUint8

	// DefaultReportEvery is how many iterations pass between progress lines.
	DefaultReportEvery = 100
)

// Sqrt returns the square root of n truncated toward zero.
// ok is false when n is outside [KeyMin, KeyMax]; such values have no slot
// representation and are never stored.
func Sqrt(n int) (root uint8, ok bool) {
	if n < KeyMin || n > KeyMax {
		return 0, false
	}
	// Perfect squares are exact in float64, so truncation never rounds down a whole root.
	return uint8(math.Sqrt(float64(n))), true
}
