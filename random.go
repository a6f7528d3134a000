// random.go: default RandomSource backed by a PCG generator
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package sqrtcache

import "math/rand/v2"

// pcgSource is not safe for concurrent use, matching the single-owner cache.
type pcgSource struct {
	r *rand.Rand
}

// NewRandomSource returns a RandomSource seeded with seed.
// A zero seed draws the seed from the runtime's entropy, so runs differ.
func NewRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		return &pcgSource{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))} // #nosec G404 - not a security context
	}
	return &pcgSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))} // #nosec G404 - not a security context
}

func (s *pcgSource) Uint8() uint8 {
	return uint8(s.r.Uint32() >> 24) // #nosec G115 - top byte only
}

func (s *pcgSource) IntN(n int) int {
	return s.r.IntN(n)
}
