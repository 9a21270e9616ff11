// SPDX-License-Identifier: MIT

// Package rng centralizes deterministic random generation for the colony search.
//
// Goals:
//   - Determinism: same seed ⇒ identical walks, rounds and colonies.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Independence: every colony and every ant walk draws from its own stream,
//     derived from the run seed, so parallel execution never shares a generator.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use Derive/DeriveSeed to create independent streams for workers.
package rng

import "math/rand"

// DefaultSeed is the fixed “zero” seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// Source is the random capability consumed by a walk: one uniform draw in [0,1)
// per transition. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// FromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func FromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with a SplitMix64 finalizer, so neighbouring stream ids give uncorrelated seeds.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// Derive creates an independent deterministic stream from parent and stream.
// Unlike a base-generator split, it consumes no state, so the same (parent, stream)
// pair always yields the same sequence regardless of scheduling order.
func Derive(parent int64, stream uint64) *rand.Rand {
	return FromSeed(DeriveSeed(parent, stream))
}

// Sequence is a Source that replays fixed draws; it is meant for tests and
// for reproducing a recorded walk. It panics when exhausted.
type Sequence struct {
	Draws []float64
	next  int
}

// Float64 returns the next recorded draw.
func (s *Sequence) Float64() float64 {
	v := s.Draws[s.next]
	s.next++

	return v
}

// Used reports how many draws have been consumed.
func (s *Sequence) Used() int { return s.next }
