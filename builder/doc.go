// SPDX-License-Identifier: MIT

// Package builder generates synthetic multi-modal transport networks for the
// colony search: demos, tests and benchmarks.
//
// RandomNetwork lays out C cities and M modes and, for every mode and every
// ordered pair (i, j), adds an edge with probability Density. Costs are drawn
// uniformly from [CostMin, CostMax) and scaled by a per-mode factor, so one
// mode can be systematically cheaper than another. City bonuses are drawn from
// [BonusMin, BonusMax).
//
// Determinism:
//
//	All draws come from one seeded *rand.Rand, consumed in a fixed
//	mode → from → to order, so the same options always give the same network.
//
// Backbone:
//
//	With the backbone enabled (default) mode 0 always contains the chain
//	0 ⇄ 1 ⇄ … ⇄ C-1, which keeps every city reachable from every other one
//	however sparse the random edges are.
//
// Errors:
//
//	ErrTooFewCities, ErrInvalidProbability, ErrOptionViolation.
package builder
