// SPDX-License-Identifier: MIT

// Package orchestrator runs several independent colonies on one network and
// picks the best route among them.
//
// Each colony i gets seed rng.DeriveSeed(Config.Seed, i) and its own
// pheromone field; colonies share nothing mutable and run on a pool of
// Config.Workers goroutines. Aborted colonies are excluded from selection.
// When every colony comes back empty, Run returns ErrAllColoniesFailed
// together with a Summary holding the per-colony diagnostics.
//
// With Config.Baseline set, the exact cheapest route is computed with package
// dijkstra and the Summary reports the relative gap of the winning route.
package orchestrator
