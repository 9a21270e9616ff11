// SPDX-License-Identifier: MIT

// Package dijkstra computes exact cheapest routes on a multi-modal cost tensor.
//
// Overview:
//
//   - The M×C×C tensor is collapsed on the fly: the weight of (from, to) is the
//     cheapest allowed mode between them, and that mode is remembered for the route.
//   - Only edges an ant could take are traversable: finite, strictly positive
//     cost below the InfEdgeThreshold. NaN, zero and +Inf entries are skipped.
//   - ShortestPath with source == target returns the cheapest non-empty cycle
//     through source, matching walks that always make at least one move.
//
// The colony search uses ShortestPath as an exact baseline on graphs small
// enough to solve directly, and reports how far the heuristic landed from it.
//
// Performance and complexity:
//
//   - Time:  O(M·C² + C·log C) with a lazy decrease-key binary heap.
//   - Space: O(C) for distances and predecessors, plus O(C²) heap entries worst case.
//
// Error handling (sentinel errors):
//
//   - ErrNilTensor:       the cost tensor is nil.
//   - ErrVertexNotFound:  source or target outside [0, C).
//   - ErrNegativeWeight:  a non-NaN negative cost was encountered.
//   - ErrBadMaxDistance:  MaxDistance < 0.
//   - ErrBadInfThreshold: InfEdgeThreshold <= 0.
//   - ErrNoPath:          target is unreachable within MaxDistance.
package dijkstra
