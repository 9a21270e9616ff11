// SPDX-License-Identifier: MIT

// Package network holds the immutable inputs of a colony search: the
// transport cost ("punishment") tensor indexed by (mode, from, to) and the
// per-city bonus vector, together with human-readable mode and city names.
//
// A Graph can be assembled directly from a tensor (New), from a list of
// named edges (FromDocument), or read from a YAML/JSON file (Load, Decode).
//
// Edge semantics:
//   - A missing edge is NaN in the cost tensor.
//   - Costs must be non-negative; +Inf is accepted and is never chosen by a walk.
//   - Bidirectional edges are mirrored into both (from,to) and (to,from).
//   - Parallel edges of the same mode collapse to the cheapest one.
//
// A Graph must not be mutated once a search has started; every colony reads it
// concurrently without locking.
package network
