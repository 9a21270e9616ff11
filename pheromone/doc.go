// SPDX-License-Identifier: MIT

// Package pheromone implements the pheromone field of the colony search: the
// learned attractiveness of every (mode, from, to) transition.
//
// Lifecycle:
//
//	levels = cost / ‖cost‖₂                           (Init, NaN and ±Inf skipped in the norm)
//	p(mode,to | from) ∝ levels^α · (1/cost)^β         (Probabilities)
//	levels' = (1-ρ)·levels + Σᵢ travelledᵢ·scoreᵢ     (Update)
//
// Entries whose cost is zero, NaN or +Inf have no defined desirability; they
// are reported as NaN by Probabilities and are never selected by Sample.
//
// Field wraps the levels tensor. Update always allocates a fresh tensor, so a
// Snapshot taken before an update keeps reading the old levels. This is what
// lets every ant of a round read one frozen field while the colony prepares
// the next one.
//
// Errors:
//
//	ErrNoValidEdge     - the current city has no selectable outgoing transition.
//	ErrDegenerateCost  - the cost tensor has no positive finite entry to normalize by.
//	ErrInvalidRate     - evaporation outside [0, 1].
package pheromone
