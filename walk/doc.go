// SPDX-License-Identifier: MIT

// Package walk builds one ant's route from the start city to the target city.
//
// A walk is a loop over the current city:
//
//	zero the working bonus of the current city
//	draw r ~ U[0,1) and sample (mode, next) from the pheromone snapshot
//	record (mode, current, next) in the path and the travelled counts
//	stop when next == target; give up after 2·C transitions
//
// At least one transition is made even if start == target.
//
// Construct never reports a lost ant through its error value. A lost ant is a
// normal outcome carried by Result.Lost, with Result.Reason wrapping ErrAntLost
// (and ErrDeadEnd when the ant reached a city with no valid outgoing edge).
// The error return is reserved for invalid arguments.
package walk
