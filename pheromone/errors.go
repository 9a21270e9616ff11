// SPDX-License-Identifier: MIT

package pheromone

import "errors"

var (
	// ErrNoValidEdge indicates that every outgoing transition of a city has a
	// NaN or zero desirability.
	ErrNoValidEdge = errors.New("pheromone: no valid outgoing edge")

	// ErrDegenerateCost is returned by Init when the finite part of the cost
	// tensor has zero norm (or there is no finite part at all).
	ErrDegenerateCost = errors.New("pheromone: cost tensor cannot be normalized")

	// ErrInvalidRate indicates an evaporation rate outside [0, 1].
	ErrInvalidRate = errors.New("pheromone: evaporation rate must be in [0,1]")

	// ErrNilTensor is returned when a required tensor argument is nil.
	ErrNilTensor = errors.New("pheromone: nil tensor")
)
