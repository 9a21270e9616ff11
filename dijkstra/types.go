// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by ShortestPath and Distances.
var (
	// ErrNilTensor indicates a nil cost tensor.
	ErrNilTensor = errors.New("dijkstra: cost tensor is nil")

	// ErrVertexNotFound indicates a source or target index outside the tensor.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found")

	// ErrNegativeWeight indicates a negative edge cost.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates MaxDistance < 0.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates InfEdgeThreshold <= 0.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath indicates that the target cannot be reached.
	ErrNoPath = errors.New("dijkstra: no path")
)

// Hop is one edge of a route: From → To using Mode.
type Hop struct {
	Mode int `json:"mode"`
	From int `json:"from"`
	To   int `json:"to"`
}

// Route is a cheapest route and its total cost.
type Route struct {
	Cost float64 `json:"cost"`
	Hops []Hop   `json:"hops"`
}

// Options configures a search.
type Options struct {
	MaxDistance      float64 // Maximum distance to explore
	InfEdgeThreshold float64 // Costs ≥ threshold are impassable
	Modes            []int   // Allowed modes; empty means all
}

// Option is a functional option for ShortestPath and Distances.
type Option func(*Options)

// WithMaxDistance stops exploring beyond max.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats every cost ≥ threshold as a missing edge.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithModes restricts the search to the given mode indices.
func WithModes(modes ...int) Option {
	return func(o *Options) {
		o.Modes = append([]int(nil), modes...)
	}
}

// DefaultOptions returns an unbounded search over every mode.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
