// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/antpath/tensor"
)

var (
	// ErrInvalidGraph is returned when the cost tensor or bonus vector violates
	// the input contract (shape, negative cost, bad bonus).
	ErrInvalidGraph = errors.New("network: invalid graph")

	// ErrUnknownCity indicates a city name or index that is not part of the graph.
	ErrUnknownCity = errors.New("network: unknown city")

	// ErrUnknownMode indicates a transport mode name that is not part of the graph.
	ErrUnknownMode = errors.New("network: unknown mode")

	// ErrDuplicateName indicates two modes or two cities sharing a name.
	ErrDuplicateName = errors.New("network: duplicate name")
)

// Graph is the transport graph plus city bonus vector.
type Graph struct {
	// Name is an optional label used in reports and the run store.
	Name string

	// Modes names the first tensor axis (len == Cost.Modes()).
	Modes []string

	// Cities names the second and third tensor axes (len == Cost.Cities()).
	Cities []string

	// Cost is the M×C×C punishment tensor; NaN marks a missing edge.
	Cost *tensor.Dense3

	// Bonus is the per-city bonus vector (len == C, non-negative).
	Bonus []float64
}

// New wraps a cost tensor and bonus vector, assigns default names
// ("mode0", "city0", …) and validates the result.
func New(cost *tensor.Dense3, bonus []float64) (*Graph, error) {
	if cost == nil {
		return nil, fmt.Errorf("nil cost tensor: %w", ErrInvalidGraph)
	}
	g := &Graph{
		Modes:  defaultNames("mode", cost.Modes()),
		Cities: defaultNames("city", cost.Cities()),
		Cost:   cost,
		Bonus:  append([]float64(nil), bonus...),
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}

// NumModes returns M.
func (g *Graph) NumModes() int { return g.Cost.Modes() }

// NumCities returns C.
func (g *Graph) NumCities() int { return g.Cost.Cities() }

// Validate checks shapes, names and value domains.
//
// Complexity: O(M·C²).
func (g *Graph) Validate() error {
	if g == nil || g.Cost == nil {
		return fmt.Errorf("nil graph or cost tensor: %w", ErrInvalidGraph)
	}
	var (
		m = g.Cost.Modes()
		c = g.Cost.Cities()
	)
	if len(g.Bonus) != c {
		return fmt.Errorf("bonus has %d entries, want %d: %w", len(g.Bonus), c, ErrInvalidGraph)
	}
	if len(g.Modes) != m {
		return fmt.Errorf("%d mode names for %d modes: %w", len(g.Modes), m, ErrInvalidGraph)
	}
	if len(g.Cities) != c {
		return fmt.Errorf("%d city names for %d cities: %w", len(g.Cities), c, ErrInvalidGraph)
	}
	if err := uniqueNames("mode", g.Modes); err != nil {
		return err
	}
	if err := uniqueNames("city", g.Cities); err != nil {
		return err
	}

	var i int
	for i = range g.Bonus {
		if math.IsNaN(g.Bonus[i]) || math.IsInf(g.Bonus[i], 0) || g.Bonus[i] < 0 {
			return fmt.Errorf("bonus[%d]=%g: %w", i, g.Bonus[i], ErrInvalidGraph)
		}
	}

	var (
		mode, from, to int
		w              float64
	)
	for mode = 0; mode < m; mode++ {
		for from = 0; from < c; from++ {
			for to = 0; to < c; to++ {
				w, _ = g.Cost.At(mode, from, to)
				if math.IsNaN(w) {
					continue
				}
				if w < 0 {
					return fmt.Errorf("cost(%d,%d,%d)=%g: %w", mode, from, to, w, ErrInvalidGraph)
				}
			}
		}
	}

	return nil
}

// CityIndex resolves a city name to its index.
func (g *Graph) CityIndex(name string) (int, error) {
	var i int
	for i = range g.Cities {
		if g.Cities[i] == name {
			return i, nil
		}
	}

	return -1, fmt.Errorf("%q: %w", name, ErrUnknownCity)
}

// ModeIndex resolves a mode name to its index.
func (g *Graph) ModeIndex(name string) (int, error) {
	var i int
	for i = range g.Modes {
		if g.Modes[i] == name {
			return i, nil
		}
	}

	return -1, fmt.Errorf("%q: %w", name, ErrUnknownMode)
}

// CheckCity returns ErrUnknownCity when idx is outside [0, C).
func (g *Graph) CheckCity(idx int) error {
	if idx < 0 || idx >= g.NumCities() {
		return fmt.Errorf("index %d not in [0,%d): %w", idx, g.NumCities(), ErrUnknownCity)
	}

	return nil
}

func defaultNames(prefix string, n int) []string {
	out := make([]string, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = fmt.Sprintf("%s%d", prefix, i)
	}

	return out
}

func uniqueNames(kind string, names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if n == "" {
			return fmt.Errorf("empty %s name: %w", kind, ErrInvalidGraph)
		}
		if _, ok := seen[n]; ok {
			return fmt.Errorf("%s %q: %w", kind, n, ErrDuplicateName)
		}
		seen[n] = struct{}{}
	}

	return nil
}
