// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"math"

	"github.com/katalvlaran/antpath/tensor"
)

// City is one named city with its bonus.
type City struct {
	Name  string  `yaml:"name" json:"name"`
	Bonus float64 `yaml:"bonus,omitempty" json:"bonus,omitempty"`
}

// Edge is one weighted link of a given transport mode.
type Edge struct {
	Mode          string  `yaml:"mode" json:"mode"`
	From          string  `yaml:"from" json:"from"`
	To            string  `yaml:"to" json:"to"`
	Cost          float64 `yaml:"cost" json:"cost"`
	Bidirectional bool    `yaml:"bidirectional,omitempty" json:"bidirectional,omitempty"`
}

// Document is the file representation of a Graph.
type Document struct {
	Name   string   `yaml:"name,omitempty" json:"name,omitempty"`
	Modes  []string `yaml:"modes" json:"modes"`
	Cities []City   `yaml:"cities" json:"cities"`
	Edges  []Edge   `yaml:"edges" json:"edges"`
}

// FromDocument builds a validated Graph from named modes, cities and edges.
// Stage 1: index modes and cities (unique, non-empty).
// Stage 2: start from an all-NaN tensor and write each edge (mirrored when
// bidirectional); parallel edges keep the cheapest cost.
// Stage 3: validate the assembled graph.
//
// Complexity: O(M·C² + E).
func FromDocument(doc Document) (*Graph, error) {
	// Stage 1: names.
	if len(doc.Modes) == 0 || len(doc.Cities) == 0 {
		return nil, fmt.Errorf("document needs at least one mode and one city: %w", ErrInvalidGraph)
	}
	names := make([]string, len(doc.Cities))
	bonus := make([]float64, len(doc.Cities))
	var i int
	for i = range doc.Cities {
		names[i] = doc.Cities[i].Name
		bonus[i] = doc.Cities[i].Bonus
	}
	g := &Graph{
		Name:   doc.Name,
		Modes:  append([]string(nil), doc.Modes...),
		Cities: names,
		Bonus:  bonus,
	}
	if err := uniqueNames("mode", g.Modes); err != nil {
		return nil, err
	}
	if err := uniqueNames("city", g.Cities); err != nil {
		return nil, err
	}

	// Stage 2: edges.
	cost, err := tensor.Filled(len(g.Modes), len(g.Cities), math.NaN())
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidGraph)
	}
	g.Cost = cost

	var (
		e              Edge
		mode, from, to int
	)
	for i, e = range doc.Edges {
		if mode, err = g.ModeIndex(e.Mode); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		if from, err = g.CityIndex(e.From); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		if to, err = g.CityIndex(e.To); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		if math.IsNaN(e.Cost) || e.Cost < 0 {
			return nil, fmt.Errorf("edge %d %s→%s cost=%g: %w", i, e.From, e.To, e.Cost, ErrInvalidGraph)
		}
		keepCheapest(g.Cost, mode, from, to, e.Cost)
		if e.Bidirectional {
			keepCheapest(g.Cost, mode, to, from, e.Cost)
		}
	}

	// Stage 3: full validation.
	if err = g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}

// keepCheapest writes w at (mode, from, to) unless a cheaper edge is already there.
func keepCheapest(t *tensor.Dense3, mode, from, to int, w float64) {
	cur, _ := t.At(mode, from, to)
	if math.IsNaN(cur) || w < cur {
		_ = t.Set(mode, from, to, w)
	}
}

// Document converts g back into its file representation. Every non-NaN entry
// becomes one directed edge, emitted in mode→from→to order.
func (g *Graph) Document() Document {
	doc := Document{
		Name:   g.Name,
		Modes:  append([]string(nil), g.Modes...),
		Cities: make([]City, len(g.Cities)),
	}
	var i int
	for i = range g.Cities {
		doc.Cities[i] = City{Name: g.Cities[i], Bonus: g.Bonus[i]}
	}

	var (
		mode, from, to int
		w              float64
	)
	for mode = 0; mode < g.NumModes(); mode++ {
		for from = 0; from < g.NumCities(); from++ {
			for to = 0; to < g.NumCities(); to++ {
				w, _ = g.Cost.At(mode, from, to)
				if math.IsNaN(w) {
					continue
				}
				doc.Edges = append(doc.Edges, Edge{
					Mode: g.Modes[mode],
					From: g.Cities[from],
					To:   g.Cities[to],
					Cost: w,
				})
			}
		}
	}

	return doc
}
