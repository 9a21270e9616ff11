// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/antpath/network"
	"github.com/katalvlaran/antpath/tensor"
)

const (
	methodRandomNetwork = "RandomNetwork"
	minCities           = 2
	probMin             = 0.0
	probMax             = 1.0
)

// RandomNetwork builds a seeded random network of the given number of cities.
//
// Stage 1 (Validate): city count and option domains.
// Stage 2 (Edges): backbone, then random edges in mode → from → to order.
// Stage 3 (Bonus): one draw per city.
//
// Complexity: O(M·C²).
func RandomNetwork(cities int, opts ...Option) (*network.Graph, error) {
	cfg := defaultConfig()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// Stage 1: validate.
	if cities < minCities {
		return nil, fmt.Errorf("%s: cities=%d < min=%d: %w", methodRandomNetwork, cities, minCities, ErrTooFewCities)
	}
	if math.IsNaN(cfg.density) || cfg.density < probMin || cfg.density > probMax {
		return nil, fmt.Errorf("%s: density=%.6f not in [%.1f,%.1f]: %w",
			methodRandomNetwork, cfg.density, probMin, probMax, ErrInvalidProbability)
	}
	if len(cfg.modes) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrOptionViolation, builderErrorf(methodRandomNetwork, "no modes"))
	}
	if !(cfg.costMin > 0) || !(cfg.costMax >= cfg.costMin) || math.IsInf(cfg.costMax, 0) {
		return nil, fmt.Errorf("%w: %v", ErrOptionViolation,
			builderErrorf(methodRandomNetwork, "cost range [%g,%g)", cfg.costMin, cfg.costMax))
	}
	if !(cfg.bonusMin >= 0) || !(cfg.bonusMax >= cfg.bonusMin) || math.IsInf(cfg.bonusMax, 0) {
		return nil, fmt.Errorf("%w: %v", ErrOptionViolation,
			builderErrorf(methodRandomNetwork, "bonus range [%g,%g)", cfg.bonusMin, cfg.bonusMax))
	}
	var i int
	for i = range cfg.factors {
		if !(cfg.factors[i] > 0) || math.IsInf(cfg.factors[i], 0) {
			return nil, fmt.Errorf("%w: %v", ErrOptionViolation,
				builderErrorf(methodRandomNetwork, "mode factor[%d]=%g", i, cfg.factors[i]))
		}
	}

	m := len(cfg.modes)
	cost, err := tensor.Filled(m, cities, math.NaN())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomNetwork, err)
	}

	// Stage 2: edges.
	if cfg.backbone {
		for i = 0; i+1 < cities; i++ {
			w := cfg.draw()
			_ = cost.Set(0, i, i+1, w)
			_ = cost.Set(0, i+1, i, w)
		}
	}
	var (
		mode, from, to int
		w, cur         float64
	)
	for mode = 0; mode < m; mode++ {
		for from = 0; from < cities; from++ {
			to = 0
			if cfg.symmetric {
				to = from + 1
			}
			for ; to < cities; to++ {
				if from == to || cfg.rng.Float64() >= cfg.density {
					continue
				}
				w = cfg.draw() * cfg.factor(mode)
				cur, _ = cost.At(mode, from, to)
				if math.IsNaN(cur) || w < cur {
					_ = cost.Set(mode, from, to, w)
				}
				if cfg.symmetric {
					cur, _ = cost.At(mode, to, from)
					if math.IsNaN(cur) || w < cur {
						_ = cost.Set(mode, to, from, w)
					}
				}
			}
		}
	}

	// Stage 3: bonus.
	bonus := make([]float64, cities)
	for i = range bonus {
		bonus[i] = cfg.bonusMin + cfg.rng.Float64()*(cfg.bonusMax-cfg.bonusMin)
	}

	g := &network.Graph{
		Name:   cfg.networkName,
		Modes:  append([]string(nil), cfg.modes...),
		Cities: make([]string, cities),
		Cost:   cost,
		Bonus:  bonus,
	}
	for i = range g.Cities {
		g.Cities[i] = fmt.Sprintf("%s%d", cfg.cityPrefix, i)
	}
	if err = g.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomNetwork, err)
	}

	return g, nil
}

func (c *config) draw() float64 {
	return c.costMin + c.rng.Float64()*(c.costMax-c.costMin)
}

func (c *config) factor(mode int) float64 {
	if mode < len(c.factors) {
		return c.factors[mode]
	}
	return 1
}
