// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"

	"github.com/katalvlaran/antpath/rng"
)

// Option configures RandomNetwork.
type Option func(*config)

type config struct {
	rng         *rand.Rand
	modes       []string
	factors     []float64
	density     float64
	costMin     float64
	costMax     float64
	bonusMin    float64
	bonusMax    float64
	backbone    bool
	symmetric   bool
	cityPrefix  string
	networkName string
}

func defaultConfig() config {
	return config{
		rng:        rng.FromSeed(rng.DefaultSeed),
		modes:      []string{"road", "rail", "air"},
		factors:    []float64{1, 0.8, 0.5},
		density:    0.3,
		costMin:    1,
		costMax:    10,
		bonusMin:   0,
		bonusMax:   1,
		backbone:   true,
		cityPrefix: "city",
	}
}

// WithSeed uses a deterministic generator seeded with seed (0 means rng.DefaultSeed).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rng.FromSeed(seed)
	}
}

// WithRand uses r for every draw. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithModes names the modes. Factors default to 1 for modes beyond the
// built-in three; use WithModeFactors to set them.
func WithModes(names ...string) Option {
	return func(c *config) {
		c.modes = append([]string(nil), names...)
	}
}

// WithModeFactors scales the drawn cost of each mode.
func WithModeFactors(factors ...float64) Option {
	return func(c *config) {
		c.factors = append([]float64(nil), factors...)
	}
}

// WithDensity sets the edge probability per mode and ordered city pair.
func WithDensity(p float64) Option {
	return func(c *config) {
		c.density = p
	}
}

// WithCostRange sets the uniform cost interval [min, max).
func WithCostRange(min, max float64) Option {
	return func(c *config) {
		c.costMin, c.costMax = min, max
	}
}

// WithBonusRange sets the uniform bonus interval [min, max).
func WithBonusRange(min, max float64) Option {
	return func(c *config) {
		c.bonusMin, c.bonusMax = min, max
	}
}

// WithBackbone toggles the guaranteed mode-0 chain.
func WithBackbone(on bool) Option {
	return func(c *config) {
		c.backbone = on
	}
}

// WithSymmetric mirrors every random edge so that j → i costs the same as i → j.
func WithSymmetric(on bool) Option {
	return func(c *config) {
		c.symmetric = on
	}
}

// WithCityPrefix sets the prefix of generated city names ("city0", "city1", …).
func WithCityPrefix(prefix string) Option {
	return func(c *config) {
		c.cityPrefix = prefix
	}
}

// WithName sets the network name.
func WithName(name string) Option {
	return func(c *config) {
		c.networkName = name
	}
}
