// SPDX-License-Identifier: MIT

package colony

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/antpath/network"
)

// ErrInvalidConfig wraps every configuration validation failure.
var ErrInvalidConfig = errors.New("colony: invalid config")

var configValidate = validator.New()

// Config enumerates every colony option.
type Config struct {
	// AntsPerRound is the population walked per round.
	AntsPerRound int `yaml:"ants_per_round" json:"ants_per_round" validate:"min=1"`

	// MaxRounds caps the loop: it continues while the completed-round count is ≤ MaxRounds.
	MaxRounds int `yaml:"max_rounds" json:"max_rounds" validate:"min=0"`

	// EvaporationRate is the per-round decay fraction ρ in [0, 1].
	EvaporationRate float64 `yaml:"evaporation_rate" json:"evaporation_rate" validate:"gte=0,lte=1"`

	// Alpha weights pheromone, Beta weights inverse cost.
	Alpha float64 `yaml:"alpha" json:"alpha" validate:"gte=0"`
	Beta  float64 `yaml:"beta" json:"beta" validate:"gte=0"`

	// ConvergenceThreshold stops the colony once the spread of normalized
	// scores in a round drops below it.
	ConvergenceThreshold float64 `yaml:"convergence_threshold" json:"convergence_threshold" validate:"gte=0"`

	StartCity  int `yaml:"start_city" json:"start_city" validate:"gte=0"`
	TargetCity int `yaml:"target_city" json:"target_city" validate:"gte=0"`

	// TimeLimit is accepted and passed to each walk but not enforced.
	TimeLimit time.Duration `yaml:"time_limit" json:"time_limit" validate:"gte=0"`

	// UseBonus scores paths by visited bonus / total cost instead of 1 / total cost.
	UseBonus bool `yaml:"use_bonus" json:"use_bonus"`

	// ParallelAnts is the number of workers walking ants within a round.
	ParallelAnts int `yaml:"parallel_ants" json:"parallel_ants" validate:"min=1"`
}

// DefaultConfig returns the stock parameters.
func DefaultConfig() Config {
	return Config{
		AntsPerRound:         30,
		MaxRounds:            500,
		EvaporationRate:      0.5,
		Alpha:                1.0,
		Beta:                 3.0,
		ConvergenceThreshold: 0.1,
		StartCity:            0,
		TargetCity:           1,
		ParallelAnts:         1,
	}
}

// Validate checks field domains.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// ValidateFor runs Validate and additionally checks the cities against g.
func (c Config) ValidateFor(g *network.Graph) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if g == nil || g.Cost == nil {
		return fmt.Errorf("%w: nil graph", ErrInvalidConfig)
	}
	if err := g.CheckCity(c.StartCity); err != nil {
		return fmt.Errorf("%w: start city: %w", ErrInvalidConfig, err)
	}
	if err := g.CheckCity(c.TargetCity); err != nil {
		return fmt.Errorf("%w: target city: %w", ErrInvalidConfig, err)
	}

	return nil
}
