// SPDX-License-Identifier: MIT

package orchestrator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/antpath/colony"
)

// ErrInvalidConfig wraps orchestration configuration failures.
var ErrInvalidConfig = errors.New("orchestrator: invalid config")

var configValidate = validator.New()

// Config is the orchestration configuration.
type Config struct {
	Colony colony.Config `yaml:"colony" json:"colony"`

	// Colonies is the number of independent colonies.
	Colonies int `yaml:"colonies" json:"colonies" validate:"min=1"`

	// Workers bounds the number of colonies running at once.
	Workers int `yaml:"workers" json:"workers" validate:"min=1"`

	// Seed is the run seed; colony seeds are derived from it.
	Seed int64 `yaml:"seed" json:"seed"`

	// Baseline computes the exact cheapest route for comparison.
	Baseline bool `yaml:"baseline" json:"baseline"`
}

// DefaultConfig returns four sequential colonies with default colony settings.
func DefaultConfig() Config {
	return Config{
		Colony:   colony.DefaultConfig(),
		Colonies: 4,
		Workers:  1,
		Seed:     1,
	}
}

// Validate checks the orchestration fields and the nested colony config.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := c.Colony.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
