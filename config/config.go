// SPDX-License-Identifier: MIT

// Package config loads the application configuration of the antpath CLI.
//
// Precedence, lowest to highest: Default(), the YAML or JSON file, ANTPATH_*
// environment variables. The merged result is validated with struct tags.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/antpath/orchestrator"
)

// ErrInvalid wraps validation and environment parsing failures.
var ErrInvalid = errors.New("config: invalid")

var configValidate = validator.New()

// Config is the full application configuration.
type Config struct {
	Search  orchestrator.Config `yaml:"search" json:"search"`
	Log     LogConfig           `yaml:"log" json:"log"`
	Store   StoreConfig         `yaml:"store" json:"store"`
	Metrics MetricsConfig       `yaml:"metrics" json:"metrics"`
}

// LogConfig selects the logrus level and output format.
type LogConfig struct {
	Level  string `yaml:"level" json:"level" validate:"oneof=trace debug info warn warning error fatal panic"`
	Format string `yaml:"format" json:"format" validate:"oneof=auto text json"`
}

// StoreConfig selects the run history backend.
type StoreConfig struct {
	Kind string `yaml:"kind" json:"kind" validate:"oneof=memory sqlite"`
	Path string `yaml:"path" json:"path" validate:"required_if=Kind sqlite"`
}

// MetricsConfig controls the prometheus textfile dump.
type MetricsConfig struct {
	// File is written after every run when non-empty.
	File string `yaml:"file" json:"file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Search: orchestrator.DefaultConfig(),
		Log:    LogConfig{Level: "info", Format: "auto"},
		Store:  StoreConfig{Kind: "sqlite", Path: "antpath.db"},
	}
}

// Load merges defaults, the optional file at path and the environment, then validates.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := loadEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks every section, including the nested search configuration.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := c.Search.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	// Try YAML first, then JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return fmt.Errorf("parse config (tried YAML and JSON): YAML error: %v, JSON error: %w", err, jsonErr)
		}
	}

	return nil
}

type envVar struct {
	name  string
	apply func(cfg *Config, v string) error
}

func intVar(name string, field func(*Config) *int) envVar {
	return envVar{name, func(cfg *Config, v string) error {
		i, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*field(cfg) = i
		return nil
	}}
}

func floatVar(name string, field func(*Config) *float64) envVar {
	return envVar{name, func(cfg *Config, v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*field(cfg) = f
		return nil
	}}
}

func boolVar(name string, field func(*Config) *bool) envVar {
	return envVar{name, func(cfg *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*field(cfg) = b
		return nil
	}}
}

func stringVar(name string, field func(*Config) *string) envVar {
	return envVar{name, func(cfg *Config, v string) error {
		*field(cfg) = v
		return nil
	}}
}

var envVars = []envVar{
	intVar("ANTPATH_ANTS", func(c *Config) *int { return &c.Search.Colony.AntsPerRound }),
	intVar("ANTPATH_MAX_ROUNDS", func(c *Config) *int { return &c.Search.Colony.MaxRounds }),
	floatVar("ANTPATH_EVAPORATION", func(c *Config) *float64 { return &c.Search.Colony.EvaporationRate }),
	floatVar("ANTPATH_ALPHA", func(c *Config) *float64 { return &c.Search.Colony.Alpha }),
	floatVar("ANTPATH_BETA", func(c *Config) *float64 { return &c.Search.Colony.Beta }),
	floatVar("ANTPATH_THRESHOLD", func(c *Config) *float64 { return &c.Search.Colony.ConvergenceThreshold }),
	intVar("ANTPATH_START", func(c *Config) *int { return &c.Search.Colony.StartCity }),
	intVar("ANTPATH_TARGET", func(c *Config) *int { return &c.Search.Colony.TargetCity }),
	{"ANTPATH_TIME_LIMIT", func(c *Config, v string) error {
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		c.Search.Colony.TimeLimit = d
		return nil
	}},
	boolVar("ANTPATH_USE_BONUS", func(c *Config) *bool { return &c.Search.Colony.UseBonus }),
	intVar("ANTPATH_PARALLEL_ANTS", func(c *Config) *int { return &c.Search.Colony.ParallelAnts }),
	intVar("ANTPATH_COLONIES", func(c *Config) *int { return &c.Search.Colonies }),
	intVar("ANTPATH_WORKERS", func(c *Config) *int { return &c.Search.Workers }),
	{"ANTPATH_SEED", func(c *Config, v string) error {
		s, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return err
		}
		c.Search.Seed = s
		return nil
	}},
	boolVar("ANTPATH_BASELINE", func(c *Config) *bool { return &c.Search.Baseline }),
	stringVar("ANTPATH_LOG_LEVEL", func(c *Config) *string { return &c.Log.Level }),
	stringVar("ANTPATH_LOG_FORMAT", func(c *Config) *string { return &c.Log.Format }),
	stringVar("ANTPATH_STORE_KIND", func(c *Config) *string { return &c.Store.Kind }),
	stringVar("ANTPATH_STORE_PATH", func(c *Config) *string { return &c.Store.Path }),
	stringVar("ANTPATH_METRICS_FILE", func(c *Config) *string { return &c.Metrics.File }),
}

// loadEnv applies every set ANTPATH_* variable; malformed values are reported together.
func loadEnv(cfg *Config, lookup func(string) (string, bool)) error {
	var errs []error
	for _, ev := range envVars {
		v, ok := lookup(ev.name)
		if !ok || v == "" {
			continue
		}
		if err := ev.apply(cfg, v); err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: %w", ev.name, v, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}

	return nil
}
