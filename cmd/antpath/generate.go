// SPDX-License-Identifier: MIT

package main

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/antpath/builder"
	"github.com/katalvlaran/antpath/logging"
	"github.com/katalvlaran/antpath/network"
)

type generateOptions struct {
	cities    int
	seed      int64
	density   float64
	modes     []string
	name      string
	symmetric bool
	costMin   float64
	costMax   float64
	out       string
}

func newGenerateCmd(_ *rootOptions) *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random multi-modal network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.cities, "cities", "n", 10, "number of cities")
	f.Int64Var(&opts.seed, "seed", 1, "generator seed")
	f.Float64Var(&opts.density, "density", 0.3, "edge probability per ordered pair and mode")
	f.StringSliceVar(&opts.modes, "modes", []string{"road", "rail", "air"}, "mode names")
	f.StringVar(&opts.name, "name", "", "network name")
	f.BoolVar(&opts.symmetric, "symmetric", false, "mirror every edge")
	f.Float64Var(&opts.costMin, "cost-min", 1, "minimum base edge cost")
	f.Float64Var(&opts.costMax, "cost-max", 10, "maximum base edge cost")
	f.StringVarP(&opts.out, "out", "o", "", "output file (.yaml or .json); stdout when empty")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	g, err := builder.RandomNetwork(opts.cities,
		builder.WithSeed(opts.seed),
		builder.WithDensity(opts.density),
		builder.WithModes(opts.modes...),
		builder.WithName(opts.name),
		builder.WithSymmetric(opts.symmetric),
		builder.WithCostRange(opts.costMin, opts.costMax),
	)
	if err != nil {
		return err
	}

	if opts.out == "" {
		return g.Encode(cmd.OutOrStdout(), network.FormatYAML)
	}
	if err = g.Save(opts.out); err != nil {
		return err
	}
	logging.Logger(cmd.Context()).WithFields(logrus.Fields{
		"file":   opts.out,
		"cities": g.NumCities(),
		"modes":  strings.Join(g.Modes, ","),
	}).Info("network written")

	return nil
}
