// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/antpath/logging"
	"github.com/katalvlaran/antpath/network"
	"github.com/katalvlaran/antpath/orchestrator"
	"github.com/katalvlaran/antpath/store"
)

type solveOptions struct {
	from, to     string
	ants         int
	rounds       int
	colonies     int
	workers      int
	parallelAnts int
	seed         int64
	alpha, beta  float64
	evaporation  float64
	threshold    float64
	useBonus     bool
	baseline     bool
	noStore      bool
	jsonOut      bool
}

func newSolveCmd(root *rootOptions) *cobra.Command {
	opts := &solveOptions{}
	cmd := &cobra.Command{
		Use:   "solve <graph-file>",
		Short: "Search a network for a cheap route between two cities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, root, opts, args[0])
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.from, "from", "", "start city name or index")
	f.StringVar(&opts.to, "to", "", "target city name or index")
	f.IntVar(&opts.ants, "ants", 0, "ants per round")
	f.IntVar(&opts.rounds, "rounds", 0, "maximum rounds per colony")
	f.IntVar(&opts.colonies, "colonies", 0, "number of independent colonies")
	f.IntVar(&opts.workers, "workers", 0, "colonies run concurrently")
	f.IntVar(&opts.parallelAnts, "parallel-ants", 0, "ants walked concurrently within a round")
	f.Int64Var(&opts.seed, "seed", 0, "master seed")
	f.Float64Var(&opts.alpha, "alpha", 0, "pheromone exponent")
	f.Float64Var(&opts.beta, "beta", 0, "heuristic exponent")
	f.Float64Var(&opts.evaporation, "evaporation", 0, "evaporation rate in [0,1]")
	f.Float64Var(&opts.threshold, "threshold", 0, "convergence threshold")
	f.BoolVar(&opts.useBonus, "use-bonus", false, "score routes by collected bonus per cost")
	f.BoolVar(&opts.baseline, "baseline", false, "compare the result with the exact shortest route")
	f.BoolVar(&opts.noStore, "no-store", false, "do not record the run")
	f.BoolVar(&opts.jsonOut, "json", false, "print the summary as JSON")

	return cmd
}

func runSolve(cmd *cobra.Command, root *rootOptions, opts *solveOptions, graphPath string) error {
	ctx := cmd.Context()
	log := logging.Logger(ctx)

	g, err := network.Load(graphPath)
	if err != nil {
		return err
	}
	if g.Name == "" {
		g.Name = graphPath
	}

	search := root.cfg.Search
	flags := cmd.Flags()
	if flags.Changed("from") {
		if search.Colony.StartCity, err = resolveCity(g, opts.from); err != nil {
			return fmt.Errorf("--from: %w", err)
		}
	}
	if flags.Changed("to") {
		if search.Colony.TargetCity, err = resolveCity(g, opts.to); err != nil {
			return fmt.Errorf("--to: %w", err)
		}
	}
	if flags.Changed("ants") {
		search.Colony.AntsPerRound = opts.ants
	}
	if flags.Changed("rounds") {
		search.Colony.MaxRounds = opts.rounds
	}
	if flags.Changed("parallel-ants") {
		search.Colony.ParallelAnts = opts.parallelAnts
	}
	if flags.Changed("alpha") {
		search.Colony.Alpha = opts.alpha
	}
	if flags.Changed("beta") {
		search.Colony.Beta = opts.beta
	}
	if flags.Changed("evaporation") {
		search.Colony.EvaporationRate = opts.evaporation
	}
	if flags.Changed("threshold") {
		search.Colony.ConvergenceThreshold = opts.threshold
	}
	if flags.Changed("use-bonus") {
		search.Colony.UseBonus = opts.useBonus
	}
	if flags.Changed("colonies") {
		search.Colonies = opts.colonies
	}
	if flags.Changed("workers") {
		search.Workers = opts.workers
	}
	if flags.Changed("seed") {
		search.Seed = opts.seed
	}
	if flags.Changed("baseline") {
		search.Baseline = opts.baseline
	}

	sum, runErr := orchestrator.Run(ctx, g, search)
	if runErr != nil && !errors.Is(runErr, orchestrator.ErrAllColoniesFailed) {
		return runErr
	}

	if !opts.noStore {
		if err = root.saveRun(cmd, sum); err != nil {
			log.WithError(err).Warn("run not recorded")
		}
	}
	if err = root.writeMetrics(); err != nil {
		return err
	}

	if opts.jsonOut {
		if err = writeJSON(cmd.OutOrStdout(), sum); err != nil {
			return err
		}
	} else {
		printSummary(cmd.OutOrStdout(), g, sum)
	}

	return runErr
}

func (o *rootOptions) saveRun(cmd *cobra.Command, sum orchestrator.Summary) error {
	return o.withStore(cmd, func(s store.Store) error {
		return s.SaveRun(cmd.Context(), store.NewRunRecord(sum))
	})
}

// resolveCity accepts a city name first and falls back to a numeric index.
func resolveCity(g *network.Graph, s string) (int, error) {
	idx, err := g.CityIndex(s)
	if err == nil {
		return idx, nil
	}
	n, convErr := strconv.Atoi(s)
	if convErr != nil {
		return 0, err
	}
	if err = g.CheckCity(n); err != nil {
		return 0, err
	}

	return n, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func printSummary(w io.Writer, g *network.Graph, sum orchestrator.Summary) {
	fmt.Fprintf(w, "run %s  graph %s  seed %d\n", sum.RunID, sum.Graph, sum.Seed)

	var walks, lost int
	for _, res := range sum.Colonies {
		walks += res.Walks
		lost += res.LostAnts
	}

	if sum.Failed() {
		fmt.Fprintf(w, "no route found by %d colonies\n", len(sum.Colonies))
	} else {
		fmt.Fprintf(w, "route:   %s\n", sum.BestPath.Describe(g))
		fmt.Fprintf(w, "cost:    %s  (score %.6g)\n", humanize.Commaf(sum.BestCost), sum.BestScore)
		fmt.Fprintf(w, "winner:  colony %d of %d after %d rounds (%s)\n",
			sum.Winner, len(sum.Colonies), sum.Rounds, sum.Colonies[sum.Winner].Termination)
	}
	fmt.Fprintf(w, "walks:   %s (%s lost)\n", humanize.Comma(int64(walks)), humanize.Comma(int64(lost)))
	fmt.Fprintf(w, "elapsed: %s\n", sum.Elapsed)

	if b := sum.Baseline; b != nil {
		if b.Err != "" {
			fmt.Fprintf(w, "optimum: unavailable (%s)\n", b.Err)
		} else {
			fmt.Fprintf(w, "optimum: %s  gap %.2f%%\n", humanize.Commaf(b.Cost), 100*b.Gap)
		}
	}
}
