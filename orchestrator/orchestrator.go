// SPDX-License-Identifier: MIT

package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/antpath/colony"
	"github.com/katalvlaran/antpath/dijkstra"
	"github.com/katalvlaran/antpath/logging"
	"github.com/katalvlaran/antpath/network"
	"github.com/katalvlaran/antpath/pool"
	"github.com/katalvlaran/antpath/rng"
	"github.com/katalvlaran/antpath/walk"
)

// ErrAllColoniesFailed is returned when no colony produced a path.
var ErrAllColoniesFailed = errors.New("orchestrator: all colonies failed")

// Baseline compares the winning route with the exact optimum.
type Baseline struct {
	Cost float64   `json:"cost"`
	Path walk.Path `json:"path"`
	// Gap is (found - optimal) / optimal.
	Gap float64 `json:"gap"`
	// Err is set when the baseline could not be computed.
	Err string `json:"err,omitempty"`
}

// Summary describes one orchestration run.
type Summary struct {
	RunID     string    `json:"run_id"`
	Graph     string    `json:"graph"`
	Seed      int64     `json:"seed"`
	StartedAt time.Time `json:"started_at"`
	Config    Config    `json:"config"`

	BestPath  walk.Path `json:"best_path"`
	BestScore float64   `json:"best_score"`
	BestCost  float64   `json:"best_cost"`

	// Winner is the index of the winning colony, -1 when all failed.
	Winner int `json:"winner"`
	// Rounds is the round count of the winning colony.
	Rounds int `json:"rounds"`

	Elapsed  time.Duration   `json:"elapsed"`
	Colonies []colony.Result `json:"colonies"`
	Baseline *Baseline       `json:"baseline,omitempty"`
}

// Failed reports whether no colony found a path.
func (s Summary) Failed() bool { return s.Winner < 0 }

// Select returns the index of the highest-scoring non-empty result (ties keep
// the earliest), or ErrAllColoniesFailed.
func Select(results []colony.Result) (int, error) {
	var (
		best  = -1
		score float64
		i     int
	)
	for i = range results {
		if results[i].Empty() {
			continue
		}
		if best < 0 || results[i].Score > score {
			best, score = i, results[i].Score
		}
	}
	if best < 0 {
		return -1, ErrAllColoniesFailed
	}

	return best, nil
}

// Run executes cfg.Colonies colonies on g and selects the best result.
//
// Stage 1 (Validate): configuration against g.
// Stage 2 (Colonies): one pool task per colony with a derived seed.
// Stage 3 (Select): best non-empty result, optional exact baseline.
//
// On ErrAllColoniesFailed the returned Summary still carries every colony result.
func Run(ctx context.Context, g *network.Graph, cfg Config) (Summary, error) {
	// Stage 1: validate.
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}
	if err := cfg.Colony.ValidateFor(g); err != nil {
		return Summary{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	sum := Summary{
		RunID:     uuid.NewString(),
		Graph:     g.Name,
		Seed:      cfg.Seed,
		StartedAt: time.Now().UTC(),
		Config:    cfg,
		Winner:    -1,
	}
	ctx, span := otel.Tracer("orchestrator").Start(ctx, "orchestrator.Run",
		trace.WithAttributes(
			attribute.String("run_id", sum.RunID),
			attribute.Int("colonies", cfg.Colonies),
			attribute.Int("workers", cfg.Workers),
		),
	)
	defer span.End()
	ctx = logging.WithFields(ctx, logrus.Fields{"run": sum.RunID})
	log := logging.Logger(ctx)

	// Stage 2: colonies.
	tasks := make([]pool.Task[colony.Result], cfg.Colonies)
	var i int
	for i = range tasks {
		seed := rng.DeriveSeed(cfg.Seed, uint64(i))
		cctx := logging.WithFields(ctx, logrus.Fields{"colony": i})
		tasks[i] = func(context.Context) (colony.Result, error) {
			return colony.Run(cctx, g, cfg.Colony, seed)
		}
	}
	results, err := pool.Run(ctx, cfg.Workers, tasks)
	sum.Elapsed = time.Since(sum.StartedAt)
	runDuration.Observe(sum.Elapsed.Seconds())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "colony failed")
		runsTotal.WithLabelValues("error").Inc()
		return Summary{}, err
	}
	sum.Colonies = results

	// Stage 3: select.
	winner, err := Select(results)
	if err != nil {
		span.SetStatus(codes.Error, "all colonies failed")
		runsTotal.WithLabelValues("failed").Inc()
		log.WithField("colonies", cfg.Colonies).Warn("no colony found a path")
		return sum, err
	}
	best := results[winner]
	sum.Winner = winner
	sum.BestPath = best.Path
	sum.BestScore = best.Score
	sum.BestCost = best.Evaluation.TotalCost
	sum.Rounds = best.Rounds

	if cfg.Baseline {
		sum.Baseline = baseline(g, cfg.Colony, sum.BestCost)
	}
	runsTotal.WithLabelValues("ok").Inc()
	span.SetAttributes(
		attribute.Int("winner", winner),
		attribute.Float64("best_score", sum.BestScore),
	)
	log.WithFields(logrus.Fields{
		"winner":  winner,
		"score":   sum.BestScore,
		"rounds":  sum.Rounds,
		"elapsed": sum.Elapsed,
	}).Info("orchestration finished")

	return sum, nil
}

// baseline computes the exact route for the configured endpoints and the gap
// of found against it.
func baseline(g *network.Graph, cfg colony.Config, found float64) *Baseline {
	route, err := dijkstra.ShortestPath(g.Cost, cfg.StartCity, cfg.TargetCity)
	if err != nil {
		return &Baseline{Err: err.Error()}
	}
	b := &Baseline{Cost: route.Cost, Path: make(walk.Path, len(route.Hops))}
	for i, h := range route.Hops {
		b.Path[i] = walk.Transition{Mode: h.Mode, From: h.From, To: h.To}
	}
	if route.Cost > 0 {
		b.Gap = (found - route.Cost) / route.Cost
	}

	return b
}
