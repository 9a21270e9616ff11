// SPDX-License-Identifier: MIT

package colony

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/antpath/logging"
	"github.com/katalvlaran/antpath/network"
	"github.com/katalvlaran/antpath/pheromone"
	"github.com/katalvlaran/antpath/pool"
	"github.com/katalvlaran/antpath/rng"
	"github.com/katalvlaran/antpath/score"
	"github.com/katalvlaran/antpath/walk"
)

// ErrColonyAborted is reported by Result.Err when more than half of a round's
// ants were lost.
var ErrColonyAborted = errors.New("colony: aborted, majority of ants lost")

// Termination tells why a colony stopped.
type Termination int

const (
	// Converged: the normalized score spread fell below the threshold.
	Converged Termination = iota + 1
	// RoundCap: the round limit was reached first.
	RoundCap
	// Aborted: a round lost more than half of its ants.
	Aborted
)

// String returns the label used in logs and metrics.
func (t Termination) String() string {
	switch t {
	case Converged:
		return "converged"
	case RoundCap:
		return "round_cap"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// MarshalText encodes the label.
func (t Termination) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText decodes a label produced by MarshalText.
func (t *Termination) UnmarshalText(b []byte) error {
	switch string(b) {
	case "converged":
		*t = Converged
	case "round_cap":
		*t = RoundCap
	case "aborted":
		*t = Aborted
	default:
		return fmt.Errorf("colony: unknown termination %q", b)
	}
	return nil
}

// RoundStats summarizes one round.
type RoundStats struct {
	Round     int     `json:"round"`
	Succeeded int     `json:"succeeded"`
	Lost      int     `json:"lost"`
	Undefined int     `json:"undefined"`
	Best      float64 `json:"best"`
	Mean      float64 `json:"mean"`
	Metric    float64 `json:"metric"`
}

// Result is the outcome of one colony.
type Result struct {
	Seed        int64            `json:"seed"`
	Path        walk.Path        `json:"path"`
	Score       float64          `json:"score"`
	Evaluation  score.Evaluation `json:"evaluation"`
	Rounds      int              `json:"rounds"`
	Termination Termination      `json:"termination"`
	Walks       int              `json:"walks"`
	LostAnts    int              `json:"lost_ants"`
	History     []RoundStats     `json:"history,omitempty"`
	Elapsed     time.Duration    `json:"elapsed"`
}

// Empty reports whether the colony produced no path.
func (r Result) Empty() bool { return len(r.Path) == 0 }

// Err returns ErrColonyAborted for an aborted colony and nil otherwise.
func (r Result) Err() error {
	if r.Termination == Aborted {
		return ErrColonyAborted
	}
	return nil
}

// Run executes one colony on g with the given seed.
//
// Stage 1 (Validate): cfg against g; build the pheromone field.
// Stage 2 (Rounds): walk, score, abort check, deposit, convergence metric.
// Stage 3 (Finalize): termination kind, metrics, span attributes.
//
// The returned error covers invalid input and context cancellation; an
// aborted colony is a normal Result (see Result.Err).
func Run(ctx context.Context, g *network.Graph, cfg Config, seed int64) (Result, error) {
	// Stage 1: validate.
	if err := cfg.ValidateFor(g); err != nil {
		return Result{}, err
	}
	field, err := pheromone.NewField(g.Cost)
	if err != nil {
		return Result{}, fmt.Errorf("colony: %w", err)
	}

	ctx, span := otel.Tracer("colony").Start(ctx, "colony.Run",
		trace.WithAttributes(
			attribute.Int64("seed", seed),
			attribute.Int("ants_per_round", cfg.AntsPerRound),
		),
	)
	defer span.End()

	var (
		log    = logging.Logger(ctx)
		start  = time.Now()
		res    = Result{Seed: seed}
		params = walk.Params{
			Start:     cfg.StartCity,
			Target:    cfg.TargetCity,
			Alpha:     cfg.Alpha,
			Beta:      cfg.Beta,
			TimeLimit: cfg.TimeLimit,
		}
		metric = cfg.ConvergenceThreshold
		round  int
		walks  []walk.Result
	)

	// Stage 2: rounds.
	for metric >= cfg.ConvergenceThreshold && round <= cfg.MaxRounds {
		if err = ctx.Err(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "cancelled")
			return Result{}, err
		}

		walks, err = walkRound(ctx, g, field.Snapshot(), params, cfg, seed, round)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "round failed")
			return Result{}, err
		}
		round++
		roundsTotal.Inc()

		stats, deposits, err := res.absorb(g, walks, cfg, round)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "scoring failed")
			return Result{}, err
		}
		res.History = append(res.History, stats)

		if 2*stats.Lost > cfg.AntsPerRound {
			log.WithFields(logrus.Fields{"round": round, "lost": stats.Lost}).Warn("colony aborted: majority of ants lost")
			aborted := Result{
				Seed:        seed,
				Rounds:      round,
				Termination: Aborted,
				Walks:       res.Walks,
				LostAnts:    res.LostAnts,
				History:     res.History,
				Elapsed:     time.Since(start),
			}
			finish(span, aborted)
			return aborted, nil
		}

		if err = field.Update(deposits, cfg.EvaporationRate); err != nil {
			return Result{}, fmt.Errorf("colony: %w", err)
		}
		metric = stats.Metric

		log.WithFields(logrus.Fields{
			"round":  round,
			"lost":   stats.Lost,
			"best":   res.Score,
			"metric": metric,
		}).Debug("round finished")
	}

	// Stage 3: finalize.
	res.Rounds = round
	res.Elapsed = time.Since(start)
	if metric < cfg.ConvergenceThreshold {
		res.Termination = Converged
	} else {
		res.Termination = RoundCap
	}
	finish(span, res)

	log.WithFields(logrus.Fields{
		"rounds":      res.Rounds,
		"score":       res.Score,
		"termination": res.Termination.String(),
	}).Info("colony finished")

	return res, nil
}

// walkRound walks every ant of a round against the frozen snapshot.
func walkRound(ctx context.Context, g *network.Graph, snapshot *pheromone.Field, params walk.Params,
	cfg Config, seed int64, round int) ([]walk.Result, error) {
	tasks := make([]pool.Task[walk.Result], cfg.AntsPerRound)
	var ant int
	for ant = range tasks {
		stream := uint64(round*cfg.AntsPerRound + ant)
		tasks[ant] = func(context.Context) (walk.Result, error) {
			return walk.Construct(g, snapshot, params, rng.Derive(seed, stream))
		}
	}

	return pool.Run(ctx, cfg.ParallelAnts, tasks)
}

// absorb scores the walks of one round in ant order, updates the running best
// and counters, and returns the round statistics and pheromone deposits.
func (r *Result) absorb(g *network.Graph, walks []walk.Result, cfg Config, round int) (RoundStats, []pheromone.Deposit, error) {
	var (
		stats    = RoundStats{Round: round}
		deposits = make([]pheromone.Deposit, 0, len(walks))
		scores   = make([]float64, 0, len(walks))
		opts     = score.Options{UseBonus: cfg.UseBonus}
	)
	for _, w := range walks {
		r.Walks++
		antsWalkedTotal.Inc()
		walkLength.Observe(float64(w.Steps))
		if w.Lost {
			stats.Lost++
			continue
		}
		ev, err := score.Evaluate(g, w.Travelled, opts)
		if errors.Is(err, score.ErrScoreUndefined) {
			stats.Lost++
			stats.Undefined++
			continue
		}
		if err != nil {
			return stats, nil, fmt.Errorf("colony: %w", err)
		}
		stats.Succeeded++
		deposits = append(deposits, pheromone.Deposit{Travelled: w.Travelled, Score: ev.Score})
		scores = append(scores, ev.Score)
		if ev.Score > stats.Best {
			stats.Best = ev.Score
		}
		if ev.Score > r.Score {
			r.Score = ev.Score
			r.Path = w.Path
			r.Evaluation = ev
		}
	}
	r.LostAnts += stats.Lost
	antsLostTotal.Add(float64(stats.Lost))
	stats.Mean, stats.Metric = spread(scores)

	return stats, deposits, nil
}

// spread returns the mean of scores and the population standard deviation of
// scores/mean. An empty or all-zero round has zero spread.
func spread(scores []float64) (mean, metric float64) {
	if len(scores) == 0 {
		return 0, 0
	}
	var s float64
	for _, v := range scores {
		s += v
	}
	mean = s / float64(len(scores))
	if mean == 0 {
		return 0, 0
	}
	var ss, d float64
	for _, v := range scores {
		d = v/mean - 1
		ss += d * d
	}

	return mean, math.Sqrt(ss / float64(len(scores)))
}

func finish(span trace.Span, res Result) {
	coloniesTotal.WithLabelValues(res.Termination.String()).Inc()
	span.SetAttributes(
		attribute.Int("rounds", res.Rounds),
		attribute.String("termination", res.Termination.String()),
		attribute.Float64("score", res.Score),
		attribute.Int("lost_ants", res.LostAnts),
	)
}
