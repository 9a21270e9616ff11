// SPDX-License-Identifier: MIT

// Package score evaluates a completed walk.
//
// The default score is the reciprocal of the total travelled cost,
//
//	score = 1 / Σ cost·visits      (NaN cost contributes 0)
//
// so cheaper routes score higher. The bonus of every city touched by the walk
// is summed into VisitedBonus; it only enters the score when Options.UseBonus
// is set, in which case score = VisitedBonus / Σ cost·visits.
//
// A zero total cost has no defined score and is reported as ErrScoreUndefined.
package score

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/antpath/network"
	"github.com/katalvlaran/antpath/tensor"
)

var (
	// ErrScoreUndefined is returned when the travelled cost is zero (or not
	// a finite positive number), so no score can be formed.
	ErrScoreUndefined = errors.New("score: undefined for zero total cost")

	// ErrEmptyPath is returned when the travelled tensor records no transition.
	ErrEmptyPath = errors.New("score: empty path")
)

// Options selects the scoring formula.
type Options struct {
	// UseBonus switches the score to VisitedBonus / TotalCost.
	UseBonus bool
}

// Evaluation is the result of scoring one path.
type Evaluation struct {
	Score        float64 `json:"score"`
	TotalCost    float64 `json:"total_cost"`
	VisitedBonus float64 `json:"visited_bonus"`
}

// Evaluate scores a travelled count tensor against g.
//
// Complexity: O(nnz(travelled) + C).
func Evaluate(g *network.Graph, travelled *tensor.Counts, opts Options) (Evaluation, error) {
	if g == nil || g.Cost == nil || travelled == nil {
		return Evaluation{}, fmt.Errorf("Evaluate: %w", tensor.ErrDimensionMismatch)
	}
	if travelled.Total() == 0 {
		return Evaluation{}, fmt.Errorf("Evaluate: %w", ErrEmptyPath)
	}
	total, err := g.Cost.DotCounts(travelled)
	if err != nil {
		return Evaluation{}, fmt.Errorf("Evaluate: %w", err)
	}

	visited := make([]bool, g.NumCities())
	travelled.Each(func(_, from, to, _ int) {
		visited[from] = true
		visited[to] = true
	})

	return finish(total, sumVisited(g.Bonus, visited), opts)
}

// EvaluateMatrix scores a single-mode C×C travelled matrix against a C×C cost
// matrix. NaN cost contributes 0; a city is visited when it is the source of
// at least one travelled edge.
//
// Complexity: O(C²).
func EvaluateMatrix(cost [][]float64, bonus []float64, travelled [][]int, opts Options) (Evaluation, error) {
	n := len(cost)
	if n == 0 || len(bonus) != n || len(travelled) != n {
		return Evaluation{}, fmt.Errorf("EvaluateMatrix: %w", tensor.ErrDimensionMismatch)
	}
	var (
		total   float64
		steps   int
		visited = make([]bool, n)
		i, j    int
	)
	for i = 0; i < n; i++ {
		if len(cost[i]) != n || len(travelled[i]) != n {
			return Evaluation{}, fmt.Errorf("EvaluateMatrix: row %d: %w", i, tensor.ErrDimensionMismatch)
		}
		for j = 0; j < n; j++ {
			if travelled[i][j] <= 0 {
				continue
			}
			steps += travelled[i][j]
			visited[i] = true
			if !math.IsNaN(cost[i][j]) {
				total += cost[i][j] * float64(travelled[i][j])
			}
		}
	}
	if steps == 0 {
		return Evaluation{}, fmt.Errorf("EvaluateMatrix: %w", ErrEmptyPath)
	}

	return finish(total, sumVisited(bonus, visited), opts)
}

func sumVisited(bonus []float64, visited []bool) float64 {
	var sum float64
	for i, v := range visited {
		if v {
			sum += bonus[i]
		}
	}

	return sum
}

func finish(total, bonus float64, opts Options) (Evaluation, error) {
	ev := Evaluation{TotalCost: total, VisitedBonus: bonus}
	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return ev, fmt.Errorf("total cost %g: %w", total, ErrScoreUndefined)
	}
	if opts.UseBonus {
		ev.Score = bonus / total
	} else {
		ev.Score = 1 / total
	}

	return ev, nil
}
