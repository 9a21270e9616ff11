// SPDX-License-Identifier: MIT

package pheromone

import (
	"fmt"
	"math"

	"github.com/katalvlaran/antpath/tensor"
)

// Init returns cost / ‖cost‖₂, where the norm is taken over finite entries.
// NaN entries stay NaN in the result.
//
// Complexity: O(M·C²).
func Init(cost *tensor.Dense3) (*tensor.Dense3, error) {
	if cost == nil {
		return nil, fmt.Errorf("Init: %w", ErrNilTensor)
	}
	norm, err := cost.NaNNorm()
	if err != nil || norm == 0 {
		return nil, fmt.Errorf("Init: %w", ErrDegenerateCost)
	}

	return cost.Scale(1 / norm), nil
}

// Probabilities computes the normalized transition surface for current.
// The result is flattened mode-major (index mode·C + to) and written into dst
// when it has enough capacity. Entries that cannot be chosen are NaN; the
// remaining entries sum to 1.
//
// Stage 1 (Validate): shapes and city index.
// Stage 2 (Desirability): pher^α · (1/cost)^β, NaN for zero/NaN/Inf cost.
// Stage 3 (Normalize): divide by the sum over non-NaN entries.
//
// Complexity: O(M·C).
func Probabilities(current int, pher, cost *tensor.Dense3, alpha, beta float64, dst []float64) ([]float64, error) {
	// Stage 1: validate.
	if pher == nil || cost == nil {
		return nil, fmt.Errorf("Probabilities: %w", ErrNilTensor)
	}
	if !pher.SameShape(cost) {
		return nil, fmt.Errorf("Probabilities: %w", tensor.ErrDimensionMismatch)
	}
	out, err := pher.Surface(current, dst)
	if err != nil {
		return nil, fmt.Errorf("Probabilities: %w", err)
	}
	costs, err := cost.Surface(current, nil)
	if err != nil {
		return nil, fmt.Errorf("Probabilities: %w", err)
	}

	// Stage 2: desirability.
	var (
		i   int
		d   float64
		sum float64
	)
	for i = range out {
		d = desirability(out[i], costs[i], alpha, beta)
		out[i] = d
		if !math.IsNaN(d) {
			sum += d
		}
	}
	if sum <= 0 || math.IsInf(sum, 0) {
		return nil, fmt.Errorf("Probabilities(city=%d): %w", current, ErrNoValidEdge)
	}

	// Stage 3: normalize.
	for i = range out {
		out[i] /= sum
	}

	return out, nil
}

// desirability returns p^α·(1/c)^β, or NaN when the edge is missing or the
// value is not a finite non-negative number.
func desirability(p, c, alpha, beta float64) float64 {
	if math.IsNaN(c) || c == 0 || math.IsInf(c, 0) || math.IsNaN(p) {
		return math.NaN()
	}
	d := math.Pow(p, alpha) * math.Pow(1/c, beta)
	if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		return math.NaN()
	}

	return d
}

// Sample performs roulette-wheel selection on a flattened probability surface
// of C cities per mode: it walks the cumulative sum (NaN contributes nothing)
// and returns the first selectable entry whose cumulative value reaches r.
// If rounding leaves r above the final sum, the last selectable entry wins.
//
// Complexity: O(M·C).
func Sample(probs []float64, cities int, r float64) (mode, to int, err error) {
	if cities <= 0 || len(probs) == 0 || len(probs)%cities != 0 {
		return 0, 0, fmt.Errorf("Sample: %w", tensor.ErrBadShape)
	}
	var (
		cum  float64
		last = -1
		i    int
		p    float64
	)
	for i, p = range probs {
		if math.IsNaN(p) || p <= 0 {
			continue
		}
		cum += p
		last = i
		if cum >= r {
			return i / cities, i % cities, nil
		}
	}
	if last < 0 {
		return 0, 0, fmt.Errorf("Sample: %w", ErrNoValidEdge)
	}

	return last / cities, last % cities, nil
}

// Deposit is one successful walk's contribution to a pheromone update.
type Deposit struct {
	Travelled *tensor.Counts
	Score     float64
}

// Update returns (1-evaporation)·old + Σ dᵢ.Travelled·dᵢ.Score as a new tensor.
// old is not modified. With no deposits the result is exactly
// (1-evaporation)·old.
//
// Complexity: O(M·C² + Σ nnz(dᵢ.Travelled)).
func Update(old *tensor.Dense3, deposits []Deposit, evaporation float64) (*tensor.Dense3, error) {
	if old == nil {
		return nil, fmt.Errorf("Update: %w", ErrNilTensor)
	}
	if math.IsNaN(evaporation) || evaporation < 0 || evaporation > 1 {
		return nil, fmt.Errorf("Update(%g): %w", evaporation, ErrInvalidRate)
	}
	next := old.Scale(1 - evaporation)
	var i int
	for i = range deposits {
		if err := next.AddCounts(deposits[i].Travelled, deposits[i].Score); err != nil {
			return nil, fmt.Errorf("Update: deposit %d: %w", i, err)
		}
	}

	return next, nil
}

// Field owns the pheromone levels of one colony together with the cost
// tensor they were initialized from.
type Field struct {
	cost   *tensor.Dense3
	levels *tensor.Dense3
}

// NewField initializes a field from cost via Init.
func NewField(cost *tensor.Dense3) (*Field, error) {
	levels, err := Init(cost)
	if err != nil {
		return nil, err
	}

	return &Field{cost: cost, levels: levels}, nil
}

// Levels returns the current levels. Callers must treat the tensor as read-only.
func (f *Field) Levels() *tensor.Dense3 { return f.levels }

// Cost returns the cost tensor the field was built from.
func (f *Field) Cost() *tensor.Dense3 { return f.cost }

// Probabilities is Probabilities(current, f.Levels(), f.Cost(), alpha, beta, dst).
func (f *Field) Probabilities(current int, alpha, beta float64, dst []float64) ([]float64, error) {
	return Probabilities(current, f.levels, f.cost, alpha, beta, dst)
}

// Update replaces the levels with Update(f.Levels(), deposits, evaporation).
// On error the field is left unchanged.
func (f *Field) Update(deposits []Deposit, evaporation float64) error {
	next, err := Update(f.levels, deposits, evaporation)
	if err != nil {
		return err
	}
	f.levels = next

	return nil
}

// Snapshot returns a read-only view of the current levels. Later calls to
// Update on f do not affect the snapshot.
func (f *Field) Snapshot() *Field {
	return &Field{cost: f.cost, levels: f.levels}
}
