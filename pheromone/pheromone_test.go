package pheromone_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/antpath/pheromone"
	"github.com/katalvlaran/antpath/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nan = math.NaN()

// fan: city 0 reaches 1 by two modes and 2 by one; city 2 is a dead end.
func fan(t *testing.T) *tensor.Dense3 {
	t.Helper()
	cost, err := tensor.FromSlices([][][]float64{
		{
			{nan, 1, 2},
			{1, nan, 4},
			{nan, nan, nan},
		},
		{
			{nan, 2, 0},
			{nan, nan, nan},
			{nan, nan, nan},
		},
	})
	require.NoError(t, err)

	return cost
}

func TestInit_UnitNorm(t *testing.T) {
	cost := fan(t)
	pher, err := pheromone.Init(cost)
	require.NoError(t, err)
	require.True(t, pher.SameShape(cost))

	sq, _ := pher.NaNSumSquares()
	assert.InDelta(t, 1.0, sq, 1e-12)

	v, _ := pher.At(0, 2, 2)
	assert.True(t, math.IsNaN(v))
}

func TestInit_Degenerate(t *testing.T) {
	empty, err := tensor.Filled(1, 2, nan)
	require.NoError(t, err)
	_, err = pheromone.Init(empty)
	assert.ErrorIs(t, err, pheromone.ErrDegenerateCost)

	zeros, err := tensor.New(1, 2)
	require.NoError(t, err)
	_, err = pheromone.Init(zeros)
	assert.ErrorIs(t, err, pheromone.ErrDegenerateCost)
}

func TestProbabilities_SumToOne(t *testing.T) {
	cost := fan(t)
	pher, err := pheromone.Init(cost)
	require.NoError(t, err)

	for _, beta := range []float64{0.5, 1, 3} {
		probs, err := pheromone.Probabilities(0, pher, cost, 1, beta, nil)
		require.NoError(t, err)
		require.Len(t, probs, 6)

		var sum float64
		for _, p := range probs {
			if !math.IsNaN(p) {
				sum += p
			}
		}
		assert.InDelta(t, 1.0, sum, 1e-12)

		// zero-cost edge (mode 1 → city 2) is never selectable
		assert.True(t, math.IsNaN(probs[1*3+2]))
		assert.True(t, math.IsNaN(probs[0]))
	}
}

func TestProbabilities_CheaperIsLikelier(t *testing.T) {
	cost := fan(t)
	pher, err := pheromone.Init(cost)
	require.NoError(t, err)

	probs, err := pheromone.Probabilities(0, pher, cost, 1, 3, nil)
	require.NoError(t, err)
	// mode 0 → city 1 (cost 1) vs mode 0 → city 2 (cost 2)
	assert.Greater(t, probs[1], probs[2])
}

func TestProbabilities_DeadEnd(t *testing.T) {
	cost := fan(t)
	pher, err := pheromone.Init(cost)
	require.NoError(t, err)

	_, err = pheromone.Probabilities(2, pher, cost, 1, 1, nil)
	assert.ErrorIs(t, err, pheromone.ErrNoValidEdge)

	_, err = pheromone.Probabilities(5, pher, cost, 1, 1, nil)
	assert.ErrorIs(t, err, tensor.ErrOutOfRange)
}

func TestSample_Roulette(t *testing.T) {
	probs := []float64{nan, 0.25, 0, nan, 0.75, nan}

	tests := []struct {
		r        float64
		mode, to int
	}{
		{0, 0, 1},
		{0.25, 0, 1},
		{0.26, 1, 1},
		{0.9999, 1, 1},
		{1.5, 1, 1}, // above the total: last selectable entry
	}
	for _, tc := range tests {
		mode, to, err := pheromone.Sample(probs, 3, tc.r)
		require.NoError(t, err)
		assert.Equal(t, tc.mode, mode, "r=%g", tc.r)
		assert.Equal(t, tc.to, to, "r=%g", tc.r)
	}

	_, _, err := pheromone.Sample([]float64{nan, 0, nan}, 3, 0.1)
	assert.ErrorIs(t, err, pheromone.ErrNoValidEdge)
	_, _, err = pheromone.Sample(probs, 4, 0.1)
	assert.ErrorIs(t, err, tensor.ErrBadShape)
}

func TestUpdate_NoDeposits(t *testing.T) {
	cost := fan(t)
	old, err := pheromone.Init(cost)
	require.NoError(t, err)

	for _, rate := range []float64{0, 0.3, 0.5, 1} {
		next, err := pheromone.Update(old, nil, rate)
		require.NoError(t, err)
		assert.True(t, next.Equal(old.Scale(1-rate)), "rate=%g", rate)
	}

	_, err = pheromone.Update(old, nil, 1.1)
	assert.ErrorIs(t, err, pheromone.ErrInvalidRate)
	_, err = pheromone.Update(old, nil, -0.1)
	assert.ErrorIs(t, err, pheromone.ErrInvalidRate)
}

func TestUpdate_Deposits(t *testing.T) {
	cost := fan(t)
	old, err := pheromone.Init(cost)
	require.NoError(t, err)

	k, err := tensor.NewCounts(2, 3)
	require.NoError(t, err)
	require.NoError(t, k.Inc(0, 0, 1))
	require.NoError(t, k.Inc(0, 1, 2))

	next, err := pheromone.Update(old, []pheromone.Deposit{{Travelled: k, Score: 0.2}, {Travelled: k, Score: 0.3}}, 0.5)
	require.NoError(t, err)

	before, _ := old.At(0, 0, 1)
	after, _ := next.At(0, 0, 1)
	assert.InDelta(t, 0.5*before+0.5, after, 1e-12)

	untouchedBefore, _ := old.At(1, 0, 1)
	untouchedAfter, _ := next.At(1, 0, 1)
	assert.InDelta(t, 0.5*untouchedBefore, untouchedAfter, 1e-12)

	wrong, _ := tensor.NewCounts(1, 3)
	_, err = pheromone.Update(old, []pheromone.Deposit{{Travelled: wrong, Score: 1}}, 0.5)
	assert.ErrorIs(t, err, tensor.ErrDimensionMismatch)
}

func TestField_SnapshotIsFrozen(t *testing.T) {
	cost := fan(t)
	f, err := pheromone.NewField(cost)
	require.NoError(t, err)

	snap := f.Snapshot()
	k, _ := tensor.NewCounts(2, 3)
	require.NoError(t, k.Inc(0, 0, 1))
	require.NoError(t, f.Update([]pheromone.Deposit{{Travelled: k, Score: 10}}, 0.5))

	assert.False(t, snap.Levels().Equal(f.Levels()))
	assert.Same(t, cost, snap.Cost())

	ps, err := snap.Probabilities(0, 1, 1, nil)
	require.NoError(t, err)
	pf, err := f.Probabilities(0, 1, 1, nil)
	require.NoError(t, err)
	assert.Greater(t, pf[1], ps[1])

	// a failed update leaves levels untouched
	levels := f.Levels()
	assert.Error(t, f.Update(nil, 2))
	assert.Same(t, levels, f.Levels())
}
