package score_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/antpath/network"
	"github.com/katalvlaran/antpath/score"
	"github.com/katalvlaran/antpath/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nan = math.NaN()

func line(t *testing.T) *network.Graph {
	t.Helper()
	cost, err := tensor.FromSlices([][][]float64{
		{{nan, 2, 9}, {nan, nan, 3}, {nan, nan, nan}},
		{{nan, 0, nan}, {nan, nan, nan}, {nan, nan, nan}},
	})
	require.NoError(t, err)
	g, err := network.New(cost, []float64{1, 2, 4})
	require.NoError(t, err)

	return g
}

func counts(t *testing.T, g *network.Graph, triples ...[3]int) *tensor.Counts {
	t.Helper()
	k, err := tensor.NewCounts(g.NumModes(), g.NumCities())
	require.NoError(t, err)
	for _, tr := range triples {
		require.NoError(t, k.Inc(tr[0], tr[1], tr[2]))
	}

	return k
}

func TestEvaluate_Reciprocal(t *testing.T) {
	g := line(t)

	ev, err := score.Evaluate(g, counts(t, g, [3]int{0, 0, 1}, [3]int{0, 1, 2}), score.Options{})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, ev.TotalCost, 1e-12)
	assert.InDelta(t, 0.2, ev.Score, 1e-12)
	assert.InDelta(t, 7.0, ev.VisitedBonus, 1e-12)

	withBonus, err := score.Evaluate(g, counts(t, g, [3]int{0, 0, 1}, [3]int{0, 1, 2}), score.Options{UseBonus: true})
	require.NoError(t, err)
	assert.InDelta(t, 7.0/5.0, withBonus.Score, 1e-12)
}

func TestEvaluate_Monotonic(t *testing.T) {
	g := line(t)
	cheap, err := score.Evaluate(g, counts(t, g, [3]int{0, 0, 1}, [3]int{0, 1, 2}), score.Options{})
	require.NoError(t, err)
	dear, err := score.Evaluate(g, counts(t, g, [3]int{0, 0, 2}), score.Options{})
	require.NoError(t, err)

	require.Less(t, cheap.TotalCost, dear.TotalCost)
	assert.Greater(t, cheap.Score, dear.Score)
}

func TestEvaluate_RepeatedEdgeCountsTwice(t *testing.T) {
	g := line(t)
	ev, err := score.Evaluate(g, counts(t, g, [3]int{0, 0, 1}, [3]int{0, 0, 1}), score.Options{})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, ev.TotalCost, 1e-12)
}

func TestEvaluate_Undefined(t *testing.T) {
	g := line(t)

	ev, err := score.Evaluate(g, counts(t, g, [3]int{1, 0, 1}), score.Options{})
	assert.ErrorIs(t, err, score.ErrScoreUndefined)
	assert.Zero(t, ev.Score)
	assert.InDelta(t, 3.0, ev.VisitedBonus, 1e-12)

	// travelling only NaN entries also sums to zero
	_, err = score.Evaluate(g, counts(t, g, [3]int{0, 2, 0}), score.Options{})
	assert.ErrorIs(t, err, score.ErrScoreUndefined)

	_, err = score.Evaluate(g, counts(t, g), score.Options{})
	assert.ErrorIs(t, err, score.ErrEmptyPath)
}

func TestEvaluate_ShapeMismatch(t *testing.T) {
	g := line(t)
	k, err := tensor.NewCounts(1, 3)
	require.NoError(t, err)
	require.NoError(t, k.Inc(0, 0, 1))

	_, err = score.Evaluate(g, k, score.Options{})
	assert.ErrorIs(t, err, tensor.ErrDimensionMismatch)
}

func TestEvaluateMatrix(t *testing.T) {
	cost := [][]float64{{nan, 2, 9}, {nan, nan, 3}, {nan, nan, nan}}
	bonus := []float64{1, 2, 4}

	ev, err := score.EvaluateMatrix(cost, bonus, [][]int{{0, 1, 0}, {0, 0, 1}, {0, 0, 0}}, score.Options{})
	require.NoError(t, err)
	assert.InDelta(t, 0.2, ev.Score, 1e-12)
	// only source cities count as visited
	assert.InDelta(t, 3.0, ev.VisitedBonus, 1e-12)

	_, err = score.EvaluateMatrix(cost, bonus, [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, score.Options{})
	assert.ErrorIs(t, err, score.ErrEmptyPath)

	_, err = score.EvaluateMatrix(cost, bonus[:2], [][]int{{0}}, score.Options{})
	assert.ErrorIs(t, err, tensor.ErrDimensionMismatch)
}
