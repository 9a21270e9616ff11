package builder_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/antpath/builder"
	"github.com/katalvlaran/antpath/dijkstra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomNetwork_Deterministic(t *testing.T) {
	a, err := builder.RandomNetwork(12, builder.WithSeed(7))
	require.NoError(t, err)
	b, err := builder.RandomNetwork(12, builder.WithSeed(7))
	require.NoError(t, err)
	c, err := builder.RandomNetwork(12, builder.WithSeed(8))
	require.NoError(t, err)

	assert.True(t, a.Cost.Equal(b.Cost))
	assert.Equal(t, a.Bonus, b.Bonus)
	assert.False(t, a.Cost.Equal(c.Cost))
	assert.Equal(t, []string{"road", "rail", "air"}, a.Modes)
	assert.Equal(t, "city11", a.Cities[11])
}

func TestRandomNetwork_BackboneConnects(t *testing.T) {
	g, err := builder.RandomNetwork(15, builder.WithSeed(3), builder.WithDensity(0))
	require.NoError(t, err)

	dist, err := dijkstra.Distances(g.Cost, 0)
	require.NoError(t, err)
	for i, d := range dist {
		assert.False(t, math.IsInf(d, 1), "city %d unreachable", i)
	}

	// only the chain exists
	w, _ := g.Cost.At(0, 0, 2)
	assert.True(t, math.IsNaN(w))
	w, _ = g.Cost.At(1, 0, 1)
	assert.True(t, math.IsNaN(w))
}

func TestRandomNetwork_RangesAndSymmetry(t *testing.T) {
	g, err := builder.RandomNetwork(8,
		builder.WithSeed(11),
		builder.WithModes("bus"),
		builder.WithModeFactors(2),
		builder.WithDensity(1),
		builder.WithBackbone(false),
		builder.WithSymmetric(true),
		builder.WithCostRange(3, 4),
		builder.WithBonusRange(5, 6),
		builder.WithCityPrefix("stop"),
		builder.WithName("buses"),
	)
	require.NoError(t, err)
	assert.Equal(t, "buses", g.Name)
	assert.Equal(t, "stop0", g.Cities[0])

	for i := 0; i < 8; i++ {
		assert.GreaterOrEqual(t, g.Bonus[i], 5.0)
		assert.Less(t, g.Bonus[i], 6.0)
		for j := 0; j < 8; j++ {
			w, _ := g.Cost.At(0, i, j)
			if i == j {
				assert.True(t, math.IsNaN(w))
				continue
			}
			assert.GreaterOrEqual(t, w, 6.0)
			assert.Less(t, w, 8.0)
			back, _ := g.Cost.At(0, j, i)
			assert.Equal(t, w, back)
		}
	}
}

func TestRandomNetwork_Errors(t *testing.T) {
	_, err := builder.RandomNetwork(1)
	assert.ErrorIs(t, err, builder.ErrTooFewCities)

	_, err = builder.RandomNetwork(4, builder.WithDensity(1.2))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.RandomNetwork(4, builder.WithCostRange(0, 1))
	assert.ErrorIs(t, err, builder.ErrOptionViolation)

	_, err = builder.RandomNetwork(4, builder.WithBonusRange(2, 1))
	assert.ErrorIs(t, err, builder.ErrOptionViolation)

	_, err = builder.RandomNetwork(4, builder.WithModes())
	assert.ErrorIs(t, err, builder.ErrOptionViolation)

	_, err = builder.RandomNetwork(4, builder.WithModeFactors(1, -1))
	assert.ErrorIs(t, err, builder.ErrOptionViolation)
}
