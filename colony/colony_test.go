package colony_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/katalvlaran/antpath/colony"
	"github.com/katalvlaran/antpath/network"
	"github.com/katalvlaran/antpath/tensor"
	"github.com/katalvlaran/antpath/walk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nan = math.NaN()

func mustGraph(t *testing.T, cost [][][]float64) *network.Graph {
	t.Helper()
	d, err := tensor.FromSlices(cost)
	require.NoError(t, err)
	g, err := network.New(d, make([]float64, d.Cities()))
	require.NoError(t, err)

	return g
}

// mesh is a complete 2-mode graph on n cities with uneven costs.
func mesh(t *testing.T, n int) *network.Graph {
	t.Helper()
	cost := make([][][]float64, 2)
	for m := range cost {
		cost[m] = make([][]float64, n)
		for i := range cost[m] {
			cost[m][i] = make([]float64, n)
			for j := range cost[m][i] {
				cost[m][i][j] = float64(1 + (i*5+j*3+m*2)%7)
			}
			cost[m][i][i] = nan
		}
	}

	return mustGraph(t, cost)
}

func TestRun_MinimalTwoCities(t *testing.T) {
	g := mustGraph(t, [][][]float64{{{nan, 2}, {nan, nan}}})
	cfg := colony.DefaultConfig()
	cfg.AntsPerRound = 5
	cfg.Alpha, cfg.Beta = 0.7, 2.5

	res, err := colony.Run(context.Background(), g, cfg, 11)
	require.NoError(t, err)
	require.NoError(t, res.Err())

	assert.Equal(t, walk.Path{{Mode: 0, From: 0, To: 1}}, res.Path)
	assert.InDelta(t, 0.5, res.Score, 1e-12)
	assert.Equal(t, 1, res.Rounds)
	assert.Equal(t, colony.Converged, res.Termination)
	assert.Equal(t, 5, res.Walks)
	assert.Zero(t, res.LostAnts)
	require.Len(t, res.History, 1)
	assert.Equal(t, 5, res.History[0].Succeeded)
	assert.Zero(t, res.History[0].Metric)
	assert.InDelta(t, 0.5, res.History[0].Mean, 1e-12)
}

func TestRun_AbortsWhenMajorityLost(t *testing.T) {
	// 0 ⇄ 1, city 2 unreachable.
	g := mustGraph(t, [][][]float64{{{nan, 1, nan}, {1, nan, nan}, {1, nan, nan}}})
	cfg := colony.DefaultConfig()
	cfg.AntsPerRound = 4
	cfg.TargetCity = 2

	res, err := colony.Run(context.Background(), g, cfg, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, res.Err(), colony.ErrColonyAborted)
	assert.Equal(t, colony.Aborted, res.Termination)
	assert.True(t, res.Empty())
	assert.Zero(t, res.Score)
	assert.Equal(t, 1, res.Rounds)
	assert.Equal(t, 4, res.LostAnts)
}

func TestRun_RoundCap(t *testing.T) {
	g := mesh(t, 5)
	cfg := colony.DefaultConfig()
	cfg.AntsPerRound = 6
	cfg.MaxRounds = 3
	cfg.ConvergenceThreshold = 0 // never converges
	cfg.TargetCity = 4

	res, err := colony.Run(context.Background(), g, cfg, 5)
	require.NoError(t, err)
	if res.Termination == colony.Aborted {
		t.Skip("seed lost the majority of ants")
	}
	assert.Equal(t, colony.RoundCap, res.Termination)
	assert.Equal(t, cfg.MaxRounds+1, res.Rounds)
	assert.Len(t, res.History, res.Rounds)
	assert.False(t, res.Empty())
	assert.Equal(t, 4, res.Path[len(res.Path)-1].To)
}

func TestRun_ParallelAntsMatchSequential(t *testing.T) {
	g := mesh(t, 7)
	cfg := colony.DefaultConfig()
	cfg.AntsPerRound = 12
	cfg.MaxRounds = 20
	cfg.StartCity, cfg.TargetCity = 1, 6

	seq, err := colony.Run(context.Background(), g, cfg, 99)
	require.NoError(t, err)

	cfg.ParallelAnts = 4
	par, err := colony.Run(context.Background(), g, cfg, 99)
	require.NoError(t, err)

	assert.Equal(t, seq.Path, par.Path)
	assert.Equal(t, seq.Score, par.Score)
	assert.Equal(t, seq.Rounds, par.Rounds)
	assert.Equal(t, seq.History, par.History)
	assert.Equal(t, seq.Termination, par.Termination)
}

func TestRun_DifferentSeedsAreIndependent(t *testing.T) {
	g := mesh(t, 7)
	cfg := colony.DefaultConfig()
	cfg.AntsPerRound = 8
	cfg.MaxRounds = 2
	cfg.ConvergenceThreshold = 0
	cfg.TargetCity = 6

	a, err := colony.Run(context.Background(), g, cfg, 1)
	require.NoError(t, err)
	b, err := colony.Run(context.Background(), g, cfg, 2)
	require.NoError(t, err)
	assert.NotEqual(t, a.History, b.History)
}

func TestRun_TimeLimitIsInert(t *testing.T) {
	g := mustGraph(t, [][][]float64{{{nan, 2}, {nan, nan}}})
	cfg := colony.DefaultConfig()
	cfg.AntsPerRound = 3
	cfg.TimeLimit = time.Nanosecond

	res, err := colony.Run(context.Background(), g, cfg, 1)
	require.NoError(t, err)
	assert.Equal(t, colony.Converged, res.Termination)
}

func TestRun_Cancelled(t *testing.T) {
	g := mesh(t, 4)
	cfg := colony.DefaultConfig()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := colony.Run(ctx, g, cfg, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, colony.DefaultConfig().Validate())

	tests := []struct {
		name string
		edit func(c *colony.Config)
	}{
		{"no ants", func(c *colony.Config) { c.AntsPerRound = 0 }},
		{"evaporation above 1", func(c *colony.Config) { c.EvaporationRate = 1.5 }},
		{"negative evaporation", func(c *colony.Config) { c.EvaporationRate = -0.1 }},
		{"negative alpha", func(c *colony.Config) { c.Alpha = -1 }},
		{"negative threshold", func(c *colony.Config) { c.ConvergenceThreshold = -1 }},
		{"negative time limit", func(c *colony.Config) { c.TimeLimit = -time.Second }},
		{"no workers", func(c *colony.Config) { c.ParallelAnts = 0 }},
		{"negative rounds", func(c *colony.Config) { c.MaxRounds = -1 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := colony.DefaultConfig()
			tc.edit(&cfg)
			assert.ErrorIs(t, cfg.Validate(), colony.ErrInvalidConfig)
		})
	}

	g := mesh(t, 3)
	cfg := colony.DefaultConfig()
	cfg.TargetCity = 3
	err := cfg.ValidateFor(g)
	assert.ErrorIs(t, err, colony.ErrInvalidConfig)
	assert.ErrorIs(t, err, network.ErrUnknownCity)

	_, err = colony.Run(context.Background(), g, cfg, 1)
	assert.ErrorIs(t, err, colony.ErrInvalidConfig)
}

func TestTermination_Text(t *testing.T) {
	for _, term := range []colony.Termination{colony.Converged, colony.RoundCap, colony.Aborted} {
		b, err := term.MarshalText()
		require.NoError(t, err)
		var back colony.Termination
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, term, back)
	}
	var bad colony.Termination
	assert.Error(t, bad.UnmarshalText([]byte("melted")))
	assert.Equal(t, "unknown", bad.String())
}
