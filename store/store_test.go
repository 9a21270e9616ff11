package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/antpath/colony"
	"github.com/katalvlaran/antpath/orchestrator"
	"github.com/katalvlaran/antpath/store"
	"github.com/katalvlaran/antpath/walk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summaryAt(t time.Time, score float64) orchestrator.Summary {
	path := walk.Path{{Mode: 0, From: 0, To: 1}}
	return orchestrator.Summary{
		RunID:     uuid.NewString(),
		Graph:     "triangle",
		Seed:      7,
		StartedAt: t,
		Config:    orchestrator.DefaultConfig(),
		BestPath:  path,
		BestScore: score,
		BestCost:  1 / score,
		Winner:    0,
		Rounds:    3,
		Elapsed:   1500 * time.Millisecond,
		Colonies: []colony.Result{{
			Seed:        11,
			Path:        path,
			Score:       score,
			Rounds:      3,
			Termination: colony.Converged,
			History:     []colony.RoundStats{{Round: 1, Succeeded: 5, Best: score, Mean: score}},
		}},
	}
}

func backends(t *testing.T) map[string]store.Store {
	t.Helper()
	sqlite, err := store.NewStore("sqlite", filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	memory, err := store.NewStore("memory", "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.CloseIfSupported(sqlite) })

	return map[string]store.Store{"sqlite": sqlite, "memory": memory}
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Init(ctx))

			older := store.NewRunRecord(summaryAt(base, 0.25))
			newer := store.NewRunRecord(summaryAt(base.Add(time.Hour), 0.5))
			require.NoError(t, s.SaveRun(ctx, older))
			require.NoError(t, s.SaveRun(ctx, newer))

			got, ok, err := s.GetRun(ctx, older.ID)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, older.ID, got.ID)
			assert.Equal(t, "triangle", got.Graph)
			assert.True(t, base.Equal(got.CreatedAt))
			assert.Equal(t, 0.25, got.BestScore)
			assert.Equal(t, older.Summary.BestPath, got.Summary.BestPath)
			assert.Equal(t, colony.Converged, got.Summary.Colonies[0].Termination)
			assert.Equal(t, older.Summary.Config, got.Summary.Config)

			_, ok, err = s.GetRun(ctx, "missing")
			require.NoError(t, err)
			assert.False(t, ok)

			list, err := s.ListRuns(ctx, 0)
			require.NoError(t, err)
			require.Len(t, list, 2)
			assert.Equal(t, newer.ID, list[0].ID)
			assert.Equal(t, older.ID, list[1].ID)

			list, err = s.ListRuns(ctx, 1)
			require.NoError(t, err)
			require.Len(t, list, 1)
			assert.Equal(t, newer.ID, list[0].ID)

			// upsert
			older.BestScore = 0.3
			require.NoError(t, s.SaveRun(ctx, older))
			got, _, err = s.GetRun(ctx, older.ID)
			require.NoError(t, err)
			assert.Equal(t, 0.3, got.BestScore)

			assert.ErrorIs(t, s.SaveRun(ctx, store.RunRecord{}), store.ErrMissingID)
		})
	}
}

func TestStore_NotInitialized(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, _, err := s.GetRun(ctx, "x")
			assert.ErrorIs(t, err, store.ErrNotInitialized)
			_, err = s.ListRuns(ctx, 0)
			assert.ErrorIs(t, err, store.ErrNotInitialized)
		})
	}
}

func TestNewStore_Unsupported(t *testing.T) {
	_, err := store.NewStore("badger", "")
	assert.ErrorIs(t, err, store.ErrUnsupportedBackend)

	s := store.NewSQLiteStore("")
	assert.Error(t, s.Init(context.Background()))
	assert.NoError(t, store.CloseIfSupported(store.NewMemoryStore()))
}

func TestDecodeRun_VersionMismatch(t *testing.T) {
	rec := store.NewRunRecord(summaryAt(time.Now().UTC(), 0.5))
	rec.SchemaVersion = 99
	data, err := store.EncodeRun(rec)
	require.NoError(t, err)

	_, err = store.DecodeRun(data)
	assert.ErrorIs(t, err, store.ErrVersionMismatch)
}
