package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antpath/network"
)

const pair = `
name: pair
modes: [road]
cities:
  - name: A
  - name: B
edges:
  - {mode: road, from: A, to: B, cost: 2}
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(context.Background(), "test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestSolve_RecordsRun(t *testing.T) {
	dir := t.TempDir()
	graph := filepath.Join(dir, "pair.yaml")
	require.NoError(t, os.WriteFile(graph, []byte(pair), 0o600))
	common := []string{"--log-format", "text", "--store", "sqlite", "--store-path", filepath.Join(dir, "runs.db")}

	out, err := execute(t, append([]string{"solve", graph, "--from", "A", "--to", "B",
		"--ants", "5", "--colonies", "2", "--baseline",
		"--metrics-file", filepath.Join(dir, "metrics.prom")}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "route:   A -road-> B")
	assert.Contains(t, out, "gap 0.00%")

	metrics, err := os.ReadFile(filepath.Join(dir, "metrics.prom"))
	require.NoError(t, err)
	assert.Contains(t, string(metrics), "antpath_colonies_total")

	out, err = execute(t, append([]string{"solve", graph, "--json", "--seed", "9"}, common...)...)
	require.NoError(t, err)
	var sum struct {
		RunID    string  `json:"run_id"`
		BestCost float64 `json:"best_cost"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &sum))
	require.NotEmpty(t, sum.RunID)
	assert.Equal(t, 2.0, sum.BestCost)

	out, err = execute(t, append([]string{"runs", "list"}, common...)...)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], sum.RunID), "newest run first")

	out, err = execute(t, append([]string{"runs", "show", sum.RunID}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, `"id": "`+sum.RunID+`"`)

	_, err = execute(t, append([]string{"runs", "show", "missing"}, common...)...)
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestSolve_UnknownCity(t *testing.T) {
	graph := filepath.Join(t.TempDir(), "pair.yaml")
	require.NoError(t, os.WriteFile(graph, []byte(pair), 0o600))

	_, err := execute(t, "solve", graph, "--from", "Z", "--store", "memory")
	assert.ErrorIs(t, err, network.ErrUnknownCity)

	_, err = execute(t, "solve", graph, "--to", "7", "--store", "memory")
	assert.ErrorIs(t, err, network.ErrUnknownCity)
}

func TestGenerate_WritesLoadableNetwork(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.json")
	_, err := execute(t, "generate", "-n", "6", "--seed", "4", "--modes", "road,rail", "--name", "six", "-o", path)
	require.NoError(t, err)

	g, err := network.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "six", g.Name)
	assert.Equal(t, 6, g.NumCities())
	assert.Equal(t, []string{"road", "rail"}, g.Modes)

	out, err := execute(t, "generate", "-n", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "cities:")
}
