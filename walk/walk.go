// SPDX-License-Identifier: MIT

package walk

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/antpath/network"
	"github.com/katalvlaran/antpath/pheromone"
	"github.com/katalvlaran/antpath/rng"
	"github.com/katalvlaran/antpath/tensor"
)

var (
	// ErrAntLost is the reason of every lost walk.
	ErrAntLost = errors.New("walk: ant lost")

	// ErrDeadEnd is joined with ErrAntLost when the ant reached a city
	// without any selectable outgoing transition.
	ErrDeadEnd = errors.New("walk: dead end")

	// ErrInvalidArgument reports nil inputs or a field built for another graph.
	ErrInvalidArgument = errors.New("walk: invalid argument")
)

// Transition is one step of a path: travel from From to To using Mode.
type Transition struct {
	Mode int `json:"mode"`
	From int `json:"from"`
	To   int `json:"to"`
}

// String renders the transition as (mode, from, to).
func (t Transition) String() string {
	return fmt.Sprintf("(%d, %d, %d)", t.Mode, t.From, t.To)
}

// Path is an ordered sequence of transitions.
type Path []Transition

// String renders the path as a bracketed list of transitions.
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, t := range p {
		parts[i] = t.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// Cities returns the visited cities in order, starting with the first From.
func (p Path) Cities() []int {
	if len(p) == 0 {
		return nil
	}
	out := make([]int, 0, len(p)+1)
	out = append(out, p[0].From)
	for _, t := range p {
		out = append(out, t.To)
	}

	return out
}

// Describe renders the path with the mode and city names of g,
// e.g. "Kyiv -road-> Lviv -rail-> Odesa". Unknown indices print as numbers.
func (p Path) Describe(g *network.Graph) string {
	if len(p) == 0 {
		return ""
	}
	name := func(names []string, i int) string {
		if i >= 0 && i < len(names) {
			return names[i]
		}
		return fmt.Sprint(i)
	}
	var sb strings.Builder
	sb.WriteString(name(g.Cities, p[0].From))
	for _, t := range p {
		fmt.Fprintf(&sb, " -%s-> %s", name(g.Modes, t.Mode), name(g.Cities, t.To))
	}

	return sb.String()
}

// Params are the per-walk knobs.
type Params struct {
	Start  int
	Target int
	Alpha  float64
	Beta   float64

	// TimeLimit is accepted for interface compatibility and is not enforced.
	TimeLimit time.Duration
}

// Result is the outcome of one walk.
type Result struct {
	// Path and Travelled are nil when the ant got lost.
	Path      Path
	Travelled *tensor.Counts

	// Steps is the number of transitions made, including those of a lost walk.
	Steps int

	// CollectedBonus is the bonus of every distinct city the ant left.
	CollectedBonus float64

	Lost   bool
	Reason error
}

// MaxSteps returns the transition budget of a walk on a graph of c cities.
func MaxSteps(c int) int { return 2 * c }

// Construct walks one ant from p.Start to p.Target over the frozen pheromone
// snapshot field, drawing one value from src per transition.
//
// Stage 1 (Validate): graph, field shape, cities.
// Stage 2 (Walk): sample, record, advance; stop at target or when the step
// counter passes MaxSteps.
//
// Complexity: O(S·M·C) time for S steps, O(M·C + S) memory.
func Construct(g *network.Graph, field *pheromone.Field, p Params, src rng.Source) (Result, error) {
	// Stage 1: validate.
	if g == nil || g.Cost == nil || field == nil || src == nil {
		return Result{}, fmt.Errorf("Construct: %w", ErrInvalidArgument)
	}
	if !field.Levels().SameShape(g.Cost) {
		return Result{}, fmt.Errorf("Construct: field shape: %w", ErrInvalidArgument)
	}
	if err := g.CheckCity(p.Start); err != nil {
		return Result{}, fmt.Errorf("Construct: start: %w", err)
	}
	if err := g.CheckCity(p.Target); err != nil {
		return Result{}, fmt.Errorf("Construct: target: %w", err)
	}

	var (
		cities    = g.NumCities()
		budget    = MaxSteps(cities)
		bonus     = append([]float64(nil), g.Bonus...)
		travelled *tensor.Counts
		path      = make(Path, 0, 4)
		probs     []float64
		collected float64
		current   = p.Start
		steps     int
		mode, nxt int
		err       error
	)
	if travelled, err = tensor.NewCounts(g.NumModes(), cities); err != nil {
		return Result{}, fmt.Errorf("Construct: %w", err)
	}

	// Stage 2: walk.
	for {
		collected += bonus[current]
		bonus[current] = 0

		probs, err = field.Probabilities(current, p.Alpha, p.Beta, probs)
		if errors.Is(err, pheromone.ErrNoValidEdge) {
			return lost(steps, collected, errors.Join(ErrAntLost, fmt.Errorf("city %d: %w", current, ErrDeadEnd))), nil
		}
		if err != nil {
			return Result{}, fmt.Errorf("Construct: %w", err)
		}
		if mode, nxt, err = pheromone.Sample(probs, cities, src.Float64()); err != nil {
			return lost(steps, collected, errors.Join(ErrAntLost, fmt.Errorf("city %d: %w", current, ErrDeadEnd))), nil
		}

		_ = travelled.Inc(mode, current, nxt)
		path = append(path, Transition{Mode: mode, From: current, To: nxt})
		current = nxt
		steps++

		if steps > budget {
			return lost(steps, collected, fmt.Errorf("%d transitions: %w", steps, ErrAntLost)), nil
		}
		if current == p.Target {
			break
		}
	}

	return Result{Path: path, Travelled: travelled, Steps: steps, CollectedBonus: collected}, nil
}

func lost(steps int, collected float64, reason error) Result {
	return Result{Steps: steps, CollectedBonus: collected, Lost: true, Reason: reason}
}
