// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/antpath/tensor"
)

// ShortestPath returns the cheapest route from source to target over every
// allowed mode.
//
// Stage 1 (Validate): options, tensor, endpoints, non-negative costs.
// Stage 2 (Search): lazy Dijkstra, stopping as soon as target is settled.
// Stage 3 (Rebuild): follow predecessors back to source.
//
// Complexity: O(M·C² + C·log C) time, O(C²) space worst case.
func ShortestPath(cost *tensor.Dense3, source, target int, opts ...Option) (Route, error) {
	// Stage 1: validate.
	r, err := newRunner(cost, opts)
	if err != nil {
		return Route{}, err
	}
	if err = r.checkVertex(source); err != nil {
		return Route{}, err
	}
	if err = r.checkVertex(target); err != nil {
		return Route{}, err
	}

	// Stage 2: search.
	if source == target {
		r.initCycle(source)
	} else {
		r.init(source)
	}
	if err = r.process(target); err != nil {
		return Route{}, err
	}
	if math.IsInf(r.dist[target], 1) {
		return Route{}, fmt.Errorf("%d→%d: %w", source, target, ErrNoPath)
	}

	// Stage 3: rebuild.
	return r.route(source, target), nil
}

// Distances returns the cheapest cost from source to every city; unreachable
// cities are +Inf and dist[source] is 0.
//
// Complexity: O(M·C² + C·log C).
func Distances(cost *tensor.Dense3, source int, opts ...Option) ([]float64, error) {
	r, err := newRunner(cost, opts)
	if err != nil {
		return nil, err
	}
	if err = r.checkVertex(source); err != nil {
		return nil, err
	}
	r.init(source)
	if err = r.process(-1); err != nil {
		return nil, err
	}

	return r.dist, nil
}

// runner holds the state of one search.
type runner struct {
	cost     *tensor.Dense3 // read-only
	options  Options
	allowed  []bool    // allowed[mode]
	dist     []float64 // best known distance per city
	prev     []int     // predecessor city, -1 if none
	prevMode []int     // mode of the edge prev[v] → v
	visited  []bool    // distance finalized
	pq       nodePQ    // lazy min-heap
}

func newRunner(cost *tensor.Dense3, opts []Option) (*runner, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if math.IsNaN(cfg.MaxDistance) || cfg.MaxDistance < 0 {
		return nil, ErrBadMaxDistance
	}
	if math.IsNaN(cfg.InfEdgeThreshold) || cfg.InfEdgeThreshold <= 0 {
		return nil, ErrBadInfThreshold
	}
	if cost == nil {
		return nil, ErrNilTensor
	}

	var (
		m       = cost.Modes()
		c       = cost.Cities()
		allowed = make([]bool, m)
		mode    int
	)
	if len(cfg.Modes) == 0 {
		for mode = range allowed {
			allowed[mode] = true
		}
	}
	for _, mode = range cfg.Modes {
		if mode < 0 || mode >= m {
			return nil, fmt.Errorf("dijkstra: mode %d: %w", mode, tensor.ErrOutOfRange)
		}
		allowed[mode] = true
	}

	// negative costs anywhere invalidate the search
	var from, to int
	var w float64
	for mode = 0; mode < m; mode++ {
		for from = 0; from < c; from++ {
			for to = 0; to < c; to++ {
				w, _ = cost.At(mode, from, to)
				if w < 0 {
					return nil, fmt.Errorf("%w: (%d,%d,%d)=%g", ErrNegativeWeight, mode, from, to, w)
				}
			}
		}
	}

	r := &runner{
		cost:     cost,
		options:  cfg,
		allowed:  allowed,
		dist:     make([]float64, c),
		prev:     make([]int, c),
		prevMode: make([]int, c),
		visited:  make([]bool, c),
		pq:       make(nodePQ, 0, c),
	}
	var v int
	for v = 0; v < c; v++ {
		r.dist[v] = math.Inf(1)
		r.prev[v] = -1
		r.prevMode[v] = -1
	}
	heap.Init(&r.pq)

	return r, nil
}

func (r *runner) checkVertex(v int) error {
	if v < 0 || v >= r.cost.Cities() {
		return fmt.Errorf("vertex %d: %w", v, ErrVertexNotFound)
	}
	return nil
}

// init seeds a standard search at source.
func (r *runner) init(source int) {
	r.dist[source] = 0
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

// initCycle seeds the search with the out-edges of source, leaving source
// itself unreached so that the first time it is settled closes a cycle.
func (r *runner) initCycle(source int) {
	r.relaxFrom(source, 0)
}

// process pops until the heap is empty or stop is settled (stop < 0 never stops).
func (r *runner) process(stop int) error {
	var (
		item *nodeItem
		u    int
	)
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(*nodeItem)
		u = item.id
		if r.visited[u] || item.dist > r.dist[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		if u == stop {
			return nil
		}
		r.relaxFrom(u, item.dist)
	}

	return nil
}

// relaxFrom relaxes every traversable edge u → v with base distance d.
func (r *runner) relaxFrom(u int, d float64) {
	var (
		c       = r.cost.Cities()
		mode, v int
		w, nd   float64
	)
	for mode = range r.allowed {
		if !r.allowed[mode] {
			continue
		}
		for v = 0; v < c; v++ {
			w, _ = r.cost.At(mode, u, v)
			if math.IsNaN(w) || w <= 0 || w >= r.options.InfEdgeThreshold {
				continue
			}
			nd = d + w
			if nd > r.options.MaxDistance || nd >= r.dist[v] {
				continue
			}
			r.dist[v] = nd
			r.prev[v] = u
			r.prevMode[v] = mode
			heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
		}
	}
}

// route walks predecessors from target back to the first edge leaving source.
func (r *runner) route(source, target int) Route {
	var (
		hops = make([]Hop, 0, 4)
		node = target
		i    int
	)
	for i = 0; i <= len(r.prev); i++ {
		hops = append(hops, Hop{Mode: r.prevMode[node], From: r.prev[node], To: node})
		if r.prev[node] == source {
			break
		}
		node = r.prev[node]
	}
	// reverse into travel order
	for i = 0; i < len(hops)/2; i++ {
		hops[i], hops[len(hops)-1-i] = hops[len(hops)-1-i], hops[i]
	}

	return Route{Cost: r.dist[target], Hops: hops}
}

// nodeItem is an entry in the priority queue.
type nodeItem struct {
	id   int     // city index
	dist float64 // distance from source
}

// nodePQ implements heap.Interface as a min-heap on dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
