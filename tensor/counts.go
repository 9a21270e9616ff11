// SPDX-License-Identifier: MIT

package tensor

import "fmt"

// Counts is a sparse M×C×C tensor of non-negative integer counts.
// Only touched entries are stored; iteration follows first-touch order.
type Counts struct {
	m, c  int
	n     map[int]int // flat index -> count
	order []int       // flat indices in first-touch order
	total int         // Σ counts
}

// NewCounts returns an empty count tensor of shape M×C×C.
func NewCounts(modes, cities int) (*Counts, error) {
	if modes <= 0 || cities <= 0 {
		return nil, fmt.Errorf("NewCounts(%d,%d): %w", modes, cities, ErrBadShape)
	}

	return &Counts{m: modes, c: cities, n: make(map[int]int)}, nil
}

// Modes returns the size of the first axis.
func (k *Counts) Modes() int { return k.m }

// Cities returns the size of the second and third axes.
func (k *Counts) Cities() int { return k.c }

// Inc increments the count at (mode, from, to) by one.
func (k *Counts) Inc(mode, from, to int) error {
	if mode < 0 || mode >= k.m || from < 0 || from >= k.c || to < 0 || to >= k.c {
		return fmt.Errorf("Counts.Inc(%d,%d,%d): %w", mode, from, to, ErrOutOfRange)
	}
	idx := mode*k.c*k.c + from*k.c + to
	if _, ok := k.n[idx]; !ok {
		k.order = append(k.order, idx)
	}
	k.n[idx]++
	k.total++

	return nil
}

// At returns the count at (mode, from, to); out-of-range indices read as 0.
func (k *Counts) At(mode, from, to int) int {
	if mode < 0 || mode >= k.m || from < 0 || from >= k.c || to < 0 || to >= k.c {
		return 0
	}

	return k.n[mode*k.c*k.c+from*k.c+to]
}

// Total returns the sum of all counts (the number of recorded transitions).
func (k *Counts) Total() int { return k.total }

// NonZero returns the number of distinct touched entries.
func (k *Counts) NonZero() int { return len(k.order) }

// Each calls fn for every touched entry in first-touch order.
func (k *Counts) Each(fn func(mode, from, to, count int)) {
	var idx, mode, rest int
	for _, idx = range k.order {
		mode = idx / (k.c * k.c)
		rest = idx % (k.c * k.c)
		fn(mode, rest/k.c, rest%k.c, k.n[idx])
	}
}

// Dense materializes the counts as a Dense3 (zeros elsewhere).
func (k *Counts) Dense() *Dense3 {
	t := &Dense3{m: k.m, c: k.c, data: make([]float64, k.m*k.c*k.c)}
	var idx int
	for _, idx = range k.order {
		t.data[idx] = float64(k.n[idx])
	}

	return t
}
