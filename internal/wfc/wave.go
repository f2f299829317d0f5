package wfc

import (
	"math"
	"math/rand"
)

// infiniteSupport marks a support slot on a boundary cell that has no
// neighbor in that direction for a non-periodic output. It is never
// decremented in practice — decrementing support[c][q][d] only happens
// while processing a removal at neighbor(c, d), which does not exist for
// these slots — but the sentinel value documents the invariant and guards
// against a stray decrement ever tripping a false removal.
const infiniteSupport = int32(1 << 30)

// removal is one pending (cell, pattern) domain shrink awaiting propagation.
type removal struct {
	cell, pattern int
}

// removalQueue is a FIFO of pending removals. FIFO is chosen (over LIFO)
// per spec §9's "preferred for predictable memory behavior" guidance, and
// is part of this implementation's fixed, documented contract (spec §5
// "Ordering guarantees").
type removalQueue struct {
	items []removal
	head  int
}

func (q *removalQueue) push(cell, pattern int) {
	q.items = append(q.items, removal{cell, pattern})
}

func (q *removalQueue) pop() (removal, bool) {
	if q.head >= len(q.items) {
		return removal{}, false
	}
	r := q.items[q.head]
	q.head++
	if q.head == len(q.items) {
		// Backing array is fully drained; reset so it doesn't grow forever.
		q.items = q.items[:0]
		q.head = 0
	}
	return r, true
}

func (q *removalQueue) empty() bool {
	return q.head >= len(q.items)
}

// Wave is the per-cell domain grid, component C. Domains only shrink once
// created (spec §3 "Lifecycle"); supports, weight sums, and noise are
// maintained incrementally so the hot loop never recomputes from scratch.
type Wave struct {
	W, H, P  int
	Periodic bool // periodic_output

	weights    []float64
	logWeights []float64
	adj        *Adjacency

	domains              []bitset
	support              []int32 // index: ((cell*P)+q)*4+int(d)
	sumWeights           []float64
	sumWeightLogWeights  []float64
	noise                []float64
	contradicted         []bool

	queue removalQueue
}

// NewWave allocates and initializes a wave of size W x H over the given
// pattern weights and adjacency table, per spec §4.C "init". entropy_noise
// values are drawn from rng in row-major cell order, first of anything rng
// touches, so the determinism contract in spec §4.E holds.
func NewWave(w, h int, weights []float64, adj *Adjacency, periodic bool, rng *rand.Rand) *Wave {
	p := len(weights)
	wave := &Wave{
		W: w, H: h, P: p, Periodic: periodic,
		weights:             weights,
		logWeights:          make([]float64, p),
		adj:                 adj,
		domains:             make([]bitset, w*h),
		support:             make([]int32, w*h*p*4),
		sumWeights:          make([]float64, w*h),
		sumWeightLogWeights: make([]float64, w*h),
		noise:               make([]float64, w*h),
		contradicted:        make([]bool, w*h),
	}

	var totalWeight, totalWeightLogWeight float64
	baseSupport := make([]int32, p*4)
	for q, wt := range weights {
		lw := math.Log(wt)
		wave.logWeights[q] = lw
		totalWeight += wt
		totalWeightLogWeight += wt * lw
		for _, d := range AllDirs {
			baseSupport[q*4+int(d)] = int32(adj.Table[q][d].count())
		}
	}

	for c := 0; c < w*h; c++ {
		wave.domains[c] = newFullBitset(p)
		wave.sumWeights[c] = totalWeight
		wave.sumWeightLogWeights[c] = totalWeightLogWeight
		wave.noise[c] = rng.Float64() * 1e-6

		x, y := c%w, c/w
		for q := 0; q < p; q++ {
			for _, d := range AllDirs {
				idx := (c*p+q)*4 + int(d)
				if !periodic && !hasNeighbor(x, y, w, h, d) {
					wave.support[idx] = infiniteSupport
				} else {
					wave.support[idx] = baseSupport[q*4+int(d)]
				}
			}
		}
	}

	return wave
}

func hasNeighbor(x, y, w, h int, d Dir) bool {
	dx, dy := d.Delta()
	nx, ny := x+dx, y+dy
	return nx >= 0 && nx < w && ny >= 0 && ny < h
}

// cellIndex returns the row-major cell index for (x, y).
func (wave *Wave) cellIndex(x, y int) int {
	return y*wave.W + x
}

// neighbor returns the cell index of the neighbor of c in direction d, and
// whether that neighbor exists (always true when Periodic).
func (wave *Wave) neighbor(c int, d Dir) (int, bool) {
	x, y := c%wave.W, c/wave.W
	dx, dy := d.Delta()
	nx, ny := x+dx, y+dy
	if wave.Periodic {
		nx = ((nx % wave.W) + wave.W) % wave.W
		ny = ((ny % wave.H) + wave.H) % wave.H
		return wave.cellIndex(nx, ny), true
	}
	if nx < 0 || nx >= wave.W || ny < 0 || ny >= wave.H {
		return 0, false
	}
	return wave.cellIndex(nx, ny), true
}

// possible reports whether pattern q is still in cell c's domain.
func (wave *Wave) possible(c, q int) bool {
	return wave.domains[c].get(q)
}

// Collapsed reports whether cell c's domain has exactly one pattern left.
func (wave *Wave) Collapsed(c int) bool {
	return wave.domains[c].count() == 1
}

// Contradicted reports whether cell c's domain is empty.
func (wave *Wave) Contradicted(c int) bool {
	return wave.contradicted[c]
}

// AnyContradiction reports whether any cell in the wave is contradicted.
func (wave *Wave) AnyContradiction() bool {
	for _, c := range wave.contradicted {
		if c {
			return true
		}
	}
	return false
}

// remove clears pattern q from cell c's domain, updates the running weight
// sums, and enqueues the removal for the propagator. A no-op if q was
// already absent. Per spec §4.C.
func (wave *Wave) remove(c, q int) {
	if !wave.domains[c].get(q) {
		return
	}
	wave.domains[c].clear(q)
	wave.sumWeights[c] -= wave.weights[q]
	wave.sumWeightLogWeights[c] -= wave.weights[q] * wave.logWeights[q]
	wave.queue.push(c, q)
	if wave.domains[c].empty() {
		wave.contradicted[c] = true
	}
}

// entropy returns the Shannon entropy of cell c's remaining distribution
// plus its fixed tie-break noise, or negative infinity if the cell has at
// most one possible pattern (not selectable), per spec §4.C.
func (wave *Wave) entropy(c int) float64 {
	if wave.domains[c].count() <= 1 {
		return math.Inf(-1)
	}
	s := wave.sumWeights[c]
	e := math.Log(s) - wave.sumWeightLogWeights[c]/s
	return e + wave.noise[c]
}

// PatternGrid decodes every collapsed cell to its single remaining pattern
// index. Cells left uncollapsed (caller's responsibility to avoid, e.g. a
// contradicted run) are reported as -1.
func (wave *Wave) PatternGrid() []int {
	grid := make([]int, wave.W*wave.H)
	for c := range grid {
		grid[c] = -1
		if wave.Collapsed(c) {
			wave.domains[c].forEach(func(q int) { grid[c] = q })
		}
	}
	return grid
}
