package wfc

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/sampleuv"
)

// randSource adapts a *math/rand.Rand to the golang.org/x/exp/rand.Source
// interface required by gonum's sampleuv.NewWeighted, so callers can keep
// using the standard library's *rand.Rand for reproducible seeding.
type randSource struct{ r *rand.Rand }

func (s randSource) Uint64() uint64   { return s.r.Uint64() }
func (s randSource) Seed(seed uint64) { s.r.Seed(int64(seed)) }

// Observer selects the next cell to collapse and samples its pattern,
// component E. It carries no state of its own; all mutable state lives in
// the Wave it's handed.
type Observer struct{}

// NewObserver returns an Observer.
func NewObserver() *Observer {
	return &Observer{}
}

// SelectCell scans every uncollapsed, non-contradicted cell and returns the
// index of the one with minimum entropy (ties broken by the per-cell noise
// baked into Wave.entropy). Returns -1 if no selectable cell remains.
func (o *Observer) SelectCell(wave *Wave) int {
	best := -1
	bestEntropy := math.Inf(1)
	for c := 0; c < wave.W*wave.H; c++ {
		if wave.contradicted[c] || wave.Collapsed(c) {
			continue
		}
		if e := wave.entropy(c); e < bestEntropy {
			bestEntropy = e
			best = c
		}
	}
	return best
}

// Collapse samples one pattern from cell c's domain with probability
// proportional to its weight, bans every other pattern still in the
// domain (enqueuing propagation work), and returns the chosen pattern
// index. Weighted sampling uses gonum's sampleuv.Weighted the way the
// domain dependency is wired in SPEC_FULL.md, seeded from the Driver's
// per-attempt rng so the draw is reproducible given the same seed.
func (o *Observer) Collapse(wave *Wave, c int, rng *rand.Rand) int {
	var candidates []int
	var weights []float64
	wave.domains[c].forEach(func(q int) {
		candidates = append(candidates, q)
		weights = append(weights, wave.weights[q])
	})

	chosen := candidates[0]
	if len(candidates) > 1 {
		w := sampleuv.NewWeighted(weights, randSource{rng})
		if idx, ok := w.Take(); ok {
			chosen = candidates[idx]
		}
	}

	for _, q := range candidates {
		if q != chosen {
			wave.remove(c, q)
		}
	}
	return chosen
}
