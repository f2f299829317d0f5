package wfc

import (
	"math"
	"math/rand"
	"testing"
)

func buildTestWave(t *testing.T, w, h int, periodic bool) (*Wave, *Adjacency) {
	t.Helper()
	patterns := makePatterns()
	weights := []float64{3, 2, 1}
	adj := BuildAdjacency(patterns)
	rng := rand.New(rand.NewSource(42))
	wave := NewWave(w, h, weights, adj, periodic, rng)
	return wave, adj
}

func TestWave_InitInvariants(t *testing.T) {
	wave, _ := buildTestWave(t, 3, 3, false)
	for c := 0; c < wave.W*wave.H; c++ {
		if wave.domains[c].count() != wave.P {
			t.Fatalf("cell %d: expected full domain of %d patterns, got %d", c, wave.P, wave.domains[c].count())
		}
		if wave.sumWeights[c] != 6 {
			t.Errorf("cell %d: expected sumWeights 6, got %v", c, wave.sumWeights[c])
		}
	}
}

func TestWave_SupportConsistency(t *testing.T) {
	// spec §8 "Support consistency": at quiescence,
	// support[c][q][d] == |{p in neighbor(c,d).domain : compat(p,q,-d)}|.
	wave, adj := buildTestWave(t, 4, 4, true)
	prop := NewPropagator(wave)

	// Force one removal and propagate to quiescence.
	wave.remove(wave.cellIndex(0, 0), 2)
	prop.Propagate()

	for c := 0; c < wave.W*wave.H; c++ {
		for q := 0; q < wave.P; q++ {
			if !wave.possible(c, q) {
				continue
			}
			for _, d := range AllDirs {
				nb, ok := wave.neighbor(c, d)
				if !ok {
					continue
				}
				want := 0
				for p := 0; p < wave.P; p++ {
					if wave.possible(nb, p) && adj.Compatible(p, q, d.Opposite()) {
						want++
					}
				}
				idx := (c*wave.P+q)*4 + int(d)
				got := int(wave.support[idx])
				if got == int(infiniteSupport) {
					continue
				}
				if got != want {
					t.Errorf("cell %d pattern %d dir %s: support=%d, want %d", c, q, d, got, want)
				}
			}
		}
	}
}

func TestWave_RemoveIsIdempotent(t *testing.T) {
	wave, _ := buildTestWave(t, 2, 2, false)
	c := wave.cellIndex(0, 0)
	wave.remove(c, 0)
	before := wave.sumWeights[c]
	wave.remove(c, 0) // already removed, must be a no-op
	if wave.sumWeights[c] != before {
		t.Error("removing an already-absent pattern changed sumWeights")
	}
}

func TestWave_EntropyNotSelectableWhenCollapsed(t *testing.T) {
	wave, _ := buildTestWave(t, 2, 2, false)
	c := wave.cellIndex(0, 0)
	wave.remove(c, 0)
	wave.remove(c, 1)
	// Only pattern 2 remains: collapsed.
	if !wave.Collapsed(c) {
		t.Fatal("expected cell to be collapsed with one pattern left")
	}
	if e := wave.entropy(c); !math.IsInf(e, -1) {
		t.Errorf("expected -Inf entropy for a collapsed cell, got %v", e)
	}
}
