package wfc

import (
	"math/rand"
	"testing"
)

// TestPropagate_ContradictionForcing is spec §8 scenario 4: a sample of
// [[A,B],[B,A]] with an output constrained so cell (0,0)=A and cell (0,1)=A
// (both top-left agreeing) must contradict after one propagation, because
// no pattern places A to the right of A.
func TestPropagate_ContradictionForcing(t *testing.T) {
	sample := sampleFromRows([][]Color{
		{0, 1},
		{1, 0},
	})
	ext, err := Extract(sample, ExtractParams{N: 2, PeriodicInput: true, Symmetry: 1})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	adj := BuildAdjacency(ext.Patterns)

	// Identify the pattern whose top-left pixel is A (=0).
	var patternA int = -1
	for i, p := range ext.Patterns {
		if p.At(0, 0) == 0 {
			patternA = i
		}
	}
	if patternA == -1 {
		t.Fatal("no extracted pattern has top-left color A")
	}

	rng := rand.New(rand.NewSource(1))
	wave := NewWave(2, 1, ext.Weights, adj, false, rng)
	prop := NewPropagator(wave)

	// Force both cells to patternA.
	for c := 0; c < 2; c++ {
		for q := 0; q < wave.P; q++ {
			if q != patternA && wave.possible(c, q) {
				wave.remove(c, q)
			}
		}
	}

	contradicted := prop.Propagate()
	if !contradicted {
		t.Fatal("expected a contradiction when forcing A directly right of A")
	}
}

func TestPropagate_SolePatternRemovalContradicts(t *testing.T) {
	patterns := []Pattern{{N: 2, Pixels: []Color{7, 7, 7, 7}}}
	adj := BuildAdjacency(patterns)
	rng := rand.New(rand.NewSource(2))
	wave := NewWave(5, 5, []float64{1}, adj, false, rng)
	prop := NewPropagator(wave)

	wave.remove(wave.cellIndex(2, 2), 0)
	if contradicted := prop.Propagate(); !contradicted {
		t.Fatal("removing the sole pattern from a cell must contradict")
	}
}

func TestPropagate_UniformSampleNeverContradictsElsewhere(t *testing.T) {
	// A uniform single-pattern sample with no forced removals should
	// collapse/propagate without ever touching a domain bit beyond init.
	patterns := []Pattern{{N: 2, Pixels: []Color{7, 7, 7, 7}}}
	adj := BuildAdjacency(patterns)
	rng := rand.New(rand.NewSource(3))
	wave := NewWave(4, 4, []float64{1}, adj, true, rng)
	prop := NewPropagator(wave)
	if prop.Propagate() {
		t.Fatal("an untouched uniform wave must not contradict")
	}
	for c := 0; c < wave.W*wave.H; c++ {
		if wave.domains[c].count() != 1 {
			t.Errorf("cell %d: expected the single pattern to remain possible, got count %d", c, wave.domains[c].count())
		}
	}
}
