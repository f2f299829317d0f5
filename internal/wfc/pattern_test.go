package wfc

import "testing"

func sampleFromRows(rows [][]Color) *Sample {
	h := len(rows)
	w := len(rows[0])
	pixels := make([]Color, 0, w*h)
	for _, row := range rows {
		pixels = append(pixels, row...)
	}
	return &Sample{Width: w, Height: h, Pixels: pixels}
}

func TestExtract_AllEqual(t *testing.T) {
	sample := sampleFromRows([][]Color{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	})
	res, err := Extract(sample, ExtractParams{N: 2, PeriodicInput: false, Symmetry: 1})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(res.Patterns) != 1 {
		t.Fatalf("expected exactly one pattern for an all-equal sample, got %d", len(res.Patterns))
	}
}

func TestExtract_Checkerboard(t *testing.T) {
	// spec §8 scenario 2: 2x2 sample [[A,B],[B,A]], N=2, symmetry=1,
	// periodic_input=true -> exactly two patterns (the sample and its
	// row-shift).
	sample := sampleFromRows([][]Color{
		{0, 1},
		{1, 0},
	})
	res, err := Extract(sample, ExtractParams{N: 2, PeriodicInput: true, Symmetry: 1})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(res.Patterns) != 2 {
		t.Fatalf("expected exactly 2 patterns, got %d", len(res.Patterns))
	}
	for _, w := range res.Weights {
		if w != 2 {
			t.Errorf("expected each pattern to have weight 2 (one per origin), got %v", w)
		}
	}
}

func TestExtract_EmptySample(t *testing.T) {
	sample := sampleFromRows([][]Color{{0}})
	_, err := Extract(sample, ExtractParams{N: 2, PeriodicInput: false, Symmetry: 1})
	if err == nil {
		t.Fatal("expected an error for a sample smaller than N")
	}
}

func TestExtract_InvalidParameters(t *testing.T) {
	sample := sampleFromRows([][]Color{{0, 0}, {0, 0}})
	if _, err := Extract(sample, ExtractParams{N: 1, Symmetry: 1}); err == nil {
		t.Error("expected InvalidParameters for N < 2")
	}
	if _, err := Extract(sample, ExtractParams{N: 2, Symmetry: 3}); err == nil {
		t.Error("expected InvalidParameters for symmetry not in {1,2,4,8}")
	}
}

func TestExtract_SymmetryOrbitSize(t *testing.T) {
	// An asymmetric 2x2 pattern should produce up to `symmetry` distinct
	// patterns from a single non-periodic window.
	sample := sampleFromRows([][]Color{
		{0, 1},
		{2, 3},
	})
	res, err := Extract(sample, ExtractParams{N: 2, PeriodicInput: false, Symmetry: 8})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(res.Patterns) != 8 {
		t.Fatalf("fully asymmetric 2x2 tile under symmetry=8 should yield 8 distinct patterns, got %d", len(res.Patterns))
	}
}
