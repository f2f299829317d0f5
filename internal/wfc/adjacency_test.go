package wfc

import "testing"

func makePatterns() []Pattern {
	return []Pattern{
		{N: 2, Pixels: []Color{0, 1, 1, 0}},
		{N: 2, Pixels: []Color{1, 0, 0, 1}},
		{N: 2, Pixels: []Color{0, 0, 0, 0}},
	}
}

func TestAdjacency_CompatibilitySymmetry(t *testing.T) {
	// spec §8: for all (p, q, d): compat(p, q, d) = compat(q, p, -d).
	patterns := makePatterns()
	adj := BuildAdjacency(patterns)

	for p := range patterns {
		for q := range patterns {
			for _, d := range AllDirs {
				got := adj.Compatible(p, q, d)
				want := adj.Compatible(q, p, d.Opposite())
				if got != want {
					t.Errorf("compat(%d,%d,%s)=%v but compat(%d,%d,%s)=%v; symmetry violated",
						p, q, d, got, q, p, d.Opposite(), want)
				}
			}
		}
	}
}

func TestAdjacency_SelfCompatibleWhenUniform(t *testing.T) {
	patterns := []Pattern{{N: 2, Pixels: []Color{5, 5, 5, 5}}}
	adj := BuildAdjacency(patterns)
	for _, d := range AllDirs {
		if !adj.Compatible(0, 0, d) {
			t.Errorf("uniform pattern should be self-compatible in direction %s", d)
		}
	}
}

func TestAdjacency_RejectsConflictingOverlap(t *testing.T) {
	// p = [[A,B],[C,D]] placed at (0,0); q = [[A,B],[C,D]] placed at +x
	// requires p's column 1 == q's column 0, i.e. [B,D] == [A,C]. Distinct
	// values make this fail.
	p := Pattern{N: 2, Pixels: []Color{1, 2, 3, 4}}
	adj := BuildAdjacency([]Pattern{p})
	if adj.Compatible(0, 0, DirRight) {
		t.Error("expected incompatibility in +x direction for a pattern with no repeated columns")
	}
}
