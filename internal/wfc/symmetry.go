package wfc

// symmetryOp maps a pattern to one orbit variant. Grounded directly on
// original_source/src/pattern.rs's Pattern::rotate and Pattern::reflect —
// index remaps, not a canonicalization.
type symmetryOp func(Pattern) Pattern

func identityOp(p Pattern) Pattern { return p }

// rotate90 rotates the pattern 90 degrees clockwise.
func rotate90(p Pattern) Pattern {
	n := p.N
	out := make([]Color, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			nx, ny := n-1-y, x
			out[ny*n+nx] = p.At(x, y)
		}
	}
	return Pattern{N: n, Pixels: out}
}

// reflectX flips the pattern horizontally.
func reflectX(p Pattern) Pattern {
	n := p.N
	out := make([]Color, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			out[y*n+(n-1-x)] = p.At(x, y)
		}
	}
	return Pattern{N: n, Pixels: out}
}

func composeOps(ops ...symmetryOp) symmetryOp {
	return func(p Pattern) Pattern {
		for _, op := range ops {
			p = op(p)
		}
		return p
	}
}

// symmetryOps returns the transform orbit for a symmetry group size per
// spec §3: 1 = identity only, 2 = identity + one reflection, 4 = the four
// rotations, 8 = the full dihedral group (rotations and their reflections).
// Callers apply every op in the returned slice to each extracted window —
// duplicates that a self-symmetric window produces are NOT pre-deduplicated
// here; per spec §9 "Symmetry canonicalization", equality at the global
// pattern-accumulation step is what merges them, so a self-symmetric window
// correctly contributes its weight once per orbit element that lands on it.
func symmetryOps(symmetry int) []symmetryOp {
	rotations := []symmetryOp{
		identityOp,
		rotate90,
		composeOps(rotate90, rotate90),
		composeOps(rotate90, rotate90, rotate90),
	}

	switch symmetry {
	case 1:
		return rotations[:1]
	case 2:
		return []symmetryOp{identityOp, reflectX}
	case 4:
		return rotations
	case 8:
		ops := make([]symmetryOp, 0, 8)
		ops = append(ops, rotations...)
		for _, r := range rotations {
			ops = append(ops, composeOps(r, reflectX))
		}
		return ops
	default:
		return rotations[:1]
	}
}
