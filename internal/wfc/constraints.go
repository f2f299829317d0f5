package wfc

// ConstraintKind selects one of the three predefined edge-constraint
// predicates from spec §6.
type ConstraintKind int

const (
	// ConstraintNone pins nothing.
	ConstraintNone ConstraintKind = iota
	// ConstraintVertical pins the top output row to patterns whose
	// extraction origin was on the sample's top row, and the bottom output
	// row to patterns whose extraction window reached the sample's bottom
	// row. Grounded on original_source/src/wfc.rs's `ground` config flag.
	ConstraintVertical
	// ConstraintVerticalSides adds left/right column pinning to
	// ConstraintVertical, grounded on the `sides` config flag.
	ConstraintVerticalSides
)

// clampSymmetryFor returns the symmetry group size that should actually be
// used for extraction when kind requests a vertical constraint. Rotating a
// pattern set that has an up/down orientation (a "ground" sample) destroys
// that asymmetry, so original_source restricts extraction to {identity,
// reflection} (symmetry=2) whenever ground or sides is requested. This
// repo mirrors that by clamping any requested symmetry > 2 down to 2 —
// see SPEC_FULL.md §4.H.
func clampSymmetryFor(kind ConstraintKind, symmetry int) int {
	if kind != ConstraintNone && symmetry > 2 {
		return 2
	}
	return symmetry
}

// applyConstraint bans every pattern disallowed by kind from the relevant
// boundary cells of wave, per spec §4.F "Pre-imposed constraints". Callers
// must propagate immediately afterward.
func applyConstraint(wave *Wave, ext *ExtractionResult, kind ConstraintKind) {
	if kind == ConstraintNone {
		return
	}

	for x := 0; x < wave.W; x++ {
		pinCell(wave, wave.cellIndex(x, 0), ext.Top)
		pinCell(wave, wave.cellIndex(x, wave.H-1), ext.Bottom)
	}

	if kind == ConstraintVerticalSides {
		for y := 0; y < wave.H; y++ {
			pinCell(wave, wave.cellIndex(0, y), ext.Left)
			pinCell(wave, wave.cellIndex(wave.W-1, y), ext.Right)
		}
	}
}

// pinCell removes every pattern from cell c whose corresponding allowed[q]
// flag is false.
func pinCell(wave *Wave, c int, allowed []bool) {
	for q := 0; q < wave.P; q++ {
		if wave.possible(c, q) && !allowed[q] {
			wave.remove(c, q)
		}
	}
}
