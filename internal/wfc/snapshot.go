package wfc

// Snapshot is a read-only view of a wave's progress, handed to the
// optional progress callback after each observation (spec §5, §6). The
// per-cell data (DomainSizes, PossiblePatterns) is copied, since the driver
// keeps running on the same thread after the callback returns; Patterns and
// Weights share the driver's extraction slices, which the Wave also holds
// and never mutates. It must not be mutated.
type Snapshot struct {
	Width, Height int

	// DomainSizes[c] is the number of patterns still possible in cell c.
	DomainSizes []int

	// PossiblePatterns[c] lists the pattern indices still possible in cell
	// c, sufficient (together with Patterns/Weights) to render the
	// weighted-average preview color spec §6 describes for uncollapsed
	// cells.
	PossiblePatterns [][]int

	Patterns []Pattern
	Weights  []float64
}

// newSnapshot copies wave's current state into an independent Snapshot.
func newSnapshot(wave *Wave, patterns []Pattern, weights []float64) *Snapshot {
	n := wave.W * wave.H
	sizes := make([]int, n)
	possible := make([][]int, n)
	for c := 0; c < n; c++ {
		var ps []int
		wave.domains[c].forEach(func(q int) { ps = append(ps, q) })
		possible[c] = ps
		sizes[c] = len(ps)
	}
	return &Snapshot{
		Width:            wave.W,
		Height:           wave.H,
		DomainSizes:      sizes,
		PossiblePatterns: possible,
		Patterns:         patterns,
		Weights:          weights,
	}
}
