package wfc

import "fmt"

// ExtractParams configures pattern extraction (component A).
type ExtractParams struct {
	N             int  // pattern size, N >= 2
	PeriodicInput bool // sample wraps at its edges
	Symmetry      int  // one of {1, 2, 4, 8}
}

// ExtractionResult holds the deduplicated pattern set, their weights, and
// the edge-touch membership needed by the predefined edge constraints
// (spec §6, §4.H).
type ExtractionResult struct {
	N        int
	Patterns []Pattern
	Weights  []float64

	// Top[p] is true iff pattern p was (at least once) extracted from a
	// window whose origin row was the sample's first row, and Left[p] iff
	// from a window whose origin column was the first column. Bottom[p] is
	// true iff a source window's last row reached the sample's last row
	// (y+N >= height), and Right[p] iff its last column reached the last
	// column (x+N >= width). A pattern can carry more than one flag.
	Top, Bottom, Left, Right []bool
}

// Extract slides an NxN window over sample and builds the canonical
// pattern set and frequency weights, per spec §4.A.
func Extract(sample *Sample, params ExtractParams) (*ExtractionResult, error) {
	if params.N < 2 {
		return nil, fmt.Errorf("%w: pattern size N must be >= 2, got %d", ErrInvalidParameters, params.N)
	}
	switch params.Symmetry {
	case 1, 2, 4, 8:
	default:
		return nil, fmt.Errorf("%w: symmetry must be one of {1,2,4,8}, got %d", ErrInvalidParameters, params.Symmetry)
	}
	if sample == nil || sample.Width <= 0 || sample.Height <= 0 {
		return nil, fmt.Errorf("%w: empty sample", ErrEmptySample)
	}

	w, h, n := sample.Width, sample.Height, params.N

	var xMax, yMax int
	if params.PeriodicInput {
		xMax, yMax = w, h
	} else {
		xMax, yMax = w-n+1, h-n+1
	}
	if xMax <= 0 || yMax <= 0 {
		return nil, fmt.Errorf("%w: sample %dx%d too small for pattern size %d", ErrEmptySample, w, h, n)
	}

	ops := symmetryOps(params.Symmetry)

	type patternInfo struct {
		pattern                  Pattern
		weight                   float64
		top, bottom, left, right bool
	}
	index := make(map[string]int)
	var infos []*patternInfo

	for y := 0; y < yMax; y++ {
		touchesTop := y == 0
		touchesBottom := y+n >= h
		for x := 0; x < xMax; x++ {
			touchesLeft := x == 0
			touchesRight := x+n >= w

			window := extractWindow(sample, x, y, n)
			for _, op := range ops {
				variant := op(window)
				k := variant.key()
				idx, ok := index[k]
				if !ok {
					idx = len(infos)
					index[k] = idx
					infos = append(infos, &patternInfo{pattern: variant})
				}
				info := infos[idx]
				info.weight++
				info.top = info.top || touchesTop
				info.bottom = info.bottom || touchesBottom
				info.left = info.left || touchesLeft
				info.right = info.right || touchesRight
			}
		}
	}

	if len(infos) == 0 {
		return nil, fmt.Errorf("%w: no windows extracted", ErrEmptySample)
	}

	var totalWeight float64
	result := &ExtractionResult{
		N:        n,
		Patterns: make([]Pattern, len(infos)),
		Weights:  make([]float64, len(infos)),
		Top:      make([]bool, len(infos)),
		Bottom:   make([]bool, len(infos)),
		Left:     make([]bool, len(infos)),
		Right:    make([]bool, len(infos)),
	}
	for i, info := range infos {
		result.Patterns[i] = info.pattern
		result.Weights[i] = info.weight
		result.Top[i] = info.top
		result.Bottom[i] = info.bottom
		result.Left[i] = info.left
		result.Right[i] = info.right
		totalWeight += info.weight
	}
	if totalWeight <= 0 {
		return nil, ErrDegenerateWeights
	}

	return result, nil
}

// extractWindow reads the NxN block with top-left corner (ox, oy),
// wrapping modulo the sample dimensions. Wrapping is a no-op whenever the
// caller has already bounded the non-periodic origin range, so this helper
// is safe to use unconditionally.
func extractWindow(sample *Sample, ox, oy, n int) Pattern {
	pixels := make([]Color, n*n)
	for dy := 0; dy < n; dy++ {
		sy := (oy + dy) % sample.Height
		for dx := 0; dx < n; dx++ {
			sx := (ox + dx) % sample.Width
			pixels[dy*n+dx] = sample.At(sx, sy)
		}
	}
	return Pattern{N: n, Pixels: pixels}
}
