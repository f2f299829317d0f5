// Package wfc implements the overlapping-model Wave Function Collapse
// constraint-satisfaction core: pattern extraction, adjacency compatibility,
// the per-cell wave, propagation, observation, and the driving state
// machine. It has no dependency on image decoding, GUI rendering, or CLI
// parsing — those are the enclosing program's concern (see internal/imagery
// and cmd/).
package wfc

// Color is a compact palette index in [0, C). The core never interprets
// colors beyond equality comparison; the bijection to real pixel values
// lives in the enclosing program's Palette (internal/imagery).
type Color = uint16

// Sample is the input image expressed as palette indices.
type Sample struct {
	Width, Height int
	Pixels        []Color // row-major, len == Width*Height
}

// At returns the palette index at (x, y). No bounds checking: callers that
// need wraparound should reduce coordinates modulo Width/Height first.
func (s *Sample) At(x, y int) Color {
	return s.Pixels[y*s.Width+x]
}

// Pattern is a canonical NxN array of color indices extracted from a
// sample, per spec §3.
type Pattern struct {
	N      int
	Pixels []Color // N*N, row-major
}

// At returns the color at local pattern coordinates (x, y).
func (p Pattern) At(x, y int) Color {
	return p.Pixels[y*p.N+x]
}

// key returns a value usable as a map key for structural-equality dedup.
// Patterns are never pre-canonicalized to a lexicographic minimum (spec §9
// "Symmetry canonicalization") — this is purely an equality test, not a
// normalization.
func (p Pattern) key() string {
	buf := make([]byte, len(p.Pixels)*2)
	for i, c := range p.Pixels {
		buf[2*i] = byte(c)
		buf[2*i+1] = byte(c >> 8)
	}
	return string(buf)
}

// Dir is one of the four cardinal propagation directions. Values and the
// opposite-via-XOR-2 relationship are grounded on original_source/src/wfc.rs's
// Direction enum (Right=0, Down=1, Left=2, Up=3).
type Dir uint8

const (
	DirRight Dir = iota
	DirDown
	DirLeft
	DirUp
)

// AllDirs enumerates the four directions in a fixed order used for
// deterministic propagation fan-out.
var AllDirs = [4]Dir{DirRight, DirDown, DirLeft, DirUp}

// Opposite returns the reverse direction. Right<->Left and Down<->Up are 2
// apart in the enum, so XOR with 2 maps each to its opposite.
func (d Dir) Opposite() Dir {
	return d ^ 2
}

// Delta returns the coordinate offset of one step in direction d.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirRight:
		return 1, 0
	case DirLeft:
		return -1, 0
	case DirDown:
		return 0, 1
	case DirUp:
		return 0, -1
	}
	return 0, 0
}

func (d Dir) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	default:
		return "unknown"
	}
}
