// Package imagery is the enclosing program's image adapter for the wfc
// core: decoding samples to palette indices, encoding synthesized pattern
// grids back to pixels, and rendering in-progress previews. None of this
// lives inside internal/wfc, which never touches image.Image (spec.md §1).
package imagery

import "image/color"

// Palette is the bijection between palette indices in [0, C) and the real
// colors they stand for, built once from a loaded sample (spec.md §3
// "Color palette") and reused to encode the output.
type Palette struct {
	colors []color.RGBA
	index  map[color.RGBA]int
}

// newPalette creates an empty palette ready for Index.
func newPalette() *Palette {
	return &Palette{index: make(map[color.RGBA]int)}
}

// Index returns c's palette index, assigning the next free index the first
// time c is seen.
func (p *Palette) Index(c color.RGBA) int {
	if idx, ok := p.index[c]; ok {
		return idx
	}
	idx := len(p.colors)
	p.index[c] = idx
	p.colors = append(p.colors, c)
	return idx
}

// Color returns the real color for palette index i.
func (p *Palette) Color(i int) color.RGBA {
	return p.colors[i]
}

// Size returns the number of distinct colors in the palette.
func (p *Palette) Size() int {
	return len(p.colors)
}
