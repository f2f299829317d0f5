package imagery

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"

	"wfcsynth/internal/wfc"
)

// LoadSample decodes an image file into a wfc.Sample of palette indices,
// building the palette bijection as it goes, following the teacher's
// internal/image/layer.go Load pattern (os.Open, image.Decode, wrap errors).
func LoadSample(path string) (*wfc.Sample, *Palette, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("imagery: failed to open sample: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, nil, fmt.Errorf("imagery: failed to decode sample: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	palette := newPalette()
	pixels := make([]wfc.Color, w*h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			c := color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
			pixels[y*w+x] = wfc.Color(palette.Index(c))
		}
	}

	return &wfc.Sample{Width: w, Height: h, Pixels: pixels}, palette, nil
}
