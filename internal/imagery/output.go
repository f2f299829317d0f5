package imagery

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// EncodeOutput writes a synthesized pattern grid (row-major, grid[y][x] is
// a palette index) as a PNG, following the teacher's plain os.Create +
// png.Encode style (internal/image has no dedicated "save" path of its
// own, but internal/project.Save uses the same os.Create+encode shape for
// JSON; this mirrors it for images).
func EncodeOutput(grid [][]int, palette *Palette, path string) error {
	if len(grid) == 0 {
		return fmt.Errorf("imagery: empty output grid")
	}
	h := len(grid)
	w := len(grid[0])

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := grid[y]
		for x := 0; x < w; x++ {
			img.Set(x, y, palette.Color(row[x]))
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imagery: failed to create output file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("imagery: failed to encode output: %w", err)
	}
	return nil
}
