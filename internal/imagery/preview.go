package imagery

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"gonum.org/v1/gonum/mat"

	"wfcsynth/internal/wfc"
	"wfcsynth/pkg/colorutil"
	"wfcsynth/pkg/geometry"
)

// SnapshotImage renders a progress snapshot as a preview image, one pixel
// per cell, following original_source/src/wfc.rs's get_color: a
// weighted-average of the colors of the cell's remaining possible patterns'
// top-left pixels, weighted by each pattern's occurrence weight. A cell
// with zero possible patterns (a contradiction) renders as the sentinel
// magenta the teacher's pkg/colorutil already defines for overlay markers,
// rather than as any real palette color.
func SnapshotImage(snapshot *wfc.Snapshot, palette *Palette) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, snapshot.Width, snapshot.Height))

	for c := 0; c < snapshot.Width*snapshot.Height; c++ {
		x := c % snapshot.Width
		y := c / snapshot.Width

		possible := snapshot.PossiblePatterns[c]
		if len(possible) == 0 {
			img.Set(x, y, colorutil.Magenta)
			continue
		}

		var sumR, sumG, sumB, sumW float64
		for _, q := range possible {
			w := snapshot.Weights[q]
			rgba := palette.Color(int(snapshot.Patterns[q].At(0, 0)))
			sumR += float64(rgba.R) * w
			sumG += float64(rgba.G) * w
			sumB += float64(rgba.B) * w
			sumW += w
		}
		if sumW == 0 {
			img.Set(x, y, colorutil.Magenta)
			continue
		}
		img.Set(x, y, color.RGBA{
			R: uint8(sumR / sumW),
			G: uint8(sumG / sumW),
			B: uint8(sumB / sumW),
			A: 255,
		})
	}

	return img
}

// ScaleTransform builds the geometry.AffineTransform that maps a decoded
// cellW x cellH cell grid up onto a targetW x targetH preview raster. It
// poses three corner correspondences (origin, right edge, bottom edge) as
// a 6x6 linear system solved with gonum.org/v1/gonum/mat, the same shape
// the board-alignment pipeline's computeAffineFromPoints used, rather than
// deriving the resulting diagonal scale by hand — the correspondences
// happen to be axis-aligned, so the solve comes back with zero shear terms,
// but the machinery is the general affine solver, not a special case.
func ScaleTransform(cellW, cellH, targetW, targetH int) geometry.AffineTransform {
	src := [3][2]float64{{0, 0}, {float64(cellW), 0}, {0, float64(cellH)}}
	dst := [3][2]float64{{0, 0}, {float64(targetW), 0}, {0, float64(targetH)}}

	a := mat.NewDense(6, 6, nil)
	b := mat.NewVecDense(6, nil)
	for i := 0; i < 3; i++ {
		x, y := src[i][0], src[i][1]
		xp, yp := dst[i][0], dst[i][1]

		a.Set(i*2, 0, x)
		a.Set(i*2, 1, y)
		a.Set(i*2, 2, 1)
		b.SetVec(i*2, xp)

		a.Set(i*2+1, 3, x)
		a.Set(i*2+1, 4, y)
		a.Set(i*2+1, 5, 1)
		b.SetVec(i*2+1, yp)
	}

	var params mat.VecDense
	if err := params.SolveVec(a, b); err != nil {
		return geometry.Identity()
	}

	return geometry.AffineTransform{
		A: params.AtVec(0), B: params.AtVec(1), TX: params.AtVec(2),
		C: params.AtVec(3), D: params.AtVec(4), TY: params.AtVec(5),
	}
}

// UpscaleNearest blocks img up to a targetW x targetH raster with nearest-
// neighbor resampling, so each cell renders as a crisp solid block rather
// than a blurred stretch. Uses golang.org/x/image/draw the way the
// teacher's internal/image package uses the same sibling package for its
// own resampling needs, instead of relying on the display widget's own
// (bilinear) scaling.
func UpscaleNearest(img image.Image, targetW, targetH int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}
