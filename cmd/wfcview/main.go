// Command wfcview is a minimal fyne-backed live viewer for a WFC
// synthesis run: it shows the in-progress snapshot after every
// observation and the final decoded image once the run completes.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"wfcsynth/internal/imagery"
	"wfcsynth/internal/wfc"
	"wfcsynth/pkg/geometry"
	"wfcsynth/ui/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

func main() {
	appPrefs := prefs.Load()

	samplePath := flag.String("sample", appPrefs.String("lastSample"), "Path to the sample image")
	n := flag.Int("n", 3, "Pattern size N")
	width := flag.Int("width", 48, "Output width in cells")
	height := flag.Int("height", 48, "Output height in cells")
	symmetry := flag.Int("symmetry", 8, "Symmetry group size: 1, 2, 4, or 8")
	seed := flag.Int64("seed", int64(appPrefs.FloatWithFallback("lastSeed", 1)), "Base RNG seed")
	flag.Parse()

	if *samplePath == "" {
		fmt.Println("Usage: wfcview -sample <path> [-n 3] [-width 48] [-height 48] [-symmetry 8] [-seed 1]")
		os.Exit(1)
	}

	appPrefs.SetString("lastSample", *samplePath)
	appPrefs.SetFloat("lastSeed", float64(*seed))
	if err := appPrefs.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save preferences: %v\n", err)
	}

	sample, palette, err := imagery.LoadSample(*samplePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load sample: %v\n", err)
		os.Exit(1)
	}

	driver, err := wfc.NewDriver(sample, wfc.Params{
		N: *n, Width: *width, Height: *height,
		PeriodicInput: true, PeriodicOutput: false,
		Symmetry: *symmetry, Seed: *seed, MaxAttempts: 20,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build driver: %v\n", err)
		os.Exit(1)
	}

	const pixelsPerCell = 12
	windowScale := imagery.ScaleTransform(*width, *height, *width*pixelsPerCell, *height*pixelsPerCell)
	windowCorner := windowScale.Apply(geometry.Point2D{X: float64(*width), Y: float64(*height)})
	windowW, windowH := windowCorner.X, windowCorner.Y

	fyneApp := app.New()
	win := fyneApp.NewWindow("wfcview")

	initial := imagery.UpscaleNearest(imagery.SnapshotImage(emptySnapshot(driver, *width, *height), palette), int(windowW), int(windowH))
	raster := fynecanvas.NewImageFromImage(initial)
	raster.FillMode = fynecanvas.ImageFillOriginal
	status := widget.NewLabel("running...")

	content := container.NewBorder(nil, container.NewPadded(status), nil, nil, raster)
	win.SetContent(content)
	win.Resize(fyne.NewSize(float32(windowW), float32(windowH)))

	go func() {
		progress := func(snap *wfc.Snapshot) {
			img := imagery.UpscaleNearest(imagery.SnapshotImage(snap, palette), int(windowW), int(windowH))
			raster.Image = img
			raster.Refresh()
		}

		result, err := driver.Run(context.Background(), progress)
		if err != nil {
			status.SetText(fmt.Sprintf("failed: %v", err))
			return
		}
		final := &wfc.Snapshot{
			Width: result.Width, Height: result.Height,
			DomainSizes:      make([]int, len(result.PatternGrid)),
			PossiblePatterns: make([][]int, len(result.PatternGrid)),
			Patterns:         result.Patterns,
			Weights:          driver.Weights(),
		}
		for c, q := range result.PatternGrid {
			final.DomainSizes[c] = 1
			final.PossiblePatterns[c] = []int{q}
		}
		raster.Image = imagery.UpscaleNearest(imagery.SnapshotImage(final, palette), int(windowW), int(windowH))
		raster.Refresh()
		status.SetText(fmt.Sprintf("done in %d attempt(s)", result.Attempts))
	}()

	win.ShowAndRun()
}

// emptySnapshot builds the initial all-possible-patterns snapshot so the
// viewer has something to paint before the first observation completes.
func emptySnapshot(driver *wfc.Driver, width, height int) *wfc.Snapshot {
	patterns := driver.Patterns()
	all := make([]int, len(patterns))
	for i := range all {
		all[i] = i
	}
	possible := make([][]int, width*height)
	sizes := make([]int, width*height)
	for c := range possible {
		possible[c] = all
		sizes[c] = len(all)
	}
	return &wfc.Snapshot{
		Width: width, Height: height,
		DomainSizes:      sizes,
		PossiblePatterns: possible,
		Patterns:         patterns,
		Weights:          driver.Weights(),
	}
}
