// Command wfcsynth runs the overlapping-model WFC synthesis core against a
// sample image and writes the result as a PNG.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"wfcsynth/internal/imagery"
	"wfcsynth/internal/version"
	"wfcsynth/internal/wfc"
)

func main() {
	showVersion := flag.Bool("version", false, "Print version information and exit")
	samplePath := flag.String("sample", "", "Path to the sample image (PNG, JPEG, BMP, GIF)")
	outPath := flag.String("out", "out.png", "Path to write the synthesized PNG")
	n := flag.Int("n", 3, "Pattern size N")
	width := flag.Int("width", 48, "Output width in cells")
	height := flag.Int("height", 48, "Output height in cells")
	periodicInput := flag.Bool("periodic-input", true, "Treat the sample as wrapping at its edges")
	periodicOutput := flag.Bool("periodic-output", false, "Treat the output as wrapping at its edges")
	symmetry := flag.Int("symmetry", 8, "Symmetry group size: 1, 2, 4, or 8")
	seed := flag.Int64("seed", 1, "Base RNG seed")
	maxAttempts := flag.Int("attempts", 10, "Maximum restart attempts before giving up")
	constraint := flag.String("constraint", "none", "Edge constraint: none, vertical, vertical-sides")
	timeout := flag.Duration("timeout", 30*time.Second, "Overall time budget before cancelling")
	flag.Parse()

	if *showVersion {
		fmt.Printf("wfcsynth %s (build %s, commit %s)\n", version.Version, version.BuildTime, version.GitCommit)
		return
	}

	if *samplePath == "" {
		fmt.Println("Usage: wfcsynth -sample <path> -out <path> [-n 3] [-width 48] [-height 48] [-symmetry 8] [-seed 1] [-constraint none|vertical|vertical-sides]")
		os.Exit(1)
	}

	kind, err := parseConstraint(*constraint)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	sample, palette, err := imagery.LoadSample(*samplePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load sample: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded sample %dx%d, %d colors\n", sample.Width, sample.Height, palette.Size())

	driver, err := wfc.NewDriver(sample, wfc.Params{
		N:              *n,
		Width:          *width,
		Height:         *height,
		PeriodicInput:  *periodicInput,
		PeriodicOutput: *periodicOutput,
		Symmetry:       *symmetry,
		Seed:           *seed,
		MaxAttempts:    *maxAttempts,
		Constraint:     kind,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build driver: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Extracted %d patterns (effective symmetry %d)\n", len(driver.Patterns()), driver.EffectiveSymmetry())

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	start := time.Now()
	result, err := driver.Run(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Synthesis failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Synthesized %dx%d in %v (%d attempt(s))\n", result.Width, result.Height, time.Since(start), result.Attempts)

	grid := make([][]int, result.Height)
	pixels := result.Pixels()
	for y := 0; y < result.Height; y++ {
		row := make([]int, result.Width)
		for x := 0; x < result.Width; x++ {
			row[x] = int(pixels[y*result.Width+x])
		}
		grid[y] = row
	}

	if err := imagery.EncodeOutput(grid, palette, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *outPath)
}

func parseConstraint(s string) (wfc.ConstraintKind, error) {
	switch s {
	case "none":
		return wfc.ConstraintNone, nil
	case "vertical":
		return wfc.ConstraintVertical, nil
	case "vertical-sides":
		return wfc.ConstraintVerticalSides, nil
	default:
		return 0, fmt.Errorf("unknown constraint %q (want none, vertical, or vertical-sides)", s)
	}
}
