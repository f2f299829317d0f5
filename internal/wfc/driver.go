package wfc

import (
	"context"
	"fmt"
	"math/rand"
)

// seedMix is the golden-ratio constant (splitmix64's state increment) that
// steps the per-attempt seed: attempt k uses Seed + (k-1)*seedMix, so
// successive restarts get widely spaced seeds rather than adjacent
// integers. No further mixing is applied.
const seedMix uint64 = 0x9E3779B97F4A7C15

// Params configures a synthesis run, gathering the inputs spec §6 lists.
type Params struct {
	N              int
	Width, Height  int
	PeriodicInput  bool
	PeriodicOutput bool
	Symmetry       int
	Seed           int64
	MaxAttempts    int
	Constraint     ConstraintKind
}

// ProgressFunc receives a read-only snapshot after each observation. It
// runs on the driver's own goroutine and must not mutate anything it's
// given (spec §5).
type ProgressFunc func(*Snapshot)

// Result is a completed run's output, component F's decode step.
type Result struct {
	Patterns    []Pattern
	PatternGrid []int // row-major, len Width*Height, index into Patterns
	Width, Height int
	Attempts    int
}

// Pixels decodes the pattern grid to pixels by taking each cell's pattern's
// top-left color, per spec §4.F "Decoding".
func (r *Result) Pixels() []Color {
	out := make([]Color, len(r.PatternGrid))
	for i, p := range r.PatternGrid {
		out[i] = r.Patterns[p].At(0, 0)
	}
	return out
}

// ContradictionError reports that every attempt up to MaxAttempts
// contradicted. It wraps ErrContradiction so callers can discriminate with
// errors.Is.
type ContradictionError struct {
	Attempts int
}

func (e *ContradictionError) Error() string {
	return fmt.Sprintf("wfc: contradiction after %d attempt(s)", e.Attempts)
}

func (e *ContradictionError) Unwrap() error {
	return ErrContradiction
}

// Driver orchestrates seeding, the observe/propagate loop, termination,
// retry, and decoding, component F. Pattern extraction and adjacency
// construction happen once at NewDriver and are immutable thereafter (spec
// §3 "Lifecycle").
type Driver struct {
	params            Params
	effectiveSymmetry int
	extraction        *ExtractionResult
	adjacency         *Adjacency
}

// NewDriver extracts patterns from sample and builds the adjacency table.
// Returns ErrInvalidParameters or ErrEmptySample immediately on failure, as
// those are fatal per spec §7.
func NewDriver(sample *Sample, params Params) (*Driver, error) {
	if params.Width <= 0 || params.Height <= 0 {
		return nil, fmt.Errorf("%w: output dimensions must be positive, got %dx%d",
			ErrInvalidParameters, params.Width, params.Height)
	}
	if params.MaxAttempts < 1 {
		params.MaxAttempts = 1
	}

	effSym := clampSymmetryFor(params.Constraint, params.Symmetry)

	extraction, err := Extract(sample, ExtractParams{
		N:             params.N,
		PeriodicInput: params.PeriodicInput,
		Symmetry:      effSym,
	})
	if err != nil {
		return nil, err
	}

	adjacency := BuildAdjacency(extraction.Patterns)

	return &Driver{
		params:            params,
		effectiveSymmetry: effSym,
		extraction:        extraction,
		adjacency:         adjacency,
	}, nil
}

// EffectiveSymmetry returns the symmetry group size actually used for
// extraction, after the vertical-constraint clamp described in
// SPEC_FULL.md §4.H.
func (d *Driver) EffectiveSymmetry() int {
	return d.effectiveSymmetry
}

// Patterns returns the extracted pattern set (read-only).
func (d *Driver) Patterns() []Pattern {
	return d.extraction.Patterns
}

// Weights returns the extracted pattern weights (read-only), parallel to
// Patterns.
func (d *Driver) Weights() []float64 {
	return d.extraction.Weights
}

// Run executes the state machine described in spec §4.F:
//
//	START -> init Wave -> propagate pre-imposed constraints -> LOOP
//	LOOP: contradicted -> retry (up to MaxAttempts) or fail
//	      all collapsed -> success, decode
//	      else observe -> propagate -> LOOP
//
// ctx is polled once per observation for cooperative cancellation.
func (d *Driver) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	for attempt := 1; attempt <= d.params.MaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w", ErrCancelled)
		default:
		}

		seed := d.params.Seed + int64(uint64(attempt-1)*seedMix)
		rng := rand.New(rand.NewSource(seed))

		wave := NewWave(d.params.Width, d.params.Height, d.extraction.Weights, d.adjacency, d.params.PeriodicOutput, rng)
		prop := NewPropagator(wave)
		observer := NewObserver()

		applyConstraint(wave, d.extraction, d.params.Constraint)
		if prop.Propagate() {
			continue // pinning was unsatisfiable; restart with the next seed
		}

		success, contradicted, err := d.runLoop(ctx, wave, prop, observer, rng, progress)
		if err != nil {
			return nil, err
		}
		if success {
			return &Result{
				Patterns:    d.extraction.Patterns,
				PatternGrid: wave.PatternGrid(),
				Width:       d.params.Width,
				Height:      d.params.Height,
				Attempts:    attempt,
			}, nil
		}
		_ = contradicted
	}

	return nil, &ContradictionError{Attempts: d.params.MaxAttempts}
}

// runLoop runs the observe/propagate loop for one attempt until success,
// contradiction, or cancellation.
func (d *Driver) runLoop(ctx context.Context, wave *Wave, prop *Propagator, observer *Observer, rng *rand.Rand, progress ProgressFunc) (success, contradicted bool, err error) {
	for {
		select {
		case <-ctx.Done():
			return false, false, fmt.Errorf("%w", ErrCancelled)
		default:
		}

		cell := observer.SelectCell(wave)
		if cell == -1 {
			if wave.AnyContradiction() {
				return false, true, nil
			}
			return true, false, nil
		}

		observer.Collapse(wave, cell, rng)

		if progress != nil {
			progress(newSnapshot(wave, d.extraction.Patterns, d.extraction.Weights))
		}

		if prop.Propagate() {
			return false, true, nil
		}
	}
}
