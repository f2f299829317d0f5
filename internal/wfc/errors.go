package wfc

import "errors"

// Sentinel error kinds, surfaced per the error-handling policy: pattern
// extraction and init failures are fatal and immediate, contradictions are
// local to an attempt and recovered by restart, cancellation is cooperative.
var (
	ErrInvalidParameters = errors.New("wfc: invalid parameters")
	ErrEmptySample       = errors.New("wfc: sample yields no patterns")
	ErrDegenerateWeights = errors.New("wfc: pattern weights sum to zero")
	ErrContradiction     = errors.New("wfc: contradiction")
	ErrCancelled         = errors.New("wfc: cancelled")
)
