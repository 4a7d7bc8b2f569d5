package dtwmodel

import "errors"

// Sentinel errors returned by the DTW adapter. Fit-side errors wrap
// model.ErrFit and score-side errors wrap model.ErrScore at the call site,
// so callers can classify with errors.Is against either taxonomy level.
var (
	// ErrNoTraining indicates Fit received no usable training sequences.
	ErrNoTraining = errors.New("dtwmodel: no training sequences")

	// ErrBadStates indicates a non-positive hidden-state count.
	ErrBadStates = errors.New("dtwmodel: state count must be positive")

	// ErrEmptyQuery indicates Score received no observations.
	ErrEmptyQuery = errors.New("dtwmodel: query must contain at least one sequence")

	// ErrDimMismatch indicates query and training feature dimensions differ.
	ErrDimMismatch = errors.New("dtwmodel: feature dimensionality mismatch")
)

// Fitter builds nearest-neighbour DTW models. The zero value is ready to
// use: no band constraint and no slope penalty.
type Fitter struct {
	// Window is the Sakoe–Chiba band half-width: frame pairs with
	// |i-j| > Window are never matched. Zero or negative disables the band.
	Window int

	// SlopePenalty is the additional cost of insertion/deletion steps,
	// biasing alignments toward the diagonal.
	SlopePenalty float64
}
