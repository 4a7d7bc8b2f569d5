package model

import "errors"

// Sentinel errors classifying engine failures at the adapter boundary.
var (
	// ErrFit indicates the engine could not fit a candidate model.
	ErrFit = errors.New("model: fit failed")

	// ErrScore indicates the engine could not score data under a fitted model.
	ErrScore = errors.New("model: score failed")
)

// Model is an opaque fitted sequence model. Implementations must be
// immutable after creation; Score must be safe to call repeatedly.
type Model interface {
	// Score returns the log-likelihood of the observations under the model.
	// X is a concatenated frames × dims matrix, lengths the per-sequence
	// frame counts within it.
	Score(X [][]float64, lengths []int) (float64, error)
}

// Fitter fits a sequence model with the requested hidden-state count.
// The seed makes any internal randomness reproducible: identical inputs and
// seed must yield an identically-scoring model. Fit may fail; callers treat
// a failure as "no candidate at this state count".
type Fitter interface {
	Fit(X [][]float64, lengths []int, numStates int, seed int64) (Model, error)
}
