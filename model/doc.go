// Package model defines the contract between the selection core and the
// sequence-model engine it orchestrates, plus the ordered label → model
// collection consumed by recognition.
//
// The engine itself is deliberately opaque: anything that can fit a
// hidden-state sequence model on a concatenated observation matrix and score
// new observations under log-likelihood satisfies Fitter/Model. Expectation-
// maximization, emission families and iteration caps all live behind that
// boundary — this module never looks inside.
//
// Failure taxonomy:
//   - ErrFit   — the engine could not fit a candidate (non-convergence,
//     malformed input). Selection treats the candidate as non-competing.
//   - ErrScore — the engine could not score data under a fitted model.
//     Recognition substitutes −Inf for that label only.
//
// Adapters with nothing more specific to report should wrap these sentinels
// so callers can classify with errors.Is.
//
// Collection keeps insertion order. Recognition breaks score ties in favor of
// the earliest label, so iteration order is part of the observable contract,
// not an implementation detail.
package model
