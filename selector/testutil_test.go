// Package selector_test provides the deterministic fake adapter shared by
// the strategy tests. The fake records every Fit call (states, seed, data)
// and delegates scoring to a per-test closure, so each test states its
// likelihood landscape explicitly instead of relying on a real engine.
package selector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hmmselect/corpus"
	"github.com/katalvlaran/hmmselect/model"
)

// -----------------------------------------------------------------------------
// Fake adapter
// -----------------------------------------------------------------------------

// fitCall records one adapter invocation.
type fitCall struct {
	states int
	seed   int64
	frames int
}

// fakeFitter satisfies model.Fitter. failFit (optional) vetoes a fit;
// score (optional) computes Score results from the candidate's state count,
// the data being scored and the data the model was fit on. A nil score
// means "score 0, never fail".
type fakeFitter struct {
	calls   []fitCall
	failFit func(states int, trainX [][]float64) bool
	score   func(states int, X, trainX [][]float64) (float64, error)
}

func (f *fakeFitter) Fit(X [][]float64, lengths []int, numStates int, seed int64) (model.Model, error) {
	f.calls = append(f.calls, fitCall{states: numStates, seed: seed, frames: len(X)})
	if f.failFit != nil && f.failFit(numStates, X) {
		return nil, model.ErrFit
	}

	return &fakeModel{states: numStates, trainX: X, score: f.score}, nil
}

// lastCall returns the most recent Fit invocation.
func (f *fakeFitter) lastCall(t *testing.T) fitCall {
	t.Helper()
	require.NotEmpty(t, f.calls, "adapter was never invoked")

	return f.calls[len(f.calls)-1]
}

// fakeModel is immutable after Fit, like the contract demands.
type fakeModel struct {
	states int
	trainX [][]float64
	score  func(states int, X, trainX [][]float64) (float64, error)
}

func (m *fakeModel) Score(X [][]float64, lengths []int) (float64, error) {
	if m.score == nil {
		return 0, nil
	}

	return m.score(m.states, X, m.trainX)
}

// -----------------------------------------------------------------------------
// Corpus helpers
// -----------------------------------------------------------------------------

// seqOf builds a one-dimensional sequence from frame values.
func seqOf(vals ...float64) corpus.Sequence {
	s := make(corpus.Sequence, len(vals))
	for i, v := range vals {
		s[i] = []float64{v}
	}

	return s
}

// flatSeqs builds n single-frame sequences carrying base, base+1, ...
// The distinct frame values let score closures identify folds and labels
// by inspecting X[0][0].
func flatSeqs(base float64, n int) []corpus.Sequence {
	out := make([]corpus.Sequence, n)
	for i := range out {
		out[i] = seqOf(base + float64(i))
	}

	return out
}

// setup derives the Concat map and sanity-checks the set.
func setup(t *testing.T, set corpus.LabeledSet) map[string]corpus.Concat {
	t.Helper()
	concats := corpus.ConcatAll(set)
	require.Len(t, concats, len(set), "every label must concatenate")

	return concats
}

// firstVal identifies data by its first observation frame.
func firstVal(X [][]float64) float64 { return X[0][0] }
