package dtwmodel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hmmselect/corpus"
	"github.com/katalvlaran/hmmselect/dtwmodel"
	"github.com/katalvlaran/hmmselect/model"
)

// ramp builds a 1-D sequence around the given base value.
func ramp(base float64, n int) corpus.Sequence {
	s := make(corpus.Sequence, n)
	for i := range s {
		s[i] = []float64{base + float64(i)}
	}

	return s
}

// fitOn fits the zero-value Fitter on the given sequences.
func fitOn(t *testing.T, seqs ...corpus.Sequence) model.Model {
	t.Helper()

	idx := make([]int, len(seqs))
	for i := range idx {
		idx[i] = i
	}
	c, err := corpus.Combine(idx, seqs)
	require.NoError(t, err)

	m, err := dtwmodel.Fitter{}.Fit(c.X, c.Lengths, 3, 14)
	require.NoError(t, err)

	return m
}

// TestFit_Errors verifies fit-side failures wrap model.ErrFit.
func TestFit_Errors(t *testing.T) {
	_, err := dtwmodel.Fitter{}.Fit(nil, nil, 3, 14)
	assert.ErrorIs(t, err, model.ErrFit, "empty training data must be a fit failure")

	c, cerr := corpus.Combine([]int{0}, []corpus.Sequence{ramp(0, 4)})
	require.NoError(t, cerr)

	_, err = dtwmodel.Fitter{}.Fit(c.X, c.Lengths, 0, 14)
	assert.ErrorIs(t, err, model.ErrFit)
	assert.ErrorIs(t, err, dtwmodel.ErrBadStates)
}

// TestScore_SelfIsPerfect verifies an exact training match scores zero and
// anything else scores strictly worse.
func TestScore_SelfIsPerfect(t *testing.T) {
	train := ramp(0, 6)
	m := fitOn(t, train)

	c, err := corpus.Combine([]int{0}, []corpus.Sequence{train})
	require.NoError(t, err)

	self, err := m.Score(c.X, c.Lengths)
	require.NoError(t, err)
	assert.Equal(t, 0.0, self, "identical sequence warps at zero cost")

	far, err := corpus.Combine([]int{0}, []corpus.Sequence{ramp(50, 6)})
	require.NoError(t, err)
	other, scoreErr := m.Score(far.X, far.Lengths)
	require.NoError(t, scoreErr)
	assert.Less(t, other, self, "distant sequence must score lower")
}

// TestScore_NearestNeighbourWins verifies the min-over-training rule: adding
// a close training sequence can only improve a query's score.
func TestScore_NearestNeighbourWins(t *testing.T) {
	query, err := corpus.Combine([]int{0}, []corpus.Sequence{ramp(10, 5)})
	require.NoError(t, err)

	farOnly := fitOn(t, ramp(100, 5))
	sFar, err := farOnly.Score(query.X, query.Lengths)
	require.NoError(t, err)

	withNear := fitOn(t, ramp(100, 5), ramp(10, 5))
	sNear, err := withNear.Score(query.X, query.Lengths)
	require.NoError(t, err)

	assert.Greater(t, sNear, sFar, "a nearer neighbour must not hurt the score")
	assert.Equal(t, 0.0, sNear, "exact neighbour present, best distance is zero")
}

// TestScore_Errors verifies score-side failures wrap model.ErrScore.
func TestScore_Errors(t *testing.T) {
	m := fitOn(t, ramp(0, 4))

	_, err := m.Score(nil, nil)
	assert.ErrorIs(t, err, model.ErrScore, "empty query must be a score failure")

	twoDim, cerr := corpus.Combine([]int{0}, []corpus.Sequence{{{1, 2}, {3, 4}}})
	require.NoError(t, cerr)
	_, err = m.Score(twoDim.X, twoDim.Lengths)
	assert.ErrorIs(t, err, dtwmodel.ErrDimMismatch)
}

// TestScore_WindowForbidsAlignment verifies a zero-slack band with mismatched
// lengths yields -Inf-like behavior: the distance is +Inf, so the score is -Inf.
func TestScore_WindowForbidsAlignment(t *testing.T) {
	c, err := corpus.Combine([]int{0}, []corpus.Sequence{ramp(0, 3)})
	require.NoError(t, err)

	m, err := dtwmodel.Fitter{Window: 1}.Fit(c.X, c.Lengths, 2, 14)
	require.NoError(t, err)

	long, err := corpus.Combine([]int{0}, []corpus.Sequence{ramp(0, 8)})
	require.NoError(t, err)

	s, err := m.Score(long.X, long.Lengths)
	require.NoError(t, err)
	assert.True(t, math.IsInf(s, -1), "band forbids every complete alignment, score is -Inf")
}

// TestScore_SlopePenaltyBiasesDiagonal verifies a positive penalty makes a
// stretched alignment cost more than the unpenalized one.
func TestScore_SlopePenaltyBiasesDiagonal(t *testing.T) {
	train := corpus.Sequence{{1}, {2}, {3}}
	query, err := corpus.Combine([]int{0}, []corpus.Sequence{{{1}, {1}, {2}, {3}}})
	require.NoError(t, err)

	c, cerr := corpus.Combine([]int{0}, []corpus.Sequence{train})
	require.NoError(t, cerr)

	plain, err := dtwmodel.Fitter{}.Fit(c.X, c.Lengths, 2, 14)
	require.NoError(t, err)
	s0, err := plain.Score(query.X, query.Lengths)
	require.NoError(t, err)

	biased, err := dtwmodel.Fitter{SlopePenalty: 1}.Fit(c.X, c.Lengths, 2, 14)
	require.NoError(t, err)
	s1, err := biased.Score(query.X, query.Lengths)
	require.NoError(t, err)

	assert.Equal(t, 0.0, s0, "zero penalty allows a perfect stretched match")
	assert.Less(t, s1, s0, "penalty must charge the off-diagonal step")
}
