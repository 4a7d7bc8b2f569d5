package dtwmodel

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/hmmselect/corpus"
	"github.com/katalvlaran/hmmselect/model"
)

// nnModel is the fitted form: the memorized training sequences plus the
// warping knobs frozen at fit time. Immutable after Fit returns.
type nnModel struct {
	train   []corpus.Sequence
	dims    int
	states  int // accepted for contract parity; recorded, never used
	window  int
	penalty float64
}

// Fit memorizes the training sequences described by (X, lengths). The state
// count is validated and recorded so selection strategies can sweep it like
// any other model family, but it does not influence scoring. The seed is
// ignored: there is no randomness to reproduce.
//
// Errors wrap model.ErrFit.
func (f Fitter) Fit(X [][]float64, lengths []int, numStates int, _ int64) (model.Model, error) {
	if numStates < 1 {
		return nil, fmt.Errorf("%w: %w", model.ErrFit, ErrBadStates)
	}
	if len(X) == 0 || len(lengths) == 0 {
		return nil, fmt.Errorf("%w: %w", model.ErrFit, ErrNoTraining)
	}

	seqs, err := corpus.Split(X, lengths)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrFit, err)
	}

	return &nnModel{
		train:   seqs,
		dims:    len(seqs[0][0]),
		states:  numStates,
		window:  f.Window,
		penalty: f.SlopePenalty,
	}, nil
}

// Score returns the summed nearest-neighbour score of every query sequence:
// the negated, length-normalized DTW distance to the closest training
// sequence. Higher is better. Errors wrap model.ErrScore.
func (m *nnModel) Score(X [][]float64, lengths []int) (float64, error) {
	if len(X) == 0 || len(lengths) == 0 {
		return 0, fmt.Errorf("%w: %w", model.ErrScore, ErrEmptyQuery)
	}

	qs, err := corpus.Split(X, lengths)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", model.ErrScore, err)
	}

	var total float64
	for _, q := range qs {
		if len(q[0]) != m.dims {
			return 0, fmt.Errorf("%w: %w", model.ErrScore, ErrDimMismatch)
		}

		best := math.Inf(1)
		for _, tr := range m.train {
			d := warpDistance(q, tr, m.window, m.penalty)
			d /= float64(len(q) + len(tr))
			if d < best {
				best = d
			}
		}
		total -= best
	}

	return total, nil
}

// warpDistance computes the DTW distance between two frame matrices using a
// two-row rolling DP. Frame cost is the Euclidean distance between frames.
// window <= 0 disables the Sakoe–Chiba band. Returns +Inf when the band
// forbids every complete alignment.
func warpDistance(a, b corpus.Sequence, window int, penalty float64) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)

	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if window > 0 && abs(i-j) > window {
				curr[j] = inf
				continue
			}
			cost := floats.Distance(a[i-1], b[j-1], 2)

			ins := prev[j] + penalty
			del := curr[j-1] + penalty
			match := prev[j-1]
			curr[j] = cost + min3(ins, del, match)
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}
