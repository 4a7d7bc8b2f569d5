package selector

import (
	"math"

	"github.com/katalvlaran/hmmselect/corpus"
	"github.com/katalvlaran/hmmselect/model"
)

// BIC selects the candidate with the lowest Bayesian Information Criterion:
//
//	BIC = −2·L + p·ln(N)
//
// where L is the log-likelihood of the label's own data under the candidate,
// N the total number of observation frames, and p the free-parameter count
// of an n-state diagonal-covariance model over f feature dimensions:
//
//	p = n² + 2·f·n − 1
//
// (transition matrix + means + variances + prior, minus normalization
// constraints). Lower is better: the penalty term charges model complexity.
type BIC struct {
	base
}

// NewBIC builds a BIC selector for one label.
func NewBIC(f model.Fitter, set corpus.LabeledSet, concats map[string]corpus.Concat, label string, opts Options) (*BIC, error) {
	b, err := newBase(f, set, concats, label, opts)
	if err != nil {
		return nil, err
	}

	return &BIC{base: b}, nil
}

// Select sweeps the candidate range and re-fits the minimum-BIC size.
// Candidates that fail to fit or score do not compete; if all fail the
// sweep defaults to MinStates.
func (s *BIC) Select() (Result, error) {
	best := s.opts.MinStates
	bestBIC := math.Inf(1)

	logN := math.Log(float64(s.data.Frames()))
	dims := float64(s.data.Dims())

	for n := s.opts.MinStates; n <= s.opts.MaxStates; n++ {
		m := s.fitCandidate(n)
		if m == nil {
			continue
		}
		ll, err := m.Score(s.data.X, s.data.Lengths)
		if err != nil {
			s.logf("score failed for %q with %d states: %v", s.label, n, err)
			continue
		}

		p := float64(n*n) + 2*dims*float64(n) - 1
		bic := -2*ll + p*logN
		if bic < bestBIC {
			bestBIC = bic
			best = n
		}
	}

	return s.finish(best)
}
