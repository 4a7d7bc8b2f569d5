package selector

import (
	"math"

	"github.com/katalvlaran/hmmselect/corpus"
	"github.com/katalvlaran/hmmselect/model"
)

// CV selects a candidate size by k-fold cross-validation over the label's
// own sequences: fit on each fold's training split, score the held-out
// split, and keep whichever candidate produced the single highest fold
// log-likelihood seen anywhere in the sweep.
//
// Note the scoring rule deliberately tracks the best individual fold, not
// the per-candidate fold average; switching to averaging would change
// selection outcomes, so it must stay an explicit, tested decision.
type CV struct {
	base
}

// NewCV builds a CV selector for one label.
func NewCV(f model.Fitter, set corpus.LabeledSet, concats map[string]corpus.Concat, label string, opts Options) (*CV, error) {
	b, err := newBase(f, set, concats, label, opts)
	if err != nil {
		return nil, err
	}

	return &CV{base: b}, nil
}

// Select sweeps the candidate range and re-fits the winner on the label's
// full data (never on a single fold). A label with fewer sequences than
// folds fails every candidate the same way an adapter failure would; a
// failure inside a candidate's fold loop abandons that candidate's
// remaining folds. All-fail defaults to MinStates.
func (s *CV) Select() (Result, error) {
	best := s.opts.MinStates
	bestLL := math.Inf(-1)

	for n := s.opts.MinStates; n <= s.opts.MaxStates; n++ {
		folds, err := corpus.KFold(len(s.seqs), s.opts.Folds)
		if err != nil {
			s.logf("fold split failed for %q with %d states: %v", s.label, n, err)
			continue
		}

		for _, fold := range folds {
			ll, ok := s.scoreFold(fold, n)
			if !ok {
				break
			}
			if ll > bestLL {
				bestLL = ll
				best = n
			}
		}
	}

	return s.finish(best)
}

// scoreFold fits one candidate on a fold's training split and scores the
// validation split. Failures are absorbed here and reported as !ok.
func (s *CV) scoreFold(fold corpus.Fold, n int) (float64, bool) {
	train, err := corpus.Combine(fold.Train, s.seqs)
	if err != nil {
		s.logf("train combine failed for %q with %d states: %v", s.label, n, err)

		return 0, false
	}
	val, err := corpus.Combine(fold.Val, s.seqs)
	if err != nil {
		s.logf("validation combine failed for %q with %d states: %v", s.label, n, err)

		return 0, false
	}

	m, err := s.fitter.Fit(train.X, train.Lengths, n, s.opts.Seed)
	if err != nil {
		s.logf("fold fit failed for %q with %d states: %v", s.label, n, err)

		return 0, false
	}
	ll, err := m.Score(val.X, val.Lengths)
	if err != nil {
		s.logf("fold score failed for %q with %d states: %v", s.label, n, err)

		return 0, false
	}

	return ll, true
}
