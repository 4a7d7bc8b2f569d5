package selector

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/hmmselect/corpus"
	"github.com/katalvlaran/hmmselect/model"
)

// DIC selects the candidate with the highest Discriminative Information
// Criterion (Biem 2003):
//
//	DIC = L_own − (1/(M−1)) · Σ L_other
//
// where L_own is the log-likelihood of the label's own data under the
// candidate, the sum runs over every other label's concatenated data scored
// under the same model, and M is the total label count. Higher is better: a
// discriminative model explains its own class and nothing else.
type DIC struct {
	base
}

// NewDIC builds a DIC selector for one label.
func NewDIC(f model.Fitter, set corpus.LabeledSet, concats map[string]corpus.Concat, label string, opts Options) (*DIC, error) {
	b, err := newBase(f, set, concats, label, opts)
	if err != nil {
		return nil, err
	}

	return &DIC{base: b}, nil
}

// Select sweeps the candidate range and re-fits the maximum-DIC size.
// A candidate whose fit, own-data score, or any competitor score fails does
// not compete. With fewer than two labels no competitor mean exists, so
// every candidate fails and the sweep defaults to MinStates.
func (s *DIC) Select() (Result, error) {
	best := s.opts.MinStates
	bestDIC := math.Inf(-1)

	labelCount := len(s.concats)
	others := competitorLabels(s.concats, s.label)

	for n := s.opts.MinStates; n <= s.opts.MaxStates; n++ {
		m := s.fitCandidate(n)
		if m == nil {
			continue
		}
		own, err := m.Score(s.data.X, s.data.Lengths)
		if err != nil {
			s.logf("score failed for %q with %d states: %v", s.label, n, err)
			continue
		}
		if labelCount < 2 {
			s.logf("no competitors for %q, candidate with %d states cannot be ranked", s.label, n)
			continue
		}

		scores, ok := s.scoreCompetitors(m, others, n)
		if !ok {
			continue
		}

		dic := own - floats.Sum(scores)/float64(labelCount-1)
		if dic > bestDIC {
			bestDIC = dic
			best = n
		}
	}

	return s.finish(best)
}

// scoreCompetitors scores every other label's data under one candidate
// model. Any scoring failure disqualifies the candidate as a whole.
func (s *DIC) scoreCompetitors(m model.Model, others []string, n int) ([]float64, bool) {
	scores := make([]float64, 0, len(others))
	for _, label := range others {
		c := s.concats[label]
		ll, err := m.Score(c.X, c.Lengths)
		if err != nil {
			s.logf("competitor score failed for %q against %q with %d states: %v", s.label, label, n, err)

			return nil, false
		}
		scores = append(scores, ll)
	}

	return scores, true
}

// competitorLabels lists every label except the target, sorted for
// reproducible sweep logs. The DIC sum itself is order-independent.
func competitorLabels(concats map[string]corpus.Concat, target string) []string {
	out := make([]string, 0, len(concats)-1)
	for label := range concats {
		if label == target {
			continue
		}
		out = append(out, label)
	}
	sort.Strings(out)

	return out
}
