package selector

import (
	"github.com/katalvlaran/hmmselect/corpus"
	"github.com/katalvlaran/hmmselect/model"
)

// Constant is the no-search baseline: it ignores the candidate range and
// always fits exactly NConstant states.
type Constant struct {
	base
}

// NewConstant builds a Constant selector for one label.
func NewConstant(f model.Fitter, set corpus.LabeledSet, concats map[string]corpus.Concat, label string, opts Options) (*Constant, error) {
	b, err := newBase(f, set, concats, label, opts)
	if err != nil {
		return nil, err
	}

	return &Constant{base: b}, nil
}

// Select fits NConstant states on the label's full data. Deterministic.
func (s *Constant) Select() (Result, error) {
	return s.finish(s.opts.NConstant)
}
