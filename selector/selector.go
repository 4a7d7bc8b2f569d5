package selector

import (
	"log"

	"github.com/katalvlaran/hmmselect/corpus"
	"github.com/katalvlaran/hmmselect/model"
)

// base carries the per-label inputs every strategy shares: the full corpus
// views (needed by criteria that compare against other labels), the target
// label's own sequences and concatenation, and the configuration. All fields
// are read-only after construction.
type base struct {
	fitter  model.Fitter
	set     corpus.LabeledSet
	concats map[string]corpus.Concat
	label   string
	seqs    []corpus.Sequence
	data    corpus.Concat
	opts    Options
}

// newBase validates the shared inputs once for every constructor.
func newBase(f model.Fitter, set corpus.LabeledSet, concats map[string]corpus.Concat, label string, opts Options) (base, error) {
	if f == nil {
		return base{}, ErrNilFitter
	}
	if err := opts.Validate(); err != nil {
		return base{}, err
	}
	seqs, ok := set[label]
	if !ok {
		return base{}, ErrUnknownLabel
	}
	data, ok := concats[label]
	if !ok {
		return base{}, ErrUnknownLabel
	}

	return base{
		fitter:  f,
		set:     set,
		concats: concats,
		label:   label,
		seqs:    seqs,
		data:    data,
		opts:    opts,
	}, nil
}

// fitCandidate fits one candidate size on the label's full concatenation.
// This is the single point where adapter fit failures are absorbed: a nil
// return means "no candidate at this state count" and nothing propagates.
func (b *base) fitCandidate(numStates int) model.Model {
	m, err := b.fitter.Fit(b.data.X, b.data.Lengths, numStates, b.opts.Seed)
	if err != nil {
		b.logf("fit failed for %q with %d states: %v", b.label, numStates, err)

		return nil
	}
	b.logf("model created for %q with %d states", b.label, numStates)

	return m
}

// finish re-fits the winning size fresh on the full data. Every strategy
// funnels through here so the returned model is never a cached sweep fit.
func (b *base) finish(states int) (Result, error) {
	m := b.fitCandidate(states)
	if m == nil {
		return Result{}, ErrNoModel
	}

	return Result{Model: m, States: states}, nil
}

// logf writes progress output when Verbose is set.
func (b *base) logf(format string, args ...any) {
	if !b.opts.Verbose {
		return
	}
	lg := b.opts.Logger
	if lg == nil {
		lg = log.Default()
	}
	lg.Printf(format, args...)
}
