package selector

import (
	"errors"
	"sort"

	"github.com/katalvlaran/hmmselect/corpus"
	"github.com/katalvlaran/hmmselect/model"
)

// New builds the requested strategy for one label.
func New(strategy Strategy, f model.Fitter, set corpus.LabeledSet, concats map[string]corpus.Concat, label string, opts Options) (Selector, error) {
	switch strategy {
	case StrategyConstant:
		return NewConstant(f, set, concats, label, opts)
	case StrategyBIC:
		return NewBIC(f, set, concats, label, opts)
	case StrategyDIC:
		return NewDIC(f, set, concats, label, opts)
	case StrategyCV:
		return NewCV(f, set, concats, label, opts)
	default:
		return nil, ErrBadStrategy
	}
}

// SelectAll runs the chosen strategy once per label and assembles the
// winners into an ordered Collection, inserting in sorted-label order so
// downstream recognition tie-breaks are reproducible. Labels that end up
// without a usable model (no concatenation, or ErrNoModel) are reported in
// unmodeled rather than failing the run; any other constructor error aborts,
// since it signals misconfiguration rather than data trouble.
//
// Selection is sequential by design: per-label runs share no mutable state,
// so callers needing parallelism can run per-label selectors on their own
// goroutines and Put the results in sorted order themselves.
func SelectAll(strategy Strategy, f model.Fitter, set corpus.LabeledSet, concats map[string]corpus.Concat, opts Options) (*model.Collection, []string, error) {
	labels := make([]string, 0, len(set))
	for label := range set {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	collection := model.NewCollection()
	var unmodeled []string

	for _, label := range labels {
		if _, ok := concats[label]; !ok {
			unmodeled = append(unmodeled, label)
			continue
		}

		sel, err := New(strategy, f, set, concats, label, opts)
		if err != nil {
			return nil, nil, err
		}

		res, err := sel.Select()
		if errors.Is(err, ErrNoModel) {
			unmodeled = append(unmodeled, label)
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		collection.Put(label, res.Model)
	}

	return collection, unmodeled, nil
}
