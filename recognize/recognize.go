package recognize

import (
	"errors"
	"math"

	"github.com/katalvlaran/hmmselect/model"
)

// Sentinel errors returned by Recognize.
var (
	// ErrNilCollection indicates a nil model collection.
	ErrNilCollection = errors.New("recognize: model collection is nil")

	// ErrEmptyCollection indicates a collection with no modeled labels.
	ErrEmptyCollection = errors.New("recognize: model collection is empty")

	// ErrNilTestSet indicates a nil test set.
	ErrNilTestSet = errors.New("recognize: test set is nil")
)

// TestSet exposes held-out items by index: a concatenated observation
// matrix and its per-sequence lengths per item.
type TestSet interface {
	// Len reports the number of test items.
	Len() int

	// Item returns the observations for item i, 0 <= i < Len().
	Item(i int) (X [][]float64, lengths []int)
}

// Scores maps each label to the log-likelihood of one test item under that
// label's model; math.Inf(-1) marks a scoring failure for that label.
type Scores map[string]float64

// Recognize scores every test item under every model in the collection.
// It returns two parallel slices aligned by item index: per-item score maps
// (one entry per collection label) and per-item best-guess labels. Ties keep
// the earliest label in collection order; an item every model failed on
// guesses "". Per-model scoring failures never propagate — the error return
// concerns only unusable inputs.
func Recognize(models *model.Collection, ts TestSet) ([]Scores, []string, error) {
	if models == nil {
		return nil, nil, ErrNilCollection
	}
	if models.Len() == 0 {
		return nil, nil, ErrEmptyCollection
	}
	if ts == nil {
		return nil, nil, ErrNilTestSet
	}

	labels := models.Labels()
	probabilities := make([]Scores, 0, ts.Len())
	guesses := make([]string, 0, ts.Len())

	for i := 0; i < ts.Len(); i++ {
		X, lengths := ts.Item(i)

		scores := make(Scores, len(labels))
		bestLL := math.Inf(-1)
		guess := ""

		for _, label := range labels {
			m, _ := models.Get(label)

			ll := math.Inf(-1)
			if s, err := m.Score(X, lengths); err == nil {
				ll = s
			}
			scores[label] = ll

			// Strict improvement keeps the earliest label on ties and
			// leaves the guess empty when everything scored -Inf.
			if ll > bestLL {
				bestLL = ll
				guess = label
			}
		}

		probabilities = append(probabilities, scores)
		guesses = append(guesses, guess)
	}

	return probabilities, guesses, nil
}
