package corpus

import "errors"

// Sentinel errors returned by the corpus helpers.
var (
	// ErrNoSequences indicates an empty sequence selection where at least one
	// sequence is required.
	ErrNoSequences = errors.New("corpus: selection must contain at least one sequence")

	// ErrEmptySequence indicates a selected sequence has zero frames.
	ErrEmptySequence = errors.New("corpus: sequence must contain at least one frame")

	// ErrIndexOutOfRange indicates a sequence index outside the available set.
	ErrIndexOutOfRange = errors.New("corpus: sequence index out of range")

	// ErrBadFoldCount indicates a fold count below 2.
	ErrBadFoldCount = errors.New("corpus: fold count must be at least 2")

	// ErrTooFewSequences indicates fewer sequences than requested folds.
	ErrTooFewSequences = errors.New("corpus: fewer sequences than folds")
)

// DefaultFolds is the fold count used by callers that do not configure one.
const DefaultFolds = 3

// Sequence is a single observation sequence: frames × feature dimensions.
type Sequence [][]float64

// LabeledSet maps a class label to the ordered sequences observed for it.
// It is owned by the corpus loader and read-only to this module.
type LabeledSet map[string][]Sequence

// Concat is one or more sequences laid end-to-end: the concatenated
// observation matrix X and the per-sequence frame counts, in selection order.
// This is the unit every fitting/scoring adapter accepts.
type Concat struct {
	X       [][]float64
	Lengths []int
}

// Frames reports the total number of observation frames across the selection.
func (c Concat) Frames() int { return len(c.X) }

// Dims reports the feature dimensionality, or 0 for an empty concatenation.
func (c Concat) Dims() int {
	if len(c.X) == 0 {
		return 0
	}

	return len(c.X[0])
}

// Fold is one train/validation split of a label's sequence indices.
type Fold struct {
	Train []int
	Val   []int
}
