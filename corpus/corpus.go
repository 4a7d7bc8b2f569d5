package corpus

// Combine concatenates the indexed sequences of one label into a single
// training-ready Concat. Frame rows are appended in index order; Lengths
// records each sequence's frame count so the seams stay recoverable.
//
// Errors:
//   - ErrNoSequences    — indices is empty.
//   - ErrIndexOutOfRange — an index is negative or ≥ len(seqs).
//   - ErrEmptySequence  — a selected sequence has no frames.
//
// Complexity: O(F) for F total frames in the selection.
func Combine(indices []int, seqs []Sequence) (Concat, error) {
	if len(indices) == 0 {
		return Concat{}, ErrNoSequences
	}

	var total int
	for _, idx := range indices {
		if idx < 0 || idx >= len(seqs) {
			return Concat{}, ErrIndexOutOfRange
		}
		if len(seqs[idx]) == 0 {
			return Concat{}, ErrEmptySequence
		}
		total += len(seqs[idx])
	}

	out := Concat{
		X:       make([][]float64, 0, total),
		Lengths: make([]int, 0, len(indices)),
	}
	for _, idx := range indices {
		out.X = append(out.X, seqs[idx]...)
		out.Lengths = append(out.Lengths, len(seqs[idx]))
	}

	return out, nil
}

// Split is the inverse of Combine: it slices a concatenated observation
// matrix back into its individual sequences along the recorded lengths.
// The returned sequences alias rows of X; callers must not mutate them.
//
// Errors:
//   - ErrNoSequences   — lengths is empty.
//   - ErrEmptySequence — a recorded length is not positive.
//   - ErrIndexOutOfRange — lengths do not sum to len(X).
func Split(X [][]float64, lengths []int) ([]Sequence, error) {
	if len(lengths) == 0 {
		return nil, ErrNoSequences
	}

	out := make([]Sequence, 0, len(lengths))
	start := 0
	for _, n := range lengths {
		if n <= 0 {
			return nil, ErrEmptySequence
		}
		if start+n > len(X) {
			return nil, ErrIndexOutOfRange
		}
		out = append(out, Sequence(X[start:start+n]))
		start += n
	}
	if start != len(X) {
		return nil, ErrIndexOutOfRange
	}

	return out, nil
}

// ConcatAll derives the full label → Concat mapping for a LabeledSet,
// combining every sequence of every label in stored order. Labels whose
// combination fails (no sequences, an empty sequence) are omitted.
func ConcatAll(set LabeledSet) map[string]Concat {
	out := make(map[string]Concat, len(set))
	for label, seqs := range set {
		idx := make([]int, len(seqs))
		for i := range idx {
			idx[i] = i
		}
		c, err := Combine(idx, seqs)
		if err != nil {
			continue
		}
		out[label] = c
	}

	return out
}

// KFold partitions the indices 0..n-1 into k contiguous train/validation
// folds. Fold f validates on its own contiguous block and trains on all
// remaining indices; the first n%k folds receive one extra index. There is
// no shuffling: the split is a pure function of n and k, which keeps
// repeated selection runs identical.
//
// Errors:
//   - ErrBadFoldCount    — k < 2.
//   - ErrTooFewSequences — n < k.
//
// Complexity: O(n·k) time, O(n·k) space for the emitted index slices.
func KFold(n, k int) ([]Fold, error) {
	if k < 2 {
		return nil, ErrBadFoldCount
	}
	if n < k {
		return nil, ErrTooFewSequences
	}

	folds := make([]Fold, 0, k)
	base, extra := n/k, n%k

	start := 0
	for f := 0; f < k; f++ {
		size := base
		if f < extra {
			size++
		}
		stop := start + size

		fold := Fold{
			Train: make([]int, 0, n-size),
			Val:   make([]int, 0, size),
		}
		for i := 0; i < n; i++ {
			if i >= start && i < stop {
				fold.Val = append(fold.Val, i)
			} else {
				fold.Train = append(fold.Train, i)
			}
		}
		folds = append(folds, fold)
		start = stop
	}

	return folds, nil
}
