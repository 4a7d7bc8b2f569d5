// Package corpus holds the data plumbing shared by every selection strategy:
// labeled sequence sets, end-to-end concatenation of chosen sequences, and
// deterministic k-fold splitting of sequence indices.
//
// A Sequence is a frames × feature-dimension matrix. A LabeledSet maps each
// class label to the ordered sequences observed for it; it is loaded once and
// never mutated by this module. Fitting engines consume one or more sequences
// laid end-to-end as a Concat: the concatenated observation matrix plus the
// per-sequence frame counts needed to find the seams again.
//
// Key operations:
//   - Combine   — concatenate an indexed subset of a label's sequences
//   - ConcatAll — derive the full label → Concat map for a LabeledSet
//   - KFold     — contiguous, shuffle-free train/validation index folds
//
// KFold is intentionally deterministic: the split is a pure function of the
// sequence count and the fold count, so repeated runs see identical folds.
//
// Complexity: Combine is O(frames) in the total concatenated length; KFold is
// O(n·k) in index bookkeeping.
package corpus
