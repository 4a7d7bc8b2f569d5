// Package dtwmodel is a built-in reference adapter: a nearest-neighbour
// sequence model scored by multivariate Dynamic Time Warping distance.
//
// 🚀 Why does a model-selection library ship a DTW model?
//
//	The selection core only ever talks to a Fitter/Model pair; the real
//	hidden-state engine lives outside this module. dtwmodel satisfies the
//	same contract with no training algorithm at all — "fitting" memorizes
//	the training sequences, scoring negates the best warped distance to any
//	of them — so examples, tests and end-to-end experiments run without an
//	external engine.
//
// Scoring rule:
//
//	score(query) = Σ over query sequences of −min over training sequences of
//	               DTW(query, train) / (len(query) + len(train))
//
//	Frame-to-frame cost is the Euclidean distance over feature dimensions.
//	The length normalization keeps long sequences from dominating, and the
//	negation makes "higher is better", matching log-likelihood conventions.
//
// Knobs (both optional, zero values disable them):
//   - Window       — Sakoe–Chiba band: only compare frames within ±Window.
//   - SlopePenalty — extra cost for insertion/deletion steps.
//
// The DP keeps only two rows, so memory is O(min side) while time stays
// O(n·m) per sequence pair. The warping path itself is never needed here.
//
// Determinism: fitting consumes no randomness; the seed required by the
// adapter contract is accepted and ignored.
package dtwmodel
