// Package hmmselect chooses, per class label, the best hidden-state count
// for a probabilistic sequence model, and classifies held-out sequences
// against the resulting model collection.
//
// 🚀 What is hmmselect?
//
//	A small, deterministic library that brings together:
//		• Model-size search: Constant, BIC, DIC and cross-validated likelihood
//		• Recognition: score every test sequence under every label's model
//		• Corpus plumbing: sequence concatenation & deterministic k-fold splits
//		• A built-in DTW nearest-neighbour adapter for engine-free experiments
//
// ✨ Why choose hmmselect?
//
//   - Engine-agnostic – the fitting/scoring engine is an interface, bring your own HMM
//   - Deterministic – a per-call seed, no global state, no time-based randomness
//   - Failure-tolerant – a candidate that fails to fit simply does not compete
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under five subpackages:
//
//	corpus/    — labeled sequence sets, concatenation, k-fold index splitting
//	model/     — the adapter contract (Fitter/Model) & ordered model collections
//	dtwmodel/  — multivariate DTW nearest-neighbour reference adapter
//	selector/  — the four model-size selection strategies
//	recognize/ — scoring a model collection against a test set
//
// Data flows corpus → selector → model.Collection → recognize: one selector
// run per label picks a single fitted model, and the recognizer turns the
// collection into per-item score maps plus a best-guess label each.
//
// Dive into DESIGN.md for the selection criteria in detail and the
// deliberate quirks in the selection rules.
//
//	go get github.com/katalvlaran/hmmselect
package hmmselect
