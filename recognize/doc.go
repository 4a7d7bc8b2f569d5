// Package recognize classifies test sequences against a fixed collection of
// per-label fitted models.
//
// Each test item is scored independently under every label's model. A
// scoring failure costs that label −Inf for that item only; nothing aborts
// the run. The guess per item is the arg-max label, with ties resolved in
// favor of the label appearing earliest in the collection's insertion order
// — the order is part of the contract, which is why model.Collection is
// ordered in the first place. When every label scores −Inf the guess is the
// empty string: no model could voice an opinion.
//
// The output is two parallel slices aligned by test-item index: one
// label → log-likelihood map per item, one guess per item. Aggregation
// (accuracy, error rates) is deliberately someone else's job.
//
// Complexity: O(items × labels × cost of one adapter Score call).
package recognize
