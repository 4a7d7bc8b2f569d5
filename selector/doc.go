// Package selector searches a bounded range of hidden-state counts for the
// model size that best fits one label's sequences, under four interchangeable
// criteria.
//
// 🚀 The four strategies:
//
//	Constant — no search; always fit exactly NConstant states (baseline).
//	BIC      — minimize −2·L + p·ln(N): likelihood against parameter count,
//	           p = n² + 2·f·n − 1 for n states over f feature dimensions,
//	           N = total observation frames for the label.
//	DIC      — maximize L_own − mean(L_competitors): a model should explain
//	           its own label well and every other label poorly.
//	CV       — k-fold cross-validation over the label's sequences; the
//	           winning size is the candidate that produced the single
//	           highest validation-fold log-likelihood observed anywhere in
//	           the sweep — deliberately NOT the per-candidate fold average.
//
// Failure policy: a candidate whose fit or score fails simply does not
// compete; nothing escapes Select mid-sweep. When every candidate fails, the
// strategy falls back to MinStates. The winner is always re-fit fresh on the
// label's full data; only when that final fit also fails does Select report
// ErrNoModel, and the caller must treat the label as unmodeled.
//
// Determinism: the configured Seed is handed to every adapter Fit call, so
// identical inputs always select identical sizes. Selection for different
// labels shares no mutable state and may safely run concurrently; SelectAll
// stays sequential and inserts winners in sorted-label order.
//
// ⚙️ Usage:
//
//	opts := selector.DefaultOptions()     // n=3, range [2,10], seed 14
//	sel, err := selector.NewBIC(fitter, set, concats, "GO", opts)
//	if err != nil { ... }
//	res, err := sel.Select()
//	if errors.Is(err, selector.ErrNoModel) {
//	    // label stays unmodeled
//	}
//	fmt.Println("chosen states:", res.States)
package selector
