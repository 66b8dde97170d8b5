// Package iso decides, heuristically, whether two undirected graphs are
// isomorphic and recovers a vertex correspondence when they are.
//
// Pipeline
//
//	Profile → Refine (per graph) → { Compare signatures ; BuildMapping → Verify }
//
// Compare is fast but only a candidate verdict: equal signature multisets
// are necessary, not sufficient. Verify is authoritative for positives.
// Decide runs both and reports when they disagree.
//
// Limits
//
//	Refinement is 1-dimensional, so graphs with large automorphism groups
//	(regular graphs in particular) may end as CandidateUnverified. This is
//	a polynomial-time heuristic, not a complete decision procedure.
//
// Usage
//
//	d, err := iso.Decide(ctx, a, b,
//	    iso.WithRefineOptions(refine.WithWorkers(4)),
//	)
//	if err != nil {
//	    // nil graphs, cancellation
//	}
//	if d.Outcome == iso.Isomorphic {
//	    use(d.Witness) // A-vertex → B-vertex
//	}
package iso
