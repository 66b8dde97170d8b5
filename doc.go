// Package isomorph decides whether two simple undirected graphs are
// isomorphic using color refinement, a fast heuristic backed by an exact
// verification of the mapping it proposes.
//
// 🚀 What is isomorph?
//
//	A deterministic engine plus the tooling around it:
//		• Refinement: per-vertex BFS signatures (canonical form) or
//		  round-based weight propagation (weight map)
//		• Comparison: signature multisets, diffs and fingerprints
//		• Mapping: canonical vertex order with recorded individualization
//		• Verification: exact matrix equivalence and an A→B witness
//		• I/O: vflib binary graphs, Graphviz DOT, compact graph expressions
//		• Tooling: seeded generators, a badger catalog, a batch harness, a CLI
//
// ✨ Why isomorph?
//
//   - Sound answers – differing signatures prove non-isomorphism and a
//     verified mapping proves isomorphism; everything else is a candidate
//   - Reproducible – ascending vertex ids everywhere, no map-order effects
//   - Observable – slog logging and Prometheus metrics for batch runs
//
// Packages:
//
//	matrix/     - dense symmetric adjacency matrix, relabeling, disjoint union
//	bfs/        - level-synchronous BFS and a resumable Walker
//	refine/     - degree profile and both refinement modes
//	signature/  - multiset comparison, diff, fingerprint
//	mapping/    - canonical mapping builder
//	verify/     - matrix equivalence verifier
//	iso/        - facade and Decide
//	vflib/, dot/, graphtext/ - codecs
//	builder/    - graph generators
//	catalog/    - persistent deduplicating store
//	harness/    - batch runner
//	cmd/isomorph - command-line interface
//
// Quick example:
//
//	a := graphtext.MustParse("4: 0-1-2-3")
//	b := graphtext.MustParse("4: 3-1-0-2")
//	d, _ := iso.Decide(ctx, a, b)
//	// d.Outcome == iso.Isomorphic, d.Witness maps a's ids to b's
//
//	go install github.com/katalvlaran/isomorph/cmd/isomorph@latest
package isomorph
