// Package refine implements the degree profiler and the color-refinement
// engine that turn an adjacency matrix into comparable per-vertex signatures.
//
// What
//
//   - Profile: the DegreeMap (degree per vertex) that seeds every mode.
//   - Refine in ModeCanonicalForm (default): for each vertex, an independent
//     BFS whose level k records the sorted degrees of the vertices at depth k.
//     A vertex without edges yields [[0]].
//   - Refine in ModeWeightMap: weights start as degrees; the largest tied
//     class is split by summing the weights of each member's next BFS fringe
//     until no unsettled tie remains. The final score of a vertex is the
//     rank of (class cardinality, weight), stored as a single-level Signature.
//
// Both modes are invariant under vertex relabeling and fully deterministic:
// every enumeration runs over ascending vertex ids.
//
// Options
//
//   - WithMode(m):      ModeCanonicalForm or ModeWeightMap.
//   - WithContext(ctx): cancellation, checked between vertices and rounds.
//   - WithWorkers(k):   fan the canonical-form traversals out over k goroutines.
//   - WithLogger(l):    *slog.Logger for per-round debug records.
//
// Limits
//
//	Refinement is 1-dimensional: regular graphs of equal order and degree
//	(e.g. two triangles versus a hexagon) share one weight-map class. The
//	canonical-form levels still separate them through BFS depth.
//
// Errors
//
//   - ErrNilGraph         if the matrix pointer is nil.
//   - ErrOptionViolation  for an unknown mode or workers < 1.
//   - ctx.Err()           on cancellation.
package refine
