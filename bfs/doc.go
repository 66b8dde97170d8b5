// Package bfs provides level-synchronous breadth-first search over a
// matrix.Adjacency, returning per-level fringes, hop distances and parent links.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a root.
//   - BFS returns a BFSResult containing:
//   - Levels: the fringe at each depth, in discovery order
//   - Depth:  hop distance per vertex (-1 when unreachable)
//   - Parent: predecessor in the BFS tree (-1 for the root and unreachable)
//   - Walker exposes the same traversal one level at a time (Step), so callers
//     can interleave many rooted searches and stop each one independently.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Degree profiles are built from the sorted degrees of each BFS level.
//   - Weight-map refinement advances each tied vertex's fringe by one level per round.
//   - The mapping trace is a BFS from a candidate vertex over a partially
//     assigned graph.
//
// Determinism
//
//	A fringe is expanded member by member in fringe order, and each member's
//	neighbors are scanned in ascending vertex id. The discovery order of every
//	level is therefore fully reproducible.
//
// Complexity (n = order of the matrix)
//
//   - Time:   O(n²) per full traversal (each row scanned once)
//   - Memory: O(n)  (visited set, two fringe buffers, Depth and Parent)
//
// Usage
//
//	res, err := bfs.BFS(m, 0, bfs.WithMaxDepth(2))
//	if err != nil {
//	    // ErrGraphNil, ErrRootOutOfRange, ErrOptionViolation,
//	    // context errors, or a wrapped OnLevel error
//	}
//
//	w, _ := bfs.NewWalker(m, 0)
//	for ok := true; ok; ok = w.Step() {
//	    use(w.Depth(), w.Fringe())
//	}
//
// Errors
//
//   - ErrGraphNil         if the matrix pointer is nil.
//   - ErrRootOutOfRange   if the root is not in [0, n).
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnLevel.
package bfs
