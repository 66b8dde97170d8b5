// Package mapping implements the MappingBuilder: it orders the vertices of a
// refined graph into a canonical sequence so two isomorphic graphs can be
// compared cell by cell.
//
// Ordering rule
//
//	Vertices are placed from the largest signature down. Inside a group of
//	equal signatures the member whose BFS trace is lexicographically
//	smallest goes first; a trace lists, level by level, the sorted canonical
//	indices already placed, with -1 for vertices still waiting. Traces are
//	recomputed after every placement.
//
//	When several members share the smallest trace, nothing structural
//	separates them. By default the lowest vertex id is individualized and
//	recorded in Mapping.Individualized; WithStrictOrder reports the tie as
//	an *InconclusiveError instead.
//
// A mapping built without individualization depends only on structure, so
// isomorphic graphs produce matrices that match exactly in canonical order.
//
// Errors
//
//   - ErrNilResult, ErrNilGraph   for nil inputs.
//   - ErrOrderMismatch            if the result and graph sizes differ.
//   - ErrInconclusiveMapping      (via *InconclusiveError) under WithStrictOrder.
//   - ErrNotBijective             if a mapping is not a permutation.
package mapping
