// Package matrix offers the dense adjacency representation used by the
// refinement engine.
//
// The matrix package provides:
//
//   - Adjacency: a square, symmetric, zero-diagonal boolean matrix with O(1)
//     edge lookups and O(V²) memory, stored row-major in one flat slice.
//   - Validated constructors (FromRows, FromBinary, FromEdges) that reject
//     non-square, asymmetric or self-looped input with sentinel errors.
//   - Relabeling (Permute) and block composition (DisjointUnion), which the
//     builder and property tests use to produce isomorphic copies.
//
// Neighbor lists are always returned in ascending vertex-id order; every
// traversal built on top of this package relies on that for determinism.
//
// Matrices are best for dense or small graphs where O(V²) memory is
// acceptable, which is the regime a refinement heuristic targets.
package matrix
