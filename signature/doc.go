// Package signature compares refinement results as multisets of per-vertex
// signatures, independent of vertex ids.
//
// What
//
//   - Compare(a, b): true iff both results hold the same signatures with the
//     same multiplicities. This is the fast, heuristic candidate verdict.
//   - Diff(a, b): the signatures left unmatched on each side.
//   - Multiset(r): the sorted (signature, count) entries of one result.
//   - Encode / Fingerprint: a deterministic byte encoding of the multiset and
//     its 64-bit digest, used as a persistence key.
//
// Multisets are kept in a red-black tree ordered by refine.Signature.Compare,
// so iteration order never depends on vertex labels or map order.
//
// Inputs are never mutated.
package signature
