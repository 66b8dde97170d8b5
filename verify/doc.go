// Package verify is the authoritative half of the isomorphism decision.
//
// Given graphs A and B with canonical mappings ma and mb, Verify reads both
// adjacency matrices in canonical order and compares them pair by pair. A
// full match proves isomorphism and Witness yields the vertex correspondence.
// A mismatch is reported as data in the Verdict together with the vertex
// pairs involved, so callers can log or render it.
//
// Errors
//
//   - ErrNilGraph        for nil matrices.
//   - ErrInvalidMapping  when a mapping is not a bijection over its graph.
package verify
