// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file intentionally contains ONLY the adjacency type and its trivial
// accessors. Constructors live in adjacency.go, queries in methods.go,
// validation in validators.go.
package matrix

// Adjacency is a dense, row-major boolean adjacency matrix of an undirected
// simple graph on vertices 0..n-1.
//
// Invariants (enforced by every constructor and mutator):
//   - data has exactly n*n cells;
//   - data[i*n+j] == data[j*n+i] (symmetric);
//   - data[i*n+i] == false (no self-loops).
//
// Ownership: algorithms in this module borrow an *Adjacency read-only; only
// AddEdge/RemoveEdge mutate, and they are meant for construction time.
type Adjacency struct {
	n    int    // number of vertices
	data []bool // flat backing storage, length == n*n
}

// Order returns the number of vertices n. A nil receiver has order 0.
// Complexity: O(1).
func (m *Adjacency) Order() int {
	if m == nil {
		return 0
	}

	return m.n
}

// Adjacent reports whether u and v are joined by an edge.
// It is the unchecked fast path for inner loops: callers guarantee
// 0 ≤ u,v < Order(). Use At for a bounds-checked read.
// Complexity: O(1).
func (m *Adjacency) Adjacent(u, v int) bool {
	return m.data[u*m.n+v]
}
