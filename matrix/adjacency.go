// SPDX-License-Identifier: MIT
// Package matrix - adjacency constructors and construction-time mutators.
//
// Deliverables:
//  1. NewAdjacency(n): edgeless graph on n vertices (n == 0 allowed).
//  2. FromRows / FromBinary: validated import of caller-owned matrices.
//  3. FromEdges: build from an undirected edge list.
//  4. AddEdge / RemoveEdge: mirrored writes that keep the invariants.
//  5. DisjointUnion: block-diagonal composition in argument order.
//
// Malformed input (non-square, asymmetric, self-loops) is rejected here, at
// the boundary, so no refinement code ever sees an invalid matrix.

package matrix

import "math"

// MaxOrder is the largest vertex count NewAdjacency and DisjointUnion accept.
// It keeps n*n well inside int on every platform.
const MaxOrder = math.MaxUint16

// NewAdjacency returns an edgeless adjacency matrix on n vertices.
// Returns ErrBadOrder if n < 0 or n > MaxOrder.
// Complexity: O(n²) zeroing by the runtime.
func NewAdjacency(n int) (*Adjacency, error) {
	if n < 0 || n > MaxOrder {
		return nil, matrixErrorf("NewAdjacency", ErrBadOrder)
	}

	return &Adjacency{n: n, data: make([]bool, n*n)}, nil
}

// FromRows copies a caller-owned [][]bool into a new Adjacency.
// Stage 1 (Validate): square → zero diagonal → symmetric (see validators.go).
// Stage 2 (Execute): copy row by row into flat storage.
// The input is never retained.
// Complexity: O(n²).
func FromRows(rows [][]bool) (*Adjacency, error) {
	if err := ValidateRows(rows); err != nil {
		return nil, matrixErrorf("FromRows", err)
	}
	n := len(rows)
	m := &Adjacency{n: n, data: make([]bool, n*n)}
	for i := 0; i < n; i++ {
		copy(m.data[i*n:(i+1)*n], rows[i])
	}

	return m, nil
}

// FromBinary imports a 0/1 integer matrix, the layout used by numeric
// adjacency tables. Any entry other than 0 or 1 yields ErrNonBinary.
// Complexity: O(n²).
func FromBinary(rows [][]int) (*Adjacency, error) {
	n := len(rows)
	bools := make([][]bool, n)
	for i, row := range rows {
		bools[i] = make([]bool, len(row))
		for j, v := range row {
			switch v {
			case 0:
			case 1:
				bools[i][j] = true
			default:
				return nil, cellErrorf("FromBinary", i, j, ErrNonBinary)
			}
		}
	}
	m, err := FromRows(bools)
	if err != nil {
		return nil, matrixErrorf("FromBinary", err)
	}

	return m, nil
}

// FromEdges builds an n-vertex graph from undirected pairs {u,v}.
// Duplicate pairs are idempotent; self-loops are rejected with ErrSelfLoop
// and indices outside [0,n) with ErrOutOfRange.
// Complexity: O(n² + len(edges)).
func FromEdges(n int, edges [][2]int) (*Adjacency, error) {
	m, err := NewAdjacency(n)
	if err != nil {
		return nil, matrixErrorf("FromEdges", err)
	}
	for _, e := range edges {
		if err = m.AddEdge(e[0], e[1]); err != nil {
			return nil, matrixErrorf("FromEdges", err)
		}
	}

	return m, nil
}

// AddEdge sets the undirected edge {u,v}, writing both mirror cells.
// Complexity: O(1).
func (m *Adjacency) AddEdge(u, v int) error {
	if err := m.checkPair("AddEdge", u, v); err != nil {
		return err
	}
	if u == v {
		return cellErrorf("AddEdge", u, v, ErrSelfLoop)
	}
	m.data[u*m.n+v] = true
	m.data[v*m.n+u] = true

	return nil
}

// RemoveEdge clears the undirected edge {u,v}. Removing a missing edge is a no-op.
// Complexity: O(1).
func (m *Adjacency) RemoveEdge(u, v int) error {
	if err := m.checkPair("RemoveEdge", u, v); err != nil {
		return err
	}
	m.data[u*m.n+v] = false
	m.data[v*m.n+u] = false

	return nil
}

// DisjointUnion returns the block-diagonal composition of parts: the
// vertices of parts[k] are shifted by the total order of parts[0..k-1].
// Nil parts are rejected with ErrNilMatrix.
// Complexity: O(N²) where N is the total order.
func DisjointUnion(parts ...*Adjacency) (*Adjacency, error) {
	total := 0
	for _, p := range parts {
		if p == nil {
			return nil, matrixErrorf("DisjointUnion", ErrNilMatrix)
		}
		total += p.n
	}
	if total > MaxOrder {
		return nil, matrixErrorf("DisjointUnion", ErrBadOrder)
	}
	out := &Adjacency{n: total, data: make([]bool, total*total)}
	offset := 0
	for _, p := range parts {
		for i := 0; i < p.n; i++ {
			// copy row i of the block into row offset+i, columns shifted by offset
			copy(out.data[(offset+i)*total+offset:(offset+i)*total+offset+p.n], p.data[i*p.n:(i+1)*p.n])
		}
		offset += p.n
	}

	return out, nil
}

// checkPair validates receiver and both endpoints.
func (m *Adjacency) checkPair(tag string, u, v int) error {
	if m == nil {
		return matrixErrorf(tag, ErrNilMatrix)
	}
	if u < 0 || u >= m.n || v < 0 || v >= m.n {
		return cellErrorf(tag, u, v, ErrOutOfRange)
	}

	return nil
}
