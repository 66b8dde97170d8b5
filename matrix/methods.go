// Package matrix provides read-only queries on an Adjacency: bounds-checked
// reads, degrees, ordered neighbor lists, edge enumeration, equality,
// cloning and relabeling.
package matrix

import (
	"strings"
)

// At retrieves the edge bit at (u, v).
// Returns ErrNilMatrix or ErrOutOfRange on invalid access.
// Complexity: O(1).
func (m *Adjacency) At(u, v int) (bool, error) {
	if err := m.checkPair("At", u, v); err != nil {
		return false, err
	}

	return m.data[u*m.n+v], nil
}

// Degree returns the number of set bits in row v (0 for an out-of-range v).
// Complexity: O(n).
func (m *Adjacency) Degree(v int) int {
	if m == nil || v < 0 || v >= m.n {
		return 0
	}
	d := 0
	for _, bit := range m.data[v*m.n : (v+1)*m.n] {
		if bit {
			d++
		}
	}

	return d
}

// Neighbors returns the neighbors of v in ascending vertex-id order.
// The ascending order is relied upon by every traversal in this module.
// Complexity: O(n).
func (m *Adjacency) Neighbors(v int) []int {
	if m == nil || v < 0 || v >= m.n {
		return nil
	}
	out := make([]int, 0, 8)
	row := m.data[v*m.n : (v+1)*m.n]
	for j, bit := range row {
		if bit {
			out = append(out, j)
		}
	}

	return out
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(n²/2).
func (m *Adjacency) EdgeCount() int {
	if m == nil {
		return 0
	}
	count := 0
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if m.data[i*m.n+j] {
				count++
			}
		}
	}

	return count
}

// Edges enumerates undirected edges as pairs (i, j) with i < j, ordered by
// i then j.
// Complexity: O(n²/2).
func (m *Adjacency) Edges() [][2]int {
	if m == nil {
		return nil
	}
	out := make([][2]int, 0, m.n)
	for i := 0; i < m.n; i++ {
		for j := i + 1; j < m.n; j++ {
			if m.data[i*m.n+j] {
				out = append(out, [2]int{i, j})
			}
		}
	}

	return out
}

// Rows exports a fresh [][]bool copy of the matrix.
// Complexity: O(n²).
func (m *Adjacency) Rows() [][]bool {
	if m == nil {
		return nil
	}
	rows := make([][]bool, m.n)
	for i := range rows {
		rows[i] = make([]bool, m.n)
		copy(rows[i], m.data[i*m.n:(i+1)*m.n])
	}

	return rows
}

// Equal reports whether m and o have the same order and identical cells.
// Two nil matrices are equal.
// Complexity: O(n²).
func (m *Adjacency) Equal(o *Adjacency) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.n != o.n {
		return false
	}
	for k := range m.data {
		if m.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// Clone returns an independent deep copy.
// Complexity: O(n²).
func (m *Adjacency) Clone() *Adjacency {
	if m == nil {
		return nil
	}
	data := make([]bool, len(m.data))
	copy(data, m.data)

	return &Adjacency{n: m.n, data: data}
}

// Permute returns the relabeled graph π(m) where vertex u becomes perm[u]:
// out[perm[u]][perm[v]] = m[u][v].
// Returns ErrBadPermutation if perm is not a bijection on [0, n).
// Complexity: O(n²).
func (m *Adjacency) Permute(perm []int) (*Adjacency, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Permute", err)
	}
	if err := ValidatePermutation(perm, m.n); err != nil {
		return nil, matrixErrorf("Permute", err)
	}
	n := m.n
	out := &Adjacency{n: n, data: make([]bool, n*n)}
	for u := 0; u < n; u++ {
		pu := perm[u] * n
		for v := 0; v < n; v++ {
			if m.data[u*n+v] {
				out.data[pu+perm[v]] = true
			}
		}
	}

	return out, nil
}

// String renders the matrix as rows of 0/1 digits, one row per line.
// Complexity: O(n²).
func (m *Adjacency) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	sb.Grow(m.n * (m.n + 1))
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if m.data[i*m.n+j] {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
