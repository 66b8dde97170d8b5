package refine

import (
	"github.com/katalvlaran/isomorph/matrix"
)

// Profile computes the DegreeMap of m: degree(i) is the number of set bits
// in row i. A nil matrix yields an empty map.
// Complexity: O(n²).
func Profile(m *matrix.Adjacency) DegreeMap {
	n := m.Order()
	deg := make(DegreeMap, n)
	for v := 0; v < n; v++ {
		deg[v] = m.Degree(v)
	}

	return deg
}
