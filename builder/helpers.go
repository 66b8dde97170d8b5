// Package builder provides internal helper functions used by Constructor
// implementations to build common topologies.
package builder

import (
	"fmt"

	"github.com/katalvlaran/isomorph/matrix"
)

// newBlock allocates an edgeless n-vertex block, wrapping errors with method.
func newBlock(method string, n int) (*matrix.Adjacency, error) {
	m, err := matrix.NewAdjacency(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return m, nil
}

// addEdge inserts u-v, wrapping matrix errors with method context.
func addEdge(method string, m *matrix.Adjacency, u, v int) error {
	if err := m.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, u, v, err)
	}

	return nil
}

// addChain connects ids[0]-ids[1]-...-ids[k-1].
// Complexity: O(k).
func addChain(method string, m *matrix.Adjacency, ids []int) error {
	for i := 0; i+1 < len(ids); i++ {
		if err := addEdge(method, m, ids[i], ids[i+1]); err != nil {
			return err
		}
	}

	return nil
}

// addCompleteEdges connects every unordered pair in [lo, hi).
// Complexity: O((hi-lo)²).
func addCompleteEdges(method string, m *matrix.Adjacency, lo, hi int) error {
	for i := lo; i < hi; i++ {
		for j := i + 1; j < hi; j++ {
			if err := addEdge(method, m, i, j); err != nil {
				return err
			}
		}
	}

	return nil
}

// span returns [0, 1, ..., n-1].
func span(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}

	return ids
}
