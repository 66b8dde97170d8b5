// SPDX-License-Identifier: MIT
// Package: isomorph/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2) constructor.
//
// Canonical model:
//   • Left part 0..n1-1, right part n1..n1+n2-1, every cross pair joined.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 else ErrTooFewVertices.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isomorph/matrix"
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(_ builderConfig) (*matrix.Adjacency, error) {
		if n1 < 1 || n2 < 1 {
			return nil, fmt.Errorf("%s: n1=%d, n2=%d < min=1: %w", methodCompleteBipartite, n1, n2, ErrTooFewVertices)
		}
		m, err := newBlock(methodCompleteBipartite, n1+n2)
		if err != nil {
			return nil, err
		}
		for u := 0; u < n1; u++ {
			for v := n1; v < n1+n2; v++ {
				if err = addEdge(methodCompleteBipartite, m, u, v); err != nil {
					return nil, err
				}
			}
		}

		return m, nil
	}
}
