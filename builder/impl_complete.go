// SPDX-License-Identifier: MIT
// Package: isomorph/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 else ErrTooFewVertices.
//   • Edges for every unordered pair i<j.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isomorph/matrix"
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(_ builderConfig) (*matrix.Adjacency, error) {
		if n < 1 {
			return nil, fmt.Errorf("%s: n=%d < min=1: %w", methodComplete, n, ErrTooFewVertices)
		}
		m, err := newBlock(methodComplete, n)
		if err != nil {
			return nil, err
		}
		if err = addCompleteEdges(methodComplete, m, 0, n); err != nil {
			return nil, err
		}

		return m, nil
	}
}
