// SPDX-License-Identifier: MIT
// Package: isomorph/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Canonical model:
//   • Vertices 0..n-1 with edges i-(i+1) for i = 0..n-2.
//
// Contract:
//   • n ≥ MinPathNodes (2) else ErrTooFewVertices.
//
// Complexity:
//   • Time: O(n) edges on an O(n²) matrix.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isomorph/matrix"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(_ builderConfig) (*matrix.Adjacency, error) {
		if n < MinPathNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		m, err := newBlock(methodPath, n)
		if err != nil {
			return nil, err
		}
		if err = addChain(methodPath, m, span(n)); err != nil {
			return nil, err
		}

		return m, nil
	}
}
