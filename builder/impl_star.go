// SPDX-License-Identifier: MIT
// Package: isomorph/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Canonical model:
//   • Vertex 0 is the center; leaves 1..n-1 each connect to it.
//
// Contract:
//   • n ≥ MinStarNodes (2) else ErrTooFewVertices.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isomorph/matrix"
)

// Star returns a Constructor that builds the star K_{1,n-1} centered at 0.
func Star(n int) Constructor {
	return func(_ builderConfig) (*matrix.Adjacency, error) {
		if n < MinStarNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		m, err := newBlock(methodStar, n)
		if err != nil {
			return nil, err
		}
		for leaf := 1; leaf < n; leaf++ {
			if err = addEdge(methodStar, m, 0, leaf); err != nil {
				return nil, err
			}
		}

		return m, nil
	}
}
