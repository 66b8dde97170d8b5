// SPDX-License-Identifier: MIT
// Package: isomorph/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Canonical model:
//   • Rim: cycle on vertices 0..n-2.
//   • Hub: vertex n-1 with spokes to every rim vertex.
//
// Contract:
//   • n ≥ MinWheelNodes (4) else ErrTooFewVertices.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isomorph/matrix"
)

// Wheel returns a Constructor that builds W_n: a C_{n-1} rim plus a hub.
func Wheel(n int) Constructor {
	return func(_ builderConfig) (*matrix.Adjacency, error) {
		if n < MinWheelNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}
		m, err := newBlock(methodWheel, n)
		if err != nil {
			return nil, err
		}
		rim := n - 1
		if err = addChain(methodWheel, m, span(rim)); err != nil {
			return nil, err
		}
		if err = addEdge(methodWheel, m, rim-1, 0); err != nil {
			return nil, err
		}
		for i := 0; i < rim; i++ {
			if err = addEdge(methodWheel, m, rim, i); err != nil {
				return nil, err
			}
		}

		return m, nil
	}
}
