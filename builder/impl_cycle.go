// SPDX-License-Identifier: MIT
// Package: isomorph/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Canonical model:
//   • Vertices 0..n-1 with ring edges i-(i+1 mod n).
//
// Contract:
//   • n ≥ MinCycleNodes (3) else ErrTooFewVertices.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isomorph/matrix"
)

// Cycle returns a Constructor that builds the ring C_n.
func Cycle(n int) Constructor {
	return func(_ builderConfig) (*matrix.Adjacency, error) {
		if n < MinCycleNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		m, err := newBlock(methodCycle, n)
		if err != nil {
			return nil, err
		}
		if err = addChain(methodCycle, m, span(n)); err != nil {
			return nil, err
		}
		// close the ring
		if err = addEdge(methodCycle, m, n-1, 0); err != nil {
			return nil, err
		}

		return m, nil
	}
}
