// SPDX-License-Identifier: MIT
// Package: isomorph/builder
//
// impl_empty.go - implementation of Empty(n): n isolated vertices.
//
// Every vertex of an edgeless graph shares the signature [[0]], so Empty is
// the smallest input that forces the mapping to individualize repeatedly.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isomorph/matrix"
)

// Empty returns a Constructor for the edgeless graph on n ≥ 0 vertices.
func Empty(n int) Constructor {
	return func(_ builderConfig) (*matrix.Adjacency, error) {
		if n < 0 {
			return nil, fmt.Errorf("%s: n=%d < min=0: %w", methodEmpty, n, ErrTooFewVertices)
		}

		return newBlock(methodEmpty, n)
	}
}
