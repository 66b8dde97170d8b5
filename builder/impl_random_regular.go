// SPDX-License-Identifier: MIT
// Package: isomorph/builder
//
// impl_random_regular.go - random d-regular graph via stub matching.
//
// Algorithm:
//   • Create d stubs per vertex, shuffle them with cfg.rng and pair them off.
//   • Reject the attempt on a self-pair or a repeated pair; retry up to
//     maxStubMatchingAttempts times before failing with ErrConstructFailed.
//
// Contract:
//   • n ≥ 1, 0 ≤ d < n, n*d even, else ErrTooFewVertices.
//   • rng required when d > 0 (ErrNeedRandSource).
//
// Regular graphs have a single degree class, so refinement output on them
// depends entirely on distance structure.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isomorph/matrix"
)

// RandomRegular returns a Constructor that samples a simple d-regular graph.
func RandomRegular(n, d int) Constructor {
	return func(cfg builderConfig) (*matrix.Adjacency, error) {
		if n < 1 || d < 0 || d >= n {
			return nil, fmt.Errorf("%s: n=%d, d=%d (need n≥1, 0≤d<n): %w", methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return nil, fmt.Errorf("%s: n*d=%d is odd: %w", methodRandomRegular, n*d, ErrTooFewVertices)
		}
		if d == 0 {
			return newBlock(methodRandomRegular, n)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodRandomRegular, ErrNeedRandSource)
		}

		stubs := make([]int, 0, n*d)
		for v := 0; v < n; v++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, v)
			}
		}

		for attempt := 0; attempt < maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			m, ok := matchStubs(n, stubs)
			if ok {
				return m, nil
			}
		}

		return nil, fmt.Errorf("%s: n=%d, d=%d after %d attempts: %w", methodRandomRegular, n, d, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// matchStubs pairs consecutive stubs; false on a loop or a parallel edge.
func matchStubs(n int, stubs []int) (*matrix.Adjacency, bool) {
	m, err := matrix.NewAdjacency(n)
	if err != nil {
		return nil, false
	}
	for i := 0; i+1 < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v || m.Adjacent(u, v) {
			return nil, false
		}
		if err = m.AddEdge(u, v); err != nil {
			return nil, false
		}
	}

	return m, true
}
