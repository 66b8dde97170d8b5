// SPDX-License-Identifier: MIT
// Package: isomorph/builder
//
// impl_random_sparse.go - Erdős–Rényi G(n, p) constructor.
//
// Canonical model:
//   • Each unordered pair i<j is independently an edge with probability p.
//
// Contract:
//   • n ≥ 1 else ErrTooFewVertices.
//   • p ∈ [MinProbability, MaxProbability] else ErrInvalidProbability.
//   • rng required only when 0 < p < 1 (ErrNeedRandSource otherwise).
//
// Determinism:
//   • Pairs are drawn in (i, j) lexicographic order, one Float64 per pair,
//     so a fixed seed reproduces the same matrix.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isomorph/matrix"
)

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(cfg builderConfig) (*matrix.Adjacency, error) {
		if n < 1 {
			return nil, fmt.Errorf("%s: n=%d < min=1: %w", methodRandomSparse, n, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", methodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		stochastic := p > MinProbability && p < MaxProbability
		if stochastic && cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		m, err := newBlock(methodRandomSparse, n)
		if err != nil {
			return nil, err
		}
		if p == MinProbability {
			return m, nil
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if stochastic && cfg.rng.Float64() > p {
					continue
				}
				if err = addEdge(methodRandomSparse, m, i, j); err != nil {
					return nil, err
				}
			}
		}

		return m, nil
	}
}
