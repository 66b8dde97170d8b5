// SPDX-License-Identifier: MIT
// Package: isomorph/builder
//
// permute.go - relabeling helpers for generating isomorphic pairs.
//
// IsomorphicPair is the generator behind the property tests and the
// harness' random and permuted sources: a random base graph and a uniformly
// relabeled copy, together with the permutation that relates them.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/isomorph/matrix"
)

// RandomPermutation returns a uniform permutation of [0, n) drawn from rng.
func RandomPermutation(n int, rng *rand.Rand) ([]int, error) {
	if rng == nil {
		return nil, ErrNeedRandSource
	}
	if n < 0 {
		return nil, fmt.Errorf("RandomPermutation: n=%d < min=0: %w", n, ErrTooFewVertices)
	}

	return rng.Perm(n), nil
}

// Pair is a graph, a relabeled copy and the relabeling: B = A.Permute(Perm).
type Pair struct {
	A, B *matrix.Adjacency
	Perm []int
}

// IsomorphicPair samples A from con and relabels it with a random
// permutation drawn from the same rng. Requires WithSeed or WithRand.
func IsomorphicPair(con Constructor, bopts ...BuilderOption) (Pair, error) {
	cfg := newBuilderConfig(bopts...)
	if cfg.rng == nil {
		return Pair{}, fmt.Errorf("%s: %w", methodIsomorphicPair, ErrNeedRandSource)
	}
	if con == nil {
		return Pair{}, fmt.Errorf("%s: nil constructor: %w", methodIsomorphicPair, ErrConstructFailed)
	}
	a, err := con(cfg)
	if err != nil {
		return Pair{}, fmt.Errorf("%s: %w", methodIsomorphicPair, err)
	}
	perm := cfg.rng.Perm(a.Order())
	b, err := a.Permute(perm)
	if err != nil {
		return Pair{}, fmt.Errorf("%s: %w", methodIsomorphicPair, err)
	}

	return Pair{A: a, B: b, Perm: perm}, nil
}
