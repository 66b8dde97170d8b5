// SPDX-License-Identifier: MIT
// Package: isomorph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg once, runs
//     cons in order and composes their blocks as a disjoint union.
//   - Topology factories live in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical matrices.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isomorph/matrix"
)

// Constructor produces one block of the final graph using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit edges in a stable, documented order.
//   - Preserve determinism for the same config and call order.
type Constructor func(cfg builderConfig) (*matrix.Adjacency, error)

// BuildGraph resolves the builder configuration from bopts and applies all
// constructors in order. Their blocks are placed on the diagonal of the
// result: the first constructor owns vertices 0..n₁-1, the second the next
// n₂ ids, and so on. Any constructor error is wrapped as "BuildGraph: %w".
//
// Complexity: Σ cost of each constructor + O(N²) for the union of order N.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*matrix.Adjacency, error) {
	cfg := newBuilderConfig(bopts...)

	blocks := make([]*matrix.Adjacency, 0, len(cons))
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", methodBuildGraph, i, ErrConstructFailed)
		}
		m, err := fn(cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuildGraph, err)
		}
		blocks = append(blocks, m)
	}
	if len(blocks) == 1 {
		return blocks[0], nil
	}

	return matrix.DisjointUnion(blocks...)
}

// Build is BuildGraph for a single constructor.
func Build(con Constructor, bopts ...BuilderOption) (*matrix.Adjacency, error) {
	return BuildGraph(bopts, con)
}
