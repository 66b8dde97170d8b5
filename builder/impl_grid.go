// SPDX-License-Identifier: MIT
// Package: isomorph/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • Vertex (r, c) has id r*cols + c.
//   • Edges join horizontal and vertical neighbors (4-neighborhood).
//
// Contract:
//   • rows ≥ MinGridDim and cols ≥ MinGridDim else ErrTooFewVertices.
//
// Determinism:
//   • Row-major emission: for each cell, right neighbor then down neighbor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/isomorph/matrix"
)

// Grid returns a Constructor that builds a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(_ builderConfig) (*matrix.Adjacency, error) {
		if rows < MinGridDim || cols < MinGridDim {
			return nil, fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w", methodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		m, err := newBlock(methodGrid, rows*cols)
		if err != nil {
			return nil, err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := r*cols + c
				if c+1 < cols {
					if err = addEdge(methodGrid, m, id, id+1); err != nil {
						return nil, err
					}
				}
				if r+1 < rows {
					if err = addEdge(methodGrid, m, id, id+cols); err != nil {
						return nil, err
					}
				}
			}
		}

		return m, nil
	}
}
