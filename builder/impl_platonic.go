// SPDX-License-Identifier: MIT
// Package: isomorph/builder
//
// impl_platonic.go - implementation of PlatonicSolid(name, withCenter) constructor.
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron}.
//   • Unknown name → ErrOptionViolation (invalid parameter).
//   • Shell vertices are 0..n-1; shell edges come from the layouts in
//     variants_platonic.go.
//   • If withCenter == true, vertex n is a hub with spokes to every shell vertex.
//
// Complexity:
//   • Time: O(V²) for the matrix allocation (V≤21).

package builder

import (
	"fmt"

	"github.com/katalvlaran/isomorph/matrix"
)

// PlatonicSolid returns a Constructor that builds the chosen Platonic shell,
// optionally stellated with a central hub connected by spokes.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(_ builderConfig) (*matrix.Adjacency, error) {
		sh, ok := platonicShells[name]
		if !ok {
			return nil, fmt.Errorf("%s: unknown solid %q: %w", methodPlatonicSolid, name, ErrOptionViolation)
		}
		n := sh.n

		total := n
		if withCenter {
			total++
		}
		m, err := newBlock(methodPlatonicSolid, total)
		if err != nil {
			return nil, err
		}
		for _, e := range sh.edges() {
			if err = addEdge(methodPlatonicSolid, m, e[0], e[1]); err != nil {
				return nil, err
			}
		}
		if withCenter {
			for i := 0; i < n; i++ {
				if err = addEdge(methodPlatonicSolid, m, n, i); err != nil {
					return nil, err
				}
			}
		}

		return m, nil
	}
}
