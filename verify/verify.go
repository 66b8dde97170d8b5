// Package verify implements the matrix equivalence check: two graphs are
// isomorphic under a pair of canonical mappings iff their adjacency matrices
// agree cell by cell once both are read in canonical order.
package verify

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/isomorph/mapping"
	"github.com/katalvlaran/isomorph/matrix"
)

// Sentinel errors returned by the verifier.
var (
	// ErrNilGraph indicates that a nil *matrix.Adjacency was passed.
	ErrNilGraph = errors.New("verify: graph is nil")

	// ErrInvalidMapping indicates that a mapping is not a bijection over its graph.
	ErrInvalidMapping = errors.New("verify: invalid mapping")
)

// Mismatch describes the first canonical pair whose edge bits differ.
type Mismatch struct {
	// I, J are canonical indices with I < J.
	I, J int

	// A, B are the vertex pairs in each graph sitting at (I, J).
	A, B [2]int

	// EdgeA, EdgeB are the adjacency bits found at those pairs.
	EdgeA, EdgeB bool
}

// String renders the mismatch for logs.
func (m Mismatch) String() string {
	return fmt.Sprintf("canonical (%d,%d): A%v=%t B%v=%t", m.I, m.J, m.A, m.EdgeA, m.B, m.EdgeB)
}

// Verdict is the outcome of Verify. A negative verdict is never an error.
type Verdict struct {
	// Isomorphic is true iff every canonical pair matched.
	Isomorphic bool

	// OrderMismatch is set when the graphs differ in vertex count.
	OrderMismatch bool

	// Mismatch is the first differing pair, nil otherwise.
	Mismatch *Mismatch
}

// Verify checks whether B read through mb equals A read through ma:
// A[inv_a(i)][inv_a(j)] == B[inv_b(i)][inv_b(j)] for every canonical pair.
// The first mismatch is decisive.
//
// Returns ErrNilGraph for nil matrices and ErrInvalidMapping when a mapping
// is not a bijection over its graph. An order mismatch is a negative Verdict.
//
// Complexity: O(n²).
func Verify(a *matrix.Adjacency, ma mapping.Mapping, b *matrix.Adjacency, mb mapping.Mapping) (Verdict, error) {
	if a == nil || b == nil {
		return Verdict{}, ErrNilGraph
	}
	n := a.Order()
	if n != b.Order() {
		return Verdict{OrderMismatch: true}, nil
	}
	invA, err := inverse("A", ma, n)
	if err != nil {
		return Verdict{}, err
	}
	invB, err := inverse("B", mb, n)
	if err != nil {
		return Verdict{}, err
	}

	for i := 0; i < n; i++ {
		ai, bi := invA[i], invB[i]
		for j := i + 1; j < n; j++ {
			aj, bj := invA[j], invB[j]
			ea, eb := a.Adjacent(ai, aj), b.Adjacent(bi, bj)
			if ea != eb {
				return Verdict{Mismatch: &Mismatch{
					I: i, J: j,
					A: [2]int{ai, aj}, B: [2]int{bi, bj},
					EdgeA: ea, EdgeB: eb,
				}}, nil
			}
		}
	}

	return Verdict{Isomorphic: true}, nil
}

// Witness composes the correspondence A-vertex → B-vertex: v maps to the
// B vertex holding the same canonical index.
func Witness(ma, mb mapping.Mapping) ([]int, error) {
	if ma.Order() != mb.Order() {
		return nil, fmt.Errorf("%w: orders %d and %d", ErrInvalidMapping, ma.Order(), mb.Order())
	}
	invB, err := inverse("B", mb, mb.Order())
	if err != nil {
		return nil, err
	}
	if err = ma.Validate(); err != nil {
		return nil, fmt.Errorf("%w: A: %v", ErrInvalidMapping, err)
	}
	w := make([]int, ma.Order())
	for v, c := range ma.Index {
		w[v] = invB[c]
	}

	return w, nil
}

// Relabel returns m in canonical order under mp.
func Relabel(m *matrix.Adjacency, mp mapping.Mapping) (*matrix.Adjacency, error) {
	if m == nil {
		return nil, ErrNilGraph
	}
	out, err := mp.Apply(m)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMapping, err)
	}

	return out, nil
}

func inverse(side string, mp mapping.Mapping, n int) ([]int, error) {
	if mp.Order() != n {
		return nil, fmt.Errorf("%w: %s: mapping covers %d of %d vertices", ErrInvalidMapping, side, mp.Order(), n)
	}
	inv, err := mp.Inverse()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidMapping, side, err)
	}

	return inv, nil
}
