// Package refine computes structural vertex signatures by color refinement.
package refine

import (
	"fmt"

	"github.com/katalvlaran/isomorph/matrix"
)

// Refine profiles m and refines the degree seeds into per-vertex signatures
// according to the selected Mode. The matrix is only read.
//
// Returns ErrNilGraph for a nil matrix, ErrOptionViolation for invalid
// options, or the context error if cancelled.
//
// Complexity: canonical-form O(n³) (one O(n²) BFS per vertex, divided across
// workers); weight-map O(R · n log n + n³) for R rounds.
func Refine(m *matrix.Adjacency, opts ...Option) (*Result, error) {
	if m == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	deg := Profile(m)
	res := &Result{Mode: o.Mode, Degrees: deg}

	switch o.Mode {
	case ModeWeightMap:
		sigs, rounds, err := weightMap(o.Ctx, m, deg, o.Logger)
		if err != nil {
			return nil, fmt.Errorf("Refine: %w", err)
		}
		res.Signatures, res.Rounds = sigs, rounds
	default:
		sigs, err := canonicalForm(o.Ctx, m, deg, o.Workers)
		if err != nil {
			return nil, fmt.Errorf("Refine: %w", err)
		}
		res.Signatures = sigs
		for _, s := range sigs {
			if len(s) > res.Rounds {
				res.Rounds = len(s)
			}
		}
	}
	o.Logger.Debug("refinement complete",
		"mode", o.Mode.String(), "order", m.Order(), "rounds", res.Rounds)

	return res, nil
}
