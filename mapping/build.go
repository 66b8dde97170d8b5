// Package mapping turns refinement signatures into a deterministic ordering
// of vertices, the canonical mapping checked by the verifier.
package mapping

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/isomorph/bfs"
	"github.com/katalvlaran/isomorph/matrix"
	"github.com/katalvlaran/isomorph/refine"
)

const unassigned = -1

// Build assigns canonical indices to the vertices of m using the signatures
// in r.
//
// Stage 1: take the symmetry classes of r from the largest signature down.
// Stage 2: within a class, trace each member by BFS over m, recording per
// level the sorted canonical indices already placed (-1 for unplaced).
// Stage 3: place the member with the smallest trace, then re-trace the rest,
// since the new index changes their traces.
// Stage 4: if the smallest trace is shared, individualize the lowest id
// (or fail with *InconclusiveError under WithStrictOrder).
//
// The result is validated as a bijection before it is returned.
//
// Complexity: O(Σ g² · n²) for class sizes g; O(n³) when r is discrete.
func Build(r *refine.Result, m *matrix.Adjacency, opts ...Option) (Mapping, error) {
	if r == nil {
		return Mapping{}, ErrNilResult
	}
	if m == nil {
		return Mapping{}, ErrNilGraph
	}
	if r.Order() != m.Order() {
		return Mapping{}, fmt.Errorf("Build: %w: result %d, graph %d", ErrOrderMismatch, r.Order(), m.Order())
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := m.Order()
	mp := Mapping{Index: make([]int, n)}
	for v := range mp.Index {
		mp.Index[v] = unassigned
	}

	classes := r.Classes()
	next := 0
	for c := len(classes) - 1; c >= 0; c-- {
		group := append([]int(nil), classes[c]...)
		for len(group) > 0 {
			select {
			case <-o.Ctx.Done():
				return Mapping{}, o.Ctx.Err()
			default:
			}

			pick := 0
			if len(group) > 1 {
				ties, err := smallestTraces(m, mp.Index, group)
				if err != nil {
					return Mapping{}, err
				}
				if len(ties) > 1 {
					if o.Strict {
						tied := make([]int, len(ties))
						for i, k := range ties {
							tied[i] = group[k]
						}
						return Mapping{}, &InconclusiveError{Position: next, Vertices: tied}
					}
					mp.Individualized = append(mp.Individualized, group[ties[0]])
					o.Logger.Debug("individualized vertex",
						"vertex", group[ties[0]], "index", next, "ties", len(ties))
				}
				pick = ties[0]
			}
			mp.Index[group[pick]] = next
			next++
			group = append(group[:pick], group[pick+1:]...)
		}
	}

	if err := mp.Validate(); err != nil {
		return Mapping{}, fmt.Errorf("Build: %w", err)
	}

	return mp, nil
}

// smallestTraces returns the positions in group (ascending) whose trace is
// minimal.
func smallestTraces(m *matrix.Adjacency, index []int, group []int) ([]int, error) {
	var best refine.Signature
	ties := make([]int, 0, len(group))
	for k, v := range group {
		p, err := trace(m, index, v)
		if err != nil {
			return nil, err
		}
		switch c := p.Compare(best); {
		case k == 0 || c < 0:
			best = p
			ties = append(ties[:0], k)
		case c == 0:
			ties = append(ties, k)
		}
	}

	return ties, nil
}

// trace walks BFS from root and records, per level, the sorted canonical
// indices of the level's vertices with -1 for those not yet placed.
func trace(m *matrix.Adjacency, index []int, root int) (refine.Signature, error) {
	w, err := bfs.NewWalker(m, root)
	if err != nil {
		return nil, err
	}
	out := make(refine.Signature, 0, 4)
	for ok := true; ok; ok = w.Step() {
		fringe := w.Fringe()
		lvl := make(refine.Level, len(fringe))
		for i, u := range fringe {
			lvl[i] = index[u]
		}
		sort.Ints(lvl)
		out = append(out, lvl)
	}

	return out, nil
}
