package refine

import (
	"context"
	"sort"

	"github.com/katalvlaran/isomorph/bfs"
	"github.com/katalvlaran/isomorph/matrix"
	"golang.org/x/sync/errgroup"
)

// canonicalForm computes, for every vertex, the sorted degrees of each of its
// BFS levels. With workers > 1 the independent traversals are fanned out;
// each goroutine owns its vertex's walker and writes only its own slot.
func canonicalForm(ctx context.Context, m *matrix.Adjacency, deg DegreeMap, workers int) ([]Signature, error) {
	n := m.Order()
	sigs := make([]Signature, n)

	if workers <= 1 || n < 2 {
		for v := 0; v < n; v++ {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
			sig, err := vertexProfile(m, deg, v)
			if err != nil {
				return nil, err
			}
			sigs[v] = sig
		}

		return sigs, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for v := 0; v < n; v++ {
		if gctx.Err() != nil {
			break
		}
		v := v // per-iteration copy; go.mod targets go1.21 loop semantics
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sig, err := vertexProfile(m, deg, v)
			if err != nil {
				return err
			}
			sigs[v] = sig
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// a cancellation that landed before any goroutine observed it
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return sigs, nil
}

// vertexProfile walks BFS from root and records the sorted degrees per level.
func vertexProfile(m *matrix.Adjacency, deg DegreeMap, root int) (Signature, error) {
	w, err := bfs.NewWalker(m, root)
	if err != nil {
		return nil, err
	}
	sig := make(Signature, 0, 4)
	for ok := true; ok; ok = w.Step() {
		fringe := w.Fringe()
		lvl := make(Level, len(fringe))
		for i, u := range fringe {
			lvl[i] = deg[u]
		}
		sort.Ints(lvl)
		sig = append(sig, lvl)
	}

	return sig, nil
}
