// Package bfs provides breadth-first search over a matrix.Adjacency,
// exposed both as a one-shot traversal (BFS) and as a resumable,
// level-at-a-time Walker.
//
// The Walker is the "visited set + fringe" state the refinement engine
// advances one round at a time; BFS simply drives a Walker to exhaustion.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/isomorph/matrix"
)

// Walker encapsulates mutable, level-synchronous BFS state rooted at one vertex.
// A Walker is owned by a single goroutine; the adjacency is only read.
type Walker struct {
	graph   *matrix.Adjacency
	visited []bool
	fringe  []int
	next    []int // scratch buffer swapped with fringe
	depth   int
	parent  []int // nil unless tracked
}

// NewWalker seeds a walker with visited = {root} and fringe = {root}.
// Returns ErrGraphNil or ErrRootOutOfRange for invalid input.
func NewWalker(g *matrix.Adjacency, root int) (*Walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.Order()
	if root < 0 || root >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrRootOutOfRange, root, n)
	}
	w := &Walker{
		graph:   g,
		visited: make([]bool, n),
		fringe:  make([]int, 1, n),
		next:    make([]int, 0, n),
	}
	w.visited[root] = true
	w.fringe[0] = root

	return w, nil
}

// Fringe returns the current frontier in discovery order.
// The slice is owned by the walker and is overwritten by the next Step.
func (w *Walker) Fringe() []int { return w.fringe }

// Depth returns the depth of the current fringe (0 for the root level).
func (w *Walker) Depth() int { return w.depth }

// Exhausted reports whether the traversal has no frontier left.
func (w *Walker) Exhausted() bool { return len(w.fringe) == 0 }

// Visited reports whether v has been reached.
func (w *Walker) Visited(v int) bool { return w.visited[v] }

// Step expands the fringe to all not-yet-visited neighbors of its members,
// marking them visited. Fringe members are expanded in fringe order and
// neighbors in ascending id order, so discovery order is deterministic.
// Returns false once the new fringe is empty.
// Complexity: O(|fringe| · n) on the dense matrix.
func (w *Walker) Step() bool {
	if len(w.fringe) == 0 {
		return false
	}
	n := w.graph.Order()
	next := w.next[:0]
	for _, u := range w.fringe {
		for v := 0; v < n; v++ {
			if w.visited[v] || !w.graph.Adjacent(u, v) {
				continue
			}
			w.visited[v] = true
			if w.parent != nil {
				w.parent[v] = u
			}
			next = append(next, v)
		}
	}
	w.next = w.fringe
	w.fringe = next
	w.depth++

	return len(w.fringe) > 0
}

// trackParents enables predecessor recording for BFS results.
func (w *Walker) trackParents() {
	w.parent = make([]int, len(w.visited))
	for i := range w.parent {
		w.parent[i] = -1
	}
}

// BFS runs breadth-first search on g from root, applying any number of
// functional Options. Returns ErrGraphNil or ErrRootOutOfRange for invalid
// input, ErrOptionViolation for bad options, the context error on
// cancellation, or any error returned by OnLevel.
func BFS(g *matrix.Adjacency, root int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w, err := NewWalker(g, root)
	if err != nil {
		return nil, err
	}
	w.trackParents()

	n := g.Order()
	res := &BFSResult{
		Levels: make([][]int, 0, 4),
		Depth:  make([]int, n),
		Parent: w.parent,
	}
	for i := range res.Depth {
		res.Depth[i] = -1
	}

	return res, walk(o.Ctx, w, o, res)
}

// walk records each level and advances until exhaustion, MaxDepth or error.
func walk(ctx context.Context, w *Walker, o BFSOptions, res *BFSResult) error {
	for !w.Exhausted() {
		// cancellation check (once per level)
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		lvl := append([]int(nil), w.Fringe()...)
		for _, v := range lvl {
			res.Depth[v] = w.Depth()
		}
		res.Levels = append(res.Levels, lvl)
		if err := o.OnLevel(w.Depth(), lvl); err != nil {
			return fmt.Errorf("bfs: OnLevel error at depth %d: %w", w.Depth(), err)
		}

		if o.MaxDepth > 0 && w.Depth() >= o.MaxDepth {
			break
		}
		w.Step()
	}

	return nil
}
