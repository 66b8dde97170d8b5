// Package bfs provides tunable options and error definitions
// for level-synchronous breadth-first search over a matrix.Adjacency.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrRootOutOfRange is returned when the root is not a vertex of the graph.
	ErrRootOutOfRange = errors.New("bfs: root vertex out of range")

	// ErrGraphNil is returned if a nil adjacency pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines. Checked once per level.
	Ctx context.Context

	// OnLevel is called once per non-empty fringe, with the fringe's depth
	// and its vertices in discovery order. The slice must not be retained.
	// Returning an error aborts the traversal.
	OnLevel func(depth int, fringe []int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op OnLevel hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:      context.Background(),
		OnLevel:  func(int, []int) error { return nil },
		MaxDepth: 0,
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnLevel registers a callback invoked for every level.
func WithOnLevel(fn func(depth int, fringe []int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Levels: fringes by depth, each in discovery order.
//   - Depth:  distance from the root per vertex, -1 if unreached.
//   - Parent: BFS-tree predecessor per vertex, -1 for the root and unreached.
type BFSResult struct {
	Levels [][]int
	Depth  []int
	Parent []int
}

// Order flattens Levels into the visit sequence.
func (r *BFSResult) Order() []int {
	out := make([]int, 0, len(r.Depth))
	for _, lvl := range r.Levels {
		out = append(out, lvl...)
	}

	return out
}

// PathTo reconstructs the path from the root to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Depth) || r.Depth[dest] < 0 {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	path := make([]int, 0, r.Depth[dest]+1)
	for cur := dest; cur >= 0; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	// reverse to get root → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
