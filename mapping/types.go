// Package mapping defines the canonical vertex mapping, its options and
// error taxonomy.
package mapping

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/isomorph/matrix"
)

// Sentinel errors returned by the mapping builder.
var (
	// ErrNilResult indicates that a nil *refine.Result was passed.
	ErrNilResult = errors.New("mapping: refinement result is nil")

	// ErrNilGraph indicates that a nil *matrix.Adjacency was passed.
	ErrNilGraph = errors.New("mapping: graph is nil")

	// ErrOrderMismatch indicates that the result and the graph disagree on n.
	ErrOrderMismatch = errors.New("mapping: result and graph orders differ")

	// ErrNotBijective indicates that a mapping is not a permutation of [0, n).
	ErrNotBijective = errors.New("mapping: not a bijection")

	// ErrInconclusiveMapping indicates that a tie could not be broken under
	// WithStrictOrder.
	ErrInconclusiveMapping = errors.New("mapping: inconclusive vertex ordering")
)

// InconclusiveError names the vertices that no rule could separate when the
// builder reached canonical index Position.
type InconclusiveError struct {
	Position int
	Vertices []int
}

// Error implements error.
func (e *InconclusiveError) Error() string {
	return fmt.Sprintf("%v at index %d: vertices %v are indistinguishable",
		ErrInconclusiveMapping, e.Position, e.Vertices)
}

// Unwrap lets errors.Is match ErrInconclusiveMapping.
func (e *InconclusiveError) Unwrap() error { return ErrInconclusiveMapping }

// Mapping assigns every vertex a canonical index.
type Mapping struct {
	// Index maps vertex id → canonical index in [0, n).
	Index []int

	// Individualized lists, in placement order, the vertices that were placed
	// by breaking a tie on lowest id rather than by structure.
	Individualized []int
}

// FromIndex wraps a caller-supplied index slice after validating it.
func FromIndex(idx []int) (Mapping, error) {
	mp := Mapping{Index: append([]int(nil), idx...)}
	if err := mp.Validate(); err != nil {
		return Mapping{}, err
	}

	return mp, nil
}

// Order returns the number of mapped vertices.
func (mp Mapping) Order() int { return len(mp.Index) }

// Ambiguous reports whether any vertex was placed by individualization.
func (mp Mapping) Ambiguous() bool { return len(mp.Individualized) > 0 }

// Validate checks that Index is a bijection onto [0, n).
func (mp Mapping) Validate() error {
	if err := matrix.ValidatePermutation(mp.Index, len(mp.Index)); err != nil {
		return fmt.Errorf("%w: %v", ErrNotBijective, err)
	}

	return nil
}

// Inverse returns canonical index → vertex id.
// Returns ErrNotBijective when the mapping is invalid.
func (mp Mapping) Inverse() ([]int, error) {
	if err := mp.Validate(); err != nil {
		return nil, err
	}
	inv := make([]int, len(mp.Index))
	for v, c := range mp.Index {
		inv[c] = v
	}

	return inv, nil
}

// Apply relabels m into canonical order: out[Index[u]][Index[v]] = m[u][v].
func (mp Mapping) Apply(m *matrix.Adjacency) (*matrix.Adjacency, error) {
	if m == nil {
		return nil, ErrNilGraph
	}
	if m.Order() != mp.Order() {
		return nil, fmt.Errorf("%w: mapping %d, graph %d", ErrOrderMismatch, mp.Order(), m.Order())
	}
	if err := mp.Validate(); err != nil {
		return nil, err
	}

	return m.Permute(mp.Index)
}

// Option configures Build via functional arguments.
type Option func(*Options)

// Options holds mapping-builder parameters.
type Options struct {
	// Strict turns an unbreakable tie into an *InconclusiveError.
	Strict bool

	// Ctx is checked between placements.
	Ctx context.Context

	// Logger receives a debug record per individualized vertex.
	Logger *slog.Logger
}

// DefaultOptions returns lenient tie-breaking, background context and slog.Default().
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Logger: slog.Default()}
}

// WithStrictOrder makes Build fail with ErrInconclusiveMapping instead of
// individualizing the lowest vertex id of an unbreakable tie.
func WithStrictOrder() Option {
	return func(o *Options) { o.Strict = true }
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the structured logger; nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
