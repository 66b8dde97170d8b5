// Package refine defines the data model and configuration of the
// color-refinement engine: degree maps, per-vertex signatures and the
// immutable Result shared by both refinement modes.
package refine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
)

// Sentinel errors returned by the refinement engine.
var (
	// ErrNilGraph indicates that a nil *matrix.Adjacency was passed.
	ErrNilGraph = errors.New("refine: graph is nil")

	// ErrOptionViolation indicates that an invalid Option was supplied.
	ErrOptionViolation = errors.New("refine: invalid option supplied")
)

// Mode selects the refinement strategy.
type Mode int

const (
	// ModeCanonicalForm records, per vertex, the sorted degrees of every BFS
	// level. This is the default and the authoritative mode.
	ModeCanonicalForm Mode = iota

	// ModeWeightMap iteratively splits tied weight classes by summing the
	// weights of each member's next BFS fringe.
	ModeWeightMap
)

// String returns the flag spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ModeCanonicalForm:
		return "canonical"
	case ModeWeightMap:
		return "weightmap"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "canonical" or "weightmap" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "canonical", "":
		return ModeCanonicalForm, nil
	case "weightmap":
		return ModeWeightMap, nil
	default:
		return 0, fmt.Errorf("%w: unknown mode %q", ErrOptionViolation, s)
	}
}

// DegreeMap holds the degree of every vertex, indexed by vertex id.
type DegreeMap []int

// Level is a sorted multiset of integers observed at one BFS depth.
type Level []int

// Signature is the refined, comparable score of one vertex.
type Signature []Level

// Compare orders signatures lexicographically, level by level and element by
// element; a strict prefix sorts first. Returns -1, 0 or +1.
func (s Signature) Compare(o Signature) int {
	for k := 0; k < len(s) && k < len(o); k++ {
		if c := compareLevel(s[k], o[k]); c != 0 {
			return c
		}
	}

	return compareInt(len(s), len(o))
}

// Equal reports whether s and o hold identical levels.
func (s Signature) Equal(o Signature) bool { return s.Compare(o) == 0 }

// Clone returns a deep copy of s.
func (s Signature) Clone() Signature {
	out := make(Signature, len(s))
	for k, lvl := range s {
		out[k] = append(Level(nil), lvl...)
	}

	return out
}

func compareLevel(a, b Level) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareInt(a[i], b[i]); c != 0 {
			return c
		}
	}

	return compareInt(len(a), len(b))
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Result is the immutable outcome of a refinement run.
type Result struct {
	// Mode that produced the signatures.
	Mode Mode

	// Degrees is the DegreeMap the refinement was seeded from.
	Degrees DegreeMap

	// Signatures holds one signature per vertex, indexed by vertex id.
	Signatures []Signature

	// Rounds is the number of refinement rounds: the deepest BFS level count
	// in canonical-form mode, the number of class selections in weight-map mode.
	Rounds int
}

// Order returns the number of vertices covered by the result.
func (r *Result) Order() int {
	if r == nil {
		return 0
	}

	return len(r.Signatures)
}

// Signature returns the signature of v, or nil when v is out of range.
func (r *Result) Signature(v int) Signature {
	if r == nil || v < 0 || v >= len(r.Signatures) {
		return nil
	}

	return r.Signatures[v]
}

// Classes groups vertices with equal signatures. Classes are ordered by
// ascending signature and members by ascending vertex id.
func (r *Result) Classes() [][]int {
	n := r.Order()
	if n == 0 {
		return nil
	}
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	sort.SliceStable(ids, func(i, j int) bool {
		return r.Signatures[ids[i]].Compare(r.Signatures[ids[j]]) < 0
	})

	classes := make([][]int, 0, n)
	start := 0
	for i := 1; i <= n; i++ {
		if i == n || !r.Signatures[ids[i]].Equal(r.Signatures[ids[start]]) {
			classes = append(classes, append([]int(nil), ids[start:i]...))
			start = i
		}
	}

	return classes
}

// Symmetric reports whether u and v carry the same signature.
func (r *Result) Symmetric(u, v int) bool {
	su, sv := r.Signature(u), r.Signature(v)
	if su == nil || sv == nil {
		return false
	}

	return su.Equal(sv)
}

// Discrete reports whether every vertex carries a distinct signature.
func (r *Result) Discrete() bool {
	return len(r.Classes()) == r.Order()
}

// Equal reports whether r and o hold the same mode and per-vertex signatures.
func (r *Result) Equal(o *Result) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.Mode != o.Mode || len(r.Signatures) != len(o.Signatures) {
		return false
	}
	for v := range r.Signatures {
		if !r.Signatures[v].Equal(o.Signatures[v]) {
			return false
		}
	}

	return true
}

// Option configures Refine via functional arguments.
type Option func(*Options)

// Options holds the refinement parameters.
type Options struct {
	// Mode selects the refinement strategy.
	Mode Mode

	// Ctx is checked between vertices and between rounds.
	Ctx context.Context

	// Workers bounds the goroutines used for per-vertex BFS in canonical-form
	// mode. 1 runs sequentially.
	Workers int

	// Logger receives debug records per round.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns canonical-form mode, background context,
// a single worker and slog.Default().
func DefaultOptions() Options {
	return Options{
		Mode:    ModeCanonicalForm,
		Ctx:     context.Background(),
		Workers: 1,
		Logger:  slog.Default(),
	}
}

// WithMode selects the refinement strategy.
func WithMode(m Mode) Option {
	return func(o *Options) {
		switch m {
		case ModeCanonicalForm, ModeWeightMap:
			o.Mode = m
		default:
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, int(m))
		}
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the number of concurrent per-vertex traversals.
// k < 1 is recorded as ErrOptionViolation.
func WithWorkers(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.Workers = k
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
