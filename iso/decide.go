package iso

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/isomorph/mapping"
	"github.com/katalvlaran/isomorph/matrix"
	"github.com/katalvlaran/isomorph/refine"
	"github.com/katalvlaran/isomorph/signature"
	"github.com/katalvlaran/isomorph/verify"
)

// ErrNilGraph indicates that a nil *matrix.Adjacency was passed to Decide.
var ErrNilGraph = errors.New("iso: graph is nil")

// Outcome is the final classification of a pair.
type Outcome int

const (
	// NotIsomorphic: signatures differ, orders differ, or a structural
	// mapping failed verification.
	NotIsomorphic Outcome = iota

	// CandidateUnverified: signatures match but the mapping relied on
	// individualization (or was inconclusive) and did not verify.
	CandidateUnverified

	// Isomorphic: verification succeeded; Witness holds the correspondence.
	Isomorphic
)

// String returns a lower-case label for logs and reports.
func (o Outcome) String() string {
	switch o {
	case NotIsomorphic:
		return "not-isomorphic"
	case CandidateUnverified:
		return "candidate-unverified"
	case Isomorphic:
		return "isomorphic"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Decision collects everything Decide learned about a pair.
type Decision struct {
	Outcome Outcome

	// Candidate is the signature-multiset verdict.
	Candidate bool

	// Verified is the matrix-equivalence verdict.
	Verified bool

	// Disagreement is set when Candidate and Verified differ.
	Disagreement bool

	// Inconclusive is set when a strict mapping could not break a tie.
	Inconclusive bool

	// Verdict is the verifier's detailed result.
	Verdict verify.Verdict

	// Witness maps A-vertex → B-vertex when Outcome is Isomorphic.
	Witness []int

	// ResultA, ResultB are the refinement results of each graph.
	ResultA, ResultB *refine.Result

	// MappingA, MappingB are the canonical mappings (zero when inconclusive).
	MappingA, MappingB mapping.Mapping
}

// Option configures Decide.
type Option func(*decideConfig)

type decideConfig struct {
	refineOpts  []refine.Option
	mappingOpts []mapping.Option
	logger      *slog.Logger
}

// WithRefineOptions forwards options to both refinement runs.
func WithRefineOptions(opts ...refine.Option) Option {
	return func(c *decideConfig) { c.refineOpts = append(c.refineOpts, opts...) }
}

// WithMappingOptions forwards options to both mapping builds.
func WithMappingOptions(opts ...mapping.Option) Option {
	return func(c *decideConfig) { c.mappingOpts = append(c.mappingOpts, opts...) }
}

// WithLogger sets the logger used by Decide and forwarded to the stages.
func WithLogger(l *slog.Logger) Option {
	return func(c *decideConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Decide runs both halves of the engine on a and b and classifies the pair.
//
// Signatures are invariant under relabeling, so differing signatures prove
// non-isomorphism. A mapping built without individualization is invariant
// too, so a failed verification of two such mappings is also a proof. A
// failed verification that involved individualization only leaves a
// candidate.
func Decide(ctx context.Context, a, b *matrix.Adjacency, opts ...Option) (Decision, error) {
	if a == nil || b == nil {
		return Decision{}, ErrNilGraph
	}
	cfg := decideConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.logger

	if a.Order() != b.Order() {
		log.Debug("order mismatch", "a", a.Order(), "b", b.Order())
		return Decision{Outcome: NotIsomorphic, Verdict: verify.Verdict{OrderMismatch: true}}, nil
	}

	rOpts := append([]refine.Option{refine.WithContext(ctx), refine.WithLogger(log)}, cfg.refineOpts...)
	ra, err := refine.Refine(a, rOpts...)
	if err != nil {
		return Decision{}, fmt.Errorf("Decide: refine A: %w", err)
	}
	rb, err := refine.Refine(b, rOpts...)
	if err != nil {
		return Decision{}, fmt.Errorf("Decide: refine B: %w", err)
	}
	d := Decision{ResultA: ra, ResultB: rb, Candidate: signature.Compare(ra, rb)}

	mOpts := append([]mapping.Option{mapping.WithContext(ctx), mapping.WithLogger(log)}, cfg.mappingOpts...)
	ma, errA := mapping.Build(ra, a, mOpts...)
	mb, errB := mapping.Build(rb, b, mOpts...)
	for _, e := range []error{errA, errB} {
		if e != nil && !errors.Is(e, mapping.ErrInconclusiveMapping) {
			return Decision{}, fmt.Errorf("Decide: mapping: %w", e)
		}
	}
	if errA != nil || errB != nil {
		d.Inconclusive = true
		d.Outcome = NotIsomorphic
		if d.Candidate {
			d.Outcome = CandidateUnverified
		}
		d.Disagreement = d.Candidate
		log.Debug("mapping inconclusive", "candidate", d.Candidate)
		return d, nil
	}
	d.MappingA, d.MappingB = ma, mb

	d.Verdict, err = verify.Verify(a, ma, b, mb)
	if err != nil {
		return Decision{}, fmt.Errorf("Decide: %w", err)
	}
	d.Verified = d.Verdict.Isomorphic
	d.Disagreement = d.Candidate != d.Verified

	switch {
	case d.Verified:
		d.Outcome = Isomorphic
		if d.Witness, err = verify.Witness(ma, mb); err != nil {
			return Decision{}, fmt.Errorf("Decide: %w", err)
		}
	case d.Candidate && (ma.Ambiguous() || mb.Ambiguous()):
		d.Outcome = CandidateUnverified
	default:
		d.Outcome = NotIsomorphic
	}
	log.Debug("pair decided",
		"outcome", d.Outcome.String(), "candidate", d.Candidate, "verified", d.Verified)

	return d, nil
}
