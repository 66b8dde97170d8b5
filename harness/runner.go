package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/isomorph/iso"
	"github.com/katalvlaran/isomorph/mapping"
	"github.com/katalvlaran/isomorph/refine"
)

// PairResult is the per-pair line of a Report.
type PairResult struct {
	Seq            int
	Name           string
	Outcome        iso.Outcome
	Candidate      bool
	Verified       bool
	Disagreement   bool
	Inconclusive   bool
	Expected       bool
	Recorded       bool
	Individualized int
	Elapsed        time.Duration
}

// Report aggregates a run.
type Report struct {
	RunID string

	Total         int
	Candidates    int
	Verified      int
	Disagreements int
	Inconclusive  int

	// Missed counts known-isomorphic pairs whose signatures differed.
	// Signatures are relabeling-invariant, so a non-zero value is a bug.
	Missed int

	// Recorded counts pairs handed to the FailureSink.
	Recorded int

	Elapsed time.Duration
	Pairs   []PairResult
}

func percent(k, n int) float64 {
	if n == 0 {
		return 0
	}

	return 100 * float64(k) / float64(n)
}

// CandidatePercent is the share of pairs with matching signatures.
func (r Report) CandidatePercent() float64 { return percent(r.Candidates, r.Total) }

// VerifiedPercent is the share of pairs whose mapping verified.
func (r Report) VerifiedPercent() float64 { return percent(r.Verified, r.Total) }

func (r *Report) add(p PairResult) {
	r.Total++
	if p.Candidate {
		r.Candidates++
	}
	if p.Verified {
		r.Verified++
	}
	if p.Disagreement {
		r.Disagreements++
	}
	if p.Inconclusive {
		r.Inconclusive++
	}
	if p.Expected && !p.Candidate {
		r.Missed++
	}
	r.Pairs = append(r.Pairs, p)
}

// Runner decides every pair of a PairSource.
type Runner struct {
	parallel int
	decide   []iso.Option
	log      *slog.Logger
	reg      prometheus.Registerer
	metrics  *metrics
	sink     FailureSink
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the run logger.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithRegisterer registers the run metrics on reg.
func WithRegisterer(reg prometheus.Registerer) RunnerOption {
	return func(r *Runner) { r.reg = reg }
}

// WithSink overrides the failure sink derived from Config.FailureDir.
func WithSink(s FailureSink) RunnerOption {
	return func(r *Runner) { r.sink = s }
}

// NewRunner validates cfg and builds a Runner from it.
func NewRunner(cfg Config, opts ...RunnerOption) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("NewRunner: %w", err)
	}
	mode, _ := cfg.RefineMode()

	r := &Runner{parallel: cfg.Parallel, log: slog.Default()}
	if cfg.FailureDir != "" {
		r.sink = DirSink{Dir: cfg.FailureDir}
	}
	for _, opt := range opts {
		opt(r)
	}
	r.metrics = newMetrics(r.reg)

	mOpts := []mapping.Option{}
	if cfg.Strict {
		mOpts = append(mOpts, mapping.WithStrictOrder())
	}
	r.decide = []iso.Option{
		iso.WithRefineOptions(refine.WithMode(mode), refine.WithWorkers(cfg.Workers)),
		iso.WithMappingOptions(mOpts...),
		iso.WithLogger(r.log),
	}

	return r, nil
}

// Run decides pairs from src until it is exhausted, the context is
// cancelled or a pair fails with an error.
func (r *Runner) Run(ctx context.Context, src PairSource) (Report, error) {
	rep := Report{RunID: uuid.NewString()}
	log := r.log.With("run", rep.RunID)
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallel)
	var mu sync.Mutex

	var srcErr error
	for seq := 0; gctx.Err() == nil; seq++ {
		p, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			srcErr = fmt.Errorf("Run: source: %w", err)
			break
		}
		seq := seq // per-iteration copy; go.mod targets go1.21 loop semantics
		g.Go(func() error {
			res, err := r.one(gctx, log, seq, p)
			if err != nil {
				return fmt.Errorf("Run: pair %s: %w", p.Name, err)
			}
			mu.Lock()
			rep.add(res)
			if res.Recorded {
				rep.Recorded++
			}
			mu.Unlock()

			return nil
		})
	}
	err := g.Wait()
	sort.Slice(rep.Pairs, func(i, j int) bool { return rep.Pairs[i].Seq < rep.Pairs[j].Seq })
	rep.Elapsed = time.Since(start)

	switch {
	case err != nil:
		return rep, err
	case srcErr != nil:
		return rep, srcErr
	case ctx.Err() != nil:
		return rep, ctx.Err()
	}
	log.Info("run complete",
		"total", rep.Total,
		"candidates_pct", rep.CandidatePercent(),
		"verified_pct", rep.VerifiedPercent(),
		"disagreements", rep.Disagreements,
		"inconclusive", rep.Inconclusive,
		"elapsed", rep.Elapsed)

	return rep, nil
}

// one decides a single pair. Known-isomorphic pairs that did not verify and
// pairs not expected to be isomorphic whose signatures matched go to the sink.
func (r *Runner) one(ctx context.Context, log *slog.Logger, seq int, p Pair) (PairResult, error) {
	m := r.metrics
	t0 := time.Now()
	d, err := iso.Decide(ctx, p.A, p.B, r.decide...)
	if err != nil {
		return PairResult{}, err
	}
	res := PairResult{
		Seq:            seq,
		Name:           p.Name,
		Outcome:        d.Outcome,
		Candidate:      d.Candidate,
		Verified:       d.Verified,
		Disagreement:   d.Disagreement,
		Inconclusive:   d.Inconclusive,
		Expected:       p.Isomorphic,
		Individualized: len(d.MappingA.Individualized) + len(d.MappingB.Individualized),
		Elapsed:        time.Since(t0),
	}

	m.pairs.WithLabelValues(d.Outcome.String()).Inc()
	m.duration.Observe(res.Elapsed.Seconds())
	m.individual.Observe(float64(res.Individualized))
	if d.Disagreement {
		m.disagreements.Inc()
	}

	switch {
	case res.Expected && !res.Candidate:
		log.Error("signatures differ on isomorphic pair", "pair", p.Name, "n", p.A.Order())
	case res.Disagreement:
		log.Warn("mapping failed", "pair", p.Name, "n", p.A.Order(), "inconclusive", res.Inconclusive)
	case !res.Expected && res.Candidate:
		log.Info("isomorphic graph detected", "pair", p.Name, "verified", res.Verified)
	default:
		log.Debug("pair decided", "pair", p.Name, "outcome", d.Outcome.String())
	}

	if r.sink != nil && (res.Expected && !res.Verified || !res.Expected && res.Candidate) {
		if err = r.sink.Record(p.Name, p.A, p.B); err != nil {
			return res, err
		}
		res.Recorded = true
	}

	return res, nil
}
