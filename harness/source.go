package harness

import (
	"fmt"
	"io"
	"math/rand"
	"path/filepath"

	"github.com/katalvlaran/isomorph/builder"
	"github.com/katalvlaran/isomorph/matrix"
	"github.com/katalvlaran/isomorph/vflib"
)

// Pair is one unit of work for a Runner.
type Pair struct {
	Name string
	A, B *matrix.Adjacency

	// Isomorphic is set when the pair is known to be isomorphic.
	Isomorphic bool
}

// PairSource yields pairs until it returns io.EOF.
// Sources are consumed from a single goroutine.
type PairSource interface {
	Next() (Pair, error)
}

// CorpusSource reads A/B pairs of a vflib graph database, iterating sizes
// in order and indices First..Last within each size.
type CorpusSource struct {
	cfg  CorpusConfig
	size int
	idx  int
}

// NewCorpusSource returns a source over cfg.
func NewCorpusSource(cfg CorpusConfig) *CorpusSource {
	return &CorpusSource{cfg: cfg, idx: cfg.First}
}

// Next implements PairSource.
func (s *CorpusSource) Next() (Pair, error) {
	if s.idx > s.cfg.Last {
		s.size++
		s.idx = s.cfg.First
	}
	if s.size >= len(s.cfg.Sizes) {
		return Pair{}, io.EOF
	}
	size, i := s.cfg.Sizes[s.size], s.idx
	s.idx++

	nameA := fmt.Sprintf(s.cfg.PatternA, size, i)
	a, err := vflib.ReadFile(filepath.Join(s.cfg.Dir, nameA))
	if err != nil {
		return Pair{}, err
	}
	b, err := vflib.ReadFile(filepath.Join(s.cfg.Dir, fmt.Sprintf(s.cfg.PatternB, size, i)))
	if err != nil {
		return Pair{}, err
	}

	return Pair{Name: fmt.Sprintf("s%d_%02d", size, i), A: a, B: b, Isomorphic: s.cfg.Isomorphic}, nil
}

// RandomSource yields pairs of independent G(n, p) graphs with n drawn
// uniformly from [NodesMin, NodesMax]. Such pairs are almost never
// isomorphic, so any pair that passes exposes a weakness of the signature.
type RandomSource struct {
	cfg   RandomConfig
	rng   *rand.Rand
	count int
}

// NewRandomSource returns a seeded source over cfg.
func NewRandomSource(cfg RandomConfig) *RandomSource {
	return &RandomSource{cfg: cfg, rng: rand.New(rand.NewSource(cfg.Seed))}
}

func (s *RandomSource) nodes() int {
	return s.cfg.NodesMin + s.rng.Intn(s.cfg.NodesMax-s.cfg.NodesMin+1)
}

// Next implements PairSource.
func (s *RandomSource) Next() (Pair, error) {
	if s.count >= s.cfg.Iterations {
		return Pair{}, io.EOF
	}
	n := s.nodes()
	opts := []builder.BuilderOption{builder.WithRand(s.rng)}
	a, err := builder.BuildGraph(opts, builder.RandomSparse(n, s.cfg.EdgeProbability))
	if err != nil {
		return Pair{}, err
	}
	b, err := builder.BuildGraph(opts, builder.RandomSparse(n, s.cfg.EdgeProbability))
	if err != nil {
		return Pair{}, err
	}
	p := Pair{Name: fmt.Sprintf("random_%d", s.count), A: a, B: b}
	s.count++

	return p, nil
}

// PermutedSource yields a random graph and a uniformly relabeled copy.
type PermutedSource struct {
	RandomSource
}

// NewPermutedSource returns a seeded source over cfg.
func NewPermutedSource(cfg RandomConfig) *PermutedSource {
	return &PermutedSource{RandomSource: *NewRandomSource(cfg)}
}

// Next implements PairSource.
func (s *PermutedSource) Next() (Pair, error) {
	if s.count >= s.cfg.Iterations {
		return Pair{}, io.EOF
	}
	n := s.nodes()
	pair, err := builder.IsomorphicPair(builder.RandomSparse(n, s.cfg.EdgeProbability), builder.WithRand(s.rng))
	if err != nil {
		return Pair{}, err
	}
	p := Pair{Name: fmt.Sprintf("permuted_%d", s.count), A: pair.A, B: pair.B, Isomorphic: true}
	s.count++

	return p, nil
}

// SliceSource yields a fixed list of pairs.
type SliceSource struct {
	pairs []Pair
}

// NewSliceSource returns a source over pairs.
func NewSliceSource(pairs ...Pair) *SliceSource {
	return &SliceSource{pairs: pairs}
}

// Next implements PairSource.
func (s *SliceSource) Next() (Pair, error) {
	if len(s.pairs) == 0 {
		return Pair{}, io.EOF
	}
	p := s.pairs[0]
	s.pairs = s.pairs[1:]

	return p, nil
}
