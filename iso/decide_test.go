package iso_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/isomorph/builder"
	"github.com/katalvlaran/isomorph/iso"
	"github.com/katalvlaran/isomorph/mapping"
	"github.com/katalvlaran/isomorph/matrix"
	"github.com/katalvlaran/isomorph/refine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEdges(t *testing.T, n int, edges [][2]int) *matrix.Adjacency {
	t.Helper()
	m, err := matrix.FromEdges(n, edges)
	require.NoError(t, err)

	return m
}

var (
	trianglesEdges = [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}}
	hexagonEdges   = [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}}
)

func TestDecide_Errors(t *testing.T) {
	_, err := iso.Decide(context.Background(), nil, mustEdges(t, 1, nil))
	require.ErrorIs(t, err, iso.ErrNilGraph)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a := mustEdges(t, 3, [][2]int{{0, 1}})
	_, err = iso.Decide(ctx, a, a)
	require.ErrorIs(t, err, context.Canceled)
}

func TestDecide_PathReversed(t *testing.T) {
	a := mustEdges(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	b := mustEdges(t, 4, [][2]int{{1, 0}, {0, 2}, {2, 3}})
	d, err := iso.Decide(context.Background(), a, b)
	require.NoError(t, err)

	assert.Equal(t, iso.Isomorphic, d.Outcome)
	assert.True(t, d.Candidate)
	assert.True(t, d.Verified)
	assert.False(t, d.Disagreement)
	pa, err := a.Permute(d.Witness)
	require.NoError(t, err)
	assert.True(t, pa.Equal(b))
}

func TestDecide_TrianglesVersusHexagon(t *testing.T) {
	a, b := mustEdges(t, 6, trianglesEdges), mustEdges(t, 6, hexagonEdges)
	d, err := iso.Decide(context.Background(), a, b)
	require.NoError(t, err)
	assert.Equal(t, iso.NotIsomorphic, d.Outcome)
	assert.False(t, d.Candidate)
	assert.False(t, d.Verified)
	assert.False(t, d.Disagreement)
	assert.NotNil(t, d.Verdict.Mismatch)
}

// In weight-map mode the two 2-regular graphs share a signature multiset,
// so the candidate verdict is wrong and only verification catches it.
func TestDecide_WeightMapDisagreement(t *testing.T) {
	a, b := mustEdges(t, 6, trianglesEdges), mustEdges(t, 6, hexagonEdges)
	d, err := iso.Decide(context.Background(), a, b,
		iso.WithRefineOptions(refine.WithMode(refine.ModeWeightMap)))
	require.NoError(t, err)
	assert.True(t, d.Candidate)
	assert.False(t, d.Verified)
	assert.True(t, d.Disagreement)
	assert.Equal(t, iso.CandidateUnverified, d.Outcome)
	assert.Equal(t, "candidate-unverified", d.Outcome.String())
}

func TestDecide_StrictInconclusive(t *testing.T) {
	a := mustEdges(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	d, err := iso.Decide(context.Background(), a, a.Clone(),
		iso.WithMappingOptions(mapping.WithStrictOrder()))
	require.NoError(t, err)
	assert.True(t, d.Inconclusive)
	assert.Equal(t, iso.CandidateUnverified, d.Outcome)
	assert.True(t, d.Disagreement)
}

func TestDecide_OrderMismatch(t *testing.T) {
	d, err := iso.Decide(context.Background(), mustEdges(t, 2, nil), mustEdges(t, 3, nil))
	require.NoError(t, err)
	assert.Equal(t, iso.NotIsomorphic, d.Outcome)
	assert.True(t, d.Verdict.OrderMismatch)
}

// TestDecide_NeverRejectsIsomorphicPairs: a relabeled copy is never declared
// NotIsomorphic, and any Isomorphic outcome carries a valid witness.
func TestDecide_NeverRejectsIsomorphicPairs(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	for iter := 0; iter < 20; iter++ {
		pair, err := builder.IsomorphicPair(builder.RandomSparse(4+rng.Intn(16), 0.25), builder.WithRand(rng))
		require.NoError(t, err)
		a, b := pair.A, pair.B

		d, err := iso.Decide(context.Background(), a, b)
		require.NoError(t, err)
		assert.True(t, d.Candidate, "iter %d", iter)
		assert.NotEqual(t, iso.NotIsomorphic, d.Outcome, "iter %d", iter)
		if d.Outcome == iso.Isomorphic {
			pa, err := a.Permute(d.Witness)
			require.NoError(t, err)
			assert.True(t, pa.Equal(b), "iter %d", iter)
		}
	}
}

func TestFacade(t *testing.T) {
	m := mustEdges(t, 3, [][2]int{{0, 1}, {1, 2}})
	r, err := iso.Refine(m)
	require.NoError(t, err)
	assert.True(t, iso.Compare(r, r))
	mp, err := iso.BuildMapping(r, m)
	require.NoError(t, err)
	v, err := iso.Verify(m, mp, m, mp)
	require.NoError(t, err)
	assert.True(t, v.Isomorphic)
}
