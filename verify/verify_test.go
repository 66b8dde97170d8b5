package verify_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/isomorph/builder"
	"github.com/katalvlaran/isomorph/mapping"
	"github.com/katalvlaran/isomorph/matrix"
	"github.com/katalvlaran/isomorph/refine"
	"github.com/katalvlaran/isomorph/verify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEdges(t *testing.T, n int, edges [][2]int) *matrix.Adjacency {
	t.Helper()
	m, err := matrix.FromEdges(n, edges)
	require.NoError(t, err)

	return m
}

func canonical(t *testing.T, m *matrix.Adjacency) mapping.Mapping {
	t.Helper()
	r, err := refine.Refine(m)
	require.NoError(t, err)
	mp, err := mapping.Build(r, m)
	require.NoError(t, err)

	return mp
}

func randomGraph(t *testing.T, rng *rand.Rand, n int) *matrix.Adjacency {
	t.Helper()
	m, err := builder.Build(builder.RandomSparse(n, 1.0/3), builder.WithRand(rng))
	require.NoError(t, err)

	return m
}

func TestVerify_Errors(t *testing.T) {
	m := mustEdges(t, 2, [][2]int{{0, 1}})
	mp := canonical(t, m)

	_, err := verify.Verify(nil, mp, m, mp)
	require.ErrorIs(t, err, verify.ErrNilGraph)

	_, err = verify.Verify(m, mapping.Mapping{Index: []int{0, 0}}, m, mp)
	require.ErrorIs(t, err, verify.ErrInvalidMapping)
	_, err = verify.Verify(m, mp, m, mapping.Mapping{Index: []int{0}})
	require.ErrorIs(t, err, verify.ErrInvalidMapping)

	_, err = verify.Relabel(nil, mp)
	require.ErrorIs(t, err, verify.ErrNilGraph)
	_, err = verify.Witness(mp, mapping.Mapping{Index: []int{0}})
	require.ErrorIs(t, err, verify.ErrInvalidMapping)
}

func TestVerify_OrderMismatchIsVerdict(t *testing.T) {
	a := mustEdges(t, 2, [][2]int{{0, 1}})
	b := mustEdges(t, 3, [][2]int{{0, 1}})
	v, err := verify.Verify(a, canonical(t, a), b, canonical(t, b))
	require.NoError(t, err)
	assert.True(t, v.OrderMismatch)
	assert.False(t, v.Isomorphic)
}

func TestVerify_Reflexive(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for iter := 0; iter < 15; iter++ {
		m := randomGraph(t, rng, 3+rng.Intn(15))
		mp := canonical(t, m)
		v, err := verify.Verify(m, mp, m, mp)
		require.NoError(t, err)
		assert.True(t, v.Isomorphic, "iter %d", iter)
	}
}

func TestVerify_PathReversedRoundTrip(t *testing.T) {
	a := mustEdges(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	b, err := a.Permute([]int{1, 0, 2, 3}) // path 1-0-2-3
	require.NoError(t, err)
	ma, mb := canonical(t, a), canonical(t, b)

	v, err := verify.Verify(a, ma, b, mb)
	require.NoError(t, err)
	require.True(t, v.Isomorphic)

	ra, err := verify.Relabel(a, ma)
	require.NoError(t, err)
	rb, err := verify.Relabel(b, mb)
	require.NoError(t, err)
	assert.True(t, ra.Equal(rb))

	w, err := verify.Witness(ma, mb)
	require.NoError(t, err)
	pa, err := a.Permute(w)
	require.NoError(t, err)
	assert.True(t, pa.Equal(b), "witness carries A onto B")
}

func TestVerify_MismatchReported(t *testing.T) {
	tri := mustEdges(t, 6, [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}})
	hex := mustEdges(t, 6, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}})
	id, err := mapping.FromIndex([]int{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)

	v, err := verify.Verify(tri, id, hex, id)
	require.NoError(t, err)
	require.False(t, v.Isomorphic)
	require.NotNil(t, v.Mismatch)
	// first differing pair in row-major order is (0,2): triangle edge, hexagon non-edge
	assert.Equal(t, 0, v.Mismatch.I)
	assert.Equal(t, 2, v.Mismatch.J)
	assert.True(t, v.Mismatch.EdgeA)
	assert.False(t, v.Mismatch.EdgeB)
	assert.Contains(t, v.Mismatch.String(), "canonical (0,2)")
}

func TestVerify_RandomIsomorphicPairs(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	for iter := 0; iter < 15; iter++ {
		pair, err := builder.IsomorphicPair(builder.RandomSparse(6+rng.Intn(14), 1.0/3), builder.WithRand(rng))
		require.NoError(t, err)
		a, b := pair.A, pair.B
		ma, mb := canonical(t, a), canonical(t, b)
		v, err := verify.Verify(a, ma, b, mb)
		require.NoError(t, err)
		if !ma.Ambiguous() && !mb.Ambiguous() {
			assert.True(t, v.Isomorphic, "iter %d: structural mappings must agree", iter)
		}
		if v.Isomorphic {
			w, err := verify.Witness(ma, mb)
			require.NoError(t, err)
			pa, err := a.Permute(w)
			require.NoError(t, err)
			assert.True(t, pa.Equal(b))
		}
	}
}
