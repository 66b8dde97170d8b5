package mapping_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

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

func build(t *testing.T, m *matrix.Adjacency, opts ...mapping.Option) (mapping.Mapping, error) {
	t.Helper()
	r, err := refine.Refine(m)
	require.NoError(t, err)

	return mapping.Build(r, m, opts...)
}

// asymmetric is a triangle 0-1-2 with a pendant 3 on 0 and a pendant path
// 4-5 on 1; its automorphism group is trivial.
func asymmetric(t *testing.T) *matrix.Adjacency {
	return mustEdges(t, 6, [][2]int{{0, 1}, {1, 2}, {2, 0}, {0, 3}, {1, 4}, {4, 5}})
}

func TestBuild_Errors(t *testing.T) {
	m := mustEdges(t, 2, [][2]int{{0, 1}})
	r, err := refine.Refine(m)
	require.NoError(t, err)

	_, err = mapping.Build(nil, m)
	require.ErrorIs(t, err, mapping.ErrNilResult)
	_, err = mapping.Build(r, nil)
	require.ErrorIs(t, err, mapping.ErrNilGraph)

	other := mustEdges(t, 3, [][2]int{{0, 1}})
	_, err = mapping.Build(r, other)
	require.ErrorIs(t, err, mapping.ErrOrderMismatch)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = mapping.Build(r, m, mapping.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestBuild_PathIndividualizesMiddle(t *testing.T) {
	mp, err := build(t, mustEdges(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}}))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1, 3}, mp.Index)
	assert.Equal(t, []int{1}, mp.Individualized)
	assert.True(t, mp.Ambiguous())
}

func TestBuild_StrictOrder(t *testing.T) {
	_, err := build(t, mustEdges(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}}), mapping.WithStrictOrder())
	require.ErrorIs(t, err, mapping.ErrInconclusiveMapping)

	var inc *mapping.InconclusiveError
	require.True(t, errors.As(err, &inc))
	assert.Equal(t, 0, inc.Position)
	assert.Equal(t, []int{1, 2}, inc.Vertices)
	assert.Contains(t, inc.Error(), "indistinguishable")

	// no ties means strict mode succeeds
	mp, err := build(t, asymmetric(t), mapping.WithStrictOrder())
	require.NoError(t, err)
	assert.False(t, mp.Ambiguous())
}

func TestBuild_EmptyGraph(t *testing.T) {
	zero, _ := matrix.NewAdjacency(0)
	mp, err := build(t, zero)
	require.NoError(t, err)
	assert.Equal(t, 0, mp.Order())

	three, _ := matrix.NewAdjacency(3)
	mp, err = build(t, three)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, mp.Index)
	assert.Equal(t, []int{0, 1}, mp.Individualized, "the last member of a class is forced")
}

// TestBuild_CanonicalUnderRelabeling checks that an asymmetric graph and any
// relabeling of it reach the same canonical matrix.
func TestBuild_CanonicalUnderRelabeling(t *testing.T) {
	m := asymmetric(t)
	mp, err := build(t, m)
	require.NoError(t, err)
	require.Empty(t, mp.Individualized)
	canon, err := mp.Apply(m)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(9))
	for iter := 0; iter < 20; iter++ {
		pm, err := m.Permute(rng.Perm(m.Order()))
		require.NoError(t, err)
		pmp, err := build(t, pm)
		require.NoError(t, err)
		got, err := pmp.Apply(pm)
		require.NoError(t, err)
		assert.True(t, canon.Equal(got), "iter %d:\n%s\nvs\n%s", iter, canon, got)
	}
}

func TestMapping_ValidateInverseApply(t *testing.T) {
	mp, err := mapping.FromIndex([]int{2, 0, 1})
	require.NoError(t, err)
	inv, err := mp.Inverse()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0}, inv)

	_, err = mapping.FromIndex([]int{0, 0, 1})
	require.ErrorIs(t, err, mapping.ErrNotBijective)
	_, err = mapping.Mapping{Index: []int{0, 3}}.Inverse()
	require.ErrorIs(t, err, mapping.ErrNotBijective)

	m := mustEdges(t, 3, [][2]int{{0, 1}})
	out, err := mp.Apply(m)
	require.NoError(t, err)
	assert.True(t, out.Adjacent(2, 0))

	_, err = mp.Apply(nil)
	require.ErrorIs(t, err, mapping.ErrNilGraph)
	_, err = mp.Apply(mustEdges(t, 2, nil))
	require.ErrorIs(t, err, mapping.ErrOrderMismatch)
}

func TestBuild_WeightMapResult(t *testing.T) {
	m := mustEdges(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {2, 4}})
	r, err := refine.Refine(m, refine.WithMode(refine.ModeWeightMap))
	require.NoError(t, err)
	mp, err := mapping.Build(r, m)
	require.NoError(t, err)
	require.NoError(t, mp.Validate())
	// leaves 3 and 4 hold the largest final score and are swapped by an automorphism
	assert.Equal(t, []int{3}, mp.Individualized)
}
