package refine_test

import (
	"bytes"
	"context"
	"log/slog"
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/isomorph/builder"
	"github.com/katalvlaran/isomorph/matrix"
	"github.com/katalvlaran/isomorph/refine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEdges(t testing.TB, n int, edges [][2]int) *matrix.Adjacency {
	t.Helper()
	m, err := matrix.FromEdges(n, edges)
	require.NoError(t, err)

	return m
}

func twoTriangles(t testing.TB) *matrix.Adjacency {
	return mustEdges(t, 6, [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}})
}

func hexagon(t testing.TB) *matrix.Adjacency {
	return mustEdges(t, 6, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}})
}

func sortedSignatures(r *refine.Result) []refine.Signature {
	out := append([]refine.Signature(nil), r.Signatures...)
	sort.Slice(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })

	return out
}

func TestRefine_Errors(t *testing.T) {
	_, err := refine.Refine(nil)
	require.ErrorIs(t, err, refine.ErrNilGraph)

	m := mustEdges(t, 2, [][2]int{{0, 1}})
	_, err = refine.Refine(m, refine.WithWorkers(0))
	require.ErrorIs(t, err, refine.ErrOptionViolation)
	_, err = refine.Refine(m, refine.WithMode(refine.Mode(7)))
	require.ErrorIs(t, err, refine.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, mode := range []refine.Mode{refine.ModeCanonicalForm, refine.ModeWeightMap} {
		_, err = refine.Refine(m, refine.WithMode(mode), refine.WithContext(ctx))
		require.ErrorIs(t, err, context.Canceled, mode.String())
	}
}

func TestProfile(t *testing.T) {
	m := mustEdges(t, 4, [][2]int{{0, 1}, {0, 2}, {0, 3}})
	assert.Equal(t, refine.DegreeMap{3, 1, 1, 1}, refine.Profile(m))
	assert.Empty(t, refine.Profile(nil))
}

func TestSignature_Compare(t *testing.T) {
	a := refine.Signature{{2}, {2, 2}}
	b := refine.Signature{{2}, {2, 2}, {2, 2}, {2}}
	assert.Equal(t, -1, a.Compare(b), "strict prefix sorts first")
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a.Clone()))
	assert.Equal(t, -1, refine.Signature{{1, 2}}.Compare(refine.Signature{{1, 3}}))
	assert.Equal(t, -1, refine.Signature{{1}}.Compare(refine.Signature{{1, 1}}))
}

func TestCanonical_TrianglesVersusHexagon(t *testing.T) {
	rt, err := refine.Refine(twoTriangles(t))
	require.NoError(t, err)
	rh, err := refine.Refine(hexagon(t))
	require.NoError(t, err)

	for v := 0; v < 6; v++ {
		assert.Equal(t, refine.Signature{{2}, {2, 2}}, rt.Signature(v))
		assert.Equal(t, refine.Signature{{2}, {2, 2}, {2, 2}, {2}}, rh.Signature(v))
	}
	assert.Equal(t, 2, rt.Rounds)
	assert.Equal(t, 4, rh.Rounds)
	assert.Len(t, rt.Classes(), 1)
}

func TestCanonical_EmptyAndComplete(t *testing.T) {
	empty, _ := matrix.NewAdjacency(3)
	r, err := refine.Refine(empty)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}}, r.Classes())
	assert.Equal(t, refine.Signature{{0}}, r.Signature(1))

	k4 := mustEdges(t, 4, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}})
	r, err = refine.Refine(k4)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2, 3}}, r.Classes())
	assert.Equal(t, refine.Signature{{3}, {3, 3, 3}}, r.Signature(2))

	zero, _ := matrix.NewAdjacency(0)
	r, err = refine.Refine(zero)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Order())
	assert.Nil(t, r.Classes())
}

func TestCanonical_PathClasses(t *testing.T) {
	r, err := refine.Refine(mustEdges(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}}))
	require.NoError(t, err)
	assert.Equal(t, refine.Signature{{1}, {2}, {2}, {1}}, r.Signature(0))
	assert.Equal(t, refine.Signature{{2}, {1, 2}, {1}}, r.Signature(1))
	assert.Equal(t, [][]int{{0, 3}, {1, 2}}, r.Classes())
	assert.True(t, r.Symmetric(0, 3))
	assert.False(t, r.Symmetric(0, 1))
	assert.False(t, r.Symmetric(0, 9))
	assert.False(t, r.Discrete())
}

func TestRefine_Deterministic(t *testing.T) {
	m, err := builder.Build(builder.RandomSparse(30, 0.2), builder.WithSeed(7))
	require.NoError(t, err)
	for _, mode := range []refine.Mode{refine.ModeCanonicalForm, refine.ModeWeightMap} {
		a, err := refine.Refine(m, refine.WithMode(mode))
		require.NoError(t, err)
		b, err := refine.Refine(m, refine.WithMode(mode))
		require.NoError(t, err)
		assert.True(t, a.Equal(b), mode.String())
		assert.Equal(t, a.Rounds, b.Rounds)
	}
}

func TestRefine_WorkersMatchSequential(t *testing.T) {
	m, err := builder.Build(builder.RandomSparse(40, 0.15), builder.WithSeed(11))
	require.NoError(t, err)
	seq, err := refine.Refine(m)
	require.NoError(t, err)
	par, err := refine.Refine(m, refine.WithWorkers(4))
	require.NoError(t, err)
	assert.True(t, seq.Equal(par))
}

func TestRefine_PermutationInvariance(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for iter := 0; iter < 10; iter++ {
		n := 5 + rng.Intn(20)
		pair, err := builder.IsomorphicPair(builder.RandomSparse(n, 0.3), builder.WithRand(rng))
		require.NoError(t, err)
		for _, mode := range []refine.Mode{refine.ModeCanonicalForm, refine.ModeWeightMap} {
			a, err := refine.Refine(pair.A, refine.WithMode(mode))
			require.NoError(t, err)
			b, err := refine.Refine(pair.B, refine.WithMode(mode))
			require.NoError(t, err)
			assert.Equal(t, sortedSignatures(a), sortedSignatures(b), "iter %d mode %s", iter, mode)
		}
	}
}

func TestWeightMap_Star(t *testing.T) {
	r, err := refine.Refine(mustEdges(t, 4, [][2]int{{0, 1}, {0, 2}, {0, 3}}),
		refine.WithMode(refine.ModeWeightMap))
	require.NoError(t, err)
	assert.Equal(t, refine.ModeWeightMap, r.Mode)
	assert.Equal(t, refine.Signature{{1}}, r.Signature(0))
	assert.Equal(t, refine.Signature{{2}}, r.Signature(3))
	assert.Equal(t, [][]int{{0}, {1, 2, 3}}, r.Classes())
	assert.Equal(t, 3, r.Rounds)
}

func TestWeightMap_SplitsTiedClass(t *testing.T) {
	// spider: 0-1-2 with leaves 3 and 4 hanging off 2
	m := mustEdges(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {2, 4}})
	r, err := refine.Refine(m, refine.WithMode(refine.ModeWeightMap))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}, {1}, {2}, {3, 4}}, r.Classes())
	assert.Equal(t, 4, r.Rounds)
}

func TestWeightMap_PathAndRegular(t *testing.T) {
	r, err := refine.Refine(mustEdges(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}}),
		refine.WithMode(refine.ModeWeightMap))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 3}, {1, 2}}, r.Classes())

	// regular graphs of equal order collapse to one class in this mode
	rt, err := refine.Refine(twoTriangles(t), refine.WithMode(refine.ModeWeightMap))
	require.NoError(t, err)
	rh, err := refine.Refine(hexagon(t), refine.WithMode(refine.ModeWeightMap))
	require.NoError(t, err)
	assert.Equal(t, sortedSignatures(rt), sortedSignatures(rh))
	assert.Equal(t, 2, rt.Rounds)
	assert.Equal(t, 4, rh.Rounds)
}

func TestWeightMap_IsolatedVertices(t *testing.T) {
	empty, _ := matrix.NewAdjacency(4)
	r, err := refine.Refine(empty, refine.WithMode(refine.ModeWeightMap))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2, 3}}, r.Classes())
	assert.Equal(t, 1, r.Rounds)
}

func TestRefine_LogsRounds(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := refine.Refine(hexagon(t), refine.WithMode(refine.ModeWeightMap), refine.WithLogger(log))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "weight-map round")
	assert.Contains(t, buf.String(), "refinement complete")
}

func TestParseMode(t *testing.T) {
	m, err := refine.ParseMode("weightmap")
	require.NoError(t, err)
	assert.Equal(t, refine.ModeWeightMap, m)
	m, err = refine.ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, refine.ModeCanonicalForm, m)
	_, err = refine.ParseMode("bogus")
	require.ErrorIs(t, err, refine.ErrOptionViolation)
}
