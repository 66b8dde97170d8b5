package dot_test

import (
	"path/filepath"
	"testing"

	"github.com/katalvlaran/isomorph/dot"
	"github.com/katalvlaran/isomorph/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToGraph(t *testing.T) {
	m, err := matrix.FromEdges(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)
	g, err := dot.ToGraph(m)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Nodes().Len())
	assert.Equal(t, 3, g.Edges().Len())
	assert.True(t, g.HasEdgeBetween(2, 1))
	assert.False(t, g.HasEdgeBetween(0, 3))

	_, err = dot.ToGraph(nil)
	require.ErrorIs(t, err, dot.ErrNilGraph)
}

func TestMarshal(t *testing.T) {
	m, err := matrix.FromEdges(3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	require.NoError(t, err)
	b, err := dot.Marshal(m, "triangle")
	require.NoError(t, err)
	s := string(b)
	assert.Contains(t, s, "graph triangle {")
	assert.Contains(t, s, " -- ")
	assert.NotContains(t, s, "->")
}

func TestRoundTrip(t *testing.T) {
	m, err := matrix.FromEdges(5, [][2]int{{0, 4}, {1, 2}, {2, 3}, {3, 4}})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "FAILEDA.dot")
	require.NoError(t, dot.WriteFile(path, m, "A"))

	got, err := dot.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, m.Equal(got), "got\n%s", got)
}

func TestUnmarshal_BadIDs(t *testing.T) {
	_, err := dot.Unmarshal([]byte("graph G { a -- b }"))
	require.ErrorIs(t, err, dot.ErrBadNodeID)

	_, err = dot.Unmarshal([]byte("graph G { 0 -- 7 }"))
	require.ErrorIs(t, err, dot.ErrBadNodeID)
}
