package vflib_test

import (
	"bytes"
	"math/rand"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/katalvlaran/isomorph/matrix"
	"github.com/katalvlaran/isomorph/vflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(ws ...uint16) []byte {
	out := make([]byte, 0, 2*len(ws))
	for _, w := range ws {
		out = append(out, byte(w), byte(w>>8))
	}

	return out
}

func TestRead_Symmetric(t *testing.T) {
	// 3 vertices; 0 lists 1; 1 lists 2; 2 lists 1 again (duplicate from the other side)
	m, err := vflib.Unmarshal(words(3, 1, 1, 1, 2, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}}, m.Edges())
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want error
	}{
		{"empty", nil, vflib.ErrTruncated},
		{"half word", []byte{3}, vflib.ErrTruncated},
		{"missing edges", words(2, 1), vflib.ErrTruncated},
		{"out of range", words(2, 1, 5, 0), vflib.ErrVertexOutOfRange},
		{"self loop", words(2, 1, 0, 0), vflib.ErrSelfLoop},
		{"max order header only", words(vflib.MaxOrder), vflib.ErrTruncated},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := vflib.Unmarshal(tc.in)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRead_TruncatedAllocatesNothingLarge(t *testing.T) {
	in := words(vflib.MaxOrder, 1, 1)
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	_, err := vflib.Unmarshal(in)
	runtime.ReadMemStats(&after)
	require.ErrorIs(t, err, vflib.ErrTruncated)
	assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(1<<20))
}

func TestMarshal_UpperTriangle(t *testing.T) {
	m, err := matrix.FromEdges(3, [][2]int{{2, 0}, {1, 2}})
	require.NoError(t, err)
	b, err := vflib.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, words(3, 1, 2, 1, 2, 0), b)

	_, err = vflib.Marshal(nil)
	require.ErrorIs(t, err, vflib.ErrNilGraph)
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for iter := 0; iter < 10; iter++ {
		n := rng.Intn(30)
		m, _ := matrix.NewAdjacency(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Intn(4) == 0 {
					require.NoError(t, m.AddEdge(i, j))
				}
			}
		}
		var buf bytes.Buffer
		require.NoError(t, vflib.Write(&buf, m))
		got, err := vflib.Read(&buf)
		require.NoError(t, err)
		assert.True(t, m.Equal(got), "iter %d", iter)
	}
}

func TestFileRoundTrip(t *testing.T) {
	m, _ := matrix.FromEdges(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	path := filepath.Join(t.TempDir(), "iso_r001_s20.A00")
	require.NoError(t, vflib.WriteFile(path, m))
	got, err := vflib.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, m.Equal(got))

	_, err = vflib.ReadFile(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
