package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isomorph/graphtext"
	"github.com/katalvlaran/isomorph/vflib"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestCompare_Text(t *testing.T) {
	out, err := execute(t, "compare", "--text", "4: 0-1-2-3", "4: 3-1-0-2")
	require.NoError(t, err)
	assert.Contains(t, out, "outcome:   isomorphic")
	assert.Contains(t, out, "witness:")

	out, err = execute(t, "compare", "--text", "6: 0-1-2-0, 3-4-5-3", "6: 0-1-2-3-4-5-0")
	require.NoError(t, err)
	assert.Contains(t, out, "outcome:   not-isomorphic")
	assert.Contains(t, out, "only A:    [[2] [2 2]] x6")

	out, err = execute(t, "compare", "--text", "3:", "4:")
	require.NoError(t, err)
	assert.Contains(t, out, "orders:    3 vs 4")
}

func TestCompare_Files(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.vf")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, vflib.WriteFile(a, graphtext.MustParse("4: 0-1, 0-2, 0-3")))
	require.NoError(t, os.WriteFile(b, []byte("4: 2-0, 2-1, 2-3\n"), 0o644))

	out, err := execute(t, "compare", a, b)
	require.NoError(t, err)
	assert.Contains(t, out, "outcome:   isomorphic")
}

func TestCompare_BadInput(t *testing.T) {
	_, err := execute(t, "compare", "--text", "2: 0-5", "2:")
	require.Error(t, err)

	_, err = execute(t, "--mode", "nope", "compare", "--text", "2:", "2:")
	require.Error(t, err)

	_, err = execute(t, "--log-level", "loud", "compare", "--text", "2:", "2:")
	require.Error(t, err)
}

func TestRefine(t *testing.T) {
	out, err := execute(t, "refine", "--text", "4: 0-1-2-3")
	require.NoError(t, err)
	assert.Contains(t, out, "mode canonical, 4 vertices")
	assert.Contains(t, out, "class [0 3]")
	assert.Contains(t, out, "class [1 2]")

	out, err = execute(t, "--mode", "weightmap", "refine", "--text", "4: 0-1, 0-2, 0-3")
	require.NoError(t, err)
	assert.Contains(t, out, "mode weightmap")
}

func TestFuzz_Permuted(t *testing.T) {
	out, err := execute(t, "fuzz", "--permuted", "--iterations", "5", "--seed", "4")
	require.NoError(t, err)
	assert.Contains(t, out, ": 5 pairs in")
	assert.Contains(t, out, "100.0% candidates")
	assert.Contains(t, out, "missed 0")
}

func TestBatch_Config(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, vflib.WriteFile(filepath.Join(dir, "iso_r001_s5.A00"), graphtext.MustParse("5: 0-1-2-3-4")))
	require.NoError(t, vflib.WriteFile(filepath.Join(dir, "iso_r001_s5.B00"), graphtext.MustParse("5: 4-2-0-1-3")))
	cfgPath := filepath.Join(dir, "run.yaml")
	cfgYAML := "corpus:\n  dir: " + dir + "\n  sizes: [5]\n  first: 0\n  last: 0\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgYAML), 0o644))

	out, err := execute(t, "batch", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, ": 1 pairs in")
	assert.Contains(t, out, "100.0% verified")
}

func TestCatalog_AddLookup(t *testing.T) {
	db := t.TempDir()
	out, err := execute(t, "catalog", "add", "--db", db, "--text", "4: 0-1-2-3", "4: 1-0-3-2", "4: 0-1, 0-2, 0-3")
	require.NoError(t, err)
	assert.Contains(t, out, "added\t4: 0-1-2-3")
	assert.Contains(t, out, "present\t4: 1-0-3-2")
	assert.Contains(t, out, "2 graphs stored")

	out, err = execute(t, "catalog", "lookup", "--db", db, "--text", "4: 3-2-1-0")
	require.NoError(t, err)
	assert.Contains(t, out, "seq 0\tisomorphic")

	out, err = execute(t, "catalog", "lookup", "--db", db, "--text", "4: 0-1-2-3-0")
	require.NoError(t, err)
	assert.Contains(t, out, "no stored graph")
}
