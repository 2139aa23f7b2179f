package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withFlags(t *testing.T, sparse, canonical, tree bool, symbols int, ignore bool) {
	t.Helper()
	oldSparse, oldCanonical, oldTree, oldSymbols, oldIgnore := *flagSparse, *flagCanonical, *flagTree, *flagSymbols, *flagIgnore
	*flagSparse, *flagCanonical, *flagTree, *flagSymbols, *flagIgnore = sparse, canonical, tree, symbols, ignore
	t.Cleanup(func() {
		*flagSparse, *flagCanonical, *flagTree, *flagSymbols, *flagIgnore = oldSparse, oldCanonical, oldTree, oldSymbols, oldIgnore
	})
}

func writeInput(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.bin")
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestRun_Sparse(t *testing.T) {
	withFlags(t, true, false, true, 256, false)
	path := writeInput(t, "aaabbc")

	var out strings.Builder
	require.Equal(t, 0, run(path, &out))

	actual := out.String()
	assert.Contains(t, actual, "\tCount('a') = 3\n")
	assert.Contains(t, actual, "Tree{\n\t\"\" = 6\n")
	assert.Contains(t, actual, "\tLookup('a') = \"0\"\n")
	assert.Contains(t, actual, "\tLookup('b') = \"11\"\n")
	assert.Contains(t, actual, "\tLookup('c') = \"10\"\n")
	assert.Contains(t, actual, "Coded:  9 bits\n")
}

func TestRun_Canonical(t *testing.T) {
	withFlags(t, true, true, false, 256, false)
	path := writeInput(t, "aaabbc")

	var out strings.Builder
	require.Equal(t, 0, run(path, &out))

	actual := out.String()
	assert.NotContains(t, actual, "Tree{")
	assert.Contains(t, actual, "\tLookup('b') = \"10\"\n")
	assert.Contains(t, actual, "\tLookup('c') = \"11\"\n")
}

func TestRun_EmptySparseInputFails(t *testing.T) {
	withFlags(t, true, false, false, 256, false)
	path := writeInput(t, "")

	var out strings.Builder
	assert.Equal(t, 1, run(path, &out))
}

func TestRun_OutOfRange(t *testing.T) {
	path := writeInput(t, "ab\xf0")

	t.Run("reject", func(t *testing.T) {
		withFlags(t, false, false, false, 128, false)
		var out strings.Builder
		assert.Equal(t, 1, run(path, &out))
	})

	t.Run("ignore", func(t *testing.T) {
		withFlags(t, false, false, false, 128, true)
		var out strings.Builder
		require.Equal(t, 0, run(path, &out))
		assert.Contains(t, out.String(), "\tDropped() = 1\n")
	})
}

func TestRun_MissingFile(t *testing.T) {
	withFlags(t, false, false, false, 256, false)
	var out strings.Builder
	assert.Equal(t, 1, run(filepath.Join(t.TempDir(), "missing"), &out))
}

func TestRun_FullForest(t *testing.T) {
	withFlags(t, false, false, false, 256, false)
	path := writeInput(t, "aaabbc")

	var out strings.Builder
	require.Equal(t, 0, run(path, &out))

	actual := out.String()
	assert.Contains(t, actual, "\tLookup('a') = \"0\"\n")
	assert.Contains(t, actual, "\tLookup(0x00) = ")
	assert.Contains(t, actual, "\tLookup(0xff) = ")
}
