package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAtomicWriteFile(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "recipe.rl")

	require.NoError(t, AtomicWriteFile(testFile, []byte("mix flour and eggs\n"), 0644))

	content, err := os.ReadFile(testFile)
	require.NoError(t, err)
	require.Equal(t, "mix flour and eggs\n", string(content))

	// Temp file must not linger.
	_, err = os.Stat(testFile + ".tmp")
	require.True(t, os.IsNotExist(err))
}

func TestAtomicWriteFileOverwrites(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "recipe.rl")

	require.NoError(t, AtomicWriteFile(testFile, []byte("first"), 0644))
	require.NoError(t, AtomicWriteFile(testFile, []byte("second"), 0644))

	content, err := os.ReadFile(testFile)
	require.NoError(t, err)
	require.Equal(t, "second", string(content))
}

func TestAtomicWriteFileBadDir(t *testing.T) {
	err := AtomicWriteFile(filepath.Join(t.TempDir(), "missing", "recipe.rl"), []byte("x"), 0644)
	require.Error(t, err)
}
