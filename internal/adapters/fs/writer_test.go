package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/NyanCAD/amscrcuits/internal/adapters/fs"
	"github.com/NyanCAD/amscrcuits/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_Write(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "netlists")
	w := fs.NewWriter()

	path, err := w.Write(dir, "tb.cir", []byte("* tb\n.end\n"))

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "tb.cir"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "* tb\n.end\n", string(data))
}

func TestWriter_Overwrite(t *testing.T) {
	dir := t.TempDir()
	w := fs.NewWriter()

	_, err := w.Write(dir, "tb.cir", []byte("old\n"))
	require.NoError(t, err)
	path, err := w.Write(dir, "tb.cir", []byte("new\n"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestWriter_InvalidName(t *testing.T) {
	w := fs.NewWriter()

	for _, name := range []string{"", "../tb.cir", "sub/tb.cir"} {
		_, err := w.Write(t.TempDir(), name, []byte("x"))
		require.ErrorIs(t, err, domain.ErrNetlistWriteFailed, "name %q", name)
	}
}

func TestWriter_DirectoryIsFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(dir, nil, 0o600))
	w := fs.NewWriter()

	_, err := w.Write(dir, "tb.cir", []byte("x"))

	require.ErrorIs(t, err, domain.ErrNetlistWriteFailed)
}
