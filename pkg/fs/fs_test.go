package fs

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

func TestWalkFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "N00E006.hgt"), "a")
	writeFile(t, filepath.Join(root, "tiles", "N01E006.HGT"), "b")
	writeFile(t, filepath.Join(root, "tiles", "readme.txt"), "c")
	writeFile(t, filepath.Join(root, ".cache", "N02E006.hgt"), "d")

	lfs := NewLocalFileSystem()

	all, err := lfs.WalkFiles(root, []string{".cache"}, nil)
	require.NoError(t, err)
	require.Equal(t, []string{"N00E006.hgt", "tiles/N01E006.HGT", "tiles/readme.txt"}, all)

	hgt, err := lfs.WalkFiles(root, nil, []string{"hgt"})
	require.NoError(t, err)
	require.Equal(t, []string{".cache/N02E006.hgt", "N00E006.hgt", "tiles/N01E006.HGT"}, hgt)

	_, err = lfs.WalkFiles(filepath.Join(root, "missing"), nil, nil)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "granule")
	writeFile(t, path, "payload")

	var got []byte
	require.NoError(t, WithFile(path, func(f *os.File) error {
		var err error
		got, err = io.ReadAll(f)
		return err
	}))
	require.Equal(t, "payload", string(got))

	var leaked *os.File
	cause := errors.New("stop")
	err := WithFile(path, func(f *os.File) error {
		leaked = f
		return cause
	})
	require.ErrorIs(t, err, cause)
	// Closed regardless of the callback error.
	require.ErrorIs(t, leaked.Close(), os.ErrClosed)

	require.ErrorIs(t, WithFile(path+".missing", func(*os.File) error { return nil }), os.ErrNotExist)
}

func TestExistsAndEnsureDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	writeFile(t, file, "x")

	ok, err := Exists(file)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = NewLocalFileSystem().Exists(filepath.Join(dir, "nope"))
	require.NoError(t, err)
	require.False(t, ok)

	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, EnsureDir(nested, 0o755))
	require.NoError(t, EnsureDir(nested, 0o755))
	require.Error(t, EnsureDir(file, 0o755))

	size, err := NewLocalFileSystem().Size(file)
	require.NoError(t, err)
	require.EqualValues(t, 1, size)
}
