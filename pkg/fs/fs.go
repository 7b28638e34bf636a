package fs

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

type LocalFileSystem struct{}

func NewLocalFileSystem() *LocalFileSystem {
	return &LocalFileSystem{}
}

// Opens a file for reading.
func (lfs *LocalFileSystem) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Returns size of the named file.
func (lfs *LocalFileSystem) Size(path string) (int64, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return stat.Size(), nil
}

// Checks if a file exists or not.
func (lfs *LocalFileSystem) Exists(path string) (bool, error) {
	return Exists(path)
}

// Walks root and returns the slash-separated paths, relative to root, of all
// regular files. When extensions is non-empty only files with one of those
// extensions are returned. Directories listed in excludeDirs are skipped.
// Results are in lexical order.
func (lfs *LocalFileSystem) WalkFiles(root string, excludeDirs []string, extensions []string) ([]string, error) {
	files := make([]string, 0)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != root && slices.Contains(excludeDirs, d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() || !hasExtension(path, extensions) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

func hasExtension(path string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}

	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}
