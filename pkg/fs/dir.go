package fs

import (
	"errors"
	"os"
)

// Creates the directory and any missing parents. An existing directory is
// not an error, an existing file at the same path is.
func EnsureDir(dirName string, permission os.FileMode) error {
	stat, err := os.Stat(dirName)
	if err == nil {
		if !stat.IsDir() {
			return errors.New("path exists but is not a directory")
		}
		return nil
	}

	if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return os.MkdirAll(dirName, permission)
}
