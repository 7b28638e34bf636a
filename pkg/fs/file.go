package fs

import (
	"errors"
	"os"
)

// WithFile opens the named file read-only, hands it to fn and closes it
// afterwards whether or not fn succeeds. A close error is only returned
// when fn itself returned nil.
func WithFile(path string, fn func(*os.File) error) (err error) {
	file, err := os.Open(path)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return fn(file)
}

// Checks if a file exists or not.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}
