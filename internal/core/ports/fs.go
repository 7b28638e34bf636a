package ports

import "io"

type FileSystemPort interface {
	Open(path string) (io.ReadCloser, error)
	Size(path string) (int64, error)
	Exists(path string) (bool, error)
	WalkFiles(root string, excludeDirs []string, extensions []string) ([]string, error)
}
