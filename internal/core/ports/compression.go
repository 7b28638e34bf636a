package ports

import "io"

// Defines the interface for decompressing a file before it is checksummed.
// This allows us to swap compression formats without changing core logic.
type DecompressorPort interface {
	// NewReader wraps r with a streaming decoder.
	// Closing the returned reader does not close r.
	NewReader(r io.Reader) (io.ReadCloser, error)

	// Format returns the name of the compression format handled.
	Format() string

	// Close releases decoder resources.
	Close() error
}
