package ports

import "io"

// Defines an interface for calculating and verifying data checksums.
type ChecksumPort interface {
	// Calculates the checksum of the provided data.
	// Values narrower than 64 bits are zero-extended.
	Calculate(data []byte) uint64

	// Consumes r until EOF and returns the checksum together with the number
	// of bytes read. Read errors are returned unchanged and r is not closed.
	CalculateReader(r io.Reader) (uint64, int64, error)

	// Validates whether the provided data matches the expected checksum.
	Verify(data []byte, expected uint64) bool

	// Size of the checksum in bytes before widening to uint64.
	Size() uint8

	// Name of the algorithm as used in configuration and manifests.
	Name() string
}
