// Package domain defines the core types and options for checksumming and
// verifying dataset files.
package domain

import (
	"github.com/iamNilotpal/cksum/internal/core/ports"
)

// ChecksumAlgorithm represents supported checksum algorithms
type ChecksumAlgorithm string

// ChecksumOptions defines which checksum is computed for a file.
type ChecksumOptions struct {
	// Algorithm specifies which checksum algorithm to use.
	// Defaults to the POSIX cksum algorithm if not specified.
	Algorithm ChecksumAlgorithm

	// Custom allows using a custom ChecksumPort implementation.
	// If provided, it takes precedence over Algorithm.
	Custom ports.ChecksumPort
}
