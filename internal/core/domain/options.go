package domain

import (
	"time"
)

// Options configures the checksum and manifest services.
type Options struct {
	// BufferSize is the read size used when streaming files through a decoder.
	// Must be between 4KB and 16MB and a power of two.
	//
	// Default: 64KB
	BufferSize uint32

	// FileTimeout bounds how long a single file may take to checksum.
	// Zero disables the limit.
	FileTimeout time.Duration

	// ExcludeDirs lists directory names skipped while building a manifest.
	ExcludeDirs []string

	// Extensions restricts manifest building to files with these extensions.
	// Empty means every regular file.
	Extensions []string

	// Checksum algorithm selection.
	ChecksumOptions *ChecksumOptions

	// CompressionOptions configures decompression before checksumming.
	CompressionOptions *CompressionOptions
}
