package config

import (
	"fmt"
)

const (
	// MinBufferSize is the smallest read buffer accepted. Smaller reads cost
	// more in syscalls than they save in memory.
	MinBufferSize = 4 * 1024 // 4KB (typical page size).

	// DefaultBufferSize suits both local disks and network filesystems.
	DefaultBufferSize = 64 * 1024 // 64KB.

	// LargeBufferSize is intended for bulk verification of large granules.
	LargeBufferSize = 1024 * 1024 // 1MB.

	// MaxBufferSize bounds the memory held per file being read.
	MaxBufferSize = 16 * 1024 * 1024 // 16MB.
)

// ReaderConfig holds the read settings used when streaming files.
type ReaderConfig struct {
	// BufferSize is the size of each read issued against the source.
	BufferSize uint32
}

// ReaderConfigOption defines the signature for configuration options.
type ReaderConfigOption func(*ReaderConfig)

// WithBufferSize sets the read buffer size. Values outside
// [MinBufferSize, MaxBufferSize] are ignored.
func WithBufferSize(size uint32) ReaderConfigOption {
	return func(c *ReaderConfig) {
		if size >= MinBufferSize && size <= MaxBufferSize {
			c.BufferSize = size
		}
	}
}

// NewReaderConfig initializes a ReaderConfig with default values and applies
// any provided options.
func NewReaderConfig(opts ...ReaderConfigOption) *ReaderConfig {
	cfg := DefaultReaderConfig()

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// ReaderValidationError represents specific configuration validation errors.
type ReaderValidationError struct {
	Field   string
	Value   uint32
	Details string
}

func (e *ReaderValidationError) Error() string {
	return fmt.Sprintf("invalid configuration for %s (%d): %s", e.Field, e.Value, e.Details)
}

// Validate checks BufferSize is within bounds and a power of two.
func (c *ReaderConfig) Validate() error {
	if c.BufferSize < MinBufferSize {
		return &ReaderValidationError{
			Field:   "BufferSize",
			Value:   c.BufferSize,
			Details: fmt.Sprintf("below minimum allowed value of %d", MinBufferSize),
		}
	}

	if c.BufferSize > MaxBufferSize {
		return &ReaderValidationError{
			Field:   "BufferSize",
			Value:   c.BufferSize,
			Details: fmt.Sprintf("exceeds maximum allowed value of %d", MaxBufferSize),
		}
	}

	if c.BufferSize&(c.BufferSize-1) != 0 {
		return &ReaderValidationError{
			Field:   "BufferSize",
			Value:   c.BufferSize,
			Details: "must be a power of 2",
		}
	}

	return nil
}
