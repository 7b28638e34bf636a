package checksum

import (
	"github.com/iamNilotpal/cksum/internal/adapters/checksum"
	"github.com/iamNilotpal/cksum/internal/adapters/compression"
	"github.com/iamNilotpal/cksum/internal/core/domain"
	"github.com/iamNilotpal/cksum/internal/core/domain/config"
)

// DefaultExcludeDirs are skipped while walking a dataset directory.
var DefaultExcludeDirs = []string{".git", ".cache"}

func prepareDefaults(opts *domain.Options) *domain.Options {
	if opts.BufferSize == 0 {
		opts.BufferSize = config.DefaultBufferSize
	}

	if opts.ExcludeDirs == nil {
		opts.ExcludeDirs = DefaultExcludeDirs
	}

	if opts.ChecksumOptions == nil {
		opts.ChecksumOptions = checksum.DefaultOptions()
	} else if opts.ChecksumOptions.Algorithm == "" {
		opts.ChecksumOptions.Algorithm = checksum.CKSUM
	}

	if opts.CompressionOptions == nil {
		opts.CompressionOptions = compression.DefaultOptions()
	} else if opts.CompressionOptions.Format == "" {
		opts.CompressionOptions.Format = domain.CompressionNone
	}

	return opts
}
