package checksum

import (
	"fmt"

	"github.com/iamNilotpal/cksum/internal/adapters/checksum"
	"github.com/iamNilotpal/cksum/internal/adapters/compression"
	"github.com/iamNilotpal/cksum/internal/core/domain"
	"github.com/iamNilotpal/cksum/internal/core/domain/config"
	"github.com/iamNilotpal/cksum/pkg/errors"
)

// Validate checks opts after defaults have been applied.
func Validate(opts *domain.Options) error {
	if err := (&config.ReaderConfig{BufferSize: opts.BufferSize}).Validate(); err != nil {
		return errors.NewValidationError("bufferSize", opts.BufferSize, err)
	}

	if opts.FileTimeout < 0 {
		return errors.NewValidationError(
			"fileTimeout", opts.FileTimeout, fmt.Errorf("file timeout must not be negative"),
		)
	}

	if err := checksum.Validate(opts.ChecksumOptions); err != nil {
		return errors.NewValidationError("algorithm", opts.ChecksumOptions.Algorithm, err)
	}

	if err := compression.Validate(opts.CompressionOptions); err != nil {
		return errors.NewValidationError("compression", opts.CompressionOptions.Format, err)
	}

	return nil
}
