package compression

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"runtime"

	"github.com/iamNilotpal/cksum/internal/core/domain"
	"github.com/iamNilotpal/cksum/internal/core/ports"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Returns CompressionOptions that checksum files as stored, like cksum does.
func DefaultOptions() *domain.CompressionOptions {
	return &domain.CompressionOptions{
		Format:             domain.CompressionNone,
		DecoderConcurrency: 1,
	}
}

// Checks if the compression options are valid and returns an error if any
// option is outside acceptable bounds.
func Validate(input *domain.CompressionOptions) error {
	switch input.Format {
	case domain.CompressionNone, domain.CompressionGzip, domain.CompressionZstd, domain.CompressionAuto:
	default:
		return fmt.Errorf("unsupported compression format: %s", input.Format)
	}

	if input.DecoderConcurrency > uint8(runtime.NumCPU()) {
		return fmt.Errorf(
			"decoder concurrency must be between 0 and %d, got %d", runtime.NumCPU(), input.DecoderConcurrency,
		)
	}

	return nil
}

// NewDecompressor returns the decoder for format. CompressionNone and
// CompressionAuto have no single decoder and are rejected.
func NewDecompressor(format domain.CompressionFormat, opts *domain.CompressionOptions) (ports.DecompressorPort, error) {
	switch format {
	case domain.CompressionGzip:
		return NewGzipDecompressor(), nil
	case domain.CompressionZstd:
		return NewZstdDecompressor(opts), nil
	default:
		return nil, fmt.Errorf("no decompressor for format: %s", format)
	}
}

// Detect sniffs the compression format from the first bytes available in br
// without consuming them. Inputs shorter than a magic number are CompressionNone.
func Detect(br *bufio.Reader) (domain.CompressionFormat, error) {
	head, err := br.Peek(len(zstdMagic))
	if err != nil && err != io.EOF {
		return domain.CompressionNone, err
	}

	switch {
	case bytes.HasPrefix(head, zstdMagic):
		return domain.CompressionZstd, nil
	case bytes.HasPrefix(head, gzipMagic):
		return domain.CompressionGzip, nil
	default:
		return domain.CompressionNone, nil
	}
}

// Reader wraps r according to opts.Format and reports the format applied.
// For CompressionNone the returned reader reads r directly. Closing the
// returned reader never closes r.
func Reader(r io.Reader, opts *domain.CompressionOptions, bufferSize int) (io.ReadCloser, domain.CompressionFormat, error) {
	format := opts.Format
	if format == "" {
		format = domain.CompressionNone
	}

	if format == domain.CompressionAuto {
		br := bufio.NewReaderSize(r, bufferSize)
		detected, err := Detect(br)
		if err != nil {
			return nil, domain.CompressionNone, err
		}
		format, r = detected, br
	}

	if format == domain.CompressionNone {
		return io.NopCloser(r), domain.CompressionNone, nil
	}

	decompressor, err := NewDecompressor(format, opts)
	if err != nil {
		return nil, format, err
	}

	rc, err := decompressor.NewReader(r)
	if err != nil {
		return nil, format, err
	}
	return rc, format, nil
}
