package compression

import (
	"fmt"
	"io"

	"github.com/iamNilotpal/cksum/internal/core/domain"
	"github.com/klauspost/compress/zstd"
)

// ZstdDecompressor implements DecompressorPort for zstd streams.
// Each call to NewReader gets its own decoder, so readers may be used
// from different goroutines.
type ZstdDecompressor struct {
	opts []zstd.DOption
}

// NewZstdDecompressor builds a decompressor honouring the concurrency and
// memory limits in opts.
func NewZstdDecompressor(opts *domain.CompressionOptions) *ZstdDecompressor {
	dopts := []zstd.DOption{zstd.WithDecoderConcurrency(int(opts.DecoderConcurrency))}
	if opts.MaxDecodedSize > 0 {
		dopts = append(dopts, zstd.WithDecoderMaxMemory(opts.MaxDecodedSize))
	}
	return &ZstdDecompressor{opts: dopts}
}

func (z *ZstdDecompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	decoder, err := zstd.NewReader(r, z.opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	return decoder.IOReadCloser(), nil
}

func (z *ZstdDecompressor) Format() string {
	return string(domain.CompressionZstd)
}

func (z *ZstdDecompressor) Close() error {
	return nil
}
