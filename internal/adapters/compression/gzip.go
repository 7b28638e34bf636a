package compression

import (
	"fmt"
	"io"

	"github.com/iamNilotpal/cksum/internal/core/domain"
	"github.com/klauspost/compress/gzip"
)

// GzipDecompressor implements DecompressorPort for gzip streams,
// including concatenated multi-member files.
type GzipDecompressor struct{}

func NewGzipDecompressor() *GzipDecompressor {
	return &GzipDecompressor{}
}

func (g *GzipDecompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read gzip header: %w", err)
	}
	return zr, nil
}

func (g *GzipDecompressor) Format() string {
	return string(domain.CompressionGzip)
}

func (g *GzipDecompressor) Close() error {
	return nil
}
