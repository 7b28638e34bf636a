package compression

import (
	"bufio"
	"bytes"
	"io"
	"runtime"
	"strings"
	"testing"

	"github.com/iamNilotpal/cksum/internal/core/domain"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

var payload = []byte(strings.Repeat("N00E006 elevation samples ", 512))

func zstdEncode(t *testing.T, data []byte) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	return enc.EncodeAll(data, nil)
}

func gzipEncode(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func readAll(t *testing.T, r io.Reader, opts *domain.CompressionOptions) ([]byte, domain.CompressionFormat) {
	t.Helper()
	rc, format, err := Reader(r, opts, 4096)
	require.NoError(t, err)
	defer rc.Close()

	out, err := io.ReadAll(rc)
	require.NoError(t, err)
	return out, format
}

func TestReader(t *testing.T) {
	tests := []struct {
		name   string
		input  []byte
		format domain.CompressionFormat
		want   domain.CompressionFormat
	}{
		{"none", payload, domain.CompressionNone, domain.CompressionNone},
		{"empty-format", payload, "", domain.CompressionNone},
		{"zstd", zstdEncode(t, payload), domain.CompressionZstd, domain.CompressionZstd},
		{"gzip", gzipEncode(t, payload), domain.CompressionGzip, domain.CompressionGzip},
		{"auto-zstd", zstdEncode(t, payload), domain.CompressionAuto, domain.CompressionZstd},
		{"auto-gzip", gzipEncode(t, payload), domain.CompressionAuto, domain.CompressionGzip},
		{"auto-plain", payload, domain.CompressionAuto, domain.CompressionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Format = tt.format

			out, format := readAll(t, bytes.NewReader(tt.input), opts)
			require.Equal(t, tt.want, format)
			require.Equal(t, payload, out)
		})
	}
}

func TestReaderAutoShortInput(t *testing.T) {
	opts := &domain.CompressionOptions{Format: domain.CompressionAuto}

	out, format := readAll(t, bytes.NewReader([]byte{0x1f}), opts)
	require.Equal(t, domain.CompressionNone, format)
	require.Equal(t, []byte{0x1f}, out)

	out, format = readAll(t, bytes.NewReader(nil), opts)
	require.Equal(t, domain.CompressionNone, format)
	require.Empty(t, out)
}

func TestReaderCorruptInput(t *testing.T) {
	_, _, err := Reader(bytes.NewReader(payload), &domain.CompressionOptions{Format: domain.CompressionGzip}, 4096)
	require.Error(t, err)

	rc, _, err := Reader(bytes.NewReader(payload), &domain.CompressionOptions{Format: domain.CompressionZstd}, 4096)
	if err == nil {
		// zstd defers header validation to the first read.
		_, err = io.ReadAll(rc)
		rc.Close()
	}
	require.Error(t, err)
}

func TestDetect(t *testing.T) {
	format, err := Detect(bufio.NewReader(bytes.NewReader(zstdEncode(t, payload))))
	require.NoError(t, err)
	require.Equal(t, domain.CompressionZstd, format)

	br := bufio.NewReader(bytes.NewReader(gzipEncode(t, payload)))
	format, err = Detect(br)
	require.NoError(t, err)
	require.Equal(t, domain.CompressionGzip, format)

	// Peeking does not consume.
	b, err := br.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte(0x1f), b)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(DefaultOptions()))

	for _, f := range []domain.CompressionFormat{domain.CompressionNone, domain.CompressionGzip, domain.CompressionZstd, domain.CompressionAuto} {
		require.NoError(t, Validate(&domain.CompressionOptions{Format: f}))
	}

	require.Error(t, Validate(&domain.CompressionOptions{Format: "lz4"}))
	require.Error(t, Validate(&domain.CompressionOptions{
		Format:             domain.CompressionZstd,
		DecoderConcurrency: uint8(min(runtime.NumCPU()+1, 255)),
	}))
}

func TestNewDecompressor(t *testing.T) {
	d, err := NewDecompressor(domain.CompressionZstd, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, "zstd", d.Format())
	require.NoError(t, d.Close())

	d, err = NewDecompressor(domain.CompressionGzip, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, "gzip", d.Format())
	require.NoError(t, d.Close())

	_, err = NewDecompressor(domain.CompressionAuto, DefaultOptions())
	require.Error(t, err)
}
