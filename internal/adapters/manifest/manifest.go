// Package manifest encodes and decodes lists of expected file checksums.
//
// Two encodings are supported. The text encoding is the output of the cksum
// utility, one "<checksum> <size> <path>" line per file, so a provider's
// published listing can be verified directly. The binary encoding is a
// protobuf message, suited to large listings shipped alongside a dataset.
package manifest

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/iamNilotpal/cksum/internal/core/domain"
)

// Format selects a manifest encoding.
type Format string

const (
	FormatText   Format = "text"
	FormatBinary Format = "binary"
)

// Codec reads and writes manifests in one encoding.
type Codec interface {
	Encode(w io.Writer, m *domain.Manifest) error
	Decode(r io.Reader) (*domain.Manifest, error)
	Format() Format
}

// NewCodec returns the codec for format.
func NewCodec(format Format) (Codec, error) {
	switch format {
	case FormatText, "":
		return NewTextCodec(), nil
	case FormatBinary:
		return NewBinaryCodec(), nil
	default:
		return nil, fmt.Errorf("unsupported manifest format: %s", format)
	}
}

// FormatForPath picks the binary encoding for ".pb" and ".bin" files and
// the text encoding for everything else.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pb", ".bin":
		return FormatBinary
	default:
		return FormatText
	}
}
