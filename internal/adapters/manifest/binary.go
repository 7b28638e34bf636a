package manifest

import (
	"fmt"
	"io"

	"github.com/iamNilotpal/cksum/internal/core/domain"
	"github.com/iamNilotpal/cksum/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the wire format:
//
//	message Manifest {
//	  string algorithm = 1;
//	  repeated Entry entries = 2;
//	}
//
//	message Entry {
//	  uint64 checksum = 1;
//	  uint64 size = 2;
//	  string path = 3;
//	}
const (
	fieldAlgorithm protowire.Number = 1
	fieldEntries   protowire.Number = 2

	fieldChecksum protowire.Number = 1
	fieldSize     protowire.Number = 2
	fieldPath     protowire.Number = 3
)

// BinaryCodec reads and writes manifests as protobuf messages.
type BinaryCodec struct{}

func NewBinaryCodec() *BinaryCodec {
	return &BinaryCodec{}
}

func (c *BinaryCodec) Format() Format {
	return FormatBinary
}

func (c *BinaryCodec) Encode(w io.Writer, m *domain.Manifest) error {
	_, err := w.Write(Marshal(m))
	return err
}

func (c *BinaryCodec) Decode(r io.Reader) (*domain.Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.NewChecksumError(errors.ErrorIO, "decode", "", err)
	}

	m, err := Unmarshal(data)
	if err != nil {
		return nil, errors.NewChecksumError(errors.ErrorManifest, "decode", "", err)
	}
	return m, nil
}

// Marshal encodes m in the binary wire format.
func Marshal(m *domain.Manifest) []byte {
	var b []byte

	if m.Algorithm != "" {
		b = protowire.AppendTag(b, fieldAlgorithm, protowire.BytesType)
		b = protowire.AppendString(b, string(m.Algorithm))
	}

	var entry []byte
	for _, e := range m.Entries {
		entry = entry[:0]
		entry = protowire.AppendTag(entry, fieldChecksum, protowire.VarintType)
		entry = protowire.AppendVarint(entry, e.Checksum)
		entry = protowire.AppendTag(entry, fieldSize, protowire.VarintType)
		entry = protowire.AppendVarint(entry, e.Size)
		if e.Path != "" {
			entry = protowire.AppendTag(entry, fieldPath, protowire.BytesType)
			entry = protowire.AppendString(entry, e.Path)
		}

		b = protowire.AppendTag(b, fieldEntries, protowire.BytesType)
		b = protowire.AppendBytes(b, entry)
	}

	return b
}

// Unmarshal decodes the binary wire format. Unknown fields are skipped.
func Unmarshal(b []byte) (*domain.Manifest, error) {
	m := domain.Manifest{Algorithm: defaultAlgorithm, Entries: make([]domain.ManifestEntry, 0)}

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		b = b[n:]

		switch {
		case num == fieldAlgorithm && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			m.Algorithm = domain.ChecksumAlgorithm(v)
			b = b[n:]

		case num == fieldEntries && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			entry, err := unmarshalEntry(v)
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", len(m.Entries), err)
			}
			m.Entries = append(m.Entries, entry)
			b = b[n:]

		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			b = b[n:]
		}
	}

	return &m, nil
}

func unmarshalEntry(b []byte) (domain.ManifestEntry, error) {
	var e domain.ManifestEntry

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return e, protowire.ParseError(n)
		}
		b = b[n:]

		switch {
		case num == fieldChecksum && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return e, protowire.ParseError(n)
			}
			e.Checksum = v
			b = b[n:]

		case num == fieldSize && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return e, protowire.ParseError(n)
			}
			e.Size = v
			b = b[n:]

		case num == fieldPath && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return e, protowire.ParseError(n)
			}
			e.Path = v
			b = b[n:]

		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return e, protowire.ParseError(n)
			}
			b = b[n:]
		}
	}

	return e, nil
}
