// Package checksum computes the checksum printed by the POSIX cksum utility.
//
// The algorithm is a CRC-32 over polynomial 0x04C11DB7, processed most
// significant bit first with no reflection, followed by the input length
// folded in least significant byte first and a final one's complement.
// It is not the reflected CRC-32 used by zip and gzip.
package checksum

import (
	"errors"
	"fmt"
	"hash"
	"io"
	"os"

	verrors "github.com/iamNilotpal/cksum/pkg/errors"
	"github.com/iamNilotpal/cksum/pkg/pool"
)

const (
	// Size of a cksum checksum in bytes.
	Size = 4

	// Polynomial used by POSIX cksum, in normal (MSB-first) form.
	Polynomial uint32 = 0x04C11DB7

	// EmptySum is the checksum of zero bytes.
	EmptySum uint32 = 0xFFFFFFFF

	readBufferSize = 32 * 1024
)

// ErrUnsupportedInput is returned by Sum for inputs that are neither a byte
// buffer nor a reader.
var ErrUnsupportedInput = errors.New("checksum input must be []byte, string or io.Reader")

var (
	table   = makeTable(Polynomial)
	buffers = pool.NewSlicePool(readBufferSize)
)

func makeTable(poly uint32) *[256]uint32 {
	t := new([256]uint32)
	for i := 0; i < 256; i++ {
		crc := uint32(i) << 24
		for j := 0; j < 8; j++ {
			if crc&0x80000000 != 0 {
				crc = crc<<1 ^ poly
			} else {
				crc <<= 1
			}
		}
		t[i] = crc
	}
	return t
}

// Update returns the result of adding the bytes in p to the running crc.
// It does not apply the length fold or the final complement.
func Update(crc uint32, p []byte) uint32 {
	for _, b := range p {
		crc = crc<<8 ^ table[byte(crc>>24)^b]
	}
	return crc
}

// Finalize folds length into crc and returns the one's complement.
func Finalize(crc uint32, length uint64) uint32 {
	for n := length; n > 0; n >>= 8 {
		crc = crc<<8 ^ table[byte(crc>>24)^byte(n)]
	}
	return ^crc
}

type digest struct {
	crc    uint32
	length uint64
}

// New returns a hash.Hash32 computing the cksum checksum. Sum32 may be called
// at any point and reflects all bytes written so far.
func New() hash.Hash32 {
	return &digest{}
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return 1 }

func (d *digest) Reset() { d.crc, d.length = 0, 0 }

func (d *digest) Write(p []byte) (int, error) {
	d.crc = Update(d.crc, p)
	d.length += uint64(len(p))
	return len(p), nil
}

func (d *digest) Sum32() uint32 { return Finalize(d.crc, d.length) }

func (d *digest) Sum(in []byte) []byte {
	s := d.Sum32()
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}

// Checksum returns the cksum checksum of data.
func Checksum(data []byte) uint32 {
	return Finalize(Update(0, data), uint64(len(data)))
}

// ChecksumReader consumes r until EOF and returns the checksum of everything
// read. Read errors other than io.EOF are returned as they are. r is never closed.
func ChecksumReader(r io.Reader) (uint32, error) {
	sum, _, err := ChecksumReaderN(r)
	return sum, err
}

// ChecksumReaderN is ChecksumReader that also reports the number of bytes consumed.
func ChecksumReaderN(r io.Reader) (uint32, int64, error) {
	buf := buffers.Get()
	defer buffers.Put(buf)

	var crc uint32
	var n int64

	for {
		nn, err := r.Read(*buf)
		if nn > 0 {
			crc = Update(crc, (*buf)[:nn])
			n += int64(nn)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, n, err
		}
	}

	return Finalize(crc, uint64(n)), n, nil
}

// ChecksumFile opens the named file, checksums its contents and closes it.
// The file is closed whether or not reading succeeds.
func ChecksumFile(path string) (sum uint32, err error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return ChecksumReader(file)
}

// Sum accepts a []byte, a string or an io.Reader and returns its checksum.
// Any other input is rejected with a validation error.
func Sum(input any) (uint32, error) {
	switch v := input.(type) {
	case []byte:
		return Checksum(v), nil
	case string:
		return Checksum([]byte(v)), nil
	case io.Reader:
		return ChecksumReader(v)
	default:
		return 0, verrors.NewValidationError("input", fmt.Sprintf("%T", input), ErrUnsupportedInput)
	}
}

// Verify reports whether data has the expected checksum.
func Verify(data []byte, expected uint32) bool {
	return Checksum(data) == expected
}
