package checksum

import (
	"io"

	posix "github.com/iamNilotpal/cksum/pkg/checksum"
)

type cksum struct {
	name string
}

// NewCKSUM returns the POSIX cksum adapter.
func NewCKSUM() *cksum {
	return &cksum{name: string(CKSUM)}
}

func (c *cksum) Calculate(data []byte) uint64 {
	return uint64(posix.Checksum(data))
}

func (c *cksum) CalculateReader(r io.Reader) (uint64, int64, error) {
	sum, n, err := posix.ChecksumReaderN(r)
	return uint64(sum), n, err
}

func (c *cksum) Verify(data []byte, expected uint64) bool {
	return c.Calculate(data) == expected
}

func (c *cksum) Size() uint8 {
	return posix.Size
}

func (c *cksum) Name() string {
	return c.name
}
