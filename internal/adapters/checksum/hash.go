package checksum

import (
	"encoding/binary"
	"hash"
	"io"

	"github.com/iamNilotpal/cksum/pkg/pool"
)

var copyBuffers = pool.NewSlicePool(32 * 1024)

// hashChecksum adapts any hash.Hash to ChecksumPort. Digests wider than
// 8 bytes are truncated to their first 8 bytes, read big-endian.
type hashChecksum struct {
	name    string
	size    uint8
	factory func() hash.Hash
}

func (h *hashChecksum) Calculate(data []byte) uint64 {
	d := h.factory()
	d.Write(data)
	return truncate(d.Sum(nil))
}

func (h *hashChecksum) CalculateReader(r io.Reader) (uint64, int64, error) {
	buf := copyBuffers.Get()
	defer copyBuffers.Put(buf)

	d := h.factory()
	n, err := io.CopyBuffer(d, r, *buf)
	if err != nil {
		return 0, n, err
	}
	return truncate(d.Sum(nil)), n, nil
}

func (h *hashChecksum) Verify(data []byte, expected uint64) bool {
	return h.Calculate(data) == expected
}

func (h *hashChecksum) Size() uint8 {
	return h.size
}

func (h *hashChecksum) Name() string {
	return h.name
}

func truncate(sum []byte) uint64 {
	switch {
	case len(sum) >= 8:
		return binary.BigEndian.Uint64(sum[:8])
	case len(sum) == 4:
		return uint64(binary.BigEndian.Uint32(sum))
	default:
		var v uint64
		for _, b := range sum {
			v = v<<8 | uint64(b)
		}
		return v
	}
}
