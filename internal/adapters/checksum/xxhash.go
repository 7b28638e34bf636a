package checksum

import (
	"hash"

	"github.com/cespare/xxhash/v2"
)

// NewXXHash64 returns the 64-bit xxHash with seed zero.
func NewXXHash64() *hashChecksum {
	return &hashChecksum{
		name:    string(XXHASH64),
		size:    8,
		factory: func() hash.Hash { return xxhash.New() },
	}
}
