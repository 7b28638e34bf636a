package checksum

import (
	"hash"
	"hash/crc64"

	"github.com/klauspost/crc32"
)

var (
	crc32IEEETable = crc32.MakeTable(crc32.IEEE)
	crc32CTable    = crc32.MakeTable(crc32.Castagnoli)
	crc64ISOTable  = crc64.MakeTable(crc64.ISO)
	crc64ECMATable = crc64.MakeTable(crc64.ECMA)
)

// NewCRC32IEEE returns the reflected CRC-32 used by zip and gzip.
func NewCRC32IEEE() *hashChecksum {
	return &hashChecksum{
		name:    string(CRC32IEEE),
		size:    crc32.Size,
		factory: func() hash.Hash { return crc32.New(crc32IEEETable) },
	}
}

func NewCRC32C() *hashChecksum {
	return &hashChecksum{
		name:    string(CRC32C),
		size:    crc32.Size,
		factory: func() hash.Hash { return crc32.New(crc32CTable) },
	}
}

func NewCRC64ISO() *hashChecksum {
	return &hashChecksum{
		name:    string(CRC64ISO),
		size:    crc64.Size,
		factory: func() hash.Hash { return crc64.New(crc64ISOTable) },
	}
}

func NewCRC64ECMA() *hashChecksum {
	return &hashChecksum{
		name:    string(CRC64ECMA),
		size:    crc64.Size,
		factory: func() hash.Hash { return crc64.New(crc64ECMATable) },
	}
}
