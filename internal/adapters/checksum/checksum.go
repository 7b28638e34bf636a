package checksum

import (
	"fmt"

	"github.com/iamNilotpal/cksum/internal/core/domain"
	"github.com/iamNilotpal/cksum/internal/core/ports"
)

const (
	// CKSUM is the POSIX cksum CRC, compatible with the cksum utility.
	CKSUM domain.ChecksumAlgorithm = "cksum"

	// CRC32IEEE uses the IEEE polynomial for CRC32 checksums
	CRC32IEEE domain.ChecksumAlgorithm = "crc32-ieee"

	// CRC32C uses the Castagnoli polynomial, hardware accelerated on most CPUs
	CRC32C domain.ChecksumAlgorithm = "crc32c"

	// CRC64ISO uses the ISO polynomial for CRC64 checksums
	CRC64ISO domain.ChecksumAlgorithm = "crc64-iso"

	// CRC64ECMA uses the ECMA polynomial for CRC64 checksums
	CRC64ECMA domain.ChecksumAlgorithm = "crc64-ecma"

	// SHA1 provides SHA-1 checksums (160-bit)
	SHA1 domain.ChecksumAlgorithm = "sha1"

	// SHA256 provides SHA-256 checksums (256-bit)
	SHA256 domain.ChecksumAlgorithm = "sha256"

	// XXHASH64 is the non-cryptographic 64-bit xxHash
	XXHASH64 domain.ChecksumAlgorithm = "xxhash64"
)

// Algorithms lists every supported algorithm, default first.
var Algorithms = []domain.ChecksumAlgorithm{CKSUM, CRC32IEEE, CRC32C, CRC64ISO, CRC64ECMA, SHA1, SHA256, XXHASH64}

// Returns recommended checksum settings.
func DefaultOptions() *domain.ChecksumOptions {
	return &domain.ChecksumOptions{Algorithm: CKSUM}
}

func Validate(input *domain.ChecksumOptions) error {
	if input.Custom == nil {
		switch input.Algorithm {
		case CKSUM, CRC32IEEE, CRC32C, CRC64ISO, CRC64ECMA, SHA1, SHA256, XXHASH64:
		default:
			return fmt.Errorf("unsupported checksum algorithm: %s", input.Algorithm)
		}
	}
	return nil
}

// NewCheckSummer returns the adapter for algorithm.
func NewCheckSummer(algorithm domain.ChecksumAlgorithm) (ports.ChecksumPort, error) {
	switch algorithm {
	case CKSUM, "":
		return NewCKSUM(), nil
	case CRC32IEEE:
		return NewCRC32IEEE(), nil
	case CRC32C:
		return NewCRC32C(), nil
	case CRC64ISO:
		return NewCRC64ISO(), nil
	case CRC64ECMA:
		return NewCRC64ECMA(), nil
	case SHA1:
		return NewSHA1(), nil
	case SHA256:
		return NewSHA256(), nil
	case XXHASH64:
		return NewXXHash64(), nil
	default:
		return nil, fmt.Errorf("unsupported checksum algorithm: %s", algorithm)
	}
}

// FromOptions returns opts.Custom when set, otherwise the adapter for opts.Algorithm.
func FromOptions(opts *domain.ChecksumOptions) (ports.ChecksumPort, error) {
	if opts == nil {
		return NewCKSUM(), nil
	}
	if opts.Custom != nil {
		return opts.Custom, nil
	}
	return NewCheckSummer(opts.Algorithm)
}
