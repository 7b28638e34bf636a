package checksum

import (
	"crypto/sha1"
	"crypto/sha256"
)

func NewSHA1() *hashChecksum {
	return &hashChecksum{name: string(SHA1), size: sha1.Size, factory: sha1.New}
}

func NewSHA256() *hashChecksum {
	return &hashChecksum{name: string(SHA256), size: sha256.Size, factory: sha256.New}
}
