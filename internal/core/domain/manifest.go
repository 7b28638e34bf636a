package domain

// ManifestEntry is one line of a manifest: the checksum and size of a file
// as published by the data provider.
type ManifestEntry struct {
	// Checksum is the expected value. For cksum it fits in 32 bits, the
	// wider algorithms use the full 64.
	Checksum uint64 `json:"checksum"`

	// Size is the expected size in bytes of the content that was checksummed.
	Size uint64 `json:"size"`

	// Path is slash-separated and relative to the manifest's base directory.
	Path string `json:"path"`
}

// Manifest is an ordered list of entries computed with a single algorithm.
type Manifest struct {
	Algorithm ChecksumAlgorithm `json:"algorithm"`
	Entries   []ManifestEntry   `json:"entries"`
}

// Lookup returns the entry for path, if present.
func (m *Manifest) Lookup(path string) (ManifestEntry, bool) {
	for _, e := range m.Entries {
		if e.Path == path {
			return e, true
		}
	}
	return ManifestEntry{}, false
}
