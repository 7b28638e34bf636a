package domain

import "time"

// FileChecksum is the outcome of checksumming one file.
type FileChecksum struct {
	Path      string            `json:"path"`
	Algorithm ChecksumAlgorithm `json:"algorithm"`
	Checksum  uint64            `json:"checksum"`

	// Size counts the bytes that went into the checksum, which is the
	// decompressed size when a decoder was applied.
	Size uint64 `json:"size"`

	// Compression is the decoder that was applied, CompressionNone if the
	// stored bytes were used.
	Compression CompressionFormat `json:"compression"`

	Duration time.Duration `json:"duration"`
}

// VerifyStatus describes how a file compared against its expected checksum.
type VerifyStatus string

const (
	VerifyOK           VerifyStatus = "ok"
	VerifyMismatch     VerifyStatus = "mismatch"
	VerifySizeMismatch VerifyStatus = "size-mismatch"
	VerifyMissing      VerifyStatus = "missing"
	VerifyError        VerifyStatus = "error"
)

// VerifyResult is the outcome of verifying one file.
type VerifyResult struct {
	Expected ManifestEntry `json:"expected"`
	Actual   *FileChecksum `json:"actual,omitempty"`
	Status   VerifyStatus  `json:"status"`
	Error    string        `json:"error,omitempty"`
}

// OK reports whether the file matched.
func (r *VerifyResult) OK() bool {
	return r.Status == VerifyOK
}
