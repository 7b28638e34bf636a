package domain

// CompressionFormat names the container a file is stored in.
type CompressionFormat string

const (
	CompressionNone CompressionFormat = "none"
	CompressionGzip CompressionFormat = "gzip"
	CompressionZstd CompressionFormat = "zstd"
	CompressionAuto CompressionFormat = "auto"
)

// CompressionOptions controls whether compressed files are checksummed as
// stored or over their decompressed content.
type CompressionOptions struct {
	// Format selects the decoder applied before checksumming.
	//   - none: the stored bytes are checksummed (cksum behaviour).
	//   - gzip, zstd: the file must be in that format.
	//   - auto: the format is sniffed from the leading magic bytes and files
	//     that match neither are checksummed as stored.
	//
	// Default: none
	Format CompressionFormat

	// DecoderConcurrency bounds the goroutines used by the zstd decoder.
	// Zero means one per CPU.
	DecoderConcurrency uint8

	// MaxDecodedSize caps the decompressed size of a single zstd frame window
	// in bytes. Zero leaves the decoder default in place.
	MaxDecodedSize uint64
}
