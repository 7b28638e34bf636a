package config

// Returns a ReaderConfig with recommended defaults.
func DefaultReaderConfig() *ReaderConfig {
	return &ReaderConfig{BufferSize: DefaultBufferSize}
}

// Returns config for bulk verification of large files.
func DefaultLargeReaderConfig() *ReaderConfig {
	return &ReaderConfig{BufferSize: LargeBufferSize}
}
