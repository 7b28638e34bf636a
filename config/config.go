package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/iamNilotpal/cksum/internal/adapters/checksum"
	"github.com/iamNilotpal/cksum/internal/adapters/compression"
	"github.com/iamNilotpal/cksum/internal/core/domain"
	rc "github.com/iamNilotpal/cksum/internal/core/domain/config"
)

type Config struct {
	Checksum    ChecksumConfig    `yaml:"checksum"`
	Compression CompressionConfig `yaml:"compression"`
	Manifest    ManifestConfig    `yaml:"manifest"`
	BufferSize  uint32            `yaml:"buffer_size"`  // Read size in bytes
	FileTimeout time.Duration     `yaml:"file_timeout"` // Per file limit, 0 disables
	LogLevel    string            `yaml:"log_level"`    // debug, info, warn, error
	Output      string            `yaml:"output"`       // text or json
}

type ChecksumConfig struct {
	Algorithm string `yaml:"algorithm"` // cksum, crc32-ieee, crc32c, crc64-iso, crc64-ecma, sha1, sha256, xxhash64
}

type CompressionConfig struct {
	Format             string `yaml:"format"`              // none, gzip, zstd, auto
	DecoderConcurrency uint8  `yaml:"decoder_concurrency"` // 0 means one per CPU
	MaxDecodedSize     uint64 `yaml:"max_decoded_size"`    // 0 keeps the decoder default
}

// Holds manifest building filters.
type ManifestConfig struct {
	Extensions  []string `yaml:"extensions"`
	ExcludeDirs []string `yaml:"exclude_dirs"`
}

// Returns a Config that behaves like the cksum utility.
func DefaultConfig() *Config {
	return &Config{
		Checksum:    ChecksumConfig{Algorithm: string(checksum.CKSUM)},
		Compression: CompressionConfig{Format: string(domain.CompressionNone), DecoderConcurrency: 1},
		BufferSize:  rc.DefaultBufferSize,
		LogLevel:    "warn",
		Output:      "text",
	}
}

// Loads configuration from a YAML file. Keys missing from the file keep
// their default values.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func (c *Config) Validate() error {
	if err := (&rc.ReaderConfig{BufferSize: c.BufferSize}).Validate(); err != nil {
		return err
	}

	if c.FileTimeout < 0 {
		return fmt.Errorf("file_timeout must not be negative")
	}

	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("output must be text or json, got %q", c.Output)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error, got %q", c.LogLevel)
	}

	if err := checksum.Validate(&domain.ChecksumOptions{Algorithm: domain.ChecksumAlgorithm(c.Checksum.Algorithm)}); err != nil {
		return err
	}

	return compression.Validate(c.compressionOptions())
}

// Options converts the configuration into service options.
func (c *Config) Options() *domain.Options {
	return &domain.Options{
		BufferSize:         c.BufferSize,
		FileTimeout:        c.FileTimeout,
		Extensions:         c.Manifest.Extensions,
		ExcludeDirs:        c.Manifest.ExcludeDirs,
		ChecksumOptions:    &domain.ChecksumOptions{Algorithm: domain.ChecksumAlgorithm(c.Checksum.Algorithm)},
		CompressionOptions: c.compressionOptions(),
	}
}

func (c *Config) compressionOptions() *domain.CompressionOptions {
	return &domain.CompressionOptions{
		Format:             domain.CompressionFormat(c.Compression.Format),
		DecoderConcurrency: c.Compression.DecoderConcurrency,
		MaxDecodedSize:     c.Compression.MaxDecodedSize,
	}
}
