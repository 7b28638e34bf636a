package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iamNilotpal/cksum/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cksum.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	opts := cfg.Options()
	require.Equal(t, domain.ChecksumAlgorithm("cksum"), opts.ChecksumOptions.Algorithm)
	require.Equal(t, domain.CompressionNone, opts.CompressionOptions.Format)
	require.EqualValues(t, 64*1024, opts.BufferSize)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
checksum:
  algorithm: sha256
compression:
  format: auto
manifest:
  extensions: [".hgt", ".zip"]
file_timeout: 30s
output: json
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "sha256", cfg.Checksum.Algorithm)
	require.Equal(t, "auto", cfg.Compression.Format)
	require.Equal(t, 30*time.Second, cfg.FileTimeout)
	require.Equal(t, "json", cfg.Output)
	// Untouched keys keep defaults.
	require.Equal(t, "warn", cfg.LogLevel)
	require.EqualValues(t, 64*1024, cfg.BufferSize)

	opts := cfg.Options()
	require.Equal(t, []string{".hgt", ".zip"}, opts.Extensions)
	require.Equal(t, domain.CompressionAuto, opts.CompressionOptions.Format)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := map[string]string{
		"algorithm":   "checksum:\n  algorithm: md5\n",
		"compression": "compression:\n  format: brotli\n",
		"buffer":      "buffer_size: 100\n",
		"output":      "output: xml\n",
		"log level":   "log_level: verbose\n",
		"timeout":     "file_timeout: -1s\n",
		"syntax":      "checksum: [\n",
	}

	for name, contents := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, contents))
			require.Error(t, err)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
