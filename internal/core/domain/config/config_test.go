package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewReaderConfig(t *testing.T) {
	require.EqualValues(t, DefaultBufferSize, NewReaderConfig().BufferSize)
	require.EqualValues(t, LargeBufferSize, NewReaderConfig(WithBufferSize(LargeBufferSize)).BufferSize)

	// Out of range values leave the default in place.
	require.EqualValues(t, DefaultBufferSize, NewReaderConfig(WithBufferSize(16)).BufferSize)
	require.EqualValues(t, DefaultBufferSize, NewReaderConfig(WithBufferSize(MaxBufferSize+1)).BufferSize)
}

func TestReaderConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		size uint32
		ok   bool
	}{
		{"default", DefaultBufferSize, true},
		{"large", DefaultLargeReaderConfig().BufferSize, true},
		{"min", MinBufferSize, true},
		{"max", MaxBufferSize, true},
		{"too small", MinBufferSize / 2, false},
		{"too large", MaxBufferSize * 2, false},
		{"not power of two", 5000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&ReaderConfig{BufferSize: tt.size}).Validate()
			if tt.ok {
				require.NoError(t, err)
				return
			}

			var ve *ReaderValidationError
			require.ErrorAs(t, err, &ve)
			require.Equal(t, "BufferSize", ve.Field)
		})
	}
}
