package checksum

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/iamNilotpal/cksum/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func TestCheckSummers(t *testing.T) {
	tests := []struct {
		algorithm domain.ChecksumAlgorithm
		size      uint8
		input     string
		want      uint64
	}{
		{CKSUM, 4, "123456789", 930766865},
		{CKSUM, 4, "", 4294967295},
		{CRC32IEEE, 4, "123456789", 0xCBF43926},
		{CRC32C, 4, "123456789", 0xE3069283},
		{CRC64ISO, 8, "123456789", 0xB90956C775A41001},
		{CRC64ECMA, 8, "123456789", 0x995DC9BBDF1939FA},
		{SHA1, 20, "abc", 0xA9993E364706816A},
		{SHA256, 32, "abc", 0xBA7816BF8F01CFEA},
		{XXHASH64, 8, "", 0xEF46DB3751D8E999},
		{XXHASH64, 8, "123456789", 0x8CB841DB40E6AE83},
	}

	for _, tt := range tests {
		t.Run(string(tt.algorithm)+"/"+tt.input, func(t *testing.T) {
			cs, err := NewCheckSummer(tt.algorithm)
			require.NoError(t, err)
			require.Equal(t, string(tt.algorithm), cs.Name())
			require.Equal(t, tt.size, cs.Size())

			require.Equal(t, tt.want, cs.Calculate([]byte(tt.input)))
			require.True(t, cs.Verify([]byte(tt.input), tt.want))
			require.False(t, cs.Verify([]byte(tt.input+"!"), tt.want))

			sum, n, err := cs.CalculateReader(iotest.OneByteReader(strings.NewReader(tt.input)))
			require.NoError(t, err)
			require.EqualValues(t, len(tt.input), n)
			require.Equal(t, tt.want, sum)
		})
	}
}

func TestCalculateReaderError(t *testing.T) {
	cause := errors.New("unreadable")

	for _, algorithm := range Algorithms {
		cs, err := NewCheckSummer(algorithm)
		require.NoError(t, err)

		r := io.MultiReader(bytes.NewReader(make([]byte, 100)), iotest.ErrReader(cause))
		_, _, err = cs.CalculateReader(r)
		require.ErrorIs(t, err, cause, algorithm)
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(DefaultOptions()))
	require.Equal(t, CKSUM, DefaultOptions().Algorithm)

	for _, algorithm := range Algorithms {
		require.NoError(t, Validate(&domain.ChecksumOptions{Algorithm: algorithm}))
	}

	require.Error(t, Validate(&domain.ChecksumOptions{Algorithm: "md4"}))
	require.NoError(t, Validate(&domain.ChecksumOptions{Algorithm: "md4", Custom: NewCKSUM()}))

	_, err := NewCheckSummer("md4")
	require.Error(t, err)
}

func TestFromOptions(t *testing.T) {
	cs, err := FromOptions(nil)
	require.NoError(t, err)
	require.Equal(t, string(CKSUM), cs.Name())

	custom := NewSHA1()
	cs, err = FromOptions(&domain.ChecksumOptions{Algorithm: SHA256, Custom: custom})
	require.NoError(t, err)
	require.Same(t, custom, cs)

	cs, err = FromOptions(&domain.ChecksumOptions{Algorithm: CRC64ISO})
	require.NoError(t, err)
	require.Equal(t, string(CRC64ISO), cs.Name())
}
