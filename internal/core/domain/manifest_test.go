package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestManifestLookup(t *testing.T) {
	m := Manifest{
		Algorithm: "cksum",
		Entries: []ManifestEntry{
			{Checksum: 1, Size: 10, Path: "a.hgt"},
			{Checksum: 2, Size: 20, Path: "tiles/b.hgt"},
		},
	}

	e, ok := m.Lookup("tiles/b.hgt")
	require.True(t, ok)
	require.EqualValues(t, 2, e.Checksum)

	_, ok = m.Lookup("c.hgt")
	require.False(t, ok)
}

func TestVerifyResultOK(t *testing.T) {
	require.True(t, (&VerifyResult{Status: VerifyOK}).OK())
	require.False(t, (&VerifyResult{Status: VerifyMismatch}).OK())
}
