package serialize

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

type record struct {
	Path     string `json:"path"`
	Checksum uint32 `json:"checksum"`
}

func TestJSON(t *testing.T) {
	data, err := MarshalJSON(record{Path: "a.hgt", Checksum: 4294967295})
	require.NoError(t, err)
	require.JSONEq(t, `{"path":"a.hgt","checksum":4294967295}`, string(data))

	var out record
	require.NoError(t, UnMarshalJSON(data, &out))
	require.Equal(t, "a.hgt", out.Path)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, out))
	require.Equal(t, "{\n  \"path\": \"a.hgt\",\n  \"checksum\": 4294967295\n}\n", buf.String())
}
