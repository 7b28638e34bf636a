package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlicePool(t *testing.T) {
	p := NewSlicePool(64)
	require.Equal(t, 64, p.Size())

	buf := p.Get()
	require.Len(t, *buf, 64)

	*buf = (*buf)[:10]
	p.Put(buf)

	again := p.Get()
	require.Len(t, *again, 64)
}

func TestSlicePoolRejectsForeignBuffers(t *testing.T) {
	p := NewSlicePool(16)

	foreign := make([]byte, 128)
	p.Put(&foreign)
	p.Put(nil)

	require.Len(t, *p.Get(), 16)
}
