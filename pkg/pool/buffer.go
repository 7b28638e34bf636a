package pool

import (
	"sync"
)

// SlicePool manages a pool of fixed-size read buffers.
type SlicePool struct {
	size int       // Length of each buffer.
	pool sync.Pool // Thread-safe pool of *[]byte.
}

// Creates a new pool handing out buffers of the given length.
func NewSlicePool(size int) *SlicePool {
	return &SlicePool{
		size: size,
		pool: sync.Pool{
			New: func() any {
				buf := make([]byte, size)
				return &buf
			},
		},
	}
}

// Retrieves a buffer from the pool. Its length is always the pool size.
func (sp *SlicePool) Get() *[]byte {
	buf := sp.pool.Get().(*[]byte)
	*buf = (*buf)[:sp.size]
	return buf
}

// Returns a buffer to the pool.
func (sp *SlicePool) Put(buf *[]byte) {
	// Don't pool buffers that were swapped for something of another size.
	if buf == nil || cap(*buf) != sp.size {
		return
	}
	sp.pool.Put(buf)
}

// Size returns the length of buffers handed out by the pool.
func (sp *SlicePool) Size() int {
	return sp.size
}
