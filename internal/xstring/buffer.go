package xstring

import (
	"bytes"
	"sync"
)

// maxPooledSize limits the capacity of buffers returned to the pool
const maxPooledSize = 64 << 10

type buffer struct {
	bytes.Buffer
}

var buffersPool = sync.Pool{New: func() interface{} {
	return &buffer{}
}}

// Buffer returns an empty buffer from the pool.
// Callers must call Free when the buffer is no longer used.
func Buffer() *buffer {
	return buffersPool.Get().(*buffer) //nolint:forcetypeassert
}

func (b *buffer) Free() {
	if b.Cap() > maxPooledSize {
		return
	}
	b.Reset()
	buffersPool.Put(b)
}
