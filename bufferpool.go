package memcache

import "sync"

// bufferPool recycles request-encoding buffers across operations,
// adapted from the teacher's internal byteBufferPool (originally backing
// connection write buffers; repurposed here to avoid an allocation per
// Client operation).
type bufferPool struct {
	pool sync.Pool
}

func newBufferPool(initialSize int) *bufferPool {
	return &bufferPool{
		pool: sync.Pool{
			New: func() any {
				buf := make([]byte, 0, initialSize)
				return &buf
			},
		},
	}
}

func (p *bufferPool) get() []byte {
	return (*p.pool.Get().(*[]byte))[:0]
}

func (p *bufferPool) put(buf []byte) {
	p.pool.Put(&buf)
}
