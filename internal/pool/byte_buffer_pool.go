// Package pool provides a pooled growable byte buffer. iosink.SliceSink
// takes one from the pool as its output buffer and returns it on Release,
// so repeated in-memory encodes reuse backing arrays instead of allocating
// a new one each time.
package pool

import "sync"

// ScratchDefaultSize is the starting capacity of a buffer the pool creates;
// buffers grow as needed. ScratchMaxThreshold is the largest capacity the
// pool retains: larger buffers are dropped when returned.
const (
	ScratchDefaultSize  = 16
	ScratchMaxThreshold = 4096
)

// ByteBuffer is a growable byte slice wrapper matching the shape the codec
// needs: append, reset, and direct slice access for in-place writes.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the given starting capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the buffer's current contents.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// Reset empties the buffer while retaining its backing array.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// Len returns the number of bytes currently in the buffer.
func (bb *ByteBuffer) Len() int { return len(bb.B) }

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// MustWriteByte appends a single byte to the buffer, growing it if
// necessary.
func (bb *ByteBuffer) MustWriteByte(b byte) {
	bb.B = append(bb.B, b)
}

// bufferPool pools *ByteBuffer instances sized for codec scratch use.
type bufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

func newBufferPool(defaultSize, maxThreshold int) *bufferPool {
	return &bufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

func (p *bufferPool) get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)

	return bb
}

func (p *bufferPool) put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return // discard overly large buffers rather than retaining them
	}

	bb.Reset()
	p.pool.Put(bb)
}

var scratchPool = newBufferPool(ScratchDefaultSize, ScratchMaxThreshold)

// GetScratchBuffer retrieves an empty pooled ByteBuffer.
func GetScratchBuffer() *ByteBuffer { return scratchPool.get() }

// PutScratchBuffer returns a scratch ByteBuffer to the pool for reuse.
func PutScratchBuffer(bb *ByteBuffer) { scratchPool.put(bb) }
