package pool

import "sync"

// Buffer sizes for code-set payloads. A code occupies 24 bytes, so the
// default buffer holds roughly 680 codes before growing.
const (
	CodeSetBufferDefaultSize  = 1024 * 16  // 16KiB
	CodeSetBufferMaxThreshold = 1024 * 512 // 512KiB
)

// ByteBuffer is a reusable append-only byte slice.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer and keeps its capacity.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Grow ensures the buffer can take requiredBytes more bytes without reallocating.
//
// Small buffers grow by CodeSetBufferDefaultSize, larger ones by 25% of
// their capacity, and never by less than requiredBytes.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	if cap(bb.B)-len(bb.B) >= requiredBytes {
		return
	}

	growBy := CodeSetBufferDefaultSize
	if cap(bb.B) > 4*CodeSetBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends data to the buffer. It never fails.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// ByteBufferPool is a sync.Pool of ByteBuffers.
//
// Buffers whose capacity exceeds maxThreshold are dropped on Put instead of
// being retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool handing out buffers of defaultSize capacity.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var codeSetPool = NewByteBufferPool(CodeSetBufferDefaultSize, CodeSetBufferMaxThreshold)

// GetCodeSetBuffer retrieves a ByteBuffer from the default code-set pool.
func GetCodeSetBuffer() *ByteBuffer {
	return codeSetPool.Get()
}

// PutCodeSetBuffer returns a ByteBuffer to the default code-set pool.
func PutCodeSetBuffer(bb *ByteBuffer) {
	codeSetPool.Put(bb)
}
