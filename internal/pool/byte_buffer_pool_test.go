package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 1024, cap(bb.B))
}

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(8)

	n, err := bb.Write([]byte("uvoxid"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, []byte("uvoxid"), bb.Bytes())

	capBefore := cap(bb.B)
	bb.Reset()
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, capBefore, cap(bb.B))
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("no-op with enough capacity", func(t *testing.T) {
		bb := NewByteBuffer(64)
		bb.Grow(32)
		assert.Equal(t, 64, cap(bb.B))
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(0)
		_, _ = bb.Write([]byte{1, 2, 3})
		bb.Grow(CodeSetBufferDefaultSize)
		assert.GreaterOrEqual(t, cap(bb.B)-bb.Len(), CodeSetBufferDefaultSize)
		assert.Equal(t, []byte{1, 2, 3}, bb.Bytes())
	})

	t.Run("grows at least by required bytes", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(CodeSetBufferDefaultSize * 3)
		assert.GreaterOrEqual(t, cap(bb.B), CodeSetBufferDefaultSize*3)
	})
}

func TestByteBufferPool(t *testing.T) {
	p := NewByteBufferPool(128, 256)

	bb := p.Get()
	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())

	_, _ = bb.Write([]byte("data"))
	p.Put(bb)

	// Oversized buffers are not retained.
	big := NewByteBuffer(1024)
	p.Put(big)
	p.Put(nil)

	got := p.Get()
	require.NotNil(t, got)
	assert.Equal(t, 0, got.Len())
}

func TestCodeSetBuffer(t *testing.T) {
	bb := GetCodeSetBuffer()
	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	PutCodeSetBuffer(bb)
}
