package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/uvoxid/errs"
)

// lz4CompressorPool pools lz4.Compressor instances across code set encoders.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// lz4MaxBlockSize bounds the decompression buffer. It is far larger than any
// code set the encoder will write.
const lz4MaxBlockSize = 128 * 1024 * 1024

// LZ4Compressor compresses payloads as raw LZ4 blocks. A block does not
// record its decompressed size; code set decoding supplies it from the
// header count.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress writes data as a single LZ4 block, or nil for an empty payload.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decompresses a single LZ4 block of at most 128MB.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	return uncompressLZ4(data, lz4MaxBlockSize)
}

// DecompressLimit decompresses a single LZ4 block of at most limit bytes.
func (c LZ4Compressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	return uncompressLZ4(data, limit)
}

// uncompressLZ4 decodes a block that does not record its decompressed size.
// The buffer starts at 4x the compressed size and doubles on
// lz4.ErrInvalidSourceShortBuffer until it reaches limit.
func uncompressLZ4(data []byte, limit int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bufSize := min(len(data)*4, limit)
	for {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, err
		}
		if bufSize >= limit {
			return nil, fmt.Errorf("%w: lz4 block exceeds %d bytes: %w", errs.ErrPayloadTooLarge, limit, err)
		}
		bufSize = min(bufSize*2, limit)
	}
}
