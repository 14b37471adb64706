package compress

import (
	"fmt"

	"github.com/arloliu/uvoxid/errs"
)

// NoOpCompressor passes payloads through unchanged.
//
// Useful when a code set is stored inside an already-compressed container or
// when the payload is too small to benefit from compression.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data as-is.
//
// Note: The returned slice shares the same underlying memory as the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data as-is.
//
// Note: The returned slice shares the same underlying memory as the input.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

// DecompressLimit returns data as-is if it is at most limit bytes long.
func (c NoOpCompressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	if len(data) > limit {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", errs.ErrPayloadTooLarge, len(data), limit)
	}

	return data, nil
}
