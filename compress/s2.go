package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/uvoxid/errs"
)

// S2Compressor compresses payloads with S2, a Snappy extension tuned for speed.
//
// Code set payloads are fixed 8-byte words with long shared prefixes, so the
// "better" encoder is used; it finds the repeated radius words that the
// default S2 encoder skips over at little extra cost.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes data as a single S2 block.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.EncodeBetter(nil, data), nil
}

// Decompress decodes a single S2 block.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := s2.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return out, nil
}

// DecompressLimit checks the length recorded in the block header against
// limit before allocating the output.
func (c S2Compressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}
	if n > limit {
		return nil, fmt.Errorf("%w: s2 block declares %d bytes, limit %d", errs.ErrPayloadTooLarge, n, limit)
	}

	return c.Decompress(data)
}
