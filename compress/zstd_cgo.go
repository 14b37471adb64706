//go:build cgo && gozstd

package compress

import (
	"bytes"
	"fmt"

	"github.com/valyala/gozstd"
)

// gozstdLevel matches zstd.SpeedDefault of the pure Go encoder.
const gozstdLevel = 3

// Compress compresses the input data using the cgo Zstandard library.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, gozstdLevel), nil
}

// Decompress decompresses Zstd-compressed data.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}

// DecompressLimit streams the frame and stops reading after limit+1 bytes.
func (c ZstdCompressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	zr := gozstd.NewReader(bytes.NewReader(data))
	defer zr.Release()

	out, err := readLimited(zr, limit)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}
