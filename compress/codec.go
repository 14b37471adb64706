package compress

import (
	"fmt"
	"io"

	"github.com/arloliu/uvoxid/errs"
	"github.com/arloliu/uvoxid/format"
)

// Compressor compresses a code-set payload.
//
// A payload is a run of 24-byte codes. Sorted sets share long prefixes between
// neighbours (identical radius fields, close latitudes), which every codec
// here exploits to some degree.
type Compressor interface {
	// Compress compresses data and returns the compressed result.
	//
	// The returned slice is owned by the caller unless documented otherwise
	// by the implementation. The input slice is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
//
// Example:
//
//	codec, _ := compress.GetCodec(format.CompressionZstd)
//	payload, err := codec.Decompress(compressed)
//	if err != nil {
//	    return fmt.Errorf("decompress code set: %w", err)
//	}
//
// Thread Safety: every implementation in this package is safe for concurrent use.
type Decompressor interface {
	// Decompress decompresses data produced by the matching Compressor.
	//
	// Returns an error if data is corrupted or was produced by another
	// algorithm.
	Decompress(data []byte) ([]byte, error)

	// DecompressLimit is Decompress with an upper bound on the output.
	//
	// A code set header declares its payload size, so the decoder never has
	// to inflate more than that. Output longer than limit bytes fails with
	// errs.ErrPayloadTooLarge without being fully materialized; shorter
	// output is returned as-is for the caller to check.
	DecompressLimit(data []byte, limit int) ([]byte, error)
}

// readLimited drains r, failing with errs.ErrPayloadTooLarge once more than
// limit bytes come out.
func readLimited(r io.Reader, limit int) ([]byte, error) {
	out, err := io.ReadAll(io.LimitReader(r, int64(limit)+1))
	if err != nil {
		return nil, err
	}
	if len(out) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", errs.ErrPayloadTooLarge, limit)
	}

	return out, nil
}

// Codec is what a code set header's compression byte selects: it compresses
// the laid-out payload on Finish and inflates it again, bounded by the
// declared count, on Decode.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes a single compression of a payload.
type CompressionStats struct {
	// Algorithm is the value a code set header would record
	Algorithm format.CompressionType

	// OriginalSize is the payload size, 24 bytes per code for a code set
	OriginalSize int64

	// CompressedSize is what follows the 16-byte header once compressed
	CompressedSize int64
}

// CompressionRatio returns compressed size / original size.
//
// Values below 1.0 mean the payload shrank.
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// Measure compresses data with codec and reports the resulting sizes.
//
// Parameters:
//   - compressionType: Type of compression to measure
//   - data: Uncompressed payload
//
// Returns:
//   - []byte: Compressed payload
//   - CompressionStats: Sizes before and after compression
//   - error: errs.ErrUnsupportedCompression, or a compression error
func Measure(compressionType format.CompressionType, data []byte) ([]byte, CompressionStats, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, CompressionStats{}, err
	}

	compressed, err := codec.Compress(data)
	if err != nil {
		return nil, CompressionStats{}, err
	}

	return compressed, CompressionStats{
		Algorithm:      compressionType,
		OriginalSize:   int64(len(data)),
		CompressedSize: int64(len(compressed)),
	}, nil
}

// CreateCodec returns a fresh Codec for the compression byte of a code set
// header. codeset.NewEncoder calls it once per encoder.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: What is being compressed, quoted in the error (e.g. "code set")
//
// Returns:
//   - Codec: Compressor instance for the specified type
//   - error: errs.ErrUnsupportedCompression for an unknown type
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: invalid %s compression: %s", errs.ErrUnsupportedCompression, target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the shared Codec that codeset.Decode uses for a header's
// compression byte.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
}
