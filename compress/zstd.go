package compress

// ZstdCompressor compresses payloads with Zstandard.
//
// Zstd gives the best ratio of the built-in codecs on sorted code sets, where
// consecutive codes repeat whole radius fields. It is the default for
// archived sets.
//
// The pure Go implementation is used unless the binary is built with cgo and
// the gozstd build tag.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(payload)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
