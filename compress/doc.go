// Package compress provides compression and decompression codecs for code-set payloads.
//
// A code-set payload is a run of 24-byte big-endian (or little-endian) codes.
// Sorted runs are highly redundant: neighbouring codes usually share the whole
// radius field and the upper bytes of both angle fields. The codecs here are
// applied to the whole payload after the codes are laid out.
//
// # Supported Algorithms
//
// **NoOp** (format.CompressionNone)
//
//	codec := compress.NewNoOpCompressor()
//	compressed, _ := codec.Compress(data)       // returns data unchanged
//	original, _ := codec.Decompress(compressed) // returns data unchanged
//
// **Zstandard** (format.CompressionZstd)
//
// Best ratio of the built-in codecs. Uses pooled klauspost/compress encoders
// and decoders, or valyala/gozstd when built with cgo and the gozstd tag:
//
//	go build -tags gozstd ./...
//
// **S2** (format.CompressionS2)
//
// Snappy-compatible extension from klauspost/compress. Fast in both
// directions with a moderate ratio.
//
// **LZ4** (format.CompressionLZ4)
//
// Raw LZ4 blocks from pierrec/lz4. Fastest decompression.
//
// # Choosing a Codec
//
//	codec, err := compress.GetCodec(format.CompressionS2)
//	if err != nil {
//	    return err
//	}
//
// GetCodec returns shared built-in instances; CreateCodec returns a fresh
// instance and includes a target description in its error. Both return
// errs.ErrUnsupportedCompression for unknown types.
//
// # Bounded Decompression
//
// A code set header records how many codes follow, so the decoder knows the
// exact payload size before inflating anything. DecompressLimit stops at
// that size and reports errs.ErrPayloadTooLarge, so a frame of a few bytes
// that claims gigabytes of zeros never gets materialized. S2 checks the size
// in its block header, Zstd streams through a limited reader and LZ4 grows
// its buffer only up to the limit.
//
// # Thread Safety
//
// All codecs are stateless values and safe for concurrent use. Pooled
// encoder state is never shared between concurrent calls.
package compress
