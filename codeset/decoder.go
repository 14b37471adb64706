package codeset

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/arloliu/uvoxid/compress"
	"github.com/arloliu/uvoxid/errs"
	"github.com/arloliu/uvoxid/format"
	"github.com/arloliu/uvoxid/internal/hash"
	"github.com/arloliu/uvoxid/spatial"
)

// Set is a decoded code set. It is immutable and safe for concurrent reads.
type Set struct {
	header Header
	codes  []spatial.Code
}

// Decode parses and verifies a serialized code set.
//
// The payload is decompressed up to the size the header count declares,
// its length checked against that size and its xxHash64 compared with the
// stored checksum before any code is decoded.
//
// Parameters:
//   - data: Complete code set as produced by Encoder.Finish
//
// Returns:
//   - *Set: Decoded set
//   - error: errs.ErrInvalidHeaderSize, errs.ErrInvalidMagic,
//     errs.ErrUnsupportedCompression, errs.ErrCodeCountMismatch,
//     errs.ErrChecksumMismatch, or a decompression error
func Decode(data []byte) (*Set, error) {
	header, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(header.Flag.CompressionType())
	if err != nil {
		return nil, err
	}

	want64 := int64(header.Count) * spatial.Size
	if want64 > math.MaxInt {
		return nil, fmt.Errorf("%w: %d codes do not fit in memory", errs.ErrCodeCountExceeded, header.Count)
	}
	want := int(want64)

	payload, err := codec.DecompressLimit(data[HeaderSize:], want)
	if errors.Is(err, errs.ErrPayloadTooLarge) {
		return nil, fmt.Errorf("%w: header declares %d codes: %w", errs.ErrCodeCountMismatch, header.Count, err)
	}
	if err != nil {
		return nil, fmt.Errorf("decompress code set payload: %w", err)
	}

	if len(payload) != want {
		return nil, fmt.Errorf("%w: header declares %d codes (%d bytes), payload has %d bytes",
			errs.ErrCodeCountMismatch, header.Count, want, len(payload))
	}

	if sum := hash.Sum(payload); sum != header.Checksum {
		return nil, fmt.Errorf("%w: got %016x, want %016x", errs.ErrChecksumMismatch, sum, header.Checksum)
	}

	engine := header.Flag.GetEndianEngine()
	codes := make([]spatial.Code, header.Count)
	for i := range codes {
		off := i * spatial.Size
		codes[i] = spatial.FromWords(
			engine.Uint64(payload[off:off+8]),
			engine.Uint64(payload[off+8:off+16]),
			engine.Uint64(payload[off+16:off+24]),
		)
	}

	return &Set{header: header, codes: codes}, nil
}

// Header returns the parsed header.
func (s *Set) Header() Header {
	return s.header
}

// Len returns the number of codes.
func (s *Set) Len() int {
	return len(s.codes)
}

// IsSorted reports whether the set was written in ascending order.
func (s *Set) IsSorted() bool {
	return s.header.Flag.IsSorted()
}

// Compression returns the payload compression the set was written with.
func (s *Set) Compression() format.CompressionType {
	return s.header.Flag.CompressionType()
}

// At returns the code at index i.
func (s *Set) At(i int) (spatial.Code, bool) {
	if i < 0 || i >= len(s.codes) {
		return spatial.Zero, false
	}

	return s.codes[i], true
}

// All iterates over index and code pairs in stored order.
func (s *Set) All() iter.Seq2[int, spatial.Code] {
	return func(yield func(int, spatial.Code) bool) {
		for i, c := range s.codes {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Codes returns a copy of the codes in stored order.
func (s *Set) Codes() []spatial.Code {
	return slices.Clone(s.codes)
}

// Contains reports whether c is in the set. Sorted sets use binary search.
func (s *Set) Contains(c spatial.Code) bool {
	if s.IsSorted() {
		_, found := slices.BinarySearchFunc(s.codes, c, spatial.Code.Compare)
		return found
	}

	return slices.Contains(s.codes, c)
}
