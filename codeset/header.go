package codeset

import (
	"fmt"
	"math"

	"github.com/arloliu/uvoxid/endian"
	"github.com/arloliu/uvoxid/errs"
	"github.com/arloliu/uvoxid/format"
)

const (
	// Bit masks of the options field
	EndiannessMask   = 0x0001 // bit 0: 0=little-endian, 1=big-endian
	SortedMask       = 0x0002 // bit 1: codes are in ascending order
	ReservedBitsMask = 0x000C // bits 2-3: must be zero
	MagicNumberMask  = 0xFFF0 // bits 4-15: magic number

	// MagicV1 identifies version 1 of the code-set layout.
	MagicV1 = 0xC5D0
)

const (
	// HeaderSize is the fixed header size in bytes.
	HeaderSize = 16
	// MaxCodeCount is the largest count the header can record.
	MaxCodeCount = math.MaxUint32
)

// Flag is the packed options word plus the compression byte of a header.
type Flag struct {
	// Options is a packed field, always stored little-endian.
	// Bit 0 is the byte order of every other integer, 0 little-endian, 1 big-endian.
	// Bit 1 marks a sorted payload.
	// Bits 2-3 are reserved and must be 0.
	// Bits 4-15 are the magic number 0xC5D.
	Options uint16

	// Compression is the format.CompressionType applied to the payload.
	Compression uint8
}

// NewFlag returns a little-endian, unsorted, uncompressed flag.
func NewFlag() Flag {
	return Flag{
		Options:     MagicV1,
		Compression: uint8(format.CompressionNone),
	}
}

// IsBigEndian returns whether header integers and codes are big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// IsSorted returns whether the payload is in ascending code order.
func (f Flag) IsSorted() bool {
	return (f.Options & SortedMask) != 0
}

// SetSorted marks or unmarks the payload as sorted.
func (f *Flag) SetSorted(sorted bool) {
	if sorted {
		f.Options |= SortedMask
	} else {
		f.Options &^= SortedMask
	}
}

// CompressionType returns the payload compression.
func (f Flag) CompressionType() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// SetCompressionType sets the payload compression.
func (f *Flag) SetCompressionType(compression format.CompressionType) {
	f.Compression = uint8(compression)
}

// GetMagicNumber returns the magic number from the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Validate checks the magic number, the reserved bits and the compression type.
func (f Flag) Validate() error {
	if f.GetMagicNumber() != MagicV1 {
		return fmt.Errorf("%w: 0x%04x", errs.ErrInvalidMagic, f.GetMagicNumber())
	}
	if f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved bits set in options 0x%04x", errs.ErrInvalidMagic, f.Options)
	}

	switch f.CompressionType() {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
		return nil
	default:
		return fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, f.CompressionType())
	}
}

// GetEndianEngine returns the engine matching the byte-order bit.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// Header is the fixed-size section at the start of a code set.
type Header struct {
	// Flag holds options and compression.
	Flag Flag // byte offset 0-2, byte 3 reserved
	// Count is the number of codes in the payload.
	Count uint32 // byte offset 4-7
	// Checksum is the xxHash64 of the uncompressed payload.
	Checksum uint64 // byte offset 8-15
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly HeaderSize bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not HeaderSize bytes, or flag validation errors
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	// The options word decides the byte order, so it is always little-endian.
	h.Flag.Options = endian.GetLittleEndianEngine().Uint16(data[0:2])
	h.Flag.Compression = data[2]
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()
	h.Count = engine.Uint32(data[4:8])
	h.Checksum = engine.Uint64(data[8:16])

	return nil
}

// AppendBytes appends the serialized header to dst.
func (h Header) AppendBytes(dst []byte) []byte {
	engine := h.Flag.GetEndianEngine()

	dst = endian.GetLittleEndianEngine().AppendUint16(dst, h.Flag.Options)
	dst = append(dst, h.Flag.Compression, 0)
	dst = engine.AppendUint32(dst, h.Count)
	dst = engine.AppendUint64(dst, h.Checksum)

	return dst
}

// Bytes serializes the header into a new HeaderSize slice.
func (h Header) Bytes() []byte {
	return h.AppendBytes(make([]byte, 0, HeaderSize))
}

// ParseHeader parses a Header from the start of data.
//
// Parameters:
//   - data: Byte slice starting with a header (must be at least HeaderSize bytes)
//
// Returns:
//   - Header: Parsed header struct
//   - error: ErrInvalidHeaderSize or flag validation errors
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: got %d bytes, want at least %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
