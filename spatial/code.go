package spatial

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/arloliu/uvoxid/endian"
	"github.com/arloliu/uvoxid/errs"
	"github.com/arloliu/uvoxid/internal/hash"
)

const (
	// TotalBits is the fixed width of a spatial code.
	TotalBits = 192
	// FieldBits is the width of each of the three fields.
	FieldBits = 64
	// Size is the length of the binary form in bytes.
	Size = TotalBits / 8
)

// Code is a 192-bit unsigned integer made of three 64-bit fields, most
// significant first: radius | biased latitude | biased longitude.
//
// Code is an immutable value. The zero value is the integer 0, and two codes
// are equal under == exactly when their integers are equal.
type Code struct {
	hi, mid, lo uint64
}

// Zero is the all-zero code.
var Zero = Code{}

// FromWords builds a code from its three 64-bit words, most significant first.
//
// No validation is done: any combination of words is a valid 192-bit integer.
func FromWords(hi, mid, lo uint64) Code {
	return Code{hi: hi, mid: mid, lo: lo}
}

// Words returns the three 64-bit words, most significant first.
func (c Code) Words() (hi, mid, lo uint64) {
	return c.hi, c.mid, c.lo
}

// Fields returns the raw radius, biased latitude and biased longitude fields.
func (c Code) Fields() (radius, latField, lonField uint64) {
	return c.hi, c.mid, c.lo
}

// IsZero reports whether c is the zero code.
func (c Code) IsZero() bool {
	return c == Zero
}

// Compare returns -1, 0 or +1 as c is less than, equal to or greater than other
// when both are read as unsigned integers.
func (c Code) Compare(other Code) int {
	switch {
	case c.hi != other.hi:
		return cmpUint64(c.hi, other.hi)
	case c.mid != other.mid:
		return cmpUint64(c.mid, other.mid)
	default:
		return cmpUint64(c.lo, other.lo)
	}
}

func cmpUint64(a, b uint64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}

	return 0
}

// And returns the bitwise AND of c and mask.
func (c Code) And(mask Code) Code {
	return Code{hi: c.hi & mask.hi, mid: c.mid & mask.mid, lo: c.lo & mask.lo}
}

// Or returns the bitwise OR of c and other.
func (c Code) Or(other Code) Code {
	return Code{hi: c.hi | other.hi, mid: c.mid | other.mid, lo: c.lo | other.lo}
}

// AndNot returns c with every bit set in mask cleared.
func (c Code) AndNot(mask Code) Code {
	return Code{hi: c.hi &^ mask.hi, mid: c.mid &^ mask.mid, lo: c.lo &^ mask.lo}
}

// BitLen returns the minimum number of bits needed to represent c.
func (c Code) BitLen() int {
	switch {
	case c.hi != 0:
		return 2*FieldBits + bits.Len64(c.hi)
	case c.mid != 0:
		return FieldBits + bits.Len64(c.mid)
	default:
		return bits.Len64(c.lo)
	}
}

// HighBitsMask returns a code with the top n bits set and all others clear.
// n is clamped to [0, TotalBits].
func HighBitsMask(n int) Code {
	n = clampBits(n)

	return Code{
		hi:  topOnes(n),
		mid: topOnes(n - FieldBits),
		lo:  topOnes(n - 2*FieldBits),
	}
}

// LowBitsMask returns a code with the bottom n bits set and all others clear.
// n is clamped to [0, TotalBits].
func LowBitsMask(n int) Code {
	all := HighBitsMask(TotalBits)

	return all.AndNot(HighBitsMask(TotalBits - clampBits(n)))
}

// topOnes returns a word whose top n bits are set, n clamped to [0, 64].
func topOnes(n int) uint64 {
	if n <= 0 {
		return 0
	}
	if n >= FieldBits {
		return ^uint64(0)
	}

	return ^uint64(0) << (FieldBits - n)
}

func clampBits(n int) int {
	if n < 0 {
		return 0
	}
	if n > TotalBits {
		return TotalBits
	}

	return n
}

// Bytes returns the 24-byte big-endian form of c.
func (c Code) Bytes() []byte {
	return c.AppendBytes(make([]byte, 0, Size))
}

// Array returns the 24-byte big-endian form of c as an array.
func (c Code) Array() [Size]byte {
	var out [Size]byte
	engine := endian.GetBigEndianEngine()
	engine.PutUint64(out[0:8], c.hi)
	engine.PutUint64(out[8:16], c.mid)
	engine.PutUint64(out[16:24], c.lo)

	return out
}

// AppendBytes appends the 24-byte big-endian form of c to dst.
func (c Code) AppendBytes(dst []byte) []byte {
	engine := endian.GetBigEndianEngine()
	dst = engine.AppendUint64(dst, c.hi)
	dst = engine.AppendUint64(dst, c.mid)

	return engine.AppendUint64(dst, c.lo)
}

// FromBytes reads a code from its 24-byte big-endian form.
//
// Returns:
//   - Code: The decoded code
//   - error: errs.ErrInvalidLength if b is not exactly 24 bytes
func FromBytes(b []byte) (Code, error) {
	if len(b) != Size {
		return Zero, fmt.Errorf("%w: expected %d bytes, got %d", errs.ErrInvalidLength, Size, len(b))
	}

	engine := endian.GetBigEndianEngine()

	return Code{
		hi:  engine.Uint64(b[0:8]),
		mid: engine.Uint64(b[8:16]),
		lo:  engine.Uint64(b[16:24]),
	}, nil
}

// Big returns c as a new big.Int.
func (c Code) Big() *big.Int {
	b := c.Array()
	return new(big.Int).SetBytes(b[:])
}

// FromBig converts a non-negative integer of at most 192 bits to a code.
func FromBig(v *big.Int) (Code, error) {
	if v == nil || v.Sign() < 0 {
		return Zero, fmt.Errorf("%w: negative or nil integer", errs.ErrOutOfRange)
	}
	if v.BitLen() > TotalBits {
		return Zero, fmt.Errorf("%w: integer has %d bits, max %d", errs.ErrOutOfRange, v.BitLen(), TotalBits)
	}

	var buf [Size]byte
	v.FillBytes(buf[:])

	return FromBytes(buf[:])
}

// Hash returns the xxHash64 of the 24-byte form of c.
func (c Code) Hash() uint64 {
	b := c.Array()
	return hash.Sum(b[:])
}
