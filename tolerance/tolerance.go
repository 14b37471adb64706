package tolerance

import (
	"fmt"
	"strings"

	"github.com/arloliu/uvoxid/errs"
	"github.com/arloliu/uvoxid/internal/hash"
	"github.com/arloliu/uvoxid/spatial"
)

const (
	// BitsPerChar is the number of bits carried by one Base32 symbol.
	BitsPerChar = 5
	// MaxSigChars is the largest tolerance level. 38 symbols cover 190 bits;
	// the lowest 2 bits of a code can never be significant.
	MaxSigChars = spatial.TotalBits / BitsPerChar
	// CanonicalLength is the symbol count of a snapped string, equal to the
	// compact Base32 length. The last symbol of a snapped string is always 'A'.
	CanonicalLength = spatial.CompactLen
	// PadChar is the Base32 symbol for five zero bits.
	PadChar = 'A'
)

// Level is a tolerance level: the number of leading Base32 symbols treated as
// significant.
type Level int

// Validate returns errs.ErrOutOfRange unless 0 <= l <= MaxSigChars.
func (l Level) Validate() error {
	if l < 0 || l > MaxSigChars {
		return fmt.Errorf("%w: sig chars %d not in [0, %d]", errs.ErrOutOfRange, int(l), MaxSigChars)
	}

	return nil
}

// Bits returns the number of significant bits kept at this level.
func (l Level) Bits() int {
	return int(l) * BitsPerChar
}

// Truncate clears every bit below the top sigChars*5 bits of c.
//
// Parameters:
//   - c: Code to truncate
//   - sigChars: Tolerance level in [0, MaxSigChars]
//
// Returns:
//   - spatial.Code: The truncated code; Truncate(c, 0) is always zero
//   - error: errs.ErrOutOfRange if sigChars is outside [0, MaxSigChars]
func Truncate(c spatial.Code, sigChars int) (spatial.Code, error) {
	level := Level(sigChars)
	if err := level.Validate(); err != nil {
		return spatial.Zero, err
	}

	return c.And(spatial.HighBitsMask(level.Bits())), nil
}

// EqualWithin reports whether a and b agree on their top sigChars*5 bits.
func EqualWithin(a, b spatial.Code, sigChars int) (bool, error) {
	ta, err := Truncate(a, sigChars)
	if err != nil {
		return false, err
	}
	tb, err := Truncate(b, sigChars)
	if err != nil {
		return false, err
	}

	return ta == tb, nil
}

// Snap renders c at the given tolerance level as a canonical string.
//
// The code is truncated, rendered in compact Base32, cut to its first
// sigChars symbols and right-padded with 'A' to CanonicalLength symbols:
//
//	uvoxid:AAAALSAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA
//
// Two codes snap to the same string exactly when EqualWithin reports them
// equal, and spatial.ParseBase32Compact of the result yields the truncated
// code.
func Snap(c spatial.Code, sigChars int) (string, error) {
	truncated, err := Truncate(c, sigChars)
	if err != nil {
		return "", err
	}

	symbols := strings.TrimPrefix(truncated.Base32Compact(), spatial.Tag)

	var sb strings.Builder
	sb.Grow(len(spatial.Tag) + CanonicalLength)
	sb.WriteString(spatial.Tag)
	sb.WriteString(symbols[:sigChars])
	for range CanonicalLength - sigChars {
		sb.WriteByte(PadChar)
	}

	return sb.String(), nil
}

// Bucket returns a hash of c truncated to sigChars symbols, suitable as a map
// key for grouping codes that are equal within that tolerance.
func Bucket(c spatial.Code, sigChars int) (uint64, error) {
	truncated, err := Truncate(c, sigChars)
	if err != nil {
		return 0, err
	}
	b := truncated.Array()

	return hash.Sum(b[:]), nil
}
