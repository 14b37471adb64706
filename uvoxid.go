// Package uvoxid provides a 192-bit spatial identifier for points in
// spherical space, with lossless binary and text forms and tolerance-based
// comparison.
//
// A code packs a radius in micrometers and a latitude/longitude pair in
// millionths of a degree into three 64-bit fields. The same point always
// yields the same code, and every form keeps all 192 bits.
//
// # Basic Usage
//
//	code, err := uvoxid.Encode(6_371_000_000_000, 0, 0)
//	if err != nil {
//	    return err
//	}
//
//	s := code.String() // uvoxid:AAAALS25GEPAA-AAAAAAAFLVFIA-AAAAAAAKXKKQA
//	back, f, err := uvoxid.Parse(s)
//
// Approximate comparison at a chosen number of significant Base32 symbols:
//
//	same, _ := uvoxid.EqualWithin(a, b, 6)
//	key, _ := uvoxid.Snap(a, 6)
//
// Packing many codes:
//
//	data, err := uvoxid.PackCodes(codes, codeset.WithSorted())
//	set, err := uvoxid.UnpackCodes(data)
//
// # Package Structure
//
// This package provides convenient top-level wrappers. The spatial package
// holds the code type and its codecs, tolerance the comparison engine,
// codeset the binary container, and geo, astro and entangle the helpers
// built on decoded codes.
package uvoxid

import (
	"fmt"
	"strings"

	"github.com/arloliu/uvoxid/codeset"
	"github.com/arloliu/uvoxid/errs"
	"github.com/arloliu/uvoxid/format"
	"github.com/arloliu/uvoxid/spatial"
	"github.com/arloliu/uvoxid/tolerance"
)

// Code is a 192-bit spatial code.
type Code = spatial.Code

var defaultPackOptions = []codeset.EncoderOption{
	codeset.WithLittleEndian(),
	codeset.WithCompression(format.CompressionZstd),
}

// Encode packs a radius in micrometers and a latitude/longitude pair in
// millionths of a degree.
//
// Returns errs.ErrOutOfRange if latitude is outside ±90° or longitude outside ±180°.
func Encode(radiusUm uint64, latMicrodeg, lonMicrodeg int64) (Code, error) {
	return spatial.Encode(radiusUm, latMicrodeg, lonMicrodeg)
}

// EncodeDegrees is Encode with angles in degrees, truncated to micro-degrees.
func EncodeDegrees(radiusUm uint64, latDeg, lonDeg float64) (Code, error) {
	return spatial.EncodeDegrees(radiusUm, latDeg, lonDeg)
}

// Decode unpacks a code into its radius and angles. It never fails.
func Decode(c Code) (radiusUm uint64, latMicrodeg, lonMicrodeg int64) {
	return spatial.Decode(c)
}

// Format renders c in the given text form.
func Format(c Code, f format.TextFormat) (string, error) {
	switch f {
	case format.TextHex:
		return c.Hex(), nil
	case format.TextBase32:
		return c.Base32(), nil
	case format.TextBase32Compact:
		return c.Base32Compact(), nil
	default:
		return "", fmt.Errorf("%w: unknown text format %d", errs.ErrInvalidFormat, uint8(f))
	}
}

// ParseAs parses s in the given text form.
func ParseAs(s string, f format.TextFormat) (Code, error) {
	switch f {
	case format.TextHex:
		return spatial.ParseHex(s)
	case format.TextBase32:
		return spatial.ParseBase32(s)
	case format.TextBase32Compact:
		return spatial.ParseBase32Compact(s)
	default:
		return spatial.Zero, fmt.Errorf("%w: unknown text format %d", errs.ErrInvalidFormat, uint8(f))
	}
}

// DetectFormat guesses the text form of s from its tag, separators and length.
//
// Hex strings carry 48 digits and no tag. Base32 strings carry 39 symbols;
// with separators they are grouped, without they are compact.
func DetectFormat(s string) (format.TextFormat, error) {
	s = strings.TrimSpace(s)
	tagged := strings.HasPrefix(s, spatial.Tag)
	body := strings.TrimPrefix(s, spatial.Tag)
	grouped := strings.Contains(body, spatial.Separator)
	symbols := len(strings.ReplaceAll(body, spatial.Separator, ""))

	switch {
	case !tagged && symbols == spatial.HexLen:
		return format.TextHex, nil
	case symbols == spatial.CompactLen && grouped:
		return format.TextBase32, nil
	case symbols == spatial.CompactLen:
		return format.TextBase32Compact, nil
	default:
		return 0, fmt.Errorf("%w: cannot detect text form of %q", errs.ErrInvalidFormat, s)
	}
}

// Parse detects the text form of s and parses it.
func Parse(s string) (Code, format.TextFormat, error) {
	f, err := DetectFormat(s)
	if err != nil {
		return spatial.Zero, 0, err
	}

	c, err := ParseAs(strings.TrimSpace(s), f)
	if err != nil {
		return spatial.Zero, 0, err
	}

	return c, f, nil
}

// Truncate keeps the top sigChars*5 bits of c.
func Truncate(c Code, sigChars int) (Code, error) {
	return tolerance.Truncate(c, sigChars)
}

// EqualWithin reports whether a and b agree on their top sigChars*5 bits.
func EqualWithin(a, b Code, sigChars int) (bool, error) {
	return tolerance.EqualWithin(a, b, sigChars)
}

// Snap renders c at the given tolerance as a fixed-length canonical string.
func Snap(c Code, sigChars int) (string, error) {
	return tolerance.Snap(c, sigChars)
}

// PackCodes serializes codes into a code set. Without options the set is
// little-endian and Zstd-compressed; opts are applied after the defaults.
func PackCodes(codes []Code, opts ...codeset.EncoderOption) ([]byte, error) {
	enc, err := codeset.NewEncoder(append(defaultPackOptions[:len(defaultPackOptions):len(defaultPackOptions)], opts...)...)
	if err != nil {
		return nil, err
	}
	if err := enc.AddAll(codes...); err != nil {
		return nil, err
	}

	return enc.Finish()
}

// UnpackCodes decodes and verifies a code set.
func UnpackCodes(data []byte) (*codeset.Set, error) {
	return codeset.Decode(data)
}
