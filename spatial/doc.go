// Package spatial implements the 192-bit spatial code and its codecs.
//
// A Code packs a radius and a latitude/longitude pair into three unsigned
// 64-bit fields, most significant first:
//
//	bits 191..128  radius in micrometers, unbiased
//	bits 127..64   latitude in micro-degrees + 90,000,000
//	bits  63..0    longitude in micro-degrees + 180,000,000
//
// # Coordinate Codec
//
//	code, err := spatial.Encode(6_371_000_000_000, 25_760_000, -80_190_000)
//	r, lat, lon := spatial.Decode(code)
//
// Encode rejects angles outside their domains with errs.ErrOutOfRange rather
// than letting a biased value spill into the neighbouring field. Decode never
// fails.
//
// # Binary Codec
//
// The binary form is always 24 bytes, big-endian, one 8-byte field after the
// other. FromBytes rejects any other length with errs.ErrInvalidLength.
//
// # Text Codecs
//
// Three text forms exist, none of which trims leading zeros:
//
//	Hex:            000005cb5d311e00-00000000055d4a80-000000000aba9500
//	Base32 grouped: uvoxid:AAAALS25GEPAA-AAAAAAAFLVFIA-AAAAAAAKXKKQA
//	Base32 compact: uvoxid:AAAALS25GEPAAAAAAAAAKXKKQAAAAAAABK5JKAA
//
// The grouped form encodes each field separately and is the canonical text
// form used by String and MarshalText. The compact form encodes the 24 bytes
// as one blob, so its symbols line up with 5-bit slices of the integer; the
// tolerance package renders snapped codes through it. The two Base32 forms
// are distinct wire formats: ParseBase32 and ParseBase32Compact are not
// interchangeable.
//
// # Thread Safety
//
// Code is an immutable value and every function in this package is pure.
package spatial
