// Package tolerance compares and canonicalizes spatial codes at a chosen
// precision.
//
// A tolerance level counts leading Base32 symbols of the compact form. Level
// n keeps the top n*5 bits of the 192-bit code; the finest level, 38, keeps
// 190 bits and level 0 keeps none.
//
//	a, _ := spatial.Encode(6_371_000_000_000, 25_760_000, -80_190_000)
//	b, _ := spatial.Encode(6_371_000_000_000, 25_760_001, -80_190_001)
//	tolerance.EqualWithin(a, b, 6)  // true
//	tolerance.EqualWithin(a, b, 38) // false
//
// Snap renders the truncated code as a fixed-length string of 39 symbols, so
// snapped strings can be compared or used as keys directly.
package tolerance
