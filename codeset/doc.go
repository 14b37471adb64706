// Package codeset encodes lists of spatial codes into a compact, checksummed
// binary container.
//
// # Layout
//
//	offset size field
//	0      2    options, always little-endian
//	             bit 0     byte order of everything below (1 = big-endian)
//	             bit 1     payload sorted ascending
//	             bits 2-3  reserved, zero
//	             bits 4-15 magic 0xC5D
//	2      1    compression (format.CompressionType)
//	3      1    reserved, zero
//	4      4    code count
//	8      8    xxHash64 of the uncompressed payload
//	16     n    payload: count codes of 24 bytes, compressed
//
// Each payload code is its three 64-bit fields, radius first, in the byte
// order selected by bit 0. With big-endian order a payload code is identical
// to the code's own 24-byte binary form.
//
// # Usage
//
//	enc, err := codeset.NewEncoder(
//	    codeset.WithCompression(format.CompressionZstd),
//	    codeset.WithSorted(),
//	)
//	if err != nil {
//	    return err
//	}
//	_ = enc.AddAll(codes...)
//	data, err := enc.Finish()
//
//	set, err := codeset.Decode(data)
//	for i, c := range set.All() {
//	    fmt.Println(i, c)
//	}
//
// The container is a wire encoding only; it does not index or query codes
// beyond Set.Contains.
package codeset
