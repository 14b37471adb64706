// Package endian provides byte order engines for uvoxid binary layouts.
//
// The 24-byte spatial code layout is always big-endian. Code-set headers may
// be written in either byte order, recorded in the header flag. Both cases
// go through EndianEngine so encoders can append integers without scratch
// buffers:
//
//	engine := endian.GetBigEndianEngine()
//	buf = engine.AppendUint64(buf, radius)
//
// All engines are immutable and safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// IsBigEndian reports whether engine writes the most significant byte first.
func IsBigEndian(engine EndianEngine) bool {
	var probe [2]byte
	engine.PutUint16(probe[:], 0x0102)

	return probe[0] == 0x01
}
