package spatial

import (
	"fmt"

	"github.com/arloliu/uvoxid/errs"
)

// Angular domains in millionths of a degree. The bias of each field equals
// the magnitude of its lower bound so the stored value is never negative.
const (
	MicroDegree = 1_000_000

	MinLatMicrodeg = -90 * MicroDegree
	MaxLatMicrodeg = 90 * MicroDegree
	MinLonMicrodeg = -180 * MicroDegree
	MaxLonMicrodeg = 180 * MicroDegree

	LatBias = uint64(-MinLatMicrodeg)
	LonBias = uint64(-MinLonMicrodeg)
)

// Encode packs a radius and a latitude/longitude pair into a code.
//
// The radius is stored unchanged in the top field. Latitude and longitude are
// biased by LatBias and LonBias so that both fields are unsigned.
//
// Parameters:
//   - radiusUm: Radius in micrometers, full uint64 range
//   - latMicrodeg: Latitude in millionths of a degree, [-90e6, 90e6]
//   - lonMicrodeg: Longitude in millionths of a degree, [-180e6, 180e6]
//
// Returns:
//   - Code: The packed code
//   - error: errs.ErrOutOfRange if latitude or longitude is outside its domain
func Encode(radiusUm uint64, latMicrodeg, lonMicrodeg int64) (Code, error) {
	if latMicrodeg < MinLatMicrodeg || latMicrodeg > MaxLatMicrodeg {
		return Zero, fmt.Errorf("%w: latitude %d microdeg not in [%d, %d]",
			errs.ErrOutOfRange, latMicrodeg, MinLatMicrodeg, MaxLatMicrodeg)
	}
	if lonMicrodeg < MinLonMicrodeg || lonMicrodeg > MaxLonMicrodeg {
		return Zero, fmt.Errorf("%w: longitude %d microdeg not in [%d, %d]",
			errs.ErrOutOfRange, lonMicrodeg, MinLonMicrodeg, MaxLonMicrodeg)
	}

	return Code{
		hi:  radiusUm,
		mid: uint64(latMicrodeg - MinLatMicrodeg),
		lo:  uint64(lonMicrodeg - MinLonMicrodeg),
	}, nil
}

// EncodeDegrees is Encode with latitude and longitude given in degrees.
//
// Degrees are scaled to micro-degrees and truncated toward zero.
func EncodeDegrees(radiusUm uint64, latDeg, lonDeg float64) (Code, error) {
	return Encode(radiusUm, int64(latDeg*MicroDegree), int64(lonDeg*MicroDegree))
}

// Decode unpacks a code into radius, latitude and longitude.
//
// Decode never fails and never validates. Codes built outside Encode, for
// example by truncation, may yield angles outside the nominal domains; fields
// above 2^63 wrap when converted to int64.
func Decode(c Code) (radiusUm uint64, latMicrodeg, lonMicrodeg int64) {
	return c.hi, int64(c.mid - LatBias), int64(c.lo - LonBias) //nolint:gosec
}

// Decode is the method form of the package-level Decode.
func (c Code) Decode() (radiusUm uint64, latMicrodeg, lonMicrodeg int64) {
	return Decode(c)
}

// Radius returns the radius field in micrometers.
func (c Code) Radius() uint64 {
	return c.hi
}

// Latitude returns the latitude in millionths of a degree.
func (c Code) Latitude() int64 {
	return int64(c.mid - LatBias) //nolint:gosec
}

// Longitude returns the longitude in millionths of a degree.
func (c Code) Longitude() int64 {
	return int64(c.lo - LonBias) //nolint:gosec
}
