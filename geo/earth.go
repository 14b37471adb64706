package geo

import (
	"math"

	"github.com/arloliu/uvoxid/spatial"
)

// WGS84 ellipsoid radii in micrometers.
const (
	EarthEquatorialRadiusUm = 6_378_137_000_000
	EarthPolarRadiusUm      = 6_356_752_000_000
)

// EarthRadiusAtLat returns the geocentric radius of the WGS84 ellipsoid at
// the given latitude, in micrometers.
func EarthRadiusAtLat(latMicrodeg int64) uint64 {
	phi := microdegToRad(latMicrodeg)
	cos, sin := math.Cos(phi), math.Sin(phi)

	const a, b = float64(EarthEquatorialRadiusUm), float64(EarthPolarRadiusUm)
	num := (a*a*cos)*(a*a*cos) + (b*b*sin)*(b*b*sin)
	den := (a*cos)*(a*cos) + (b*sin)*(b*sin)

	return uint64(math.Sqrt(num / den))
}

// IsInsideEarth reports whether radius rUm at the given position lies on or
// below the ellipsoid surface. The ellipsoid is symmetric in longitude, so
// lonMicrodeg does not affect the result.
func IsInsideEarth(rUm uint64, latMicrodeg, lonMicrodeg int64) bool {
	_ = lonMicrodeg

	return rUm <= EarthRadiusAtLat(latMicrodeg)
}

// IsCodeInsideEarth is IsInsideEarth on a decoded code.
func IsCodeInsideEarth(c spatial.Code) bool {
	return IsInsideEarth(c.Decode())
}

// AngularResolution returns the linear size in meters of one angular step at
// radius rUm when only sigChars Base32 symbols are significant. The kept bits
// are assumed to split evenly between latitude and longitude.
func AngularResolution(rUm uint64, sigChars int) float64 {
	bits := float64(sigChars * 5)
	delta := 2 * math.Pi / math.Exp2(bits/2)

	return float64(rUm) * VoxelSizeM * delta
}

// CubicEquivalentVoxelCount estimates how many angular cells of
// AngularResolution size fit across one cubic micrometer voxel face.
func CubicEquivalentVoxelCount(rUm uint64, sigChars int) float64 {
	angular := AngularResolution(rUm, sigChars)
	if angular == 0 {
		return math.Inf(1)
	}
	ratio := VoxelSizeM / angular

	return ratio * ratio
}
