package astro

import (
	"math"
	"time"

	"github.com/arloliu/uvoxid/spatial"
)

const (
	// AstronomicalUnitUm is one astronomical unit in micrometers.
	AstronomicalUnitUm = 149_597_870_700_000_000
	// MoonDistanceUm is the mean Earth-Moon distance in micrometers.
	MoonDistanceUm = 384_400_000_000
)

// j2000 is the reference epoch of the ephemeris.
var j2000 = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

// DaysSinceJ2000 returns the fractional days elapsed since J2000.0.
func DaysSinceJ2000(t time.Time) float64 {
	return t.Sub(j2000).Seconds() / 86400
}

// SunLongitudeDeg returns the apparent ecliptic longitude of the Sun in
// degrees, wrapped into [-180, 180).
func SunLongitudeDeg(t time.Time) float64 {
	n := DaysSinceJ2000(t)
	meanLon := math.Mod(280.46+0.9856474*n, 360)
	anomaly := degToRad(math.Mod(357.528+0.9856003*n, 360))

	return wrapLongitude(meanLon + 1.915*math.Sin(anomaly) + 0.020*math.Sin(2*anomaly))
}

// MoonLongitudeDeg returns the mean ecliptic longitude of the Moon in
// degrees, wrapped into [-180, 180).
func MoonLongitudeDeg(t time.Time) float64 {
	n := DaysSinceJ2000(t)

	return wrapLongitude(218.316 + 13.176396*n)
}

// SunBarycenter returns the code of the Sun at time t: one astronomical unit
// out, on the ecliptic, at its apparent longitude.
func SunBarycenter(t time.Time) spatial.Code {
	return bodyCode(AstronomicalUnitUm, SunLongitudeDeg(t))
}

// MoonBarycenter returns the code of the Moon at time t: mean distance, on
// the ecliptic, at its mean longitude.
func MoonBarycenter(t time.Time) spatial.Code {
	return bodyCode(MoonDistanceUm, MoonLongitudeDeg(t))
}

func bodyCode(radiusUm uint64, lonDeg float64) spatial.Code {
	lon := int64(lonDeg * spatial.MicroDegree)
	// Wrapped longitudes are always inside the domain.
	code, _ := spatial.Encode(radiusUm, 0, lon)

	return code
}

// AltAzFromBody returns the altitude and azimuth in degrees of body as seen
// from voxel. Azimuth is in [0, 360).
//
// The body's latitude is used as its declination and the longitude
// difference as its hour angle.
func AltAzFromBody(voxel, body spatial.Code) (altDeg, azDeg float64) {
	lat := degToRad(float64(voxel.Latitude()) / spatial.MicroDegree)
	lon := degToRad(float64(voxel.Longitude()) / spatial.MicroDegree)
	decl := degToRad(float64(body.Latitude()) / spatial.MicroDegree)
	bodyLon := degToRad(float64(body.Longitude()) / spatial.MicroDegree)

	hour := lon - bodyLon
	sinAlt := math.Sin(lat)*math.Sin(decl) + math.Cos(lat)*math.Cos(decl)*math.Cos(hour)
	alt := math.Asin(max(-1, min(1, sinAlt)))
	az := math.Atan2(-math.Sin(hour), math.Tan(decl)*math.Cos(lat)-math.Sin(lat)*math.Cos(hour))

	return radToDeg(alt), math.Mod(radToDeg(az)+360, 360)
}

// SolarAltAz returns the altitude and azimuth of the Sun from voxel at time t.
func SolarAltAz(voxel spatial.Code, t time.Time) (altDeg, azDeg float64) {
	return AltAzFromBody(voxel, SunBarycenter(t))
}

// LunarAltAz returns the altitude and azimuth of the Moon from voxel at time t.
func LunarAltAz(voxel spatial.Code, t time.Time) (altDeg, azDeg float64) {
	return AltAzFromBody(voxel, MoonBarycenter(t))
}

func wrapLongitude(deg float64) float64 {
	x := math.Mod(deg+180, 360)
	if x < 0 {
		x += 360
	}

	return x - 180
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}

func radToDeg(r float64) float64 {
	return r * 180 / math.Pi
}
