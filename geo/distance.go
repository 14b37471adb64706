package geo

import (
	"math"

	"github.com/arloliu/uvoxid/spatial"
)

// EarthMeanRadiusUm is the mean Earth radius in micrometers.
const EarthMeanRadiusUm = 6_371_000_000_000

type polar struct {
	rM, lat, lon float64 // meters, radians, radians
}

func toPolar(c spatial.Code) polar {
	r, lat, lon := c.Decode()

	return polar{
		rM:  float64(r) * VoxelSizeM,
		lat: microdegToRad(lat),
		lon: microdegToRad(lon),
	}
}

func microdegToRad(v int64) float64 {
	return float64(v) / spatial.MicroDegree * math.Pi / 180
}

// LinearDistance returns the straight-line chord between two codes in meters.
//
// The central angle comes from the spherical law of cosines, clamped to
// [-1, 1], and the chord from the planar law of cosines on both radii, so
// codes at different radii are handled exactly.
func LinearDistance(a, b spatial.Code) float64 {
	pa, pb := toPolar(a), toPolar(b)

	cosGamma := math.Sin(pa.lat)*math.Sin(pb.lat) +
		math.Cos(pa.lat)*math.Cos(pb.lat)*math.Cos(pb.lon-pa.lon)
	cosGamma = max(-1, min(1, cosGamma))

	d2 := pa.rM*pa.rM + pb.rM*pb.rM - 2*pa.rM*pb.rM*cosGamma

	return math.Sqrt(max(0, d2))
}

// HaversineDistance returns the great-circle distance between two codes in
// meters, measured on a sphere of their mean radius. The haversine term is
// clamped to [0, 1] so near-antipodal codes never yield NaN.
func HaversineDistance(a, b spatial.Code) float64 {
	ra, rb := a.Radius(), b.Radius()
	meanM := (float64(ra) + float64(rb)) / 2 * VoxelSizeM

	pa, pb := toPolar(a), toPolar(b)
	sinLat := math.Sin((pb.lat - pa.lat) / 2)
	sinLon := math.Sin((pb.lon - pa.lon) / 2)

	h := sinLat*sinLat + math.Cos(pa.lat)*math.Cos(pb.lat)*sinLon*sinLon
	h = max(0, min(1, h))
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return meanM * c
}
