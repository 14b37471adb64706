package geo

import "github.com/arloliu/uvoxid/spatial"

// Delta is the change from one code to another.
type Delta struct {
	// DrUm is the radial change in micrometers, b minus a, wrapping at 64 bits.
	DrUm int64
	// DLatDeg is the latitude change in degrees.
	DLatDeg float64
	// DLonDeg is the longitude change in degrees, normalized to [-180, 180].
	DLonDeg float64
}

// SphericalDelta returns the change from a to b.
func SphericalDelta(a, b spatial.Code) Delta {
	ra, lat1, lon1 := a.Decode()
	rb, lat2, lon2 := b.Decode()

	dLon := microdegToDeg(lon2 - lon1)
	switch {
	case dLon > 180:
		dLon -= 360
	case dLon < -180:
		dLon += 360
	}

	return Delta{
		DrUm:    int64(rb - ra), //nolint:gosec // two's complement difference
		DLatDeg: microdegToDeg(lat2 - lat1),
		DLonDeg: dLon,
	}
}
