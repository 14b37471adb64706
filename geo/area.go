package geo

import (
	"fmt"
	"math"

	"github.com/arloliu/uvoxid/errs"
	"github.com/arloliu/uvoxid/spatial"
)

// SphericalPatchArea returns the area in square meters of the patch bounded
// by two parallels and two meridians on a sphere of radius radiusUm:
//
//	A = R² · |Δλ| · |sin φ2 − sin φ1|
func SphericalPatchArea(radiusUm uint64, lat1Deg, lat2Deg, lon1Deg, lon2Deg float64) float64 {
	rM := float64(radiusUm) * VoxelSizeM
	dLon := math.Abs(degToRad(lon2Deg) - degToRad(lon1Deg))
	dSin := math.Abs(math.Sin(degToRad(lat2Deg)) - math.Sin(degToRad(lat1Deg)))

	return rM * rM * dLon * dSin
}

// AreaBetween returns the area of the patch whose opposite corners are a and b.
//
// Returns errs.ErrRadiusMismatch unless both codes lie on the same shell.
func AreaBetween(a, b spatial.Code) (float64, error) {
	ra, lat1, lon1 := a.Decode()
	rb, lat2, lon2 := b.Decode()
	if ra != rb {
		return 0, fmt.Errorf("%w: %d µm vs %d µm", errs.ErrRadiusMismatch, ra, rb)
	}

	return SphericalPatchArea(ra,
		microdegToDeg(lat1), microdegToDeg(lat2),
		microdegToDeg(lon1), microdegToDeg(lon2),
	), nil
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}

func microdegToDeg(v int64) float64 {
	return float64(v) / spatial.MicroDegree
}
