package geo

import (
	"math"
	"math/big"
)

const (
	// VoxelSizeM is the edge length of one voxel in meters.
	VoxelSizeM = 1e-6
	// voxelsPerMeter is exact in float64, unlike 1/VoxelSizeM.
	voxelsPerMeter = 1e6

	countPrec = 256
)

// VoxelVolumeM3 returns the volume of one voxel in cubic meters.
func VoxelVolumeM3() float64 {
	return VoxelSizeM * VoxelSizeM * VoxelSizeM
}

// CubeVoxels returns the number of voxels in a cube with the given side,
// truncated toward zero. Non-positive or non-finite sides hold no voxels.
func CubeVoxels(sideM float64) *big.Int {
	if !measurable(sideM) {
		return new(big.Int)
	}
	s := toVoxels(sideM)

	return truncate(product(s, s, s))
}

// SphereVoxels returns the number of voxels in a sphere with the given radius.
func SphereVoxels(radiusM float64) *big.Int {
	if !measurable(radiusM) {
		return new(big.Int)
	}
	r := toVoxels(radiusM)
	v := product(bigFloat(4.0/3.0*math.Pi), r, r, r)

	return truncate(v)
}

// CylinderVoxels returns the number of voxels in a cylinder.
func CylinderVoxels(radiusM, heightM float64) *big.Int {
	if !measurable(radiusM) || !measurable(heightM) {
		return new(big.Int)
	}
	r := toVoxels(radiusM)
	v := product(bigFloat(math.Pi), r, r, toVoxels(heightM))

	return truncate(v)
}

// measurable reports whether a dimension is positive and finite. NaN fails
// the comparison; big.Float.SetFloat64 panics on it.
func measurable(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

func bigFloat(x float64) *big.Float {
	return new(big.Float).SetPrec(countPrec).SetFloat64(x)
}

func toVoxels(m float64) *big.Float {
	return product(bigFloat(m), bigFloat(voxelsPerMeter))
}

func product(factors ...*big.Float) *big.Float {
	out := bigFloat(1)
	for _, f := range factors {
		out.Mul(out, f)
	}

	return out
}

func truncate(f *big.Float) *big.Int {
	n, _ := f.Int(nil)
	return n
}
