package astro

const (
	// GravitationalConstant in m³/(kg·s²).
	GravitationalConstant = 6.67430e-11
	// EarthRadiusM is the mean Earth radius in meters.
	EarthRadiusM = 6.371e6

	MoonMassKg = 7.35e22
	SunMassKg  = 1.989e30

	moonDistanceM = 384_400e3
	sunDistanceM  = 1.496e11
)

// TidalForce returns the peak tidal acceleration in m/s² that a body of
// massKg at distM raises across the Earth's radius: 2·G·M·R / d³.
func TidalForce(massKg, distM float64) float64 {
	return 2 * GravitationalConstant * massKg * EarthRadiusM / (distM * distM * distM)
}

// LunarTideStrength returns the tidal acceleration of the Moon at its mean distance.
func LunarTideStrength() float64 {
	return TidalForce(MoonMassKg, moonDistanceM)
}

// SolarTideStrength returns the tidal acceleration of the Sun at 1 AU.
func SolarTideStrength() float64 {
	return TidalForce(SunMassKg, sunDistanceM)
}
