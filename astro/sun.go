package astro

// SolarRadiusUm is the mean solar radius in micrometers.
const SolarRadiusUm = 696_340_000_000_000

// InterplanetarySpace is the classification of radii outside every layer.
const InterplanetarySpace = "Interplanetary Space"

// Layer is a radial shell of the Sun, bounds inclusive.
type Layer struct {
	Name  string
	MinUm uint64
	MaxUm uint64
}

// Contains reports whether rUm lies within the layer.
func (l Layer) Contains(rUm uint64) bool {
	return l.MinUm <= rUm && rUm <= l.MaxUm
}

// SolarLayers returns the approximate solar layers from the center outward.
// The photosphere overlaps the top of the convective zone.
func SolarLayers() []Layer {
	return []Layer{
		{Name: "Core", MinUm: 0, MaxUm: SolarRadiusUm / 4},
		{Name: "Radiative Zone", MinUm: SolarRadiusUm / 4, MaxUm: SolarRadiusUm * 70 / 100},
		{Name: "Convective Zone", MinUm: SolarRadiusUm * 70 / 100, MaxUm: SolarRadiusUm},
		{Name: "Photosphere", MinUm: SolarRadiusUm * 999 / 1000, MaxUm: SolarRadiusUm},
		{Name: "Corona", MinUm: SolarRadiusUm, MaxUm: 2 * SolarRadiusUm},
	}
}

// ClassifySunRadius names the solar layer at distance rUm from the center.
// Where layers overlap the thinnest one wins, so the photosphere is reported
// over the convective zone below it and the corona above it.
func ClassifySunRadius(rUm uint64) string {
	name := InterplanetarySpace
	var span uint64
	found := false
	for _, l := range SolarLayers() {
		if !l.Contains(rUm) {
			continue
		}
		if s := l.MaxUm - l.MinUm; !found || s < span {
			name, span, found = l.Name, s, true
		}
	}

	return name
}

// IsInsideSun reports whether rUm is at or below the mean solar radius.
func IsInsideSun(rUm uint64) bool {
	return rUm <= SolarRadiusUm
}
