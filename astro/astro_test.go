package astro

import (
	"testing"
	"time"

	"github.com/arloliu/uvoxid/spatial"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

func TestDaysSinceJ2000(t *testing.T) {
	require.Zero(t, DaysSinceJ2000(epoch))
	require.InDelta(t, 1.5, DaysSinceJ2000(epoch.Add(36*time.Hour)), 1e-12)
	require.InDelta(t, -1, DaysSinceJ2000(epoch.Add(-24*time.Hour)), 1e-12)
}

func TestBarycenters(t *testing.T) {
	tests := []struct {
		name    string
		at      time.Time
		sunLon  float64
		moonLon float64
	}{
		{"epoch", epoch, -79.624320, -141.684},
		{"ten days later", epoch.Add(240 * time.Hour), -69.432315, -9.920040},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.sunLon, SunLongitudeDeg(tt.at), 1e-5)
			require.InDelta(t, tt.moonLon, MoonLongitudeDeg(tt.at), 1e-5)

			sun := SunBarycenter(tt.at)
			require.Equal(t, uint64(AstronomicalUnitUm), sun.Radius())
			require.Zero(t, sun.Latitude())
			require.InDelta(t, tt.sunLon*1e6, float64(sun.Longitude()), 10)

			moon := MoonBarycenter(tt.at)
			require.Equal(t, uint64(MoonDistanceUm), moon.Radius())
			require.Zero(t, moon.Latitude())
			require.InDelta(t, tt.moonLon*1e6, float64(moon.Longitude()), 10)
		})
	}
}

func TestBarycenters_LongitudeAlwaysWrapped(t *testing.T) {
	at := epoch
	for range 400 {
		for _, lon := range []float64{SunLongitudeDeg(at), MoonLongitudeDeg(at)} {
			require.GreaterOrEqual(t, lon, -180.0)
			require.Less(t, lon, 180.0)
		}
		at = at.Add(23 * time.Hour)
	}

	// Far from the epoch the mean longitude runs through many turns.
	far := time.Date(2150, time.March, 3, 0, 0, 0, 0, time.UTC)
	require.Less(t, MoonLongitudeDeg(far), 180.0)
	require.GreaterOrEqual(t, MoonLongitudeDeg(far), -180.0)
}

func TestAltAzFromBody(t *testing.T) {
	body, err := spatial.Encode(MoonDistanceUm, 0, 30_000_000)
	require.NoError(t, err)

	t.Run("overhead", func(t *testing.T) {
		voxel, err := spatial.Encode(6_371_000_000_000, 0, 30_000_000)
		require.NoError(t, err)
		alt, az := AltAzFromBody(voxel, body)
		require.InDelta(t, 90, alt, 1e-9)
		require.InDelta(t, 0, az, 1e-9)
	})

	t.Run("on the western horizon", func(t *testing.T) {
		voxel, err := spatial.Encode(6_371_000_000_000, 0, 120_000_000)
		require.NoError(t, err)
		alt, az := AltAzFromBody(voxel, body)
		require.InDelta(t, 0, alt, 1e-9)
		require.InDelta(t, 270, az, 1e-9)
	})

	t.Run("azimuth range", func(t *testing.T) {
		for lat := int64(-80); lat <= 80; lat += 20 {
			for lon := int64(-180); lon < 180; lon += 30 {
				voxel, err := spatial.Encode(6_371_000_000_000, lat*1_000_000, lon*1_000_000)
				require.NoError(t, err)
				alt, az := AltAzFromBody(voxel, body)
				require.GreaterOrEqual(t, alt, -90.0)
				require.LessOrEqual(t, alt, 90.0)
				require.GreaterOrEqual(t, az, 0.0)
				require.Less(t, az, 360.0)
			}
		}
	})

	t.Run("solar and lunar wrappers", func(t *testing.T) {
		voxel, err := spatial.EncodeDegrees(6_371_000_000_000, 25.76, -80.19)
		require.NoError(t, err)

		alt, az := SolarAltAz(voxel, epoch)
		wantAlt, wantAz := AltAzFromBody(voxel, SunBarycenter(epoch))
		require.Equal(t, wantAlt, alt)
		require.Equal(t, wantAz, az)

		alt, az = LunarAltAz(voxel, epoch)
		wantAlt, wantAz = AltAzFromBody(voxel, MoonBarycenter(epoch))
		require.Equal(t, wantAlt, alt)
		require.Equal(t, wantAz, az)
	})
}

func TestTides(t *testing.T) {
	require.InEpsilon(t, 1.1004758756424526e-06, LunarTideStrength(), 1e-12)
	require.InEpsilon(t, 5.052232484750291e-07, SolarTideStrength(), 1e-12)
	require.Greater(t, LunarTideStrength(), SolarTideStrength())

	// Doubling the distance weakens the tide eightfold.
	require.InEpsilon(t, TidalForce(1e20, 1e8)/8, TidalForce(1e20, 2e8), 1e-12)
}

func TestMoonPhase(t *testing.T) {
	tests := []struct {
		name       string
		at         time.Time
		elongation float64
		angle      float64
		phase      Phase
	}{
		{"epoch", epoch, 297.94032, 62.05968, WaningCrescent},
		{"seven and a half days", epoch.Add(180 * time.Hour), 29.118957, 29.118957, WaxingCrescent},
		{"ten days", epoch.Add(240 * time.Hour), 59.512275, 59.512275, WaxingCrescent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.elongation, MoonElongation(tt.at), 1e-5)
			require.InDelta(t, tt.angle, MoonPhaseAngle(tt.at), 1e-5)
			require.Equal(t, tt.phase, MoonPhaseOf(tt.at))
		})
	}

	t.Run("angle is folded", func(t *testing.T) {
		at := epoch
		for range 200 {
			angle := MoonPhaseAngle(at)
			require.GreaterOrEqual(t, angle, 0.0)
			require.LessOrEqual(t, angle, 180.0)
			at = at.Add(7 * time.Hour)
		}
	})

	t.Run("every phase occurs within a month", func(t *testing.T) {
		seen := map[Phase]bool{}
		for h := 0; h < 30*24; h += 3 {
			seen[MoonPhaseOf(epoch.Add(time.Duration(h)*time.Hour))] = true
		}
		require.Len(t, seen, 8)
	})
}

func TestPhaseForElongation(t *testing.T) {
	tests := []struct {
		deg  float64
		want Phase
	}{
		{0, NewMoon},
		{9.99, NewMoon},
		{10, WaxingCrescent},
		{90, FirstQuarter},
		{120, WaxingGibbous},
		{180, FullMoon},
		{200, WaningGibbous},
		{270, LastQuarter},
		{300, WaningCrescent},
		{355, NewMoon},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, PhaseForElongation(tt.deg), "%v", tt.deg)
	}

	require.Equal(t, "Full Moon", FullMoon.String())
	require.Equal(t, "Waning Crescent", WaningCrescent.String())
	require.Equal(t, "Unknown", Phase(99).String())
}

func TestSolarLayers(t *testing.T) {
	tests := []struct {
		r    uint64
		want string
	}{
		{0, "Core"},
		{SolarRadiusUm / 5, "Core"},
		{SolarRadiusUm / 2, "Radiative Zone"},
		{SolarRadiusUm * 8 / 10, "Convective Zone"},
		{SolarRadiusUm * 9995 / 10000, "Photosphere"},
		{SolarRadiusUm, "Photosphere"},
		{SolarRadiusUm * 3 / 2, "Corona"},
		{SolarRadiusUm * 3, InterplanetarySpace},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, ClassifySunRadius(tt.r), "%d", tt.r)
	}

	layers := SolarLayers()
	require.Len(t, layers, 5)
	layers[0].Name = "changed"
	require.Equal(t, "Core", SolarLayers()[0].Name)

	require.True(t, IsInsideSun(SolarRadiusUm))
	require.False(t, IsInsideSun(SolarRadiusUm+1))
}
