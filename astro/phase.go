package astro

import (
	"math"
	"time"

	"github.com/arloliu/uvoxid/spatial"
)

// Phase is a named lunar phase.
type Phase uint8

const (
	NewMoon Phase = iota
	WaxingCrescent
	FirstQuarter
	WaxingGibbous
	FullMoon
	WaningGibbous
	LastQuarter
	WaningCrescent
)

func (p Phase) String() string {
	switch p {
	case NewMoon:
		return "New Moon"
	case WaxingCrescent:
		return "Waxing Crescent"
	case FirstQuarter:
		return "First Quarter"
	case WaxingGibbous:
		return "Waxing Gibbous"
	case FullMoon:
		return "Full Moon"
	case WaningGibbous:
		return "Waning Gibbous"
	case LastQuarter:
		return "Last Quarter"
	case WaningCrescent:
		return "Waning Crescent"
	default:
		return "Unknown"
	}
}

// MoonElongation returns the eastward angle from the Sun to the Moon in
// degrees, in [0, 360), measured on the encoded longitudes.
func MoonElongation(t time.Time) float64 {
	sun := SunBarycenter(t).Longitude()
	moon := MoonBarycenter(t).Longitude()

	e := math.Mod(float64(moon-sun)/spatial.MicroDegree, 360)
	if e < 0 {
		e += 360
	}

	return e
}

// MoonPhaseAngle returns the Sun-Earth-Moon angle in degrees, folded into
// [0, 180]: 0 is new moon and 180 is full moon.
func MoonPhaseAngle(t time.Time) float64 {
	e := MoonElongation(t)
	if e > 180 {
		return 360 - e
	}

	return e
}

// MoonPhaseOf returns the named phase at time t.
func MoonPhaseOf(t time.Time) Phase {
	return PhaseForElongation(MoonElongation(t))
}

// PhaseForElongation names the phase for an elongation in [0, 360).
func PhaseForElongation(deg float64) Phase {
	switch {
	case deg < 10:
		return NewMoon
	case deg < 80:
		return WaxingCrescent
	case deg < 100:
		return FirstQuarter
	case deg < 170:
		return WaxingGibbous
	case deg < 190:
		return FullMoon
	case deg < 260:
		return WaningGibbous
	case deg < 280:
		return LastQuarter
	case deg < 350:
		return WaningCrescent
	default:
		return NewMoon
	}
}
