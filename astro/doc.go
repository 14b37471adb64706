// Package astro places the Sun and Moon in code space and derives simple
// observational quantities from them.
//
// The ephemeris is a low-precision mean-element model measured from the
// J2000.0 epoch (2000-01-01T12:00:00Z). Bodies are encoded on the ecliptic
// (latitude 0) at their mean distance, with longitudes wrapped into
// [-180, 180) degrees:
//
//	sun := astro.SunBarycenter(time.Now())
//	alt, az := astro.AltAzFromBody(observer, sun)
//
// The formulas are approximations for visualization and classification;
// they are not suitable for navigation or precise prediction.
package astro
