// Package geo provides geometry helpers over decoded spatial codes.
//
// All helpers work on the (radius, latitude, longitude) triple of a code and
// return SI units: meters, square meters, voxel counts. A voxel is one
// micrometer along each axis.
//
//	miami, _ := spatial.EncodeDegrees(geo.EarthMeanRadiusUm, 25.76, -80.19)
//	nyc, _ := spatial.EncodeDegrees(geo.EarthMeanRadiusUm, 40.71, -74.01)
//	geo.HaversineDistance(miami, nyc) // ~1.76e6 m
//
// Every function is pure and safe for concurrent use.
package geo
