package geo

import (
	"math"

	"peaknear-tools/pntools/convert"
)

// EarthRadiusKm is the mean Earth radius used for all spherical math.
const EarthRadiusKm = 6371.0

// Distance returns the great-circle distance between two points in
// kilometers, computed with the haversine formula and rounded to
// 3 decimal places.
func Distance(a, b LatLng) float64 {
	dLat := convert.ToRadians(b.Lat() - a.Lat())
	dLng := convert.ToRadians(b.Lng() - a.Lng())

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(convert.ToRadians(a.Lat()))*math.Cos(convert.ToRadians(b.Lat()))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return convert.RoundKm(EarthRadiusKm * c)
}
