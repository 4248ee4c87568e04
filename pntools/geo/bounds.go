package geo

import (
	"math"

	"peaknear-tools/pntools/convert"
)

// Bounds represents coordinate boundaries
type Bounds struct {
	MinLat, MinLng float64
	MaxLat, MaxLng float64
}

// Extend extends boundaries from given decimal degrees
func (b Bounds) Extend(inc float64) Bounds {
	b.MinLat -= inc
	b.MinLng -= inc
	b.MaxLat += inc
	b.MaxLng += inc
	return b
}

// Contains reports whether the point lies inside the bounds, edges included.
func (b Bounds) Contains(p LatLng) bool {
	return p.Lat() >= b.MinLat && p.Lat() <= b.MaxLat &&
		p.Lng() >= b.MinLng && p.Lng() <= b.MaxLng
}

// BoundsAround returns an axis-aligned box approximating a circle of the
// given radius (in kilometers) around the reference point.
//
// The approximation degrades near the poles, where cos(lat) shrinks the
// longitude delta towards a division by zero, and it does not wrap across
// the antimeridian: a reference point near ±180° will miss points on the
// other side of the seam.
func BoundsAround(ref LatLng, radiusKm float64) Bounds {
	angular := radiusKm / EarthRadiusKm
	latDelta := convert.ToDegrees(angular)
	lngDelta := convert.ToDegrees(math.Asin(angular) / math.Cos(convert.ToRadians(ref.Lat())))

	return Bounds{
		MinLat: ref.Lat() - latDelta,
		MaxLat: ref.Lat() + latDelta,
		MinLng: ref.Lng() - lngDelta,
		MaxLng: ref.Lng() + lngDelta,
	}
}
