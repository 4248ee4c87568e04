package geo_test

import (
	"peaknear-tools/pntools/geo"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtendBounds(t *testing.T) {
	require := require.New(t)
	bounds := geo.Bounds{
		MinLat: 46.1344333,
		MaxLat: 46.2714123,
		MinLng: 15.2064235,
		MaxLng: 15.3771830,
	}

	newBounds := bounds.Extend(0.01)

	require.Equal(46.1244333, newBounds.MinLat)
	require.Equal(46.2814123, newBounds.MaxLat)
	require.Equal(15.1964235, newBounds.MinLng)
	require.Equal(15.3871830, newBounds.MaxLng)
}

func TestContains(t *testing.T) {
	require := require.New(t)
	bounds := geo.Bounds{MinLat: 46.0, MaxLat: 46.5, MinLng: 15.0, MaxLng: 15.5}

	tests := map[string]struct {
		point geo.Point
		want  bool
	}{
		"inside":       {point: geo.Point{Latitude: 46.25, Longitude: 15.25}, want: true},
		"min_lat_edge": {point: geo.Point{Latitude: 46.0, Longitude: 15.25}, want: true},
		"max_lat_edge": {point: geo.Point{Latitude: 46.5, Longitude: 15.25}, want: true},
		"min_lng_edge": {point: geo.Point{Latitude: 46.25, Longitude: 15.0}, want: true},
		"max_lng_edge": {point: geo.Point{Latitude: 46.25, Longitude: 15.5}, want: true},
		"north_of_box": {point: geo.Point{Latitude: 46.6, Longitude: 15.25}, want: false},
		"south_of_box": {point: geo.Point{Latitude: 45.9, Longitude: 15.25}, want: false},
		"east_of_box":  {point: geo.Point{Latitude: 46.25, Longitude: 15.6}, want: false},
		"west_of_box":  {point: geo.Point{Latitude: 46.25, Longitude: 14.9}, want: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(tc.want, bounds.Contains(tc.point))
		})
	}
}

func TestBoundsAround(t *testing.T) {
	require := require.New(t)

	ref := geo.Point{Latitude: 46.2194828, Longitude: 15.2719759}
	b := geo.BoundsAround(ref, 10.0)

	// 10km at this latitude is roughly 0.09° of latitude and 0.13° of longitude.
	require.InDelta(0.08993, b.MaxLat-ref.Latitude, 1e-4)
	require.InDelta(0.08993, ref.Latitude-b.MinLat, 1e-4)
	require.InDelta(0.12999, b.MaxLng-ref.Longitude, 1e-4)
	require.InDelta(0.12999, ref.Longitude-b.MinLng, 1e-4)
}

// Every point within the radius must fall inside the box. This only holds
// away from the poles, so the property is checked at |lat| < 60°.
func TestBoundsAroundCoversRadius(t *testing.T) {
	require := require.New(t)

	refs := map[string]geo.Point{
		"celje":   {Latitude: 46.2194828, Longitude: 15.2719759},
		"sydney":  {Latitude: -33.8688, Longitude: 151.2093},
		"equator": {Latitude: 3.2, Longitude: -10.4},
	}

	const radiusKm = 10.0

	for name, ref := range refs {
		t.Run(name, func(t *testing.T) {
			b := geo.BoundsAround(ref, radiusKm)

			for dLat := -0.2; dLat <= 0.2; dLat += 0.01 {
				for dLng := -0.2; dLng <= 0.2; dLng += 0.01 {
					p := geo.Point{Latitude: ref.Latitude + dLat, Longitude: ref.Longitude + dLng}
					if geo.Distance(ref, p) <= radiusKm {
						require.True(b.Contains(p), "point %+v within %vkm but outside box", p, radiusKm)
					}
				}
			}
		})
	}
}

// Known limitation: the box does not wrap across the antimeridian, so a
// reference point next to ±180° misses nearby points on the other side of
// the seam. This pins the behavior, it does not assert correctness.
func TestBoundsAroundAntimeridianSeam(t *testing.T) {
	require := require.New(t)

	ref := geo.Point{Latitude: 0, Longitude: 179.95}
	other := geo.Point{Latitude: 0, Longitude: -179.98}

	require.Less(geo.Distance(ref, other), 10.0)

	b := geo.BoundsAround(ref, 10.0)
	require.False(b.Contains(other))
}
