package peak

import (
	"errors"
	"sort"

	"peaknear-tools/pntools/geo"
)

// Ranked pairs a peak with its great-circle distance to the reference point.
type Ranked struct {
	Peak       Peak
	DistanceKm float64
}

// Within returns the peaks whose coordinates fall inside the bounds,
// preserving catalog order.
func Within(b geo.Bounds, peaks []Peak) []Peak {
	inside := []Peak{}
	for _, p := range peaks {
		if b.Contains(p) {
			inside = append(inside, p)
		}
	}
	return inside
}

// Rank pairs every peak with its distance to the reference point and sorts
// the result nearest first. Peaks at equal distance keep their input order.
func Rank(ref geo.LatLng, peaks []Peak) []Ranked {
	ranked := make([]Ranked, len(peaks))
	for i, p := range peaks {
		ranked[i] = Ranked{Peak: p, DistanceKm: geo.Distance(ref, p)}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	return ranked
}

// Nearby runs the bounding-box pre-filter followed by the distance ranking
// over the full catalog.
func Nearby(ref geo.LatLng, radiusKm float64, peaks []Peak) ([]Ranked, error) {
	if radiusKm <= 0 {
		return nil, errors.New("search radius must be greater than zero")
	}

	return Rank(ref, Within(geo.BoundsAround(ref, radiusKm), peaks)), nil
}
