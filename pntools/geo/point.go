package geo

// Point is a coordinate pair in decimal degrees
type Point struct {
	Latitude, Longitude float64
}

// Lat returns the latitude in degrees
func (p Point) Lat() float64 {
	return p.Latitude
}

// Lng returns the longitude in degrees
func (p Point) Lng() float64 {
	return p.Longitude
}

// LatLng latlng
type LatLng interface {
	Lat() float64
	Lng() float64
}
