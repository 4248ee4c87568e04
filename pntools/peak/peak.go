package peak

// Peak represents a named summit from the catalog
type Peak struct {
	Name      string
	Country   string
	Range     string
	Latitude  float64
	Longitude float64
	Elevation int
}

// Lat returns latitude in degrees
func (p Peak) Lat() float64 {
	return p.Latitude
}

// Lng returns longitude in degrees
func (p Peak) Lng() float64 {
	return p.Longitude
}
