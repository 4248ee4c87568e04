package convert

import (
	"math"
	"strconv"

	"github.com/golang/geo/s1"
)

// ToRadians converts decimal degrees to radians
func ToRadians(degrees float64) float64 {
	return (s1.Angle(degrees) * s1.Degree).Radians()
}

// ToDegrees converts radians to decimal degrees
func ToDegrees(radians float64) float64 {
	return s1.Angle(radians).Degrees()
}

// RoundKm rounds a distance in kilometers to 3 decimal places,
// halves going away from zero.
func RoundKm(km float64) float64 {
	return math.Round(km*1000) / 1000
}

// Ftoa formats a distance without trailing zeros, so 9.6 stays "9.6"
// instead of becoming "9.600".
func Ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
