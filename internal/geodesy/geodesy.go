// Package geodesy holds the coordinate type shared by the survey model and the
// great-circle distance used to validate it.
package geodesy

import (
	"fmt"
	"math"
)

// EarthRadiusKm is the sphere radius used by Haversine.
const EarthRadiusKm = 6372.8

// Point is a latitude/longitude pair in decimal degrees (WGS 84).
type Point struct {
	Lat float64
	Lon float64
}

// ErrInvalidCoordinate indicates a coordinate outside the valid range.
type ErrInvalidCoordinate struct {
	Lat, Lon float64
}

func (e *ErrInvalidCoordinate) Error() string {
	return fmt.Sprintf("invalid coordinate: lat=%f lon=%f (lat must be ±90, lon must be ±180)",
		e.Lat, e.Lon)
}

// NewPoint returns a Point after checking its range.
func NewPoint(lat, lon float64) (Point, error) {
	if math.IsNaN(lat) || math.IsNaN(lon) || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return Point{}, &ErrInvalidCoordinate{Lat: lat, Lon: lon}
	}
	return Point{Lat: lat, Lon: lon}, nil
}

func (p Point) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", p.Lat, p.Lon)
}

// Haversine returns the great-circle distance in km between a and b.
func Haversine(a, b Point) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLon := toRad(b.Lon - a.Lon)
	sa := math.Sin(dLat / 2)
	so := math.Sin(dLon / 2)
	h := sa*sa + so*so*math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))
	// rounding can push h a hair above 1 for antipodes
	if h > 1 {
		h = 1
	}
	return EarthRadiusKm * 2 * math.Asin(math.Sqrt(h))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
