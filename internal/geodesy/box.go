package geodesy

import "math"

// kmPerDegree is the length of one degree of arc on the Haversine sphere.
var kmPerDegree = EarthRadiusKm * math.Pi / 180

// Box is a latitude/longitude rectangle.
type Box struct {
	MinLat, MinLon float64
	MaxLat, MaxLon float64
}

// Contains reports whether p lies inside b, edges included.
func (b Box) Contains(p Point) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat && p.Lon >= b.MinLon && p.Lon <= b.MaxLon
}

// BoundingBox returns a box containing every point within radiusKm of center.
// The box is a superset: near the poles or across the antimeridian it spans
// the full longitude range.
func BoundingBox(center Point, radiusKm float64) Box {
	if radiusKm < 0 {
		radiusKm = 0
	}
	latDelta := radiusKm / kmPerDegree
	b := Box{
		MinLat: math.Max(-90, center.Lat-latDelta),
		MaxLat: math.Min(90, center.Lat+latDelta),
		MinLon: -180,
		MaxLon: 180,
	}
	if b.MinLat == -90 || b.MaxLat == 90 {
		return b
	}
	// the widest parallel inside the box is the one closest to a pole
	cos := math.Min(math.Cos(toRad(b.MinLat)), math.Cos(toRad(b.MaxLat)))
	if cos <= 0 {
		return b
	}
	lonDelta := latDelta / cos
	if lonDelta >= 180 || center.Lon-lonDelta < -180 || center.Lon+lonDelta > 180 {
		return b
	}
	b.MinLon = center.Lon - lonDelta
	b.MaxLon = center.Lon + lonDelta
	return b
}
