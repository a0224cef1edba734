package geodesy

import (
	"errors"
	"math"
	"testing"
)

func TestHaversine(t *testing.T) {
	lisbon := Point{Lat: 38.7223, Lon: -9.1393}
	porto := Point{Lat: 41.1579, Lon: -8.6291}

	t.Run("identity is zero", func(t *testing.T) {
		if d := Haversine(lisbon, lisbon); d != 0 {
			t.Errorf("expected 0, got %f", d)
		}
	})

	t.Run("symmetric", func(t *testing.T) {
		pts := []Point{lisbon, porto, {Lat: -33.86, Lon: 151.21}, {Lat: 89.9, Lon: 179.9}, {Lat: 0, Lon: 0}}
		for _, a := range pts {
			for _, b := range pts {
				if Haversine(a, b) != Haversine(b, a) {
					t.Errorf("haversine(%v,%v) != haversine(%v,%v)", a, b, b, a)
				}
			}
		}
	})

	t.Run("lisbon to porto", func(t *testing.T) {
		d := Haversine(lisbon, porto)
		if d < 270 || d > 280 {
			t.Errorf("expected about 274 km, got %f", d)
		}
	})

	t.Run("antipodes are half the circumference", func(t *testing.T) {
		d := Haversine(Point{Lat: 10, Lon: 20}, Point{Lat: -10, Lon: -160})
		want := math.Pi * EarthRadiusKm
		if math.Abs(d-want) > 1e-3 {
			t.Errorf("expected %f, got %f", want, d)
		}
	})

	t.Run("one degree of latitude", func(t *testing.T) {
		d := Haversine(Point{Lat: 0, Lon: 0}, Point{Lat: 1, Lon: 0})
		if math.Abs(d-kmPerDegree) > 1e-9 {
			t.Errorf("expected %f, got %f", kmPerDegree, d)
		}
	})
}

func TestNewPoint(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		wantErr  bool
	}{
		{"origin", 0, 0, false},
		{"corners", 90, 180, false},
		{"negative corners", -90, -180, false},
		{"lat too big", 90.0001, 0, true},
		{"lon too small", 0, -180.5, true},
		{"nan", math.NaN(), 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPoint(tt.lat, tt.lon)
			if tt.wantErr {
				var ce *ErrInvalidCoordinate
				if !errors.As(err, &ce) {
					t.Fatalf("expected ErrInvalidCoordinate, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Lat != tt.lat || p.Lon != tt.lon {
				t.Errorf("expected (%f,%f), got %v", tt.lat, tt.lon, p)
			}
		})
	}
}

func TestBoundingBox(t *testing.T) {
	t.Run("contains points at the radius", func(t *testing.T) {
		center := Point{Lat: 39.5, Lon: -8.0}
		box := BoundingBox(center, 60)
		for _, bearing := range []float64{0, 45, 90, 135, 180, 225, 270, 315} {
			p := destination(center, bearing, 59.9)
			if !box.Contains(p) {
				t.Errorf("bearing %.0f: %v not in %+v", bearing, p, box)
			}
		}
	})

	t.Run("pole spans all longitudes", func(t *testing.T) {
		box := BoundingBox(Point{Lat: 89.9, Lon: 10}, 50)
		if box.MinLon != -180 || box.MaxLon != 180 || box.MaxLat != 90 {
			t.Errorf("unexpected box %+v", box)
		}
	})

	t.Run("antimeridian spans all longitudes", func(t *testing.T) {
		box := BoundingBox(Point{Lat: 0, Lon: 179.9}, 50)
		if box.MinLon != -180 || box.MaxLon != 180 {
			t.Errorf("unexpected box %+v", box)
		}
	})

	t.Run("negative radius collapses", func(t *testing.T) {
		c := Point{Lat: 1, Lon: 2}
		box := BoundingBox(c, -5)
		if box.MinLat != 1 || box.MaxLat != 1 || box.MinLon != 2 || box.MaxLon != 2 {
			t.Errorf("unexpected box %+v", box)
		}
	})
}

// destination walks distKm from p along the initial bearing (degrees).
func destination(p Point, bearing, distKm float64) Point {
	d := distKm / EarthRadiusKm
	br := toRad(bearing)
	lat1, lon1 := toRad(p.Lat), toRad(p.Lon)
	lat2 := math.Asin(math.Sin(lat1)*math.Cos(d) + math.Cos(lat1)*math.Sin(d)*math.Cos(br))
	lon2 := lon1 + math.Atan2(math.Sin(br)*math.Sin(d)*math.Cos(lat1), math.Cos(d)-math.Sin(lat1)*math.Sin(lat2))
	return Point{Lat: lat2 * 180 / math.Pi, Lon: lon2 * 180 / math.Pi}
}
