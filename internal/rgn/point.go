package rgn

import (
	"fmt"
	"math"

	"rgnmap/internal/geodesy"
)

// SurveyPoint is a VG (vértice geodésico). It is built once while parsing
// and never changed afterwards; callers must treat it as read-only.
type SurveyPoint struct {
	geodesy.Point
	Name     string
	Order    Order
	Type     string
	Altitude float64 // metres, NaN when unknown
}

// UnknownAltitude is the sentinel stored in SurveyPoint.Altitude.
func UnknownAltitude() float64 { return math.NaN() }

// HasAltitude reports whether the altitude of p is known.
func (p *SurveyPoint) HasAltitude() bool {
	return !math.IsNaN(p.Altitude)
}

// DistanceTo returns the haversine distance in km between p and q.
func (p *SurveyPoint) DistanceTo(q *SurveyPoint) float64 {
	return geodesy.Haversine(p.Point, q.Point)
}

func (p *SurveyPoint) String() string {
	alt := "unknown"
	if p.HasAltitude() {
		alt = fmt.Sprintf("%.1fm", p.Altitude)
	}
	return fmt.Sprintf("%s [order %d, %s] %v alt=%s", p.Name, p.Order, p.Type, p.Point, alt)
}

// ValidDistance reports whether p and q are a valid neighbouring pair: same
// order and a distance inside that order's band. Order 4 imposes no spacing.
func ValidDistance(p, q *SurveyPoint) bool {
	if p.Order != q.Order || !p.Order.Valid() {
		return false
	}
	b := p.Order.Band()
	if b.Unbounded() {
		return true
	}
	return b.Contains(p.DistanceTo(q))
}
