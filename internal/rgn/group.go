package rgn

import (
	"slices"

	"rgnmap/internal/geodesy"
)

// Marker is the drawable geometry of a VG: a circle around its position.
// Degenerate markers (unknown altitude) have zero radius.
type Marker struct {
	Point      *SurveyPoint
	Center     geodesy.Point
	RadiusKm   float64
	Degenerate bool
}

// OrderGroup holds the VGs of one order in insertion order together with the
// aggregates derived from them.
type OrderGroup struct {
	order   Order
	points  []*SurveyPoint
	lowest  *SurveyPoint
	highest *SurveyPoint
	visible bool
	valid   map[*SurveyPoint]struct{}
}

func newOrderGroup(o Order) *OrderGroup {
	return &OrderGroup{
		order:   o,
		visible: true,
		valid:   make(map[*SurveyPoint]struct{}),
	}
}

// add appends p and updates the valid-pair membership and the altitude
// extremes. It costs O(Len()). Only Network.Add calls it, so the name map,
// the index and the network aggregates stay in step with the group.
func (g *OrderGroup) add(p *SurveyPoint) error {
	if p.Order != g.order {
		return &OrderMismatchError{Name: p.Name, Point: p.Order, Group: g.order}
	}
	for _, q := range g.points {
		if q != p && ValidDistance(p, q) {
			g.valid[p] = struct{}{}
			g.valid[q] = struct{}{}
		}
	}
	g.points = append(g.points, p)
	if p.HasAltitude() {
		if g.lowest == nil || p.Altitude < g.lowest.Altitude {
			g.lowest = p
		}
		if g.highest == nil || p.Altitude > g.highest.Altitude {
			g.highest = p
		}
	}
	return nil
}

func (g *OrderGroup) Order() Order { return g.order }

func (g *OrderGroup) Len() int { return len(g.points) }

func (g *OrderGroup) Visible() bool { return g.visible }

// Points returns a copy of the VGs of the group in insertion order.
func (g *OrderGroup) Points() []*SurveyPoint { return slices.Clone(g.points) }

// Lowest returns the VG with the smallest known altitude, or nil.
func (g *OrderGroup) Lowest() *SurveyPoint { return g.lowest }

// Highest returns the VG with the largest known altitude, or nil.
func (g *OrderGroup) Highest() *SurveyPoint { return g.highest }

// IsValidated reports whether p has at least one valid same-order partner.
func (g *OrderGroup) IsValidated(p *SurveyPoint) bool {
	_, ok := g.valid[p]
	return ok
}

// MembersNotValidated returns the VGs with no same-order neighbour inside the
// band, in insertion order.
func (g *OrderGroup) MembersNotValidated() []*SurveyPoint {
	var out []*SurveyPoint
	for _, p := range g.points {
		if _, ok := g.valid[p]; !ok {
			out = append(out, p)
		}
	}
	return out
}

// Markers returns the drawable geometry of every VG in insertion order.
func (g *OrderGroup) Markers() []Marker {
	out := make([]Marker, 0, len(g.points))
	for _, p := range g.points {
		m := Marker{Point: p, Center: p.Point}
		if p.HasAltitude() {
			m.RadiusKm = g.order.MarkerRadiusKm()
		} else {
			m.Degenerate = true
		}
		out = append(out, m)
	}
	return out
}
