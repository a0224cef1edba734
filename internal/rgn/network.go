// Package rgn models the national geodetic network (Rede Geodésica Nacional):
// VGs grouped by order, same-order spacing validation, altitude aggregates
// over the visible orders and radius queries.
//
// A Network is built once from raw records and then driven by single,
// sequential commands (toggle an order, add a VG, query). It is not safe for
// concurrent use.
package rgn

import (
	"cmp"
	"log/slog"
	"slices"

	"rgnmap/internal/geodesy"
)

// Network is the aggregate of the four order groups.
type Network struct {
	groups       [len(Orders)]*OrderGroup
	byName       map[string]*SurveyPoint
	index        *spatialIndex
	visibleCount int
	lowest       *SurveyPoint
	highest      *SurveyPoint
	logger       *slog.Logger
}

// Option configures a Network.
type Option func(*Network)

// WithLogger sets the logger used for command tracing.
func WithLogger(l *slog.Logger) Option {
	return func(n *Network) {
		if l != nil {
			n.logger = l
		}
	}
}

// New returns a network with four empty, visible groups.
func New(opts ...Option) *Network {
	n := &Network{
		byName: make(map[string]*SurveyPoint),
		index:  newSpatialIndex(),
		logger: slog.Default(),
	}
	for _, o := range Orders {
		n.groups[o.index()] = newOrderGroup(o)
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Parse builds a network from records. The first malformed record aborts the
// parse with a *DataFormatError. With no records it returns an empty network
// and ErrEmptyDataset.
func Parse(records []Record, opts ...Option) (*Network, error) {
	n := New(opts...)
	if len(records) == 0 {
		n.logger.Warn("dataset has no VGs")
		return n, ErrEmptyDataset
	}
	for _, r := range records {
		if _, err := n.Add(r); err != nil {
			return nil, err
		}
	}
	n.logger.Info("network parsed",
		"vgs", n.Len(),
		"order1", n.groups[0].Len(),
		"order2", n.groups[1].Len(),
		"order3", n.groups[2].Len(),
		"order4", n.groups[3].Len(),
	)
	return n, nil
}

// Add converts r and inserts it into the group of its order.
func (n *Network) Add(r Record) (*SurveyPoint, error) {
	p, err := r.point()
	if err != nil {
		return nil, err
	}
	if _, dup := n.byName[p.Name]; dup {
		return nil, &DataFormatError{Line: r.Line, Name: p.Name, Field: "name", Reason: "duplicate"}
	}
	g := n.groups[p.Order.index()]
	if err := g.add(p); err != nil {
		return nil, err
	}
	n.byName[p.Name] = p
	n.index.insert(p)
	n.recompute()
	n.logger.Debug("vg added", "name", p.Name, "order", int(p.Order), "validated", g.IsValidated(p))
	return p, nil
}

// Group returns the group of the given order.
func (n *Network) Group(order int) (*OrderGroup, error) {
	o := Order(order)
	if !o.Valid() {
		return nil, &InvalidOrderError{Order: order}
	}
	return n.groups[o.index()], nil
}

// Groups returns the four groups, order 1 first.
func (n *Network) Groups() []*OrderGroup {
	return n.groups[:]
}

// ToggleVisibility flips the visibility of an order and returns the new state.
func (n *Network) ToggleVisibility(order int) (bool, error) {
	g, err := n.Group(order)
	if err != nil {
		return false, err
	}
	n.setVisible(g, !g.visible)
	return g.visible, nil
}

// SetVisible shows or hides an order.
func (n *Network) SetVisible(order int, visible bool) error {
	g, err := n.Group(order)
	if err != nil {
		return err
	}
	n.setVisible(g, visible)
	return nil
}

func (n *Network) setVisible(g *OrderGroup, visible bool) {
	g.visible = visible
	n.recompute()
	n.logger.Debug("order visibility changed", "order", int(g.order), "visible", visible, "visible_vgs", n.visibleCount)
}

// recompute derives the network aggregates from the groups alone, in
// O(len(Orders)). Ties between orders go to the lower order.
func (n *Network) recompute() {
	n.visibleCount = 0
	n.lowest, n.highest = nil, nil
	for _, g := range n.groups {
		if !g.visible {
			continue
		}
		n.visibleCount += g.Len()
		if g.lowest != nil && (n.lowest == nil || g.lowest.Altitude < n.lowest.Altitude) {
			n.lowest = g.lowest
		}
		if g.highest != nil && (n.highest == nil || g.highest.Altitude > n.highest.Altitude) {
			n.highest = g.highest
		}
	}
}

// Len returns the number of VGs in the network.
func (n *Network) Len() int { return len(n.byName) }

// VisibleCount returns the number of VGs in visible orders.
func (n *Network) VisibleCount() int { return n.visibleCount }

// GlobalLowest returns the lowest VG among the visible orders. The boolean is
// false when no visible VG has a known altitude.
func (n *Network) GlobalLowest() (*SurveyPoint, bool) {
	return n.lowest, n.lowest != nil
}

// GlobalHighest returns the highest VG among the visible orders. The boolean
// is false when no visible VG has a known altitude.
func (n *Network) GlobalHighest() (*SurveyPoint, bool) {
	return n.highest, n.highest != nil
}

// Lookup returns the VG with the given name.
func (n *Network) Lookup(name string) (*SurveyPoint, bool) {
	p, ok := n.byName[name]
	return p, ok
}

// Visible reports whether the order of p is currently shown.
func (n *Network) Visible(p *SurveyPoint) bool {
	return p.Order.Valid() && n.groups[p.Order.index()].visible
}

// Validate returns every VG without a valid same-order neighbour, order 1
// first and in insertion order within an order.
func (n *Network) Validate() []*SurveyPoint {
	var out []*SurveyPoint
	for _, g := range n.groups {
		out = append(out, g.MembersNotValidated()...)
	}
	return out
}

// PointsWithinRadius returns the VGs at most radiusKm from center, nearest
// first (ties by name). With onlyVisible, hidden orders are skipped.
func (n *Network) PointsWithinRadius(center geodesy.Point, radiusKm float64, onlyVisible bool) []*SurveyPoint {
	if radiusKm < 0 {
		return nil
	}
	type hit struct {
		p *SurveyPoint
		d float64
	}
	var hits []hit
	for _, p := range n.index.candidates(geodesy.BoundingBox(center, radiusKm)) {
		if onlyVisible && !n.Visible(p) {
			continue
		}
		if d := geodesy.Haversine(center, p.Point); d <= radiusKm {
			hits = append(hits, hit{p: p, d: d})
		}
	}
	slices.SortFunc(hits, func(a, b hit) int {
		if c := cmp.Compare(a.d, b.d); c != 0 {
			return c
		}
		return cmp.Compare(a.p.Name, b.p.Name)
	})
	out := make([]*SurveyPoint, len(hits))
	for i, h := range hits {
		out[i] = h.p
	}
	return out
}

// SameType returns every VG sharing the type of p, p included, grouped by
// order. With onlyVisible, hidden orders are skipped.
func (n *Network) SameType(p *SurveyPoint, onlyVisible bool) []*SurveyPoint {
	var out []*SurveyPoint
	for _, g := range n.groups {
		if onlyVisible && !g.visible {
			continue
		}
		for _, q := range g.points {
			if q.Type == p.Type {
				out = append(out, q)
			}
		}
	}
	return out
}
