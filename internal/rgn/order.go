package rgn

import "math"

// Order is the tier of a VG in the national geodetic network, 1 (widest
// spacing) to 4 (densest).
type Order int

const (
	Order1 Order = iota + 1
	Order2
	Order3
	Order4
)

// Orders lists every order in ascending order.
var Orders = [...]Order{Order1, Order2, Order3, Order4}

// Order4MarkerRadiusKm is the marker radius of order 4 VGs, whose band has
// no upper bound.
const Order4MarkerRadiusKm = 2.5

// Band is the closed distance interval, in km, expected between neighbouring
// VGs of the same order.
type Band struct {
	Min, Max float64
}

// Unbounded reports whether the band accepts every distance.
func (b Band) Unbounded() bool {
	return math.IsInf(b.Max, 1) && b.Min <= 0
}

// Contains reports whether d lies in the band, bounds included.
func (b Band) Contains(d float64) bool {
	return d >= b.Min && d <= b.Max
}

var bands = [...]Band{
	Order1: {Min: 30, Max: 60},
	Order2: {Min: 20, Max: 30},
	Order3: {Min: 5, Max: 10},
	Order4: {Min: 0, Max: math.Inf(1)},
}

// Valid reports whether o is one of the four orders.
func (o Order) Valid() bool {
	return o >= Order1 && o <= Order4
}

// Band returns the validity band of o, which must be Valid.
func (o Order) Band() Band {
	return bands[o]
}

// MarkerRadiusKm is the radius of the circle drawn around a VG of order o:
// half the band maximum, so the circles of two valid neighbours at most touch.
func (o Order) MarkerRadiusKm() float64 {
	b := o.Band()
	if b.Unbounded() {
		return Order4MarkerRadiusKm
	}
	return b.Max / 2
}

func (o Order) index() int { return int(o) - 1 }
