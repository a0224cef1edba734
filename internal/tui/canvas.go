package tui

import "rgnmap/internal/rgn"

// brailleBits maps a dot inside a cell (row, column of the 2x4 grid) to its
// bit in the U+2800 block.
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// markerCanvas rasterises VG markers at braille resolution: altitude circles
// as rings and VGs of unknown altitude as single dots.
type markerCanvas struct {
	w, h  int // cells
	masks [][]uint8
}

func newMarkerCanvas(w, h int) *markerCanvas {
	masks := make([][]uint8, h)
	for y := range masks {
		masks[y] = make([]uint8, w)
	}
	return &markerCanvas{w: w, h: h, masks: masks}
}

// dot sets one dot; dots outside the canvas are dropped.
func (c *markerCanvas) dot(x, y int) {
	if x < 0 || y < 0 || x >= c.w*2 || y >= c.h*4 {
		return
	}
	c.masks[y/4][x/2] |= brailleBits[y%4][x%2]
}

// outside reports whether the segment a-b lies wholly beyond one edge.
func (c *markerCanvas) outside(a, b [2]int) bool {
	return (a[0] < 0 && b[0] < 0) || (a[1] < 0 && b[1] < 0) ||
		(a[0] >= c.w*2 && b[0] >= c.w*2) || (a[1] >= c.h*4 && b[1] >= c.h*4)
}

// segment walks a-b with Bresenham's algorithm.
func (c *markerCanvas) segment(a, b [2]int) {
	if c.outside(a, b) {
		return
	}
	x, y := a[0], a[1]
	dx, sx := b[0]-x, 1
	if dx < 0 {
		dx, sx = -dx, -1
	}
	dy, sy := y-b[1], 1
	if dy > 0 {
		dy = -dy
	}
	if b[1] < y {
		sy = -1
	}
	e := dx + dy
	for {
		c.dot(x, y)
		if x == b[0] && y == b[1] {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

// circle draws the altitude circle of mk as a closed ring projected by m.
func (c *markerCanvas) circle(m Model, mk rgn.Marker) {
	var ring [][2]int
	for _, p := range circleRing(mk.Center, mk.RadiusKm) {
		if x, y, ok := m.screenXYMicro(p[0], p[1], c.w, c.h); ok {
			ring = append(ring, [2]int{x, y})
		}
	}
	if len(ring) < 3 {
		return
	}
	for i := range ring {
		c.segment(ring[i], ring[(i+1)%len(ring)])
	}
}

// markers draws every marker of the visible groups. Degenerate markers are a
// single dot; circles are skipped unless withCircles.
func (c *markerCanvas) markers(m Model, withCircles bool) {
	for _, g := range m.net.Groups() {
		if !g.Visible() {
			continue
		}
		for _, mk := range g.Markers() {
			switch {
			case mk.Degenerate:
				if x, y, ok := m.screenXYMicro(mk.Center.Lon, mk.Center.Lat, c.w, c.h); ok {
					c.dot(x, y)
				}
			case withCircles:
				c.circle(m, mk)
			}
		}
	}
}

// cells renders one string per cell so overlays can replace single cells
// with styled glyphs.
func (c *markerCanvas) cells() [][]string {
	out := make([][]string, c.h)
	for y, row := range c.masks {
		out[y] = make([]string, c.w)
		for x, mask := range row {
			if mask == 0 {
				out[y][x] = " "
			} else {
				out[y][x] = string(rune(0x2800 + int(mask)))
			}
		}
	}
	return out
}
