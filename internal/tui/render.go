package tui

import (
	"math"
	"strings"

	"rgnmap/internal/geodesy"
	"rgnmap/internal/rgn"
)

const (
	kmPerDegree    = geodesy.EarthRadiusKm * math.Pi / 180
	circleSegments = 36
)

// cellToLonLat converts a map cell coordinate back to lon/lat using bound, zoom, and pan.
func (m Model) cellToLonLat(cx, cy, w, h int) (float64, float64, bool) {
	if w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	lon := m.bound.Left() + nx*(m.bound.Right()-m.bound.Left())
	lat := m.bound.Bottom() + ny*(m.bound.Top()-m.bound.Bottom())
	return lon, lat, true
}

// normalize maps lon/lat to [0,1] inside the bound, zoomed around its centre.
func (m Model) normalize(lon, lat float64) (float64, float64, bool) {
	dx := m.bound.Right() - m.bound.Left()
	dy := m.bound.Top() - m.bound.Bottom()
	if !(dx > 0 && dy > 0) {
		return 0, 0, false
	}
	nx := (lon - m.bound.Left()) / dx
	ny := (lat - m.bound.Bottom()) / dy
	return 0.5 + (nx-0.5)*m.zoom, 0.5 + (ny-0.5)*m.zoom, true
}

// screenXYMicro maps lon/lat into a 2x4 microgrid per cell for braille rendering.
func (m Model) screenXYMicro(lon, lat float64, w, h int) (int, int, bool) {
	zx, zy, ok := m.normalize(lon, lat)
	if !ok {
		return 0, 0, false
	}
	sx := int(zx*float64(w*2-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(h*4-1)) + m.offsetY*4
	return sx, sy, true
}

// screenXY maps lon/lat to current screen integer coordinates considering zoom and pan.
func (m Model) screenXY(lon, lat float64, w, h int) (int, int, bool) {
	zx, zy, ok := m.normalize(lon, lat)
	if !ok {
		return 0, 0, false
	}
	sx := int(zx*float64(w-1)) + m.offsetX
	sy := int((1.0-zy)*float64(h-1)) + m.offsetY
	return sx, sy, true
}

// circleRing approximates the circle of radiusKm around c on the lon/lat plane.
func circleRing(c geodesy.Point, radiusKm float64) [][2]float64 {
	dLat := radiusKm / kmPerDegree
	cos := math.Cos(c.Lat * math.Pi / 180)
	if cos < 1e-6 {
		cos = 1e-6
	}
	dLon := dLat / cos
	ring := make([][2]float64, 0, circleSegments)
	for k := 0; k < circleSegments; k++ {
		th := 2 * math.Pi * float64(k) / circleSegments
		ring = append(ring, [2]float64{c.Lon + dLon*math.Sin(th), c.Lat + dLat*math.Cos(th)})
	}
	return ring
}

func (m Model) renderMap(w, h int) string {
	cv := newMarkerCanvas(w, h)
	cv.markers(m, m.showCircles)

	cells := cv.cells()
	put := func(p *rgn.SurveyPoint, glyph string) {
		cx, cy, ok := m.screenXY(p.Lon, p.Lat, w, h)
		if !ok || cy < 0 || cy >= len(cells) || cx < 0 || cx >= len(cells[cy]) {
			return
		}
		cells[cy][cx] = glyph
	}
	// overlays, lowest priority first
	for _, g := range m.net.Groups() {
		if !g.Visible() {
			continue
		}
		st := orderStyles[g.Order()]
		glyph := orderGlyphs[g.Order()]
		for _, p := range g.Points() {
			if p.HasAltitude() {
				put(p, st.Render(glyph))
			}
		}
	}
	for p := range m.invalid {
		if m.net.Visible(p) {
			put(p, warnStyle.Render("✕"))
		}
	}
	for p := range m.sameType {
		if m.net.Visible(p) {
			put(p, sameTypeStyle.Render("◇"))
		}
	}
	for p := range m.neighbours {
		if m.net.Visible(p) {
			put(p, neighbourStyle.Render("○"))
		}
	}
	if m.selected != nil && m.net.Visible(m.selected) {
		put(m.selected, selectedStyle.Render("◉"))
	}

	// Hover highlight: draw an orange circle at the hovered vertex cell
	if m.hovering {
		cx := m.hoverMicX / 2
		cy := m.hoverMicY / 4
		if cy >= 0 && cy < len(cells) && cx >= 0 && cx < len(cells[cy]) {
			cells[cy][cx] = selectedStyle.Render("◯")
		}
	}

	lines := make([]string, len(cells))
	for y, row := range cells {
		lines[y] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}

// nearestMicro finds the visible VG closest to the micro-grid position (hx, hy).
func (m Model) nearestMicro(hx, hy, w, h int) (*rgn.SurveyPoint, int, int) {
	best := math.MaxInt
	var bp *rgn.SurveyPoint
	bx, by := hx, hy
	for _, g := range m.net.Groups() {
		if !g.Visible() {
			continue
		}
		for _, p := range g.Points() {
			mx, my, ok := m.screenXYMicro(p.Lon, p.Lat, w, h)
			if !ok {
				continue
			}
			dx := mx - hx
			dy := my - hy
			if d := dx*dx + dy*dy; d < best {
				best = d
				bp = p
				bx, by = mx, my
			}
		}
	}
	return bp, bx, by
}

// inspectNearest finds the visible VG closest to the viewport center.
func (m Model) inspectNearest() (*rgn.SurveyPoint, bool) {
	w, h := m.mapW, m.mapH
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	p, _, _ := m.nearestMicro(w, h*2, w, h)
	return p, p != nil
}
