package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"rgnmap/internal/dataset"
	"rgnmap/internal/rgn"
)

// addHeader is the column order expected when pasting a VG.
const addHeader = "name,order,type,altitude,latitude,longitude"

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.mode != inputNone {
			return m.updateInput(msg)
		}
		if m.showReport {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "esc", "v":
				m.showReport = false
				return m, nil
			case "enter":
				if row := m.tbl.SelectedRow(); len(row) > 1 {
					if p, ok := m.net.Lookup(row[1]); ok {
						m.selectPoint(p)
						m.showReport = false
					}
				}
				return m, nil
			}
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1", "2", "3", "4":
			order := int(msg.String()[0] - '0')
			visible, err := m.net.ToggleVisibility(order)
			if err != nil {
				m.status = "toggle error: " + err.Error()
				break
			}
			m.refreshList()
			state := "shown"
			if !visible {
				state = "hidden"
			}
			m.status = fmt.Sprintf("order %d %s  visible VGs: %d", order, state, m.net.VisibleCount())
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "0":
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.status = "view reset"
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshList()
			}
		case "/":
			m.startInput(inputSearch, "VG name, then Enter. Esc to cancel.")
			m.status = "search mode"
		case "p":
			m.startInput(inputAdd, addHeader+"  (one VG as CSV, Enter to add, Esc to cancel)")
			m.status = "add mode"
		case "h":
			m.helpVisible = !m.helpVisible
		case "c":
			m.showCircles = !m.showCircles
			m.status = fmt.Sprintf("circles: %v", m.showCircles)
		case "v":
			if m.refreshReport() {
				m.showReport = true
				m.status = fmt.Sprintf("validation: %d invalid VGs", len(m.invalid))
			} else {
				m.status = "validation: every VG has a neighbour inside its band"
			}
		case "n":
			p := m.target()
			if p == nil {
				m.status = "no VG selected"
				break
			}
			ns, err := m.net.QueryNeighborsWithin(p.Name, m.radiusKm)
			if err != nil {
				m.status = "neighbours error: " + err.Error()
				break
			}
			m.selected = p
			m.neighbours = make(map[*rgn.SurveyPoint]bool, len(ns))
			for _, q := range ns {
				m.neighbours[q] = true
			}
			m.status = fmt.Sprintf("%d VGs within %g km of %s", len(ns), m.radiusKm, p.Name)
		case "t":
			if m.sameType != nil {
				m.sameType = nil
				m.status = "same-type highlight off"
				break
			}
			p := m.target()
			if p == nil {
				m.status = "no VG selected"
				break
			}
			m.selected = p
			same := m.net.SameType(p, true)
			m.sameType = make(map[*rgn.SurveyPoint]bool, len(same))
			for _, q := range same {
				m.sameType[q] = true
			}
			m.status = fmt.Sprintf("%d visible VGs of type %q", len(same), p.Type)
		case "i":
			if p := m.target(); p != nil {
				m.selected = p
				m.inspectPopup = m.popupFor(p)
				m.status = "inspect popup"
			} else {
				m.inspectPopup = "no VG nearby"
				m.status = m.inspectPopup
			}
		case "esc":
			m.inspectPopup = ""
			m.neighbours = nil
			m.sameType = nil
			m.invalid = nil
			m.status = "highlights cleared"
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(vgItem); ok {
					m.selectPoint(it.point)
				}
			}
		case "up", "down", "pgup", "pgdown":
			if m.showSidebar {
				var cmd tea.Cmd
				m.l, cmd = m.l.Update(msg)
				return m.withLayout(), cmd
			}
			switch msg.String() {
			case "up":
				m.offsetY += 1
			case "down":
				m.offsetY -= 1
			}
		case "left":
			m.offsetX += 2
		case "right":
			m.offsetX -= 2
		}
	case tea.MouseMsg:
		lay := m.layout()
		// mouse cell within map?
		cx, cy := msg.X, msg.Y
		if cx >= lay.mapX && cx < lay.mapX+lay.mapW && cy >= lay.mapY && cy < lay.mapY+lay.mapH {
			cellX := cx - lay.mapX
			cellY := cy - lay.mapY
			// compute lon/lat for footer
			if lon, lat, ok := m.cellToLonLat(cellX, cellY, lay.mapW, lay.mapH); ok {
				m.hoverHasGeo = true
				m.hoverLon = lon
				m.hoverLat = lat
			} else {
				m.hoverHasGeo = false
			}
			p, bx, by := m.nearestMicro(cellX*2, cellY*4, lay.mapW, lay.mapH)
			m.hovering = p != nil
			m.hoverMicX, m.hoverMicY = bx, by
			if p != nil && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
				m.selectPoint(p)
			}
		} else {
			m.hovering = false
			m.hoverHasGeo = false
		}
	}
	m = m.withLayout()
	// global keys are not forwarded; the list only sees its own traffic
	if _, isKey := msg.(tea.KeyMsg); m.showSidebar && !isKey {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// withLayout records the map size used by inspect and sizes the list.
func (m Model) withLayout() Model {
	lay := m.layout()
	m.mapW, m.mapH = lay.mapW, lay.mapH
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, lay.contentH-2)
	}
	return m
}

func (m *Model) startInput(mode inputMode, placeholder string) {
	m.mode = mode
	m.ta.Placeholder = placeholder
	m.ta.SetValue("")
	m.ta.Focus()
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = inputNone
		m.ta.Blur()
		m.status = "view mode"
		return m, nil
	case "enter":
		text := strings.TrimSpace(m.ta.Value())
		if text == "" {
			m.status = "input: empty"
			return m, nil
		}
		var err error
		if m.mode == inputSearch {
			err = m.search(text)
		} else {
			err = m.addVG(text)
		}
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.mode = inputNone
		m.ta.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

// search selects the VG named text, falling back to a case-insensitive prefix.
func (m *Model) search(text string) error {
	if p, ok := m.net.Lookup(text); ok {
		m.selectPoint(p)
		return nil
	}
	lower := strings.ToLower(text)
	for _, g := range m.net.Groups() {
		for _, p := range g.Points() {
			if strings.HasPrefix(strings.ToLower(p.Name), lower) {
				m.selectPoint(p)
				return nil
			}
		}
	}
	return fmt.Errorf("search: no VG named %q", text)
}

// addVG parses one CSV line in addHeader order and adds it to the network.
func (m *Model) addVG(line string) error {
	recs, err := dataset.ReadCSV(strings.NewReader(addHeader + "\n" + line))
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}
	if len(recs) != 1 {
		return fmt.Errorf("add: expected one VG, got %d", len(recs))
	}
	recs[0].Line = 0
	p, err := m.net.Add(recs[0])
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}
	m.bound = networkBound(m.net)
	m.refreshList()
	if m.invalid != nil {
		m.refreshReport()
	}
	m.selectPoint(p)
	m.status = fmt.Sprintf("added %s  VGs: %d", p.Name, m.net.Len())
	return nil
}

// target is the selected VG, or the one nearest the viewport centre.
func (m Model) target() *rgn.SurveyPoint {
	if m.selected != nil && m.net.Visible(m.selected) {
		return m.selected
	}
	p, _ := m.inspectNearest()
	return p
}

func (m *Model) selectPoint(p *rgn.SurveyPoint) {
	if m.selected != p {
		m.neighbours = nil
		m.sameType = nil
	}
	m.selected = p
	m.inspectPopup = m.popupFor(p)
	if m.net.Visible(p) {
		m.status = "selected " + p.Name
	} else {
		m.status = fmt.Sprintf("selected %s (order %d hidden)", p.Name, p.Order)
	}
}

// popupFor describes a VG like the marker popup of the web map.
func (m Model) popupFor(p *rgn.SurveyPoint) string {
	alt := "unknown"
	if p.HasAltitude() {
		alt = fmt.Sprintf("%.2f m", p.Altitude)
	}
	valid := "no"
	if g, err := m.net.Group(int(p.Order)); err == nil && g.IsValidated(p) {
		valid = "yes"
	}
	near := len(m.net.PointsWithinRadius(p.Point, m.radiusKm, true))
	if m.net.Visible(p) {
		near--
	}
	meta := []string{
		titleStyle.Render(p.Name),
		fmt.Sprintf("order: %d", p.Order),
		fmt.Sprintf("type: %s", p.Type),
		fmt.Sprintf("latitude: %.6f", p.Lat),
		fmt.Sprintf("longitude: %.6f", p.Lon),
		fmt.Sprintf("altitude: %s", alt),
		fmt.Sprintf("spacing valid: %s", valid),
		fmt.Sprintf("VGs within %g km: %d", m.radiusKm, near),
	}
	if m.source != "" {
		meta = append(meta, dimStyle.Render("source: "+m.source))
	}
	return strings.Join(meta, "\n")
}
