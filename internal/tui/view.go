package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rgnmap/internal/rgn"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
	popupWidth   = 34
)

type layout struct {
	contentW, contentH int
	mapX, mapY         int
	mapW, mapH         int
}

// layout places the sidebar, the map and the inspect popup for the current
// window size. Mouse handling and View share it.
func (m Model) layout() layout {
	var lay layout
	lay.contentH = max(4, m.height-headerHeight-footerHeight)
	lay.contentW = max(10, m.width)
	lay.mapY = headerHeight
	lay.mapW = lay.contentW
	if m.showSidebar {
		lay.mapX = sidebarWidth + 1
		lay.mapW -= sidebarWidth + 1
	}
	if m.inspectPopup != "" && !m.showReport {
		lay.mapW -= popupWidth + 1
	}
	lay.mapW = max(8, lay.mapW)
	lay.mapH = lay.contentH
	return lay
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lay := m.layout()

	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, lay.contentH-2)
	}

	header := titleStyle.Render(" rgnmap ─ rede geodésica nacional ")
	if m.source != "" {
		header += dimStyle.Render("  " + m.source)
	}
	header = lipgloss.NewStyle().Width(lay.contentW).MaxHeight(headerHeight).Render(header)

	var mapView string
	if m.showReport {
		// report table centred over the map area
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		areaW := lay.contentW - lay.mapX
		boxW := min(areaW, max(32, colW))
		m.tbl.SetWidth(boxW - 4)
		m.tbl.SetHeight(min(lay.mapH-3, 20))
		title := warnStyle.Render(fmt.Sprintf("VGs outside their spacing band: %d", len(m.invalid)))
		box := boxStyle.Width(boxW).Render(lipgloss.JoinVertical(lipgloss.Left, title, m.tbl.View()))
		mapView = lipgloss.Place(areaW, lay.mapH, lipgloss.Center, lipgloss.Center, box)
	} else {
		var canvas string
		if m.mode != inputNone {
			m.ta.SetWidth(lay.mapW)
			m.ta.SetHeight(min(lay.mapH, 6))
			prompt := "search VG"
			if m.mode == inputAdd {
				prompt = "add VG"
			}
			canvas = lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(prompt), m.ta.View())
		} else {
			canvas = m.renderMap(lay.mapW, lay.mapH)
		}
		mapView = lipgloss.NewStyle().Width(lay.mapW).Height(lay.mapH).MaxHeight(lay.mapH).Render(canvas)
		if m.inspectPopup != "" {
			box := boxStyle.Width(popupWidth).MaxHeight(lay.mapH).Render(m.inspectPopup)
			mapView = lipgloss.JoinHorizontal(lipgloss.Top, mapView, " ", box)
		}
	}

	body := mapView
	if m.showSidebar {
		sidebar := lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}

	footer := lipgloss.JoinVertical(lipgloss.Left, m.renderStats(lay.contentW), m.renderStatus(lay.contentW))
	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(lay.contentW).Height(m.height).Render(ui)
}

// renderStats is the footer line with order toggles, the visible count and
// the altitude extremes of the visible orders.
func (m Model) renderStats(width int) string {
	var b strings.Builder
	for _, g := range m.net.Groups() {
		o := g.Order()
		glyph := orderGlyphs[o]
		if g.Visible() {
			b.WriteString(orderStyles[o].Render(fmt.Sprintf("%d%s", o, glyph)))
		} else {
			b.WriteString(dimStyle.Render(fmt.Sprintf("%d-", o)))
		}
		b.WriteString(" ")
	}
	fmt.Fprintf(&b, " visible %d/%d", m.net.VisibleCount(), m.net.Len())
	low, _ := m.net.GlobalLowest()
	high, _ := m.net.GlobalHighest()
	fmt.Fprintf(&b, "  lowest %s  highest %s", altitudeLabel(low), altitudeLabel(high))
	return lipgloss.NewStyle().Width(width).MaxHeight(1).Render(b.String())
}

func altitudeLabel(p *rgn.SurveyPoint) string {
	if p == nil {
		return "none"
	}
	return fmt.Sprintf("%s (%.1f m)", p.Name, p.Altitude)
}

func (m Model) renderStatus(width int) string {
	status := dimStyle.Render(" " + m.status + " ")
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.renderHelp())
	// mouse coords at bottom-right
	coords := ""
	if m.hoverHasGeo {
		coords = dimStyle.Render(fmt.Sprintf("  lat=%.5f lon=%.5f  ", m.hoverLat, m.hoverLon))
	}
	spacerW := max(0, width-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	return lipgloss.NewStyle().Width(width).MaxHeight(1).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"1-4 orders",
		"c circles",
		"v validate",
		"n neighbours",
		"t type",
		"i inspect",
		"/ search",
		"p add",
		"Tab list",
		"+/- zoom",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
