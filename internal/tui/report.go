package tui

import (
	"fmt"
	"math"

	table "github.com/charmbracelet/bubbles/table"

	"rgnmap/internal/rgn"
)

// refreshReport runs the network validation and rebuilds the report table.
// It reports false when every VG passed.
func (m *Model) refreshReport() bool {
	rep := m.net.TriggerValidation()
	m.invalid = make(map[*rgn.SurveyPoint]bool, len(rep.Invalid))
	for _, p := range rep.Invalid {
		m.invalid[p] = true
	}
	if rep.OK() {
		return false
	}
	cols, rows := reportRows(m.net, rep)
	tcols := make([]table.Column, 0, len(cols)+1)
	tcols = append(tcols, table.Column{Title: "#", Width: 4})
	maxColW := 24
	for _, c := range cols {
		w := len(c) + 2
		if c == "name" {
			w = 16
		}
		if w > maxColW {
			w = maxColW
		}
		tcols = append(tcols, table.Column{Title: c, Width: w})
	}
	trows := make([]table.Row, 0, len(rows))
	for i, r := range rows {
		row := make([]string, 0, len(r)+1)
		row = append(row, fmt.Sprintf("%d", i+1))
		row = append(row, r...)
		trows = append(trows, table.Row(row))
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
	return true
}

// reportRows lists each invalid VG with the distance to its nearest same-order
// VG and the band it should fall in.
func reportRows(net *rgn.Network, rep rgn.Report) ([]string, [][]string) {
	cols := []string{"name", "order", "type", "nearest km", "band km"}
	rows := make([][]string, 0, len(rep.Invalid))
	for _, p := range rep.Invalid {
		g, err := net.Group(int(p.Order))
		if err != nil {
			continue
		}
		nearest := math.Inf(1)
		for _, q := range g.Points() {
			if q != p {
				nearest = math.Min(nearest, p.DistanceTo(q))
			}
		}
		near := "-"
		if !math.IsInf(nearest, 1) {
			near = fmt.Sprintf("%.1f", nearest)
		}
		b := p.Order.Band()
		band := "any"
		if !b.Unbounded() {
			band = fmt.Sprintf("%g-%g", b.Min, b.Max)
		}
		rows = append(rows, []string{p.Name, fmt.Sprintf("%d", p.Order), p.Type, near, band})
	}
	return cols, rows
}
