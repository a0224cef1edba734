package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"rgnmap/internal/rgn"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171")).Bold(true)
)

// printReport writes the per-order summary and the VGs outside their spacing
// band. It returns the process exit code.
func printReport(w io.Writer, net *rgn.Network) int {
	rep := net.TriggerValidation()
	fmt.Fprintln(w, newTable("order", "VGs", "invalid", "lowest", "highest").Rows(summaryRows(net, rep)...).Render())
	if rep.OK() {
		fmt.Fprintf(w, "all %d VGs valid\n", net.Len())
		return 0
	}
	rows := make([][]string, 0, len(rep.Invalid))
	for _, p := range rep.Invalid {
		rows = append(rows, []string{
			p.Name,
			strconv.Itoa(int(p.Order)),
			p.Type,
			strconv.FormatFloat(p.Lat, 'f', 6, 64),
			strconv.FormatFloat(p.Lon, 'f', 6, 64),
		})
	}
	fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("%d VGs outside their spacing band", len(rep.Invalid))))
	fmt.Fprintln(w, newTable("name", "order", "type", "latitude", "longitude").Rows(rows...).Render())
	return 1
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func summaryRows(net *rgn.Network, rep rgn.Report) [][]string {
	invalid := make(map[rgn.Order]int)
	for _, p := range rep.Invalid {
		invalid[p.Order]++
	}
	rows := make([][]string, 0, len(rgn.Orders))
	for _, g := range net.Groups() {
		rows = append(rows, []string{
			strconv.Itoa(int(g.Order())),
			strconv.Itoa(g.Len()),
			strconv.Itoa(invalid[g.Order()]),
			altitude(g.Lowest()),
			altitude(g.Highest()),
		})
	}
	return rows
}

func altitude(p *rgn.SurveyPoint) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%s %.1f m", p.Name, p.Altitude)
}
