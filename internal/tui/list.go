package tui

import (
	"fmt"
	"sort"

	list "github.com/charmbracelet/bubbles/list"

	"rgnmap/internal/rgn"
)

type vgItem struct {
	title, desc string
	point       *rgn.SurveyPoint
}

func (v vgItem) Title() string       { return v.title }
func (v vgItem) Description() string { return v.desc }
func (v vgItem) FilterValue() string { return v.title }

// refreshList rebuilds the sidebar from the VGs of the visible orders.
func (m *Model) refreshList() {
	var items []list.Item
	for _, g := range m.net.Groups() {
		if !g.Visible() {
			continue
		}
		for _, p := range g.Points() {
			items = append(items, vgItem{
				title: p.Name,
				desc:  fmt.Sprintf("order %d  %s", p.Order, p.Type),
				point: p,
			})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(vgItem).Title() < items[j].(vgItem).Title() })
	m.l.SetItems(items)
}
