package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"rgnmap/internal/rgn"
)

func testNetwork(t *testing.T) *rgn.Network {
	t.Helper()
	n, err := rgn.Parse([]rgn.Record{
		{Name: "alfa", Order: "1", Type: "pilar", Altitude: "100", Latitude: "38.7", Longitude: "-9.1"},
		{Name: "bravo", Order: "1", Type: "pilar", Altitude: "250", Latitude: "39.10458", Longitude: "-9.1"},
		{Name: "charlie", Order: "2", Type: "marco", Altitude: "40", Latitude: "38.9", Longitude: "-8.5"},
		{Name: "delta", Order: "4", Type: "pilar", Altitude: "", Latitude: "38.8", Longitude: "-8.9"},
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return n
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(testNetwork(t), Options{RadiusKm: 60})
	return send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		if m, ok = next.(Model); !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestToggleOrderKeys(t *testing.T) {
	m := newTestModel(t)
	if got := m.net.VisibleCount(); got != 4 {
		t.Fatalf("visible = %d, want 4", got)
	}

	m = send(t, m, key("1"))
	if got := m.net.VisibleCount(); got != 2 {
		t.Errorf("visible after hiding order 1 = %d, want 2", got)
	}
	if !strings.Contains(m.status, "order 1 hidden") {
		t.Errorf("status = %q", m.status)
	}
	if got := len(m.l.Items()); got != 2 {
		t.Errorf("list items = %d, want 2", got)
	}
	high, ok := m.net.GlobalHighest()
	if !ok || high.Name != "charlie" {
		t.Errorf("highest = %v, want charlie", high)
	}

	m = send(t, m, key("1"))
	if got := m.net.VisibleCount(); got != 4 {
		t.Errorf("visible after showing order 1 = %d, want 4", got)
	}
}

func TestValidateKey(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, key("v"))
	if !m.showReport {
		t.Fatal("report not shown")
	}
	if len(m.invalid) != 2 {
		t.Fatalf("invalid = %d, want 2", len(m.invalid))
	}
	for _, name := range []string{"charlie", "delta"} {
		p, _ := m.net.Lookup(name)
		if !m.invalid[p] {
			t.Errorf("%s not flagged invalid", name)
		}
	}
	if got := len(m.tbl.Rows()); got != 2 {
		t.Errorf("report rows = %d, want 2", got)
	}

	m = send(t, m, key("esc"))
	if m.showReport {
		t.Error("esc did not close the report")
	}
}

func TestSearch(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, key("/"))
	if m.mode != inputSearch {
		t.Fatalf("mode = %v, want search", m.mode)
	}
	m.ta.SetValue("BRA")
	m = send(t, m, key("enter"))
	if m.selected == nil || m.selected.Name != "bravo" {
		t.Fatalf("selected = %v, want bravo", m.selected)
	}
	if m.mode != inputNone {
		t.Error("search mode not closed")
	}
	if !strings.Contains(m.inspectPopup, "order: 1") {
		t.Errorf("popup = %q", m.inspectPopup)
	}

	m = send(t, m, key("/"))
	m.ta.SetValue("zulu")
	m = send(t, m, key("enter"))
	if m.mode != inputSearch || !strings.Contains(m.status, "no VG named") {
		t.Errorf("unknown name: mode = %v status = %q", m.mode, m.status)
	}
}

func TestAddVG(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, key("p"))
	m.ta.SetValue("echo,2,marco,60,39.0,-8.5")
	m = send(t, m, key("enter"))
	p, ok := m.net.Lookup("echo")
	if !ok {
		t.Fatalf("echo not added: %s", m.status)
	}
	if m.selected != p || m.mode != inputNone {
		t.Errorf("selected = %v mode = %v", m.selected, m.mode)
	}
	if got := m.net.VisibleCount(); got != 5 {
		t.Errorf("visible = %d, want 5", got)
	}

	m = send(t, m, key("p"))
	m.ta.SetValue("foxtrot,9,marco,60,39.0,-8.5")
	m = send(t, m, key("enter"))
	if m.mode != inputAdd || !strings.HasPrefix(m.status, "add:") {
		t.Errorf("bad order: mode = %v status = %q", m.mode, m.status)
	}
	if _, ok := m.net.Lookup("foxtrot"); ok {
		t.Error("foxtrot added despite invalid order")
	}
}

func TestNeighboursAndSameType(t *testing.T) {
	m := newTestModel(t)
	alfa, _ := m.net.Lookup("alfa")
	m.selectPoint(alfa)

	m = send(t, m, key("n"))
	for _, name := range []string{"bravo", "charlie", "delta"} {
		p, _ := m.net.Lookup(name)
		if !m.neighbours[p] {
			t.Errorf("%s not a neighbour of alfa", name)
		}
	}
	if m.neighbours[alfa] {
		t.Error("alfa listed as its own neighbour")
	}

	m = send(t, m, key("t"))
	if len(m.sameType) != 3 {
		t.Errorf("same type = %d, want 3", len(m.sameType))
	}
	m = send(t, m, key("t"))
	if m.sameType != nil {
		t.Error("second t did not clear the highlight")
	}
}

func TestView(t *testing.T) {
	m := newTestModel(t)
	out := m.View()
	for _, want := range []string{"rgnmap", "visible 4/4", "lowest charlie (40.0 m)", "highest bravo (250.0 m)"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if !strings.Contains(m.renderMap(60, 20), orderGlyphs[rgn.Order1]) {
		t.Error("map has no order 1 marker")
	}

	empty := send(t, New(nil, Options{}), tea.WindowSizeMsg{Width: 80, Height: 24})
	if out := empty.View(); !strings.Contains(out, "lowest none") {
		t.Error("empty network footer missing lowest none")
	}
}

func TestMarkerCanvas(t *testing.T) {
	c := newMarkerCanvas(2, 1)
	c.dot(0, 0)
	c.dot(3, 3)
	c.dot(-1, 0)
	c.dot(4, 0)
	if got := c.cells(); got[0][0] != "⠁" || got[0][1] != "⢀" {
		t.Errorf("cells = %q", got)
	}

	c = newMarkerCanvas(4, 2)
	c.segment([2]int{0, 0}, [2]int{7, 7})
	for i := 0; i < 8; i++ {
		if c.masks[i/4][i/2]&brailleBits[i%4][i%2] == 0 {
			t.Errorf("diagonal misses dot %d", i)
		}
	}
	c = newMarkerCanvas(4, 2)
	c.segment([2]int{-100, 0}, [2]int{-1, 7})
	for _, row := range c.cells() {
		if strings.TrimSpace(strings.Join(row, "")) != "" {
			t.Error("segment left of the canvas drew dots")
		}
	}
}

func TestMarkerCanvasMarkers(t *testing.T) {
	m := newTestModel(t)
	count := func(withCircles bool) int {
		c := newMarkerCanvas(60, 20)
		c.markers(m, withCircles)
		n := 0
		for _, row := range c.masks {
			for _, mask := range row {
				if mask != 0 {
					n++
				}
			}
		}
		return n
	}
	// only delta has no altitude
	if got := count(false); got != 1 {
		t.Errorf("cells without circles = %d, want 1", got)
	}
	if got := count(true); got <= 1 {
		t.Errorf("cells with circles = %d, want rings", got)
	}
}
