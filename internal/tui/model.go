package tui

import (
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/paulmach/orb"

	"rgnmap/internal/rgn"
)

type inputMode int

const (
	inputNone inputMode = iota
	inputSearch
	inputAdd
)

// Options tunes the viewer.
type Options struct {
	RadiusKm float64 // neighbour query radius
	Zoom     float64 // initial zoom
	Source   string  // dataset name shown in the inspect popup
	Status   string  // initial status line
}

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// Data
	net      *rgn.Network
	source   string
	radiusKm float64
	bound    orb.Bound

	// VG list
	l list.Model

	// last rendered map size (for inspect)
	mapW int
	mapH int

	// text input (search by name, paste a VG)
	mode inputMode
	ta   textarea.Model

	showCircles bool

	// selection and highlights
	selected   *rgn.SurveyPoint
	neighbours map[*rgn.SurveyPoint]bool
	sameType   map[*rgn.SurveyPoint]bool
	invalid    map[*rgn.SurveyPoint]bool

	// inspect popup
	inspectPopup string

	// hover state
	hovering    bool
	hoverMicX   int
	hoverMicY   int
	hoverHasGeo bool
	hoverLon    float64
	hoverLat    float64

	// validation report table
	showReport bool
	tbl        table.Model
}

// New returns a viewer over net. The network is driven through its commands
// only; the viewer never changes survey points.
func New(net *rgn.Network, opts Options) Model {
	if net == nil {
		net = rgn.New()
	}
	if opts.RadiusKm <= 0 {
		opts.RadiusKm = 60
	}
	if opts.Zoom <= 0 {
		opts.Zoom = 1
	}
	if opts.Status == "" {
		opts.Status = "rgnmap ready"
	}
	m := Model{
		helpVisible: true,
		zoom:        opts.Zoom,
		status:      opts.Status,
		net:         net,
		source:      opts.Source,
		radiusKm:    opts.RadiusKm,
		showCircles: true,
	}
	m.bound = networkBound(net)
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "VGs"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(3)
	// report table setup
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshList()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// networkBound returns the lon/lat bound of every VG, padded so a single VG
// or an empty network still projects.
func networkBound(net *rgn.Network) orb.Bound {
	var mp orb.MultiPoint
	for _, g := range net.Groups() {
		for _, p := range g.Points() {
			mp = append(mp, orb.Point{p.Lon, p.Lat})
		}
	}
	if len(mp) == 0 {
		// mainland Portugal
		return orb.Bound{Min: orb.Point{-9.5, 36.9}, Max: orb.Point{-6.2, 42.2}}
	}
	b := mp.Bound()
	if b.Right()-b.Left() < 0.01 || b.Top()-b.Bottom() < 0.01 {
		b = b.Pad(0.05)
	}
	return b
}
