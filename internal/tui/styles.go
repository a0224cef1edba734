package tui

import (
	"github.com/charmbracelet/lipgloss"

	"rgnmap/internal/rgn"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")
	warnFg    = lipgloss.Color("#F87171")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	warnStyle  = lipgloss.NewStyle().Foreground(warnFg).Bold(true)

	selectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Bold(true)
	neighbourStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22D3EE"))
	sameTypeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FACC15"))
)

// one colour and glyph per order, like the per-order marker icons
var orderStyles = map[rgn.Order]lipgloss.Style{
	rgn.Order1: lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true),
	rgn.Order2: lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
	rgn.Order3: lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")),
	rgn.Order4: lipgloss.NewStyle().Foreground(lipgloss.Color("#60A5FA")),
}

var orderGlyphs = map[rgn.Order]string{
	rgn.Order1: "▲",
	rgn.Order2: "◆",
	rgn.Order3: "●",
	rgn.Order4: "·",
}
