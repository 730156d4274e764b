package spoolui

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/wesen/spool/pkg/cellbuf"
)

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

// Palette: dark workbench, copper cable, amber power.
var (
	colorBG      = c("#0d0f14")
	colorPanelBG = c("#151a22")

	colorGrid     = c("#1e2430")
	colorCable    = c("#d08a4a")
	colorIsolated = c("#6fa8dc")
	colorFault    = c("#ff4d4d")
	colorSpool    = c("#5a6b7d")
	colorPowered  = c("#ffd54a")
	colorIsolator = c("#6fa8dc")
	colorBlock    = c("#8a3030")
	colorTerminal = c("#9fb3c8")
	colorSocket   = c("#4caf50")
	colorPlugHot  = c("#ffffff")

	colorTitle = c("#ffd54a")
	colorText  = c("#c8d2dc")
	colorDim   = c("#5a6b7d")
)

// cellbuf style keys of the playfield.
const (
	styleBG cellbuf.StyleKey = iota
	styleGrid
	styleFrame
	styleCable
	styleCableIsolated
	styleCableFault
	styleSpool
	styleSpoolPowered
	styleFaulted
	styleIsolator
	styleBlock
	styleTerminal
	styleSocket
	stylePlug
	stylePlugHot
	styleLabel
)

// Paint depths: cable under nodes, terminals over nodes, labels on top.
const (
	depthCable    cellbuf.Depth = 1
	depthNode     cellbuf.Depth = 2
	depthTerminal cellbuf.Depth = 3
	depthLabel    cellbuf.Depth = 4
)

func fg(col color.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(col).Background(colorBG)
}

// bufStyles maps cellbuf StyleKeys to lipgloss styles for rendering.
var bufStyles = map[cellbuf.StyleKey]lipgloss.Style{
	styleBG:            fg(colorGrid),
	styleGrid:          fg(colorGrid),
	styleFrame:         fg(colorDim),
	styleCable:         fg(colorCable).Bold(true),
	styleCableIsolated: fg(colorIsolated),
	styleCableFault:    fg(colorFault).Bold(true),
	styleSpool:         fg(colorSpool),
	styleSpoolPowered:  fg(colorPowered).Bold(true),
	styleFaulted:       fg(colorFault).Bold(true),
	styleIsolator:      fg(colorIsolator),
	styleBlock:         fg(colorBlock),
	styleTerminal:      fg(colorTerminal),
	styleSocket:        fg(colorSocket).Bold(true),
	stylePlug:          fg(colorCable).Bold(true),
	stylePlugHot:       fg(colorPlugHot).Bold(true),
	styleLabel:         fg(colorText),
}

// Chrome styles.
var (
	hudStyle = lipgloss.NewStyle().
			Background(c("#1b2230")).
			Foreground(colorTitle).
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Background(colorBG).
			Foreground(colorDim)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPowered).
			Background(colorPanelBG).
			Foreground(colorText).
			Padding(1, 3).
			AlignHorizontal(lipgloss.Center)

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(colorTitle).
			Background(colorPanelBG).
			Bold(true)
)

// Styles returns the playfield styles for rendering a Frame.
func Styles() map[cellbuf.StyleKey]lipgloss.Style { return bufStyles }
