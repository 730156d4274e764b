package spoolui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/wesen/spool/pkg/tealayout"
)

const (
	panelWidth   = 30
	minPlayWidth = 60
)

var (
	panelTitleStyle = lipgloss.NewStyle().
			Foreground(colorTitle).
			Background(colorPanelBG).
			Bold(true)

	panelTextStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorPanelBG)

	panelDimStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Background(colorPanelBG)

	panelFaultStyle = lipgloss.NewStyle().
			Foreground(colorFault).
			Background(colorPanelBG).
			Bold(true)

	panelGoodStyle = lipgloss.NewStyle().
			Foreground(colorSocket).
			Background(colorPanelBG).
			Bold(true)

	panelLineStyle = lipgloss.NewStyle().Background(colorPanelBG)

	panelSepStyle = lipgloss.NewStyle().
			Foreground(c("#2a3342")).
			Background(colorBG)
)

// panelLines lists the side panel content: level, hint, cable state
// and a legend.
func (m Model) panelLines(width int) []string {
	rule := panelDimStyle.Render(strings.Repeat("─", max(0, width-2)))
	s := m.snap

	lines := []string{
		panelTitleStyle.Render(fmt.Sprintf(" LEVEL %d / %d", m.index+1, m.pack.Len())),
		panelDimStyle.Render(" " + m.board.Name),
		rule,
	}
	for _, h := range m.board.Hint {
		for _, w := range wrapWords(h, width-2) {
			lines = append(lines, panelTextStyle.Render(" "+w))
		}
	}
	if len(m.board.Hint) > 0 {
		lines = append(lines, rule)
	}

	lines = append(lines,
		panelTextStyle.Render(fmt.Sprintf(" powered  %s", s.Counter())),
		panelTextStyle.Render(fmt.Sprintf(" wraps    %d", max(0, len(s.Wraps)-2))),
	)
	switch {
	case s.Completed:
		lines = append(lines, panelGoodStyle.Render(" SOLVED"))
	case s.Overpowered:
		lines = append(lines, panelFaultStyle.Render(" OVERPOWERED"))
	case s.Connected:
		lines = append(lines, panelGoodStyle.Render(" plugged in"))
	default:
		lines = append(lines, panelDimStyle.Render(" not plugged in"))
	}
	if s.Stalls > 0 {
		lines = append(lines, panelFaultStyle.Render(fmt.Sprintf(" resolver stalls %d", s.Stalls)))
	}
	if m.status != "" {
		lines = append(lines, panelFaultStyle.Render(" "+m.status))
	}

	lines = append(lines,
		rule,
		panelDimStyle.Render(" o spool   ● powered"),
		panelDimStyle.Render(" : isolator ▒ block"),
		panelDimStyle.Render(" ■ start   ◎ socket"),
		panelDimStyle.Render(" ● plug: drag it"),
	)
	return lines
}

func (m Model) buildPanelLayers(r tealayout.Region) []*lipgloss.Layer {
	w, h := r.Rect.Dx(), r.Rect.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}
	content := tealayout.Lines(m.panelLines(w-1), w-1, h, panelLineStyle)
	return []*lipgloss.Layer{
		tealayout.VerticalSeparator(r.Rect.Min.X, r.Rect.Min.Y, h, panelSepStyle),
		lipgloss.NewLayer(content).X(r.Rect.Min.X + 1).Y(r.Rect.Min.Y).Z(1).ID("panel"),
	}
}

// wrapWords breaks s into lines of at most width runes on spaces.
func wrapWords(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var cur string
	for _, w := range strings.Fields(s) {
		switch {
		case cur == "":
			cur = w
		case len([]rune(cur))+1+len([]rune(w)) <= width:
			cur += " " + w
		default:
			lines = append(lines, cur)
			cur = w
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
