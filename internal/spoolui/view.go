package spoolui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/wesen/spool/pkg/tealayout"
)

func (m Model) layout() tealayout.Layout {
	return tealayout.GameLayout(m.Width, m.Height, panelWidth, minPlayWidth)
}

// View implements tea.Model.
func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}

// render composes the whole screen.
func (m Model) render() string {
	if m.Width == 0 || m.Height == 0 || m.board == nil {
		return ""
	}
	l := m.layout()
	pf := l.Get(tealayout.Playfield)
	screen := tealayout.Region{Rect: pf.Rect}

	layers := []*lipgloss.Layer{
		m.buildPlayfieldLayer(pf.Rect),
		tealayout.HUDLayer(l.Get(tealayout.HUD), m.hudLeft(), m.hudRight(), hudStyle),
		tealayout.FooterLayer(l.Get(tealayout.Footer), " "+m.help.ShortHelpView(m.keys.ShortHelp()), footerStyle),
	}
	if l.Has(tealayout.Panel) {
		layers = append(layers, m.buildPanelLayers(l.Get(tealayout.Panel))...)
	}

	switch {
	case m.ended:
		layers = append(layers, tealayout.ModalLayer(screen, strings.Join([]string{
			modalTitleStyle.Render("Thanks for playing!"),
			"",
			fmt.Sprintf("All %d levels powered.", m.pack.Len()),
			"[enter] play again   [q] quit",
		}, "\n"), modalStyle, "end"))

	case m.prompt:
		layers = append(layers, tealayout.ModalLayer(screen, strings.Join([]string{
			modalTitleStyle.Render(fmt.Sprintf("Go to level 1-%d", m.pack.Len())),
			"",
			m.input.View(),
			"",
			"[enter] go   [esc] cancel",
		}, "\n"), modalStyle, "prompt"))

	case m.finished:
		layers = append(layers, tealayout.ModalLayer(screen, strings.Join([]string{
			modalTitleStyle.Render("Level complete!"),
			"",
			fmt.Sprintf("%s spools powered", m.snap.Counter()),
			"[enter] next level",
		}, "\n"), modalStyle, "complete"))
	}

	comp := lipgloss.NewCompositor(layers...)
	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(comp)
	return canvas.Render()
}

func (m Model) hudLeft() string {
	return fmt.Sprintf(" SPOOL │ Level %d", m.index+1)
}

func (m Model) hudRight() string {
	state := ""
	switch {
	case m.snap.Overpowered:
		state = "OVERPOWERED │ "
	case m.snap.Completed:
		state = "SOLVED │ "
	}
	return fmt.Sprintf("%s⚡ %s ", state, m.snap.Counter())
}
