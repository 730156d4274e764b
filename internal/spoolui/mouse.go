package spoolui

import (
	"image"

	tea "charm.land/bubbletea/v2"
	"github.com/wesen/spool/pkg/drawutil"
	"github.com/wesen/spool/pkg/geom"
	"github.com/wesen/spool/pkg/tealayout"
)

// handleMouse maps pointer events onto the end terminal drag. Motion
// outside the playfield still moves an active drag; the board clamps it.
func handleMouse(m Model, msg tea.MouseMsg) (Model, tea.Cmd) {
	mouse := msg.Mouse()
	m.MouseX, m.MouseY = mouse.X, mouse.Y
	if m.board == nil || m.ended || m.prompt {
		return m, nil
	}

	world, inside := m.screenToWorld(image.Pt(mouse.X, mouse.Y))

	switch msg.(type) {
	case tea.MouseClickMsg:
		if mouse.Button == tea.MouseLeft && inside {
			if m.board.Grab(world) {
				m.log.Debugf("grab at %.0f,%.0f", world.X, world.Y)
			}
		}

	case tea.MouseMotionMsg:
		m.hover = inside && m.board.Hover(world)
		m.board.MoveTo(world)

	case tea.MouseReleaseMsg:
		m.board.Release()
	}
	return m, nil
}

// viewport returns the playfield region and the world projection into it.
func (m Model) viewport() (tealayout.Region, drawutil.Viewport) {
	pf := m.layout().Get(tealayout.Playfield)
	bounds := geom.Rect{}
	if m.board != nil {
		bounds = m.board.Bounds()
	}
	return pf, Fit(bounds, pf.Rect.Dx(), pf.Rect.Dy())
}

// screenToWorld converts a terminal cell to world coordinates and
// reports whether the cell is on the projected playfield.
func (m Model) screenToWorld(p image.Point) (geom.Vec, bool) {
	pf, v := m.viewport()
	local := p.Sub(pf.Rect.Min)
	return v.ToWorld(local), !v.Empty() && v.Contains(local)
}

// worldToScreen is the inverse of screenToWorld, up to cell size.
func (m Model) worldToScreen(w geom.Vec) image.Point {
	pf, v := m.viewport()
	return v.ToCell(w).Add(pf.Rect.Min)
}
