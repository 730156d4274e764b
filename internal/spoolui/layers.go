package spoolui

import (
	"image"

	"charm.land/lipgloss/v2"
	"github.com/wesen/spool/pkg/cable"
	"github.com/wesen/spool/pkg/cellbuf"
	"github.com/wesen/spool/pkg/drawutil"
	"github.com/wesen/spool/pkg/geom"
	"github.com/wesen/spool/pkg/puzzle"
)

const gridSpacing = 80.0

// Paint draws a snapshot into buf through v. hot highlights the end
// terminal, for hover and drag.
func Paint(buf *cellbuf.Buffer, v drawutil.Viewport, s puzzle.Snapshot, hot bool) {
	drawutil.DrawGrid(buf, v, gridSpacing, styleGrid)
	drawutil.DrawFrame(buf, v, styleFrame, depthCable)

	for _, seg := range s.Segments {
		switch {
		case seg.Overlap:
			drawutil.DrawSegment(buf, v, seg.From, seg.To, styleCableFault, depthCable)
		case seg.Isolated:
			drawutil.DrawDashedSegment(buf, v, seg.From, seg.To, styleCableIsolated, depthCable)
		default:
			drawutil.DrawSegment(buf, v, seg.From, seg.To, styleCable, depthCable)
		}
	}

	for _, n := range s.Nodes {
		paintNode(buf, v, n, hot)
	}
}

func paintNode(buf *cellbuf.Buffer, v drawutil.Viewport, n puzzle.NodeState, hot bool) {
	switch n.Kind {
	case cable.Spool:
		style, ch := styleSpool, 'o'
		switch {
		case n.Overpowered:
			style, ch = styleFaulted, 'x'
		case n.Powered:
			style, ch = styleSpoolPowered, '●'
		}
		drawutil.DrawRing(buf, v, n.Pos, n.Radius, ch, style, depthNode)
		if n.Powered {
			drawutil.DrawLabel(buf, v, n.Pos, "+", style, depthLabel)
		}

	case cable.Isolator:
		style := styleIsolator
		if n.Overpowered {
			style = styleFaulted
		}
		drawutil.DrawRing(buf, v, n.Pos, n.Radius, ':', style, depthNode)

	case cable.Block:
		style := styleBlock
		if n.Overpowered {
			style = styleFaulted
		}
		drawutil.DrawDisc(buf, v, n.Pos, n.Radius, '▒', style, depthNode)

	case cable.Start:
		drawutil.DrawDisc(buf, v, n.Pos, 0, '■', styleTerminal, depthTerminal)

	case cable.Finish:
		drawutil.DrawDisc(buf, v, n.Pos, 0, '◎', styleSocket, depthTerminal)

	case cable.End:
		style := stylePlug
		if hot {
			style = stylePlugHot
		}
		drawutil.DrawDisc(buf, v, n.Pos, 0, '●', style, depthTerminal+1)
	}
}

// Fit projects bounds into a w×h cell area, leaving a one-cell margin
// for the frame.
func Fit(bounds geom.Rect, w, h int) drawutil.Viewport {
	return drawutil.NewViewport(bounds, w-2, h-2, drawutil.CellAspect).Offset(image.Pt(1, 1))
}

// Frame renders a snapshot into a fresh w×h buffer.
func Frame(s puzzle.Snapshot, bounds geom.Rect, w, h int, hot bool) *cellbuf.Buffer {
	buf := cellbuf.New(w, h, styleBG)
	Paint(buf, Fit(bounds, w, h), s, hot)
	return buf
}

// buildPlayfieldLayer renders the board into the playfield region.
func (m Model) buildPlayfieldLayer(r image.Rectangle) *lipgloss.Layer {
	_, v := m.viewport()
	buf := cellbuf.New(r.Dx(), r.Dy(), styleBG)
	Paint(buf, v, m.snap, m.hover || m.board.Dragging())
	return lipgloss.NewLayer(buf.Render(bufStyles)).X(r.Min.X).Y(r.Min.Y).Z(0).ID("playfield")
}
