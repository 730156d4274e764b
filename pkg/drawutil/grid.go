package drawutil

import (
	"github.com/wesen/spool/pkg/cellbuf"
	"github.com/wesen/spool/pkg/geom"
)

// DrawGrid dots the world at every multiple of spacing, at depth 0.
func DrawGrid(buf *cellbuf.Buffer, v Viewport, spacing float64, style cellbuf.StyleKey) {
	if v.Empty() || spacing <= 0 {
		return
	}
	w := v.World
	for y := w.Min.Y + spacing; y < w.Max.Y; y += spacing {
		for x := w.Min.X + spacing; x < w.Max.X; x += spacing {
			c := v.ToCell(geom.V(x, y))
			buf.Plot(c.X, c.Y, '·', style, 0)
		}
	}
}

// DrawFrame outlines the projected world with a light box one cell
// outside it.
func DrawFrame(buf *cellbuf.Buffer, v Viewport, style cellbuf.StyleKey, z cellbuf.Depth) {
	if v.Empty() {
		return
	}
	r := v.Cells.Inset(-1)
	for x := r.Min.X + 1; x < r.Max.X-1; x++ {
		buf.Plot(x, r.Min.Y, '─', style, z)
		buf.Plot(x, r.Max.Y-1, '─', style, z)
	}
	for y := r.Min.Y + 1; y < r.Max.Y-1; y++ {
		buf.Plot(r.Min.X, y, '│', style, z)
		buf.Plot(r.Max.X-1, y, '│', style, z)
	}
	buf.Plot(r.Min.X, r.Min.Y, '┌', style, z)
	buf.Plot(r.Max.X-1, r.Min.Y, '┐', style, z)
	buf.Plot(r.Min.X, r.Max.Y-1, '└', style, z)
	buf.Plot(r.Max.X-1, r.Max.Y-1, '┘', style, z)
}
