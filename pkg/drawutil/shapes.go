package drawutil

import (
	"image"
	"math"

	"github.com/wesen/spool/pkg/cellbuf"
	"github.com/wesen/spool/pkg/geom"
)

// DrawSegment plots the world segment a→b.
func DrawSegment(buf *cellbuf.Buffer, v Viewport, a, b geom.Vec, style cellbuf.StyleKey, z cellbuf.Depth) {
	DrawLine(buf, v.ToCell(a), v.ToCell(b), style, z)
}

// DrawDashedSegment plots the world segment a→b dashed.
func DrawDashedSegment(buf *cellbuf.Buffer, v Viewport, a, b geom.Vec, style cellbuf.StyleKey, z cellbuf.Depth) {
	DrawDashedLine(buf, v.ToCell(a), v.ToCell(b), style, z)
}

// DrawRing plots the outline of a world circle with ch. A circle smaller
// than a cell becomes a single cell.
func DrawRing(buf *cellbuf.Buffer, v Viewport, c geom.Vec, r float64, ch rune, style cellbuf.StyleKey, z cellbuf.Depth) {
	if v.Empty() {
		return
	}
	s := v.Scale()
	step := math.Min(s.X, s.Y) / 2
	if r < step {
		p := v.ToCell(c)
		buf.Plot(p.X, p.Y, ch, style, z)
		return
	}
	n := max(8, int(math.Ceil(2*math.Pi*r/step)))
	for i := range n {
		a := 2 * math.Pi * float64(i) / float64(n)
		p := v.ToCell(c.Add(geom.V(math.Cos(a), math.Sin(a)).Mul(r)))
		buf.Plot(p.X, p.Y, ch, style, z)
	}
}

// DrawDisc fills every cell whose center lies inside the world circle.
// At least the cell under the center is always painted.
func DrawDisc(buf *cellbuf.Buffer, v Viewport, c geom.Vec, r float64, ch rune, style cellbuf.StyleKey, z cellbuf.Depth) {
	if v.Empty() {
		return
	}
	lo := v.ToCell(c.Sub(geom.V(r, r)))
	hi := v.ToCell(c.Add(geom.V(r, r)))
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			p := v.ToWorld(image.Pt(x, y))
			if geom.Dist2(p, c) <= r*r {
				buf.Plot(x, y, ch, style, z)
			}
		}
	}
	p := v.ToCell(c)
	buf.Plot(p.X, p.Y, ch, style, z)
}

// DrawLabel centers s horizontally on the cell of world point p.
func DrawLabel(buf *cellbuf.Buffer, v Viewport, p geom.Vec, s string, style cellbuf.StyleKey, z cellbuf.Depth) {
	c := v.ToCell(p)
	buf.Text(c.X-len([]rune(s))/2, c.Y, s, style, z)
}
