package drawutil

import (
	"image"

	"github.com/wesen/spool/pkg/cellbuf"
)

// pointChar picks the line rune for pts[i] from the step toward its
// neighbour.
func pointChar(pts []image.Point, i int) rune {
	var d image.Point
	switch {
	case i < len(pts)-1:
		d = pts[i+1].Sub(pts[i])
	case i > 0:
		d = pts[i].Sub(pts[i-1])
	}
	return LineChar(d.X, d.Y)
}

// DrawLine plots a line in buffer coordinates at depth z.
func DrawLine(buf *cellbuf.Buffer, from, to image.Point, style cellbuf.StyleKey, z cellbuf.Depth) {
	pts := Bresenham(from.X, from.Y, to.X, to.Y)
	for i, p := range pts {
		buf.Plot(p.X, p.Y, pointChar(pts, i), style, z)
	}
}

// DrawDashedLine is DrawLine with every third cell left out.
func DrawDashedLine(buf *cellbuf.Buffer, from, to image.Point, style cellbuf.StyleKey, z cellbuf.Depth) {
	pts := Bresenham(from.X, from.Y, to.X, to.Y)
	for i, p := range pts {
		if i%3 != 2 {
			buf.Plot(p.X, p.Y, pointChar(pts, i), style, z)
		}
	}
}
