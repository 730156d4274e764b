// Package drawutil paints the playfield into a cellbuf.Buffer: a
// Viewport projects world coordinates to cells, and the helpers draw
// cable segments, node rings and discs, labels and the background grid.
package drawutil

import "image"

// Bresenham returns the cells on the line from (x0,y0) to (x1,y1), both
// endpoints included. The walk is bounded by dx+dy+2 steps.
func Bresenham(x0, y0, x1, y1 int) []image.Point {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx - dy

	pts := make([]image.Point, 0, dx+dy+1)
	x, y := x0, y0
	for range dx + dy + 2 {
		pts = append(pts, image.Pt(x, y))
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			x += sx
		}
		if e2 < dx {
			e += dx
			y += sy
		}
	}
	return pts
}

// LineChar returns the box-drawing rune for a step of (dx, dy).
func LineChar(dx, dy int) rune {
	switch {
	case dx == 0:
		return '│'
	case dy == 0:
		return '─'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

func sign(x int) int {
	if x < 0 {
		return -1
	}
	return 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
