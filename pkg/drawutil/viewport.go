package drawutil

import (
	"image"
	"math"

	"github.com/wesen/spool/pkg/geom"
)

// CellAspect is the height of a terminal cell divided by its width.
const CellAspect = 2.0

// Viewport maps a world rectangle onto a block of buffer cells, keeping
// the world's proportions. The block is centered in the buffer area it
// was built for; the rest is letterbox.
type Viewport struct {
	World geom.Rect
	Cells image.Rectangle

	cw, ch float64 // world units per cell
}

// NewViewport fits world into a w×h cell area whose cells are aspect
// times taller than wide.
func NewViewport(world geom.Rect, w, h int, aspect float64) Viewport {
	v := Viewport{World: world}
	size := world.Size()
	if w <= 0 || h <= 0 || size.X <= 0 || size.Y <= 0 || aspect <= 0 {
		return v
	}

	s := math.Max(size.X/float64(w), size.Y/(float64(h)*aspect))
	v.cw, v.ch = s, s*aspect

	cols := min(w, int(math.Round(size.X/v.cw)))
	rows := min(h, int(math.Round(size.Y/v.ch)))
	ox, oy := (w-cols)/2, (h-rows)/2
	v.Cells = image.Rect(ox, oy, ox+cols, oy+rows)
	return v
}

// Empty reports whether the viewport has no cells.
func (v Viewport) Empty() bool { return v.Cells.Empty() }

// Scale returns the world size of one cell.
func (v Viewport) Scale() geom.Vec { return geom.V(v.cw, v.ch) }

// ToCell returns the cell containing world point p. Points outside the
// world map outside Cells.
func (v Viewport) ToCell(p geom.Vec) image.Point {
	if v.Empty() {
		return image.Pt(-1, -1)
	}
	x := int(math.Floor((p.X - v.World.Min.X) / v.cw))
	y := int(math.Floor((p.Y - v.World.Min.Y) / v.ch))
	return image.Pt(v.Cells.Min.X+x, v.Cells.Min.Y+y)
}

// ToWorld returns the world position of the center of cell c.
func (v Viewport) ToWorld(c image.Point) geom.Vec {
	x := (float64(c.X-v.Cells.Min.X) + 0.5) * v.cw
	y := (float64(c.Y-v.Cells.Min.Y) + 0.5) * v.ch
	return v.World.Min.Add(geom.V(x, y))
}

// Contains reports whether cell c is inside the projected world.
func (v Viewport) Contains(c image.Point) bool { return c.In(v.Cells) }

// Offset returns v with its cell block moved by d.
func (v Viewport) Offset(d image.Point) Viewport {
	v.Cells = v.Cells.Add(d)
	return v
}
