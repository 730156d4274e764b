package puzzle

import "github.com/wesen/spool/pkg/geom"

type dragState struct {
	active bool
	offset geom.Vec // end position minus pointer at grab time
	target geom.Vec
}

// Hover reports whether p is close enough to the end terminal to grab it.
func (b *Board) Hover(p geom.Vec) bool {
	return geom.Dist(p, b.end.Pos) < GrabRadius
}

// Grab starts dragging the end terminal if p is within GrabRadius. The
// offset between pointer and terminal is kept for the whole drag.
func (b *Board) Grab(p geom.Vec) bool {
	if b.completed || !b.Hover(p) {
		return false
	}
	b.drag = dragState{active: true, offset: b.end.Pos.Sub(p), target: b.end.Pos}
	return true
}

// MoveTo updates the pointer position of an active drag.
func (b *Board) MoveTo(p geom.Vec) {
	if b.drag.active {
		b.drag.target = p.Add(b.drag.offset)
	}
}

// Release ends the drag.
func (b *Board) Release() { b.drag = dragState{} }

// Dragging reports whether a drag is active.
func (b *Board) Dragging() bool { return b.drag.active }

// DragTarget returns the requested end position for the next Tick, or
// nil when nothing is being dragged.
func (b *Board) DragTarget() *geom.Vec {
	if !b.drag.active {
		return nil
	}
	t := b.drag.target
	return &t
}

// Step runs one tick with the current drag target.
func (b *Board) Step() Snapshot {
	return b.Tick(b.DragTarget())
}
