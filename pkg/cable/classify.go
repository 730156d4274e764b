package cable

// Classify marks the segments of a resolved chain. Isolation parity
// flips at every isolator and applies to the segment leaving it.
// Non-isolated segments that cross each other overlap. A segment that
// crosses a block overlaps and overpowers the cable, isolated or not.
func (c *Chain) Classify(blocks []*Node) {
	isolated := false
	for _, a := range c.Attachments {
		if a.Node.Kind == Isolator {
			isolated = !isolated
		}
		a.Isolated = isolated
	}

	n := c.SegmentCount()
	for i := 0; i < n; i++ {
		ai := c.Attachments[i]
		if ai.Isolated {
			continue
		}
		si := c.Segment(i)
		for j := i + 1; j < n; j++ {
			aj := c.Attachments[j]
			if aj.Isolated {
				continue
			}
			if si.Intersects(c.Segment(j)) {
				ai.Overlap = true
				aj.Overlap = true
			}
		}
	}

	for i := 0; i < n; i++ {
		seg := c.Segment(i)
		for _, b := range blocks {
			if seg.CrossesCircle(b.Pos, b.Radius) {
				c.Attachments[i].Overlap = true
				c.Overpowered = true
			}
		}
	}
}
