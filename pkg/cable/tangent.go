package cable

import "github.com/wesen/spool/pkg/geom"

// UpdateTangents recomputes the contact points of every adjacent pair.
// Pairs without a tangent solution (overlapping or contained circles)
// keep their previous points. It returns the number of such pairs.
func (c *Chain) UpdateTangents() int {
	return updateTangents(c.Attachments)
}

func updateTangents(atts []*Attachment) int {
	stale := 0
	for i := 0; i < len(atts)-1; i++ {
		a, b := atts[i], atts[i+1]
		tans := geom.Bitangents(a.Node.Pos, a.Node.Radius, b.Node.Pos, b.Node.Radius)
		line, ok := tans.For(a.Side, b.Side)
		if !ok {
			stale++
			continue
		}
		a.Out = line.A
		b.In = line.B
	}
	return stale
}
