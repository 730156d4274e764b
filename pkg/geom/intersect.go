package geom

import "math"

// Segment is a directed line segment from A to B.
type Segment struct {
	A, B Vec
}

// Seg is shorthand for constructing a Segment.
func Seg(a, b Vec) Segment { return Segment{A: a, B: b} }

// SegmentsIntersect reports whether segment a1→a2 and segment b1→b2
// intersect, endpoints included. Parallel, collinear and degenerate
// segments never intersect: any non-finite interpolation parameter is
// treated as a miss.
func SegmentsIntersect(a1, a2, b1, b2 Vec) bool {
	s1 := a2.Sub(a1)
	s2 := b2.Sub(b1)
	d := a1.Sub(b1)

	den := -s2.X*s1.Y + s1.X*s2.Y
	s := (-s1.Y*d.X + s1.X*d.Y) / den
	t := (s2.X*d.Y - s2.Y*d.X) / den
	if !finite(s) || !finite(t) {
		return false
	}
	return s >= 0 && s <= 1 && t >= 0 && t <= 1
}

// SegmentCircleIntersects reports whether the segment p1→p2 passes
// strictly inside the circle (center, radius). Touching the circle is
// not an intersection, so zero-radius circles never intersect.
func SegmentCircleIntersects(p1, p2, center Vec, radius float64) bool {
	v1 := p2.Sub(p1)
	v2 := center.Sub(p1)
	len2 := v1.Dot(v1)

	var dist2 float64
	if len2 == 0 {
		dist2 = v2.Dot(v2)
	} else {
		u := v2.Dot(v1) / len2
		switch {
		case !finite(u):
			return false
		case u >= 0 && u <= 1:
			dist2 = Dist2(p1.Add(v1.Mul(u)), center)
		case u < 0:
			dist2 = Dist2(p1, center)
		default:
			dist2 = Dist2(p2, center)
		}
	}
	return dist2 < radius*radius
}

// Intersects is SegmentsIntersect for two Segment values.
func (s Segment) Intersects(o Segment) bool {
	return SegmentsIntersect(s.A, s.B, o.A, o.B)
}

// CrossesCircle is SegmentCircleIntersects for a Segment value.
func (s Segment) CrossesCircle(center Vec, radius float64) bool {
	return SegmentCircleIntersects(s.A, s.B, center, radius)
}

// Dir returns the (unnormalized) direction B-A.
func (s Segment) Dir() Vec { return s.B.Sub(s.A) }

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
