package geom

import "math"

// Side says which way the cable wraps a node: the wrapped node sits on
// the Left or the Right of the connecting line. The values match the
// sign convention of SideOfLine.
type Side int

const (
	Left  Side = -1
	Right Side = 1
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// SideOfLine classifies p against the directed line a→b by the sign of
// the cross product (b-a)×(p-a). Positive is Left, zero or negative is
// Right.
func SideOfLine(a, b, p Vec) Side {
	if b.Sub(a).Cross(p.Sub(a)) > 0 {
		return Left
	}
	return Right
}

// Tangents holds the common tangent lines of two circles. Slots 0 and 1
// are the outer tangents (both contact points on the same side), slots 2
// and 3 the crossing tangents. A slot is only meaningful when its Valid
// flag is set; slots never shift when a family has no solution.
type Tangents struct {
	Lines [4]Segment
	Valid [4]bool
}

// TangentIndex maps a (from, to) wrap-side pair onto a Tangents slot.
func TangentIndex(from, to Side) int {
	switch {
	case from == Left && to == Left:
		return 1
	case from == Left && to == Right:
		return 3
	case from == Right && to == Left:
		return 2
	default:
		return 0
	}
}

// For returns the tangent line leaving the first circle on side from
// and arriving at the second circle on side to.
func (t Tangents) For(from, to Side) (Segment, bool) {
	i := TangentIndex(from, to)
	return t.Lines[i], t.Valid[i]
}

// Count returns the number of valid tangent lines.
func (t Tangents) Count() int {
	n := 0
	for _, ok := range t.Valid {
		if ok {
			n++
		}
	}
	return n
}

// Bitangents computes the tangent lines between circle (c1, r1) and
// circle (c2, r2). Each line runs from its contact point on the first
// circle to its contact point on the second.
//
// With n the unit normal of the line and v = (c2-c1)/d the system
// v·n = (r1 ∓ r2)/d is solved for both signs of r2 and both signs of the
// perpendicular component of n. No lines exist when one circle contains
// the other (d² ≤ (r1-r2)²); crossing lines need d ≥ r1+r2.
func Bitangents(c1 Vec, r1 float64, c2 Vec, r2 float64) Tangents {
	var res Tangents

	d2 := Dist2(c1, c2)
	if d2 <= (r1-r2)*(r1-r2) || !finite(d2) {
		return res
	}
	d := math.Sqrt(d2)
	v := c2.Sub(c1).Mul(1 / d)

	i := 0
	for sign1 := 1.0; sign1 >= -1; sign1 -= 2 {
		c := (r1 - sign1*r2) / d
		if c*c > 1 {
			i += 2
			continue
		}
		h := math.Sqrt(math.Max(0, 1-c*c))
		for sign2 := 1.0; sign2 >= -1; sign2 -= 2 {
			n := V(v.X*c-sign2*h*v.Y, v.Y*c+sign2*h*v.X)
			line := Seg(c1.Add(n.Mul(r1)), c2.Add(n.Mul(sign1*r2)))
			if Finite(line.A) && Finite(line.B) {
				res.Lines[i] = line
				res.Valid[i] = true
			}
			i++
		}
	}
	return res
}
