// Package geom provides the 2D primitives used by the cable engine:
// vector helpers on top of r2.Point, segment/segment and segment/circle
// intersection tests, bitangents between two circles and side-of-line
// classification.
//
// All coordinates are world units with Y pointing down (screen space).
package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// Vec is a 2D point or direction in world space.
type Vec = r2.Point

// V is shorthand for constructing a Vec.
func V(x, y float64) Vec { return Vec{X: x, Y: y} }

// Dist2 returns the squared distance between a and b.
func Dist2(a, b Vec) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

// Dist returns the distance between a and b.
func Dist(a, b Vec) float64 {
	return a.Sub(b).Norm()
}

// Angle returns the direction of v in [0, 2π).
func Angle(v Vec) float64 {
	a := math.Atan2(v.Y, v.X)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// TurnAngle returns the angle needed to rotate direction in onto
// direction out, normalized into [0, 2π). With Y pointing down a small
// positive value is a clockwise turn on screen.
func TurnAngle(in, out Vec) float64 {
	a := math.Atan2(out.Y, out.X) - math.Atan2(in.Y, in.X)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// Finite reports whether both components of v are finite.
func Finite(v Vec) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Rect is an axis-aligned world rectangle with Min inclusive and Max
// inclusive (the playfield edge itself is a legal position).
type Rect struct {
	Min, Max Vec
}

// ClampPoint returns p moved inside r.
func (r Rect) ClampPoint(p Vec) Vec {
	return V(Clamp(p.X, r.Min.X, r.Max.X), Clamp(p.Y, r.Min.Y, r.Max.Y))
}

// Size returns the width and height of r as a Vec.
func (r Rect) Size() Vec { return r.Max.Sub(r.Min) }
