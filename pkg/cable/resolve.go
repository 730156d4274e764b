package cable

import (
	"errors"
	"fmt"
	"math"

	"github.com/wesen/spool/pkg/geom"
)

// Unwrap thresholds on the turning angle at a wrapped node. The ±36°
// band around a straight cable keeps nodes from flickering in and out.
const (
	UnwrapLeftAbove  = 1.8 * math.Pi
	UnwrapRightBelow = 0.2 * math.Pi
)

// ErrUnresolved is returned when a fixpoint pass exceeds its step cap.
// The chain is restored to its state before the pass.
var ErrUnresolved = errors.New("cable: resolver did not converge")

// MaxResolveSteps is the number of structural changes a single pass may
// make before it gives up. Each node can be inserted at most once, so a
// sane level never comes close.
func MaxResolveSteps(n int) int { return 4*n + 16 }

func (c *Chain) stepLimit(n int) int {
	if c.StepLimit > 0 {
		return c.StepLimit
	}
	return MaxResolveSteps(n)
}

// Resolution summarizes one Resolve call.
type Resolution struct {
	Inserted int
	Removed  int
	Stale    int // pairs that kept cached tangents
}

// Resolve brings the chain up to date with the current node positions:
// tangents first, then the wrap pass, then the unwrap pass. Both passes
// run even when the other fails; the first error is returned.
func (c *Chain) Resolve(candidates []*Node) (Resolution, error) {
	var res Resolution
	res.Stale = c.UpdateTangents()

	var err error
	res.Inserted, err = c.Wrap(candidates)
	removed, uerr := c.Unwrap()
	res.Removed = removed
	if err == nil {
		err = uerr
	}
	return res, err
}

// Wrap inserts every node the cable has been pulled across. For each
// segment the crossed node closest to the segment start wins. Crossing a
// node that is already part of the chain flags the segment as
// overlapping instead. After an insertion the scan restarts from the
// beginning of the chain. Wrap returns the number of inserted nodes.
func (c *Chain) Wrap(candidates []*Node) (int, error) {
	limit := c.stepLimit(len(candidates))
	saved := c.save(candidates)

	inserted := 0
	for {
		changed := false
		for i := 0; i < len(c.Attachments)-1; i++ {
			a, b := c.Attachments[i], c.Attachments[i+1]
			hit := nearestCrossing(a.Out, b.In, candidates, a.Node, b.Node)
			if hit == nil {
				continue
			}
			if hit.Attached {
				a.Overlap = true
				continue
			}
			if inserted >= limit {
				c.restore(saved)
				return 0, fmt.Errorf("%w: wrap pass stopped after %d insertions", ErrUnresolved, inserted)
			}

			hit.Attached = true
			att := &Attachment{
				Node: hit,
				Side: geom.SideOfLine(a.Out, b.In, hit.Pos),
				In:   hit.Pos,
				Out:  hit.Pos,
			}
			c.insert(i+1, att)
			updateTangents([]*Attachment{a, att, b})
			inserted++
			changed = true
			break
		}
		if !changed {
			return inserted, nil
		}
	}
}

// Unwrap removes interior nodes the cable no longer needs: a node
// wrapped Left whose turning angle rose above UnwrapLeftAbove, or a node
// wrapped Right whose angle fell below UnwrapRightBelow. After a removal
// the scan restarts. Unwrap returns the number of removed nodes.
func (c *Chain) Unwrap() (int, error) {
	limit := c.stepLimit(len(c.Attachments))
	saved := c.save(nil)

	removed := 0
	for {
		changed := false
		for i := 1; i < len(c.Attachments)-1; i++ {
			a, b, next := c.Attachments[i-1], c.Attachments[i], c.Attachments[i+1]
			if !straightened(a, b, next) {
				continue
			}
			if removed >= limit {
				c.restore(saved)
				return 0, fmt.Errorf("%w: unwrap pass stopped after %d removals", ErrUnresolved, removed)
			}

			c.remove(i)
			b.Node.Attached = false
			updateTangents([]*Attachment{a, next})
			removed++
			changed = true
			break
		}
		if !changed {
			return removed, nil
		}
	}
}

// TurnAt returns the turning angle of the cable at attachment i, in
// [0, 2π). It is only defined for interior attachments.
func (c *Chain) TurnAt(i int) float64 {
	a, b, next := c.Attachments[i-1], c.Attachments[i], c.Attachments[i+1]
	return geom.TurnAngle(b.In.Sub(a.Out), next.In.Sub(b.Out))
}

func straightened(a, b, next *Attachment) bool {
	turn := geom.TurnAngle(b.In.Sub(a.Out), next.In.Sub(b.Out))
	switch b.Side {
	case geom.Left:
		return turn > UnwrapLeftAbove
	case geom.Right:
		return turn < UnwrapRightBelow
	}
	return false
}

// nearestCrossing returns the wrappable node whose circle the segment
// from→to crosses and whose center is closest to from. Ties keep the
// earlier candidate, so candidate order is the tie-break.
func nearestCrossing(from, to geom.Vec, candidates []*Node, ignoreA, ignoreB *Node) *Node {
	var best *Node
	bestD := math.Inf(1)
	for _, n := range candidates {
		if n == ignoreA || n == ignoreB || !n.Kind.Wraps() {
			continue
		}
		if !geom.SegmentCircleIntersects(from, to, n.Pos, n.Radius) {
			continue
		}
		if d := geom.Dist2(n.Pos, from); d < bestD {
			best, bestD = n, d
		}
	}
	return best
}
