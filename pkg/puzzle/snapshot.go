package puzzle

import (
	"fmt"

	"github.com/wesen/spool/pkg/cable"
	"github.com/wesen/spool/pkg/geom"
)

// Segment is one straight piece of cable, leaving a chain entry.
type Segment struct {
	From, To geom.Vec
	Isolated bool
	Overlap  bool
}

// NodeState is the post-tick state of one node.
type NodeState struct {
	ID          int
	Kind        cable.Kind
	Pos         geom.Vec
	Radius      float64
	Attached    bool
	Powered     bool
	Overpowered bool
}

// WrapState is one chain entry: the node the cable wraps, the side it
// wraps on and the contact points.
type WrapState struct {
	NodeID  int
	Side    geom.Side
	In, Out geom.Vec
}

// Snapshot is everything a renderer needs after a tick. It shares no
// memory with the board.
type Snapshot struct {
	Tick     int
	Nodes    []NodeState
	Wraps    []WrapState
	Segments []Segment

	End       geom.Vec
	Finish    geom.Vec
	Connected bool

	PoweredSpools int
	TotalSpools   int
	HasPower      bool
	Overpowered   bool

	// Solved is the completion condition on this tick; Completed stays
	// true once any tick has solved the level.
	Solved    bool
	Completed bool

	Stalls int // resolver passes that hit the step limit so far
	Stale  int // pairs that kept cached tangents this tick
}

func (b *Board) snapshot(p cable.Power, solved bool, stale int) Snapshot {
	s := Snapshot{
		Tick:          b.ticks,
		End:           b.end.Pos,
		Finish:        b.finish.Pos,
		Connected:     b.connected,
		PoweredSpools: p.PoweredSpools,
		TotalSpools:   b.totalSpools,
		HasPower:      p.HasPower,
		Overpowered:   b.Chain.Overpowered,
		Solved:        solved,
		Completed:     b.completed,
		Stalls:        b.stalls,
		Stale:         stale,
	}

	all := b.Nodes.All()
	s.Nodes = make([]NodeState, len(all))
	for i, n := range all {
		s.Nodes[i] = NodeState{
			ID:          n.ID,
			Kind:        n.Kind,
			Pos:         n.Pos,
			Radius:      n.Radius,
			Attached:    n.Attached,
			Powered:     n.Powered,
			Overpowered: n.Overpowered,
		}
	}

	atts := b.Chain.Attachments
	s.Wraps = make([]WrapState, len(atts))
	for i, a := range atts {
		s.Wraps[i] = WrapState{NodeID: a.Node.ID, Side: a.Side, In: a.In, Out: a.Out}
	}

	s.Segments = make([]Segment, b.Chain.SegmentCount())
	for i := range s.Segments {
		seg := b.Chain.Segment(i)
		s.Segments[i] = Segment{
			From:     seg.A,
			To:       seg.B,
			Isolated: atts[i].Isolated,
			Overlap:  atts[i].Overlap,
		}
	}
	return s
}

// Node returns the state of the node with the given ID.
func (s Snapshot) Node(id int) (NodeState, bool) {
	for _, n := range s.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return NodeState{}, false
}

// Counter returns the HUD text for the powered spool count.
func (s Snapshot) Counter() string {
	return fmt.Sprintf("%d / %d", s.PoweredSpools, s.TotalSpools)
}
