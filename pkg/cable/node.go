// Package cable is the routing and power engine of the puzzle: the
// attachment chain that wraps a cable around circular nodes, the
// tangent and wrap/unwrap resolvers that keep it valid while the end
// terminal moves, and the classifier and power propagator that decide
// which nodes light up.
package cable

import "github.com/wesen/spool/pkg/geom"

// Kind is the role of a node in a level.
type Kind int

const (
	Spool Kind = iota
	Start
	End
	Block
	Finish
	Isolator
)

var kindNames = map[Kind]string{
	Spool:    "spool",
	Start:    "start",
	End:      "end",
	Block:    "block",
	Finish:   "finish",
	Isolator: "isolator",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Wraps reports whether a cable can wrap around nodes of this kind.
// Blocks and the finish socket never join the chain.
func (k Kind) Wraps() bool {
	switch k {
	case Spool, Start, End, Isolator:
		return true
	}
	return false
}

// Node is a circular element of a level. Only the End terminal moves.
type Node struct {
	ID     int
	Kind   Kind
	Pos    geom.Vec
	Radius float64

	// Attached is true while the node has an entry in the chain.
	Attached bool

	// Recomputed every tick by the power propagator.
	Powered     bool
	Overpowered bool
}

// NodeSet holds the nodes of a level in insertion order. The order is
// stable and is used to break ties between equidistant wrap candidates.
type NodeSet struct {
	nodes  []*Node
	nextID int
}

// NewNodeSet creates an empty node set.
func NewNodeSet() *NodeSet {
	return &NodeSet{}
}

// Add appends a node and returns it. IDs increase in insertion order.
func (s *NodeSet) Add(kind Kind, pos geom.Vec, radius float64) *Node {
	n := &Node{ID: s.nextID, Kind: kind, Pos: pos, Radius: radius}
	s.nextID++
	s.nodes = append(s.nodes, n)
	return n
}

// All returns every node in insertion order.
func (s *NodeSet) All() []*Node {
	return s.nodes
}

// Len returns the number of nodes.
func (s *NodeSet) Len() int { return len(s.nodes) }

// Wrappable returns the nodes a cable can wrap around, in insertion order.
func (s *NodeSet) Wrappable() []*Node {
	var out []*Node
	for _, n := range s.nodes {
		if n.Kind.Wraps() {
			out = append(out, n)
		}
	}
	return out
}

// OfKind returns all nodes of the given kind, in insertion order.
func (s *NodeSet) OfKind(k Kind) []*Node {
	var out []*Node
	for _, n := range s.nodes {
		if n.Kind == k {
			out = append(out, n)
		}
	}
	return out
}

// First returns the first node of the given kind, or nil.
func (s *NodeSet) First(k Kind) *Node {
	for _, n := range s.nodes {
		if n.Kind == k {
			return n
		}
	}
	return nil
}

// Count returns how many nodes have the given kind.
func (s *NodeSet) Count(k Kind) int {
	c := 0
	for _, n := range s.nodes {
		if n.Kind == k {
			c++
		}
	}
	return c
}

// ResetPower clears the per-tick power state of every node.
func (s *NodeSet) ResetPower() {
	for _, n := range s.nodes {
		n.Powered = false
		n.Overpowered = false
	}
}
