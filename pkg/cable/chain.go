package cable

import (
	"fmt"

	"github.com/wesen/spool/pkg/geom"
)

// Attachment is one entry of the chain: a node the cable touches plus
// the side it wraps on. In and Out are the cached tangent contact
// points with the previous and next entry.
type Attachment struct {
	Node *Node
	Side geom.Side
	In   geom.Vec
	Out  geom.Vec

	// Per-tick classification of the segment leaving this entry.
	Isolated bool
	Overlap  bool
}

// Chain is the cable: an ordered list of attachments from the Start
// terminal to the End terminal. The chain does not own its nodes.
type Chain struct {
	Attachments []*Attachment
	Overpowered bool

	// StepLimit caps the structural changes of one resolver pass. Zero
	// means MaxResolveSteps of the pass input.
	StepLimit int
}

// NewChain creates the two-entry chain of a freshly loaded level.
func NewChain(start, end *Node) *Chain {
	start.Attached = true
	end.Attached = true
	return &Chain{
		Attachments: []*Attachment{
			{Node: start, Side: geom.Left, In: start.Pos, Out: start.Pos},
			{Node: end, Side: geom.Left, In: end.Pos, Out: end.Pos},
		},
	}
}

// Len returns the number of attachments.
func (c *Chain) Len() int { return len(c.Attachments) }

// Start returns the first attachment.
func (c *Chain) Start() *Attachment { return c.Attachments[0] }

// End returns the last attachment.
func (c *Chain) End() *Attachment { return c.Attachments[len(c.Attachments)-1] }

// SegmentCount returns the number of straight cable segments.
func (c *Chain) SegmentCount() int { return len(c.Attachments) - 1 }

// Segment returns segment i, which leaves attachment i and arrives at
// attachment i+1.
func (c *Chain) Segment(i int) geom.Segment {
	return geom.Seg(c.Attachments[i].Out, c.Attachments[i+1].In)
}

// Nodes returns the chained nodes in order.
func (c *Chain) Nodes() []*Node {
	out := make([]*Node, len(c.Attachments))
	for i, a := range c.Attachments {
		out[i] = a.Node
	}
	return out
}

// Contains reports whether n has an entry in the chain.
func (c *Chain) Contains(n *Node) bool {
	for _, a := range c.Attachments {
		if a.Node == n {
			return true
		}
	}
	return false
}

// ResetFlags clears the per-tick overlap and overpower flags.
func (c *Chain) ResetFlags() {
	c.Overpowered = false
	for _, a := range c.Attachments {
		a.Overlap = false
	}
}

// Validate checks the structural invariants: the chain runs from Start
// to End, no node appears twice and every entry is marked attached.
func (c *Chain) Validate() error {
	if len(c.Attachments) < 2 {
		return fmt.Errorf("chain has %d entries, want at least 2", len(c.Attachments))
	}
	if k := c.Start().Node.Kind; k != Start {
		return fmt.Errorf("chain starts with %v", k)
	}
	if k := c.End().Node.Kind; k != End {
		return fmt.Errorf("chain ends with %v", k)
	}
	seen := make(map[*Node]int, len(c.Attachments))
	for i, a := range c.Attachments {
		if j, dup := seen[a.Node]; dup {
			return fmt.Errorf("node %d at chain positions %d and %d", a.Node.ID, j, i)
		}
		seen[a.Node] = i
		if !a.Node.Attached {
			return fmt.Errorf("node %d in chain but not marked attached", a.Node.ID)
		}
		if i > 0 && i < len(c.Attachments)-1 && !a.Node.Kind.Wraps() {
			return fmt.Errorf("node %d of kind %v cannot be wrapped", a.Node.ID, a.Node.Kind)
		}
	}
	return nil
}

func (c *Chain) insert(i int, a *Attachment) {
	c.Attachments = append(c.Attachments, nil)
	copy(c.Attachments[i+1:], c.Attachments[i:])
	c.Attachments[i] = a
}

func (c *Chain) remove(i int) *Attachment {
	a := c.Attachments[i]
	c.Attachments = append(c.Attachments[:i], c.Attachments[i+1:]...)
	return a
}

// chainState is a restorable copy of the chain and the attached flags
// of every node it touched.
type chainState struct {
	entries     []*Attachment
	values      []Attachment
	overpowered bool
	attached    map[*Node]bool
}

func (c *Chain) save(nodes []*Node) chainState {
	st := chainState{
		entries:     append([]*Attachment(nil), c.Attachments...),
		values:      make([]Attachment, len(c.Attachments)),
		overpowered: c.Overpowered,
		attached:    make(map[*Node]bool, len(nodes)+len(c.Attachments)),
	}
	for i, a := range c.Attachments {
		st.values[i] = *a
		st.attached[a.Node] = a.Node.Attached
	}
	for _, n := range nodes {
		st.attached[n] = n.Attached
	}
	return st
}

func (c *Chain) restore(st chainState) {
	c.Attachments = append(c.Attachments[:0], st.entries...)
	for i, a := range c.Attachments {
		*a = st.values[i]
	}
	c.Overpowered = st.overpowered
	for n, att := range st.attached {
		n.Attached = att
	}
}
