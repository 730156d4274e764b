// Package puzzle runs one level of the cable game. A Board owns the
// nodes and the cable of a level and advances them one frame at a time:
// drag guard, tangents, wrap and unwrap, classification, power, and the
// completion check. Renderers read the Snapshot returned by Tick.
package puzzle

import (
	"fmt"

	"github.com/wesen/spool/pkg/cable"
	"github.com/wesen/spool/pkg/geom"
	"github.com/wesen/spool/pkg/level"
)

// Tuning constants.
const (
	PushMargin   = 10.0 // clearance kept between the end terminal and a node
	SnapDistance = 30.0 // the end terminal plugs into the finish below this
	GrabRadius   = 30.0 // a drag starts this close to the end terminal
)

// Logger is the subset of a leveled logger the board writes to.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}

// Option configures a Board.
type Option func(*Board)

// WithLogger routes board diagnostics to l.
func WithLogger(l Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.log = l
		}
	}
}

// OnComplete registers fn to run once, on the first tick that solves the
// level.
func OnComplete(fn func()) Option {
	return func(b *Board) { b.onComplete = fn }
}

// Board is a level in play.
type Board struct {
	Name  string
	Hint  []string
	Nodes *cable.NodeSet
	Chain *cable.Chain

	start, end, finish *cable.Node
	blocks             []*cable.Node
	candidates         []*cable.Node
	bounds             geom.Rect
	totalSpools        int

	connected bool
	completed bool
	ticks     int
	stalls    int

	drag dragState

	onComplete func()
	log        Logger
}

// New builds a board from a validated level. Nodes are added in level
// order: spools, blocks, isolators, then the start, finish and end
// terminals.
func New(l level.Level, opts ...Option) (*Board, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	b := &Board{
		Name:   l.Name,
		Hint:   l.Hint,
		Nodes:  cable.NewNodeSet(),
		bounds: geom.Rect{Max: geom.V(level.Width, level.Height)},
		log:    nopLogger{},
	}
	for _, o := range opts {
		o(b)
	}

	for _, c := range l.Spools {
		b.Nodes.Add(cable.Spool, geom.V(c.X, c.Y), c.R)
	}
	for _, c := range l.Blocks {
		b.Nodes.Add(cable.Block, geom.V(c.X, c.Y), c.R)
	}
	for _, c := range l.Isolators {
		b.Nodes.Add(cable.Isolator, geom.V(c.X, c.Y), c.R)
	}
	b.start = b.Nodes.Add(cable.Start, geom.V(l.Start.X, l.Start.Y), 0)
	b.finish = b.Nodes.Add(cable.Finish, geom.V(l.Finish.X, l.Finish.Y), 0)
	b.end = b.Nodes.Add(cable.End, geom.V(l.End.X, l.End.Y), 0)

	b.blocks = b.Nodes.OfKind(cable.Block)
	b.candidates = b.Nodes.Wrappable()
	b.totalSpools = b.Nodes.Count(cable.Spool)
	b.Chain = cable.NewChain(b.start, b.end)

	b.log.Infof("level %q: %d spools, %d isolators, %d blocks",
		b.Name, b.totalSpools, len(l.Isolators), len(b.blocks))
	return b, nil
}

// End returns the draggable end terminal.
func (b *Board) End() *cable.Node { return b.end }

// Finish returns the finish socket.
func (b *Board) Finish() *cable.Node { return b.finish }

// Bounds returns the playfield rectangle.
func (b *Board) Bounds() geom.Rect { return b.bounds }

// Completed reports whether the level has been solved.
func (b *Board) Completed() bool { return b.completed }

// Tick advances the board by one frame. When drag is non-nil the end
// terminal is moved toward it first. Tick never fails; a resolver pass
// that does not converge keeps its previous chain and is counted in
// Snapshot.Stalls.
func (b *Board) Tick(drag *geom.Vec) Snapshot {
	b.ticks++
	if drag != nil {
		b.end.Pos, b.connected = b.Guard(*drag)
	}

	b.Chain.ResetFlags()
	b.Nodes.ResetPower()

	res, err := b.Chain.Resolve(b.candidates)
	if err != nil {
		b.stalls++
		b.log.Warnf("tick %d: %v (chain length %d)", b.ticks, err, b.Chain.Len())
	}
	if res.Inserted > 0 || res.Removed > 0 {
		b.log.Debugf("tick %d: wrapped %d, unwrapped %d, chain length %d",
			b.ticks, res.Inserted, res.Removed, b.Chain.Len())
	}
	if res.Stale > 0 {
		b.log.Debugf("tick %d: %d pairs kept cached tangents", b.ticks, res.Stale)
	}

	b.Chain.Classify(b.blocks)
	power := b.Chain.Propagate()

	solved := b.Chain.Complete(power, b.connected, b.totalSpools)
	if solved && !b.completed {
		b.completed = true
		b.log.Infof("level %q completed after %d ticks", b.Name, b.ticks)
		if b.onComplete != nil {
			b.onComplete()
		}
	}

	return b.snapshot(power, solved, res.Stale)
}

// Guard keeps a requested end position legal: inside the playfield,
// clear of every other wrappable node by PushMargin, and snapped onto
// the finish when within SnapDistance. It reports whether the end is
// plugged in.
func (b *Board) Guard(p geom.Vec) (geom.Vec, bool) {
	p = b.bounds.ClampPoint(p)

	for _, n := range b.candidates {
		if n == b.end {
			continue
		}
		reach := n.Radius + PushMargin
		d := geom.Dist(p, n.Pos)
		if d >= reach {
			continue
		}
		dir := p.Sub(n.Pos)
		if d == 0 {
			dir = geom.V(1, 0)
		}
		p = n.Pos.Add(dir.Normalize().Mul(reach))
	}

	if geom.Dist(p, b.finish.Pos) < SnapDistance {
		return b.finish.Pos, true
	}
	return p, false
}

func (b *Board) String() string {
	return fmt.Sprintf("%s: chain %d, spools %d", b.Name, b.Chain.Len(), b.totalSpools)
}
