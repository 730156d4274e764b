package puzzle

import (
	"errors"
	"testing"

	"github.com/wesen/spool/pkg/cable"
	"github.com/wesen/spool/pkg/geom"
	"github.com/wesen/spool/pkg/level"
)

func testLevel(spools, blocks, isolators []level.Circle) level.Level {
	return level.Level{
		Name:      "test",
		Spools:    spools,
		Blocks:    blocks,
		Isolators: isolators,
		Start:     level.Point{X: 50, Y: 360},
		Finish:    level.Point{X: 1230, Y: 360},
		End:       level.Point{X: 110, Y: 360},
	}
}

func newBoard(t *testing.T, l level.Level, opts ...Option) *Board {
	t.Helper()
	b, err := New(l, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return b
}

// dragPath moves the end terminal from its current position through
// each waypoint in steps equal pieces per leg, ticking after every step.
func dragPath(b *Board, steps int, waypoints ...geom.Vec) Snapshot {
	var s Snapshot
	cur := b.End().Pos
	for _, w := range waypoints {
		for i := 1; i <= steps; i++ {
			p := geom.V(
				cur.X+(w.X-cur.X)*float64(i)/float64(steps),
				cur.Y+(w.Y-cur.Y)*float64(i)/float64(steps),
			)
			s = b.Tick(&p)
		}
		cur = w
	}
	return s
}

func tickTo(b *Board, x, y float64) Snapshot {
	p := geom.V(x, y)
	return b.Tick(&p)
}

func checkChain(t *testing.T, b *Board) {
	t.Helper()
	if err := b.Chain.Validate(); err != nil {
		t.Fatalf("chain invalid: %v", err)
	}
}

// ── Construction ──

func TestNewRejectsInvalidLevel(t *testing.T) {
	l := testLevel([]level.Circle{{X: 100, Y: 100, R: -1}}, nil, nil)
	if _, err := New(l); !errors.Is(err, level.ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestNewNodeOrder(t *testing.T) {
	l := testLevel(
		[]level.Circle{{X: 400, Y: 200, R: 50}},
		[]level.Circle{{X: 600, Y: 600, R: 30}},
		[]level.Circle{{X: 900, Y: 100, R: 40}},
	)
	b := newBoard(t, l)
	want := []cable.Kind{cable.Spool, cable.Block, cable.Isolator, cable.Start, cable.Finish, cable.End}
	nodes := b.Nodes.All()
	if len(nodes) != len(want) {
		t.Fatalf("expected %d nodes, got %d", len(want), len(nodes))
	}
	for i, n := range nodes {
		if n.Kind != want[i] {
			t.Errorf("node %d: expected %v, got %v", i, want[i], n.Kind)
		}
	}
	checkChain(t, b)
}

// ── Scenarios ──

func TestScenarioClearLineNoWrap(t *testing.T) {
	b := newBoard(t, testLevel([]level.Circle{{X: 400, Y: 200, R: 50}, {X: 800, Y: 520, R: 50}}, nil, nil))
	s := tickTo(b, 1230, 360)
	if len(s.Wraps) != 2 {
		t.Errorf("expected no wrap, got %d entries", len(s.Wraps))
	}
	if !s.Connected {
		t.Error("end should be plugged in")
	}
	if s.PoweredSpools != 0 || s.Solved || s.Completed {
		t.Errorf("expected 0 powered and unsolved, got %d solved=%v", s.PoweredSpools, s.Solved)
	}
}

func TestScenarioWrapBothSpoolsCompletes(t *testing.T) {
	fired := 0
	b := newBoard(t,
		testLevel([]level.Circle{{X: 400, Y: 200, R: 50}, {X: 800, Y: 520, R: 50}}, nil, nil),
		OnComplete(func() { fired++ }))
	b.Tick(nil)

	s := dragPath(b, 8, geom.V(400, 100), geom.V(700, 100), geom.V(800, 650), geom.V(1230, 360))
	checkChain(t, b)
	if len(s.Wraps) != 4 {
		t.Fatalf("expected both spools wrapped, got %d entries", len(s.Wraps))
	}
	if s.PoweredSpools != 2 || s.Counter() != "2 / 2" {
		t.Errorf("expected 2 / 2, got %s", s.Counter())
	}
	if !s.Solved || !s.Completed || fired != 1 {
		t.Errorf("expected completion once, solved=%v fired=%d", s.Solved, fired)
	}

	// The level stays solved; the callback does not fire again.
	for i := 0; i < 5; i++ {
		s = b.Tick(nil)
	}
	if fired != 1 || !s.Completed {
		t.Errorf("expected a single completion event, got %d", fired)
	}
}

func TestScenarioWrapSingleSpool(t *testing.T) {
	b := newBoard(t, testLevel([]level.Circle{{X: 400, Y: 380, R: 50}}, nil, nil))
	if s := b.Tick(nil); s.PoweredSpools != 0 {
		t.Fatalf("expected nothing powered at start, got %d", s.PoweredSpools)
	}
	before := b.Chain.Segment(0)
	spool := b.Nodes.First(cable.Spool)

	s := tickTo(b, 800, 360)
	checkChain(t, b)
	if len(s.Wraps) != 3 || s.Wraps[1].NodeID != spool.ID {
		t.Fatalf("expected spool wrapped, got %+v", s.Wraps)
	}
	// The side is decided against the segment as it was before the
	// insertion: from the start to the new end position.
	want := geom.SideOfLine(before.A, geom.V(800, 360), spool.Pos)
	if s.Wraps[1].Side != want {
		t.Errorf("expected side %v, got %v", want, s.Wraps[1].Side)
	}
	if s.PoweredSpools != 1 {
		t.Errorf("expected 1 powered spool, got %d", s.PoweredSpools)
	}
	if n, _ := s.Node(spool.ID); !n.Powered || !n.Attached {
		t.Errorf("spool state: %+v", n)
	}
}

func TestScenarioUnwrap(t *testing.T) {
	b := newBoard(t, testLevel([]level.Circle{{X: 400, Y: 380, R: 50}}, nil, nil))
	spool := b.Nodes.First(cable.Spool)
	tickTo(b, 800, 360)
	if b.Chain.Len() != 3 {
		t.Fatal("setup: spool should be wrapped")
	}

	s := tickTo(b, 800, 200)
	checkChain(t, b)
	if len(s.Wraps) != 2 {
		t.Errorf("expected two-point chain, got %d entries", len(s.Wraps))
	}
	if spool.Attached {
		t.Error("spool should be detached")
	}
	if s.PoweredSpools != 0 {
		t.Errorf("expected 0 powered spools, got %d", s.PoweredSpools)
	}
}

func TestScenarioBlockOverpowers(t *testing.T) {
	fired := false
	b := newBoard(t,
		testLevel(
			[]level.Circle{{X: 400, Y: 400, R: 50}, {X: 800, Y: 320, R: 50}},
			[]level.Circle{{X: 600, Y: 360, R: 30}},
			nil),
		OnComplete(func() { fired = true }))

	s := tickTo(b, 1230, 360)
	checkChain(t, b)
	if len(s.Segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(s.Segments))
	}
	if !s.Segments[1].Overlap {
		t.Error("segment between the spools crosses the block and should overlap")
	}
	if !s.Overpowered {
		t.Error("cable should be overpowered")
	}
	for i := 0; i < 3; i++ {
		s = b.Tick(nil)
	}
	if s.Solved || s.Completed || fired {
		t.Error("an overpowered cable never completes")
	}
	if s.PoweredSpools != 0 {
		t.Errorf("power is cut at the blocked segment, got %d spools", s.PoweredSpools)
	}
	second := b.Nodes.OfKind(cable.Spool)[1]
	if n, _ := s.Node(second.ID); n.Powered {
		t.Error("spool after the blocked segment should not be powered")
	}
}

func TestScenarioIsolators(t *testing.T) {
	b := newBoard(t, testLevel(
		[]level.Circle{{X: 300, Y: 380, R: 50}},
		nil,
		[]level.Circle{{X: 600, Y: 360, R: 40}, {X: 900, Y: 360, R: 40}}))

	s := tickTo(b, 1230, 360)
	checkChain(t, b)
	if len(s.Wraps) != 5 {
		t.Fatalf("expected spool and both isolators wrapped, got %d entries", len(s.Wraps))
	}
	wantIso := []bool{false, false, true, false}
	for i, seg := range s.Segments {
		if seg.Isolated != wantIso[i] {
			t.Errorf("segment %d: expected isolated=%v, got %v", i, wantIso[i], seg.Isolated)
		}
	}
	isos := b.Nodes.OfKind(cable.Isolator)
	if n, _ := s.Node(isos[0].ID); n.Powered {
		t.Error("isolated entry is transparent")
	}
	if n, _ := s.Node(isos[1].ID); !n.Powered {
		t.Error("entry after the isolated stretch should be powered")
	}
	if !s.Solved || s.PoweredSpools != 1 {
		t.Errorf("expected solved with 1 spool, got solved=%v %s", s.Solved, s.Counter())
	}
}

// ── Drag guard ──

func TestGuard(t *testing.T) {
	b := newBoard(t, testLevel([]level.Circle{{X: 400, Y: 380, R: 50}}, nil, nil))
	tests := []struct {
		name      string
		in, want  geom.Vec
		connected bool
	}{
		{"inside", geom.V(200, 200), geom.V(200, 200), false},
		{"clamped", geom.V(-20, 900), geom.V(0, 720), false},
		{"pushed out", geom.V(420, 380), geom.V(460, 380), false},
		{"coincident falls back to +x", geom.V(400, 380), geom.V(460, 380), false},
		{"near start", geom.V(55, 360), geom.V(60, 360), false},
		{"snaps to finish", geom.V(1215, 350), geom.V(1230, 360), true},
		{"just outside snap", geom.V(1200, 360), geom.V(1200, 360), false},
	}
	for _, tc := range tests {
		got, conn := b.Guard(tc.in)
		if !nearVec(got, tc.want) || conn != tc.connected {
			t.Errorf("%s: Guard(%v) = %v,%v, want %v,%v", tc.name, tc.in, got, conn, tc.want, tc.connected)
		}
	}
}

func TestDisconnectWhenLeavingFinish(t *testing.T) {
	b := newBoard(t, testLevel(nil, nil, nil))
	if s := tickTo(b, 1230, 360); !s.Connected {
		t.Fatal("expected connected")
	}
	if s := tickTo(b, 1100, 360); s.Connected {
		t.Error("expected disconnected after moving away")
	}
}

func TestEmptyLevelCompletesWhenPlugged(t *testing.T) {
	fired := 0
	b := newBoard(t, testLevel(nil, nil, nil), OnComplete(func() { fired++ }))
	s := tickTo(b, 1230, 360)
	if !s.Solved || fired != 1 {
		t.Errorf("expected completion, solved=%v fired=%d", s.Solved, fired)
	}
}

// ── Grab ──

func TestGrabAndDrag(t *testing.T) {
	b := newBoard(t, testLevel(nil, nil, nil))
	if b.Grab(geom.V(500, 500)) {
		t.Fatal("grab far from the end should fail")
	}
	if b.DragTarget() != nil {
		t.Fatal("no drag target without a drag")
	}
	if !b.Grab(geom.V(100, 350)) {
		t.Fatal("grab near the end should succeed")
	}
	b.MoveTo(geom.V(300, 300))
	s := b.Step()
	// Offset (10,10) is preserved.
	if !nearVec(s.End, geom.V(310, 310)) {
		t.Errorf("expected end at (310,310), got %v", s.End)
	}
	b.Release()
	if b.Dragging() {
		t.Error("expected drag released")
	}
	b.MoveTo(geom.V(600, 600))
	if s := b.Step(); !nearVec(s.End, geom.V(310, 310)) {
		t.Errorf("end should not move after release, got %v", s.End)
	}
}

func TestGrabDisabledAfterCompletion(t *testing.T) {
	b := newBoard(t, testLevel(nil, nil, nil))
	tickTo(b, 1230, 360)
	if b.Grab(b.End().Pos) {
		t.Error("a solved level should not be draggable")
	}
}

func TestStallsCounted(t *testing.T) {
	b := newBoard(t, testLevel([]level.Circle{{X: 400, Y: 400, R: 50}, {X: 800, Y: 320, R: 50}}, nil, nil))
	b.Chain.StepLimit = 1
	s := tickTo(b, 1230, 360)
	if s.Stalls != 1 {
		t.Errorf("expected 1 stall, got %d", s.Stalls)
	}
	if len(s.Wraps) != 2 {
		t.Errorf("stalled pass should keep the previous chain, got %d entries", len(s.Wraps))
	}
	checkChain(t, b)
}

func nearVec(a, b geom.Vec) bool {
	d := a.Sub(b)
	return d.X*d.X+d.Y*d.Y < 1e-9
}
