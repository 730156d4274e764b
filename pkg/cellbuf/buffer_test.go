package cellbuf

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

const (
	testBG    StyleKey = 0
	testCable StyleKey = 1
	testNode  StyleKey = 2
)

func testStyles() map[StyleKey]lipgloss.Style {
	return map[StyleKey]lipgloss.Style{
		testBG:    lipgloss.NewStyle().Foreground(lipgloss.Color("#303030")),
		testCable: lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00")),
		testNode:  lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaff")),
	}
}

func TestNew(t *testing.T) {
	b := New(10, 5, testBG)
	if b.W != 10 || b.H != 5 || len(b.Cells) != 5 {
		t.Fatalf("expected 10x5, got %dx%d", b.W, b.H)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if c := b.At(x, y); c.Ch != ' ' || c.Style != testBG || c.Z != 0 {
				t.Fatalf("cell (%d,%d): expected blank background, got %+v", x, y, c)
			}
		}
	}
}

func TestNewNegativeSize(t *testing.T) {
	b := New(-5, -3, testBG)
	if b.W != 0 || b.H != 0 {
		t.Fatalf("expected 0x0 for negative sizes, got %dx%d", b.W, b.H)
	}
	if got := b.Render(testStyles()); got != "" {
		t.Fatalf("expected empty render, got %q", got)
	}
}

func TestInBounds(t *testing.T) {
	b := New(10, 5, testBG)
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 4, true},
		{-1, 0, false},
		{0, -1, false},
		{10, 0, false},
		{0, 5, false},
	}
	for _, tc := range tests {
		if got := b.InBounds(tc.x, tc.y); got != tc.want {
			t.Errorf("InBounds(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestPlotDepth(t *testing.T) {
	b := New(4, 1, testBG)
	if !b.Plot(1, 0, 'o', testNode, 2) {
		t.Fatal("plot on blank cell should write")
	}
	if b.Plot(1, 0, '─', testCable, 1) {
		t.Error("shallower plot should not overwrite")
	}
	if c := b.At(1, 0); c.Ch != 'o' || c.Style != testNode {
		t.Errorf("expected node cell kept, got %+v", c)
	}
	if !b.Plot(1, 0, '@', testCable, 2) {
		t.Error("equal depth should overwrite")
	}
	if b.Plot(-1, 0, 'x', testCable, 9) || b.Plot(4, 0, 'x', testCable, 9) {
		t.Error("out-of-bounds plot should be ignored")
	}
}

func TestSetIgnoresDepth(t *testing.T) {
	b := New(2, 1, testBG)
	b.Plot(0, 0, 'o', testNode, 5)
	b.Set(0, 0, 'x', testCable)
	if c := b.At(0, 0); c.Ch != 'x' || c.Z != 0 {
		t.Errorf("Set should overwrite and reset depth, got %+v", c)
	}
}

func TestTextClipsAndRespectsDepth(t *testing.T) {
	b := New(5, 1, testBG)
	b.Plot(4, 0, '#', testNode, 3)
	b.Text(2, 0, "Hello", testCable, 1)
	if got := b.String(); got != "  He#" {
		t.Errorf("expected %q, got %q", "  He#", got)
	}
}

func TestSetStringMultibyte(t *testing.T) {
	b := New(4, 1, testBG)
	b.SetString(0, 0, "·─·", testCable)
	if got := b.String(); got != "·─· " {
		t.Errorf("expected one cell per rune, got %q", got)
	}
}

func TestClear(t *testing.T) {
	b := New(3, 2, testBG)
	b.Plot(1, 1, 'x', testCable, 4)
	b.Clear()
	if c := b.At(1, 1); c.Ch != ' ' || c.Style != testBG || c.Z != 0 {
		t.Errorf("Clear should restore background, got %+v", c)
	}
	b.Fill(testNode)
	if b.At(0, 0).Style != testNode {
		t.Error("Fill should apply the given style")
	}
}

func TestRenderLines(t *testing.T) {
	b := New(20, 5, testBG)
	b.SetString(2, 3, "Hi", testCable)
	out := b.Render(testStyles())
	if n := len(strings.Split(out, "\n")); n != 5 {
		t.Fatalf("expected 5 lines, got %d", n)
	}
	if !strings.Contains(out, "Hi") {
		t.Errorf("rendered output lost content: %q", out)
	}
}

func TestRenderMergesRuns(t *testing.T) {
	styles := testStyles()
	uniform := New(50, 1, testBG).Render(styles)

	alt := New(50, 1, testBG)
	for x := 0; x < 50; x++ {
		if x%2 == 0 {
			alt.Set(x, 0, '.', testCable)
		} else {
			alt.Set(x, 0, '.', testNode)
		}
	}
	alternating := alt.Render(styles)
	if len(uniform) >= len(alternating) {
		t.Errorf("uniform render (%d bytes) should be shorter than alternating (%d bytes)",
			len(uniform), len(alternating))
	}
}

func TestRenderMissingStyle(t *testing.T) {
	b := New(5, 1, StyleKey(99))
	b.SetString(0, 0, "plain", StyleKey(99))
	if got := b.Render(testStyles()); got != "plain" {
		t.Fatalf("missing style should render plain text, got %q", got)
	}
}

// BenchmarkRenderPlayfield approximates a frame: background dots, a few
// rings and a cable diagonal.
func BenchmarkRenderPlayfield(b *testing.B) {
	styles := testStyles()
	buf := New(160, 45, testBG)
	for y := 0; y < 45; y++ {
		for x := 0; x < 160; x++ {
			if x%8 == 0 && y%4 == 0 {
				buf.Plot(x, y, '·', testBG, 0)
			}
		}
		buf.Plot(y*3, y, '\\', testCable, 1)
		buf.Plot(80+y%6, 20+y%5, 'o', testNode, 2)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = buf.Render(styles)
	}
}
