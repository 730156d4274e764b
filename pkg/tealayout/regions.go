// Package tealayout splits the terminal into named regions and builds
// the chrome layers (HUD bar, footer, separators, modal boxes) that the
// game composes with lipgloss.
package tealayout

import "image"

// Region names used by GameLayout.
const (
	HUD       = "hud"
	Footer    = "footer"
	Panel     = "panel"
	Playfield = "playfield"
)

// Region is a named rectangular area of the terminal.
type Region struct {
	Name string
	Rect image.Rectangle
}

// Inset shrinks the region by n cells on every side. A region too small
// to shrink becomes empty.
func (r Region) Inset(n int) Region {
	in := r.Rect.Inset(n)
	if in.Empty() {
		in = image.Rectangle{}
	}
	return Region{Name: r.Name, Rect: in}
}

// Layout holds the computed regions for a given terminal size.
type Layout struct {
	TermW, TermH int
	Regions      map[string]Region
}

// Get returns the region with the given name, or a zero Region.
func (l Layout) Get(name string) Region {
	return l.Regions[name]
}

// Has reports whether name was laid out with a non-empty rectangle.
func (l Layout) Has(name string) bool {
	return !l.Regions[name].Rect.Empty()
}

// GameLayout is the screen split of the game: a one-row HUD, a one-row
// footer, a side panel of panelW columns when at least minPlay columns
// remain for the playfield, and the playfield in the rest.
func GameLayout(w, h, panelW, minPlay int) Layout {
	b := NewLayoutBuilder(w, h).
		TopFixed(HUD, 1).
		BottomFixed(Footer, 1)
	if w-panelW >= minPlay {
		b.RightFixed(Panel, panelW)
	}
	return b.Remaining(Playfield).Build()
}

// LayoutBuilder accumulates fixed regions and computes the remainder.
type LayoutBuilder struct {
	termW, termH int
	top, bottom  int // rows taken from the top and bottom
	right        int // columns taken from the right
	regions      []Region
}

// NewLayoutBuilder creates a builder for the given terminal size.
func NewLayoutBuilder(termW, termH int) *LayoutBuilder {
	return &LayoutBuilder{termW: termW, termH: termH}
}

func (b *LayoutBuilder) add(name string, r image.Rectangle) *LayoutBuilder {
	b.regions = append(b.regions, Region{Name: name, Rect: r})
	return b
}

// TopFixed reserves rows from the top.
func (b *LayoutBuilder) TopFixed(name string, height int) *LayoutBuilder {
	y := b.top
	b.top += height
	return b.add(name, image.Rect(0, y, b.termW, y+height))
}

// BottomFixed reserves rows from the bottom.
func (b *LayoutBuilder) BottomFixed(name string, height int) *LayoutBuilder {
	y := b.termH - b.bottom - height
	b.bottom += height
	return b.add(name, image.Rect(0, y, b.termW, y+height))
}

// RightFixed reserves columns from the right, between the top and
// bottom rows reserved so far.
func (b *LayoutBuilder) RightFixed(name string, width int) *LayoutBuilder {
	x := b.termW - b.right - width
	b.right += width
	return b.add(name, image.Rect(x, b.top, x+width, b.termH-b.bottom))
}

// Remaining assigns what is left after the fixed regions.
func (b *LayoutBuilder) Remaining(name string) *LayoutBuilder {
	return b.add(name, image.Rect(0, b.top, b.termW-b.right, b.termH-b.bottom))
}

// Build returns the layout. Degenerate regions come out empty.
func (b *LayoutBuilder) Build() Layout {
	l := Layout{
		TermW:   b.termW,
		TermH:   b.termH,
		Regions: make(map[string]Region, len(b.regions)),
	}
	for _, r := range b.regions {
		if r.Rect.Min.X >= r.Rect.Max.X || r.Rect.Min.Y >= r.Rect.Max.Y {
			r.Rect = image.Rectangle{}
		}
		l.Regions[r.Name] = r
	}
	return l
}
