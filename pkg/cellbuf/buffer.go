// Package cellbuf is the character canvas the playfield is painted on.
// Every cell holds a rune, a StyleKey and a depth. Painting respects
// depth, so the renderer can draw cable, nodes and labels in any order
// and still get nodes over cables and labels over both.
//
// Styles are resolved at render time from a map[StyleKey]lipgloss.Style,
// which keeps the canvas independent of the color scheme.
//
// All runes are assumed to be single-width.
package cellbuf

import "image"

// StyleKey identifies a visual style.
type StyleKey int

// Depth orders overlapping paint. Higher wins; equal depth overwrites.
type Depth int

// Cell is a single character of the canvas.
type Cell struct {
	Ch    rune
	Style StyleKey
	Z     Depth
}

// Buffer is a W×H grid of cells, addressed [row][col].
type Buffer struct {
	W, H  int
	Cells [][]Cell

	bg StyleKey
}

// New creates a blank buffer in the background style bg.
func New(w, h int, bg StyleKey) *Buffer {
	w, h = max(w, 0), max(h, 0)
	b := &Buffer{W: w, H: h, Cells: make([][]Cell, h), bg: bg}
	for y := range b.Cells {
		b.Cells[y] = make([]Cell, w)
	}
	b.Clear()
	return b
}

// Bounds returns the buffer rectangle.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.W, b.H)
}

// InBounds reports whether (x, y) is a cell of the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// At returns the cell at (x, y), or a blank cell outside the buffer.
func (b *Buffer) At(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Cell{Ch: ' ', Style: b.bg}
	}
	return b.Cells[y][x]
}

// Set paints (x, y) at depth 0 regardless of what is there.
func (b *Buffer) Set(x, y int, ch rune, style StyleKey) {
	if b.InBounds(x, y) {
		b.Cells[y][x] = Cell{Ch: ch, Style: style}
	}
}

// Plot paints (x, y) unless a deeper cell is already there. It reports
// whether the cell was written. Out-of-bounds plots are ignored.
func (b *Buffer) Plot(x, y int, ch rune, style StyleKey, z Depth) bool {
	if !b.InBounds(x, y) || b.Cells[y][x].Z > z {
		return false
	}
	b.Cells[y][x] = Cell{Ch: ch, Style: style, Z: z}
	return true
}

// Text plots s starting at (x, y), one cell per rune.
func (b *Buffer) Text(x, y int, s string, style StyleKey, z Depth) {
	i := 0
	for _, ch := range s {
		b.Plot(x+i, y, ch, style, z)
		i++
	}
}

// SetString writes s at (x, y) at depth 0, overwriting.
func (b *Buffer) SetString(x, y int, s string, style StyleKey) {
	i := 0
	for _, ch := range s {
		b.Set(x+i, y, ch, style)
		i++
	}
}

// Fill resets every cell to a space in style at depth 0.
func (b *Buffer) Fill(style StyleKey) {
	for y := range b.Cells {
		row := b.Cells[y]
		for x := range row {
			row[x] = Cell{Ch: ' ', Style: style}
		}
	}
}

// Clear resets the buffer to its background style.
func (b *Buffer) Clear() { b.Fill(b.bg) }
