package tealayout

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// HUDLayer renders a one-row bar across region r with left flush left
// and right flush right. When both do not fit, right is dropped.
func HUDLayer(r Region, left, right string, style lipgloss.Style) *lipgloss.Layer {
	w := r.Rect.Dx()
	gap := w - lipgloss.Width(left) - lipgloss.Width(right)
	content := left
	if gap > 0 {
		content = left + strings.Repeat(" ", gap) + right
	}
	rendered := style.Width(w).MaxWidth(w).Render(content)
	return lipgloss.NewLayer(rendered).X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(1).ID(r.Name)
}

// FooterLayer renders content across region r.
func FooterLayer(r Region, content string, style lipgloss.Style) *lipgloss.Layer {
	w := r.Rect.Dx()
	rendered := style.Width(w).MaxWidth(w).Render(content)
	return lipgloss.NewLayer(rendered).X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(1).ID(r.Name)
}

// VerticalSeparator creates a Layer with a vertical line of │ characters.
func VerticalSeparator(x, y, height int, style lipgloss.Style) *lipgloss.Layer {
	if height <= 0 {
		return lipgloss.NewLayer("").X(x).Y(y).ID("separator")
	}
	rendered := style.Render(strings.TrimSuffix(strings.Repeat("│\n", height), "\n"))
	return lipgloss.NewLayer(rendered).X(x).Y(y).Z(1).ID("separator")
}

// ModalLayer renders content in boxStyle centered on region r, above
// everything else.
func ModalLayer(r Region, content string, boxStyle lipgloss.Style, id string) *lipgloss.Layer {
	rendered := boxStyle.Render(content)
	x := r.Rect.Min.X + max(0, (r.Rect.Dx()-lipgloss.Width(rendered))/2)
	y := r.Rect.Min.Y + max(0, (r.Rect.Dy()-lipgloss.Height(rendered))/2)
	return lipgloss.NewLayer(rendered).X(x).Y(y).Z(100).ID(id)
}

// FillLayer paints region r with style, for backgrounds.
func FillLayer(r Region, style lipgloss.Style, id string, z int) *lipgloss.Layer {
	w, h := r.Rect.Dx(), r.Rect.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
	}
	line := strings.Repeat(" ", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	rendered := style.Render(strings.Join(lines, "\n"))
	return lipgloss.NewLayer(rendered).X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
}

// Lines pads or cuts lines to exactly height rows, each padded with
// pad to width columns.
func Lines(lines []string, width, height int, pad lipgloss.Style) string {
	out := make([]string, height)
	for i := range out {
		var s string
		if i < len(lines) {
			s = lines[i]
		}
		if n := width - lipgloss.Width(s); n > 0 {
			s += pad.Render(strings.Repeat(" ", n))
		}
		out[i] = s
	}
	return strings.Join(out, "\n")
}
