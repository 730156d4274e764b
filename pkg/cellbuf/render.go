package cellbuf

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Render turns the buffer into a styled string, rows joined with "\n".
// Adjacent cells that share a StyleKey are rendered as one run with a
// single Style.Render call. Keys missing from styles render unstyled.
// An empty buffer renders as "".
func (b *Buffer) Render(styles map[StyleKey]lipgloss.Style) string {
	if b.W == 0 || b.H == 0 {
		return ""
	}

	var out strings.Builder
	run := make([]rune, 0, b.W)
	flush := func(key StyleKey) {
		if len(run) == 0 {
			return
		}
		if s, ok := styles[key]; ok {
			out.WriteString(s.Render(string(run)))
		} else {
			out.WriteString(string(run))
		}
		run = run[:0]
	}

	for y, row := range b.Cells {
		if y > 0 {
			out.WriteByte('\n')
		}
		key := row[0].Style
		for _, c := range row {
			if c.Style != key {
				flush(key)
				key = c.Style
			}
			run = append(run, c.Ch)
		}
		flush(key)
	}
	return out.String()
}

// String returns the buffer as plain text without styling.
func (b *Buffer) String() string {
	lines := make([]string, b.H)
	for y, row := range b.Cells {
		rs := make([]rune, len(row))
		for x, c := range row {
			rs[x] = c.Ch
		}
		lines[y] = string(rs)
	}
	return strings.Join(lines, "\n")
}
