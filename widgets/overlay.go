package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Overlay centers top over base on a width x height canvas, splicing it in
// line by line so the base stays visible around it. Both layers may carry
// ANSI styling; top is expected to already be rendered (for example a
// bordered card).
func Overlay(base, top string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	placed := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, top)
	baseLines := canvasLines(base, width, height)
	topLines := canvasLines(placed, width, height)
	out := make([]string, height)
	for i := range out {
		out[i] = spliceLine(baseLines[i], topLines[i], width)
	}
	return strings.Join(out, "\n")
}

// spliceLine lays the non-blank span of top into base, preserving the base
// columns on either side.
func spliceLine(base, top string, width int) string {
	start, end, ok := span(top, width)
	if !ok {
		return base
	}
	left := ansi.Truncate(base, start, "")
	middle := ansi.Truncate(dropColumns(top, start), end-start, "")
	right := dropColumns(base, end)
	return padTo(left+middle+right, width)
}

// span finds the first and last non-space column of line, ANSI stripped.
func span(line string, width int) (start, end int, ok bool) {
	plain := ansi.Strip(ansi.Truncate(line, width, ""))
	trimmed := strings.TrimRight(plain, " ")
	if trimmed == "" {
		return 0, 0, false
	}
	for start < len(plain) && plain[start] == ' ' {
		start++
	}
	// trimmed may hold multi-byte runes, so measure columns, not bytes
	end = ansi.StringWidth(trimmed)
	if start >= end {
		return 0, 0, false
	}
	return start, end, true
}

// canvasLines normalizes s to exactly height lines of exactly width columns.
func canvasLines(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padTo(lines[i], width)
	}
	return lines
}

// dropColumns removes the first cols display columns of s, keeping styling.
func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	head := ansi.Truncate(s, cols, "")
	return strings.TrimPrefix(s, head)
}

// padTo truncates or pads s to exactly width display columns.
func padTo(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
