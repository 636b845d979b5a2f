package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	boxTitleStyle  = lipgloss.NewStyle().Bold(true)
	boxBorderStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Box is a titled pane. Content taller than the box is clipped, never
// wrapped.
type Box struct {
	Title   string
	Content string
}

func (b Box) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	innerWidth := max(1, width-4)
	innerHeight := max(1, height-2)
	head := boxTitleStyle.Render(ansi.Truncate(b.Title, innerWidth, "…"))
	body := clipLines(b.Content, innerHeight-1)
	inner := head
	if body != "" {
		inner += "\n" + body
	}
	return boxBorderStyle.Width(width - 2).Height(innerHeight).Render(inner)
}

func clipLines(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
