package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// List renders items one per row with a dash prefix. When there are more
// items than rows the oldest (leading) entries are dropped, so appending
// logs keeps the newest visible.
type List struct {
	Items []string
}

func (l List) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	items := l.Items
	if len(items) > height {
		items = items[len(items)-height:]
	}
	rows := make([]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, ansi.Truncate("- "+item, width, "…"))
	}
	return strings.Join(rows, "\n")
}
