package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/teakit/command"
)

var paletteStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorAccent).
	Padding(0, 1)

type commandItem struct {
	id      string
	name    string
	desc    string
	enabled bool
}

func (i commandItem) Title() string {
	if !i.enabled {
		return fmt.Sprintf("%s (unavailable)", i.name)
	}
	return i.name
}
func (i commandItem) Description() string { return i.desc }
func (i commandItem) FilterValue() string { return i.name + " " + i.desc + " " + i.id }

// palette is the command picker shown over the main view. It owns its own
// query input and result list; dispatch goes back to the app through
// runCommandMsg.
type palette struct {
	search func(query string) []command.Result
	input  textinput.Model
	list   list.Model
}

func newPalette(search func(query string) []command.Result) *palette {
	inp := textinput.New()
	inp.Placeholder = "Search commands"
	inp.Prompt = "cmd> "
	inp.Focus()
	lst := list.New(nil, list.NewDefaultDelegate(), 64, 14)
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	// runes go to the query too, so "q" must not quit the list
	lst.KeyMap.Quit.SetEnabled(false)
	lst.KeyMap.ForceQuit.SetEnabled(false)
	p := &palette{search: search, input: inp, list: lst}
	p.refresh()
	return p
}

// Update handles one message. The returned bool reports whether the palette
// is done and should be dismissed.
func (p *palette) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return nil, true
		case "enter":
			if it, ok := p.list.SelectedItem().(commandItem); ok {
				if !it.enabled {
					return statusCmd("not available right now: " + it.name), true
				}
				id := it.id
				return func() tea.Msg { return runCommandMsg{ID: id} }, true
			}
		}
	}
	var cmd1 tea.Cmd
	p.input, cmd1 = p.input.Update(msg)
	p.refresh()
	var cmd2 tea.Cmd
	p.list, cmd2 = p.list.Update(msg)
	return tea.Batch(cmd1, cmd2), false
}

func (p *palette) refresh() {
	query := strings.TrimSpace(p.input.Value())
	results := p.search(query)
	items := make([]list.Item, 0, len(results))
	for _, r := range results {
		items = append(items, commandItem{id: r.ID, name: r.Name, desc: r.Desc, enabled: r.Enabled})
	}
	_ = p.list.SetItems(items)
}

func (p *palette) View(width, height int) string {
	w := min(64, max(24, width-8))
	h := max(8, min(16, height-6))
	p.list.SetWidth(w)
	p.list.SetHeight(h - 2)
	body := p.input.View() + "\n" + p.list.View()
	return paletteStyle.Width(w).Render(clipHeight(body, h))
}
