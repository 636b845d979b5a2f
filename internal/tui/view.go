package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/teakit/productinfo"
	"github.com/jask/teakit/widgets"
)

func (a *App) View() string {
	if a.quitting {
		return "Goodbye\n"
	}
	header := a.renderHeader()
	statusText := a.status
	if a.state == stateBusy {
		statusText = a.spin.View() + " " + a.status
	}
	status := renderStatus(a.width, statusText, a.statusErr)
	footer := renderFooter(a.width, a.footerBindings())
	available := a.height - lipgloss.Height(header) - lipgloss.Height(status) - lipgloss.Height(footer)
	if available < 0 {
		available = 0
	}
	body := a.renderBody(max(1, a.width-2), available)
	switch a.modal {
	case modalPalette:
		if a.palette != nil {
			body = widgets.Overlay(body, a.palette.View(a.width-4, available), max(1, a.width-2), available)
		}
	case modalError:
		body = widgets.Overlay(body, a.dialog.View(), max(1, a.width-2), available)
	}
	body = fitHeight(body, available)
	main := strings.TrimSuffix(strings.Join([]string{header, status, body}, "\n"), "\n")
	main = fitHeight(main, lipgloss.Height(header)+lipgloss.Height(status)+available)
	view := strings.Join([]string{main, footer}, "\n")
	view = fitHeight(view, max(1, a.height))
	return appStyle.Width(max(1, a.width)).MaxWidth(max(1, a.width)).Render(view)
}

func (a *App) renderHeader() string {
	name, ok := productinfo.Title()
	if !ok || name == "" {
		name = "teakit"
	}
	left := headerAppStyle.Foreground(a.accent).Background(colorMantle).Render(name + " demo")
	if v, ok := productinfo.Version(); ok {
		left += " " + labelStyle.Background(colorMantle).Render(v)
	}
	right := labelStyle.Background(colorMantle).
		Render("state " + string(a.state) + "  cursor " + a.slot.Cursor().String())
	right = ansi.Truncate(right, max(1, a.width), "")
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < a.width {
		gap = a.width - leftW - rightW
	}
	return renderBar(headerBarStyle, max(1, a.width), left+strings.Repeat(" ", gap)+right, colorMantle)
}

func (a *App) renderBody(width, height int) string {
	if height <= 0 {
		return ""
	}
	// second column width, matching the stack's even split
	rw := (width - 1) / 2
	return widgets.HStack{
		Gap: 1,
		Widgets: []widgets.Widget{
			widgets.Box{Title: "Profile", Content: a.renderForm()},
			widgets.Box{Title: "Activity", Content: a.renderActivity(max(1, rw-4), height-3)},
		},
	}.Render(width, height)
}

func (a *App) renderForm() string {
	labels := []string{"Name ", "Email"}
	var b strings.Builder
	for i, in := range a.inputs {
		style := labelStyle
		if i == a.focus {
			style = labelFocusStyle.Foreground(a.accent)
		}
		b.WriteString(style.Render(labels[i]) + " " + in.View() + "\n")
	}
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("saved") + "  " + a.form.Name() + " <" + a.form.Email() + ">")
	if a.form.Closed() {
		b.WriteString("\n" + closedStyle.Render("form closed"))
	}
	return b.String()
}

func (a *App) renderActivity(width, height int) string {
	return widgets.List{Items: a.activity}.Render(width, height)
}

func (a *App) footerBindings() []key.Binding {
	switch a.modal {
	case modalPalette:
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
			keys.Quit,
		}
	case modalError:
		return []key.Binding{keys.Quit}
	default:
		return []key.Binding{
			keys.Palette, keys.NextField, keys.Commit,
			keys.Work, keys.Error, keys.CloseForm, keys.Quit,
		}
	}
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
