// Package errdialog presents a modal dialog bound to an error, for user
// inspection before the program moves on.
package errdialog

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/jask/teakit/productinfo"
)

const (
	defaultWidth  = 56
	defaultBody   = 8
	minBodyHeight = 3
)

// styles
var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#f38ba8")).
			Padding(1, 2)
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
)

type keyMap struct {
	Dismiss key.Binding
	Copy    key.Binding
	Scroll  key.Binding
}

var keys = keyMap{
	Dismiss: key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("esc", "dismiss")),
	Copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy report")),
	Scroll:  key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "scroll")),
}

func (k keyMap) ShortHelp() []key.Binding { return []key.Binding{k.Dismiss, k.Copy, k.Scroll} }

func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

// DismissedMsg reports that the dialog with ID was closed.
type DismissedMsg struct {
	ID string
}

// CopiedMsg reports a clipboard copy attempt for the dialog with ID.
type CopiedMsg struct {
	ID  string
	Err error
}

// Option configures New.
type Option func(*Model)

// WithTitle overrides the title, which otherwise comes from
// productinfo.Title.
func WithTitle(title string) Option {
	return func(m *Model) { m.title = title }
}

// Model is the dialog component. Render its View over the host view with
// widgets.Overlay while it is open.
type Model struct {
	id     string
	err    error
	title  string
	body   viewport.Model
	help   help.Model
	width  int
	copied bool
}

// New builds a dialog bound to err and logs the report ID.
func New(err error, opts ...Option) Model {
	m := Model{
		id:    uuid.NewString(),
		err:   err,
		width: defaultWidth,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.title == "" {
		t, ok := productinfo.Title()
		if !ok {
			t = "Error"
		}
		m.title = t
	}
	m.body = viewport.New(m.width-6, defaultBody)
	m.body.SetContent(m.wrapped())
	m.help = help.New()
	m.help.Styles.ShortKey = hintStyle
	m.help.Styles.ShortDesc = mutedStyle
	m.help.Styles.ShortSeparator = mutedStyle
	slog.Error("error dialog opened", "id", m.id, "err", err)
	return m
}

func (m Model) ID() string { return m.id }

func (m Model) Err() error { return m.err }

func (m Model) Title() string { return m.title }

// Report is the text the copy key places on the clipboard.
func (m Model) Report() string {
	var b strings.Builder
	b.WriteString(m.title + ": " + errText(m.err))
	for cause := errors.Unwrap(m.err); cause != nil; cause = errors.Unwrap(cause) {
		b.WriteString("\n  caused by: " + errText(cause))
	}
	b.WriteString("\nreport " + m.id)
	return b.String()
}

// SetSize clamps the dialog to fit a host of the given dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = min(defaultWidth, max(24, width-8))
	m.body.Width = m.width - 6
	m.body.Height = max(minBodyHeight, min(defaultBody, height-9))
	m.body.SetContent(m.wrapped())
	m.help.Width = m.width - 6
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Dismiss):
			id := m.id
			return m, func() tea.Msg { return DismissedMsg{ID: id} }
		case key.Matches(msg, keys.Copy):
			return m, m.copyCmd()
		}
	case CopiedMsg:
		if msg.ID == m.id && msg.Err == nil {
			m.copied = true
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	footer := m.help.View(keys)
	if m.copied {
		footer = mutedStyle.Render("copied") + "  " + footer
	}
	sections := []string{
		titleStyle.Render(m.title),
		"",
		m.body.View(),
		"",
		mutedStyle.Render("report " + m.id),
		footer,
	}
	return cardStyle.Render(strings.Join(sections, "\n"))
}

func (m Model) copyCmd() tea.Cmd {
	id := m.id
	report := m.Report()
	return func() tea.Msg {
		return CopiedMsg{ID: id, Err: clipboard.WriteAll(report)}
	}
}

// wrapped renders the error chain at the viewport width.
func (m Model) wrapped() string {
	var b strings.Builder
	b.WriteString(errText(m.err))
	for cause := errors.Unwrap(m.err); cause != nil; cause = errors.Unwrap(cause) {
		b.WriteString("\n\n" + mutedStyle.Render("caused by") + "\n" + errText(cause))
	}
	return lipgloss.NewStyle().Width(max(1, m.width-6)).Render(b.String())
}

func errText(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
