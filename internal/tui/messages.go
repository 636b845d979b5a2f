package tui

import tea "github.com/charmbracelet/bubbletea"

type statusMsg struct {
	Text  string
	IsErr bool
}

type errMsg struct{ error }

// taskDoneMsg ends the simulated busy task.
type taskDoneMsg struct{}

// runCommandMsg dispatches a palette selection by registry ID.
type runCommandMsg struct {
	ID string
}

// flushIdleMsg drains callbacks queued behind pending work.
type flushIdleMsg struct{}

func statusCmd(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{Text: text} }
}

func errorCmd(err error) tea.Cmd {
	return func() tea.Msg { return errMsg{err} }
}

func flushIdle() tea.Msg { return flushIdleMsg{} }
