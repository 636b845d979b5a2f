package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/teakit/command"
	"github.com/jask/teakit/cursor"
	"github.com/jask/teakit/errdialog"
	"github.com/jask/teakit/internal/config"
)

const (
	scopeMain    = "main"
	workDuration = 1500 * time.Millisecond
	activityCap  = 30
)

type appState string

const (
	stateIdle appState = "idle"
	stateBusy appState = "busy"
)

type modalState string

const (
	modalNone    modalState = ""
	modalPalette modalState = "palette"
	modalError   modalState = "error"
)

type keyMap struct {
	Palette   key.Binding
	Work      key.Binding
	Error     key.Binding
	CloseForm key.Binding
	NextField key.Binding
	Commit    key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Palette:   key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "commands")),
	Work:      key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "simulate work")),
	Error:     key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "raise error")),
	CloseForm: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "close form")),
	NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	Commit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save field")),
	Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

// App ties the kit together: palette-dispatched commands, a viewmodel-backed
// form, scoped cursor overrides around busy work, and the error dialog.
type App struct {
	cfg  config.Config
	slot cursor.Slot
	idle *idleQueue

	state appState
	modal modalState

	registry *command.Registry[*App]
	form     *profileForm
	palette  *palette
	dialog   errdialog.Model

	busy         *cursor.Scope
	paletteScope *cursor.Scope
	busyCursor   cursor.Cursor

	inputs []textinput.Model
	focus  int
	spin   spinner.Model

	accent    lipgloss.Color
	activity  []string
	status    string
	statusErr bool
	width     int
	height    int
	quitting  bool
}

func New(cfg config.Config, slot cursor.Slot) *App {
	busyCursor, ok := cursor.Parse(cfg.UI.BusyCursor)
	if !ok {
		busyCursor = cursor.SteadyBar
	}
	a := &App{
		cfg:        cfg,
		slot:       slot,
		idle:       &idleQueue{},
		state:      stateIdle,
		form:       newProfileForm(),
		busyCursor: busyCursor,
		accent:     colorAccent,
	}
	if cfg.UI.Accent != "" {
		a.accent = lipgloss.Color(cfg.UI.Accent)
	}
	a.spin = spinner.New(spinner.WithSpinner(spinner.Dot))
	a.spin.Style = lipgloss.NewStyle().Foreground(a.accent)

	name := textinput.New()
	name.Prompt = ""
	name.SetValue(a.form.Name())
	name.Focus()
	email := textinput.New()
	email.Prompt = ""
	email.SetValue(a.form.Email())
	a.inputs = []textinput.Model{name, email}

	a.registry = command.NewRegistry(
		&command.Command[*App]{
			ID:          "work.run",
			Name:        "Simulate Work",
			Description: "Run a short background task under the busy cursor",
			CanRun:      func(app *App) bool { return app.state != stateBusy },
			Action:      func(app *App) tea.Cmd { return app.startWork() },
		},
		&command.Command[*App]{
			ID:          "error.raise",
			Name:        "Raise Error",
			Description: "Open the error dialog with a sample failure",
			Action:      func(app *App) tea.Cmd { return app.raiseError() },
		},
		&command.Command[*App]{
			ID:          "form.close",
			Name:        "Close Form",
			Description: "Dispose the profile form; edits after this fail",
			Scopes:      []string{scopeMain},
			CanRun:      func(app *App) bool { return !app.form.Closed() },
			Action:      func(app *App) tea.Cmd { return app.closeForm() },
		},
		&command.Command[*App]{
			ID:          "cursor.reset",
			Name:        "Reset Cursor",
			Description: "Force the terminal cursor back to its default shape",
			Action:      func(app *App) tea.Cmd { return app.resetCursor() },
		},
		&command.Command[*App]{
			ID:          "app.quit",
			Name:        "Quit",
			Description: "Leave the demo",
			Scopes:      []string{"*"},
			Action: func(app *App) tea.Cmd {
				app.quitting = true
				return tea.Quit
			},
		},
	)

	a.form.OnChanged(func(field string) {
		a.logActivity("profile " + strings.ToLower(field) + " changed")
		a.registry.RefreshAll()
	})
	a.form.OnClosing(func() {
		a.logActivity("profile form closing")
	})
	if c, ok := a.registry.Get("form.close"); ok {
		enabled := c.CanExecute(a)
		c.OnEnabledChanged(func() {
			now := c.CanExecute(a)
			if now != enabled {
				enabled = now
				a.logActivity(fmt.Sprintf("command %q enabled=%v", c.Name, now))
			}
		})
	}
	a.logActivity("ready")
	return a
}

func (a *App) Init() tea.Cmd { return textinput.Blink }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		if a.modal == modalError {
			a.dialog.SetSize(msg.Width-4, msg.Height-4)
		}
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			a.quitting = true
			return a, tea.Quit
		}
		switch a.modal {
		case modalPalette:
			cmd, done := a.palette.Update(msg)
			if done {
				a.closePalette()
			}
			return a, a.withIdleFlush(cmd)
		case modalError:
			var cmd tea.Cmd
			a.dialog, cmd = a.dialog.Update(msg)
			return a, cmd
		}
		return a.handleMainKey(msg)

	case statusMsg:
		a.status, a.statusErr = msg.Text, msg.IsErr
		return a, nil

	case errMsg:
		a.dialog = errdialog.New(msg.error)
		a.dialog.SetSize(a.width-4, a.height-4)
		a.modal = modalError
		a.status, a.statusErr = msg.Error(), true
		a.logActivity("error raised")
		return a, nil

	case errdialog.DismissedMsg:
		if a.modal == modalError && msg.ID == a.dialog.ID() {
			a.modal = modalNone
			a.status, a.statusErr = "", false
		}
		return a, a.withIdleFlush(nil)

	case errdialog.CopiedMsg:
		var cmd tea.Cmd
		a.dialog, cmd = a.dialog.Update(msg)
		if msg.Err != nil {
			a.status, a.statusErr = "copy report: "+msg.Err.Error(), true
		} else {
			a.status, a.statusErr = "report copied", false
		}
		return a, cmd

	case runCommandMsg:
		return a, a.withIdleFlush(a.registry.Execute(msg.ID, a))

	case taskDoneMsg:
		a.finishWork()
		return a, a.withIdleFlush(nil)

	case flushIdleMsg:
		a.idle.drain()
		return a, nil

	case spinner.TickMsg:
		if a.state != stateBusy {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd
	}

	switch a.modal {
	case modalPalette:
		cmd, done := a.palette.Update(msg)
		if done {
			a.closePalette()
		}
		return a, cmd
	case modalError:
		var cmd tea.Cmd
		a.dialog, cmd = a.dialog.Update(msg)
		return a, cmd
	}
	var cmd tea.Cmd
	a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
	return a, cmd
}

func (a *App) handleMainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Palette):
		a.openPalette()
		return a, nil
	case key.Matches(msg, keys.Work):
		return a, a.withIdleFlush(a.registry.Execute("work.run", a))
	case key.Matches(msg, keys.Error):
		return a, a.registry.Execute("error.raise", a)
	case key.Matches(msg, keys.CloseForm):
		return a, a.registry.Execute("form.close", a)
	case key.Matches(msg, keys.NextField):
		a.cycleFocus()
		return a, nil
	case key.Matches(msg, keys.Commit):
		return a, a.commitField()
	}
	var cmd tea.Cmd
	a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
	return a, cmd
}

// commands

func (a *App) startWork() tea.Cmd {
	var opts []cursor.Option
	if a.cfg.UI.IdleReset {
		opts = append(opts, cursor.WithIdleReset(a.idle))
	}
	a.busy = cursor.Override(a.slot, a.busyCursor, opts...)
	a.state = stateBusy
	a.status, a.statusErr = "working...", false
	a.logActivity("background work started")
	a.registry.RefreshAll()
	return tea.Batch(
		a.spin.Tick,
		tea.Tick(workDuration, func(time.Time) tea.Msg { return taskDoneMsg{} }),
	)
}

func (a *App) finishWork() {
	a.state = stateIdle
	if a.busy != nil {
		a.busy.Release()
		a.busy = nil
	}
	a.status, a.statusErr = "work finished", false
	a.logActivity("background work finished")
	a.registry.RefreshAll()
}

func (a *App) raiseError() tea.Cmd {
	err := fmt.Errorf("refresh profile: %w",
		fmt.Errorf("backend unreachable: %w", errors.New("connect timed out")))
	return errorCmd(err)
}

func (a *App) closeForm() tea.Cmd {
	if err := a.form.Close(); err != nil {
		return errorCmd(err)
	}
	a.registry.RefreshAll()
	return statusCmd("profile form closed")
}

func (a *App) resetCursor() tea.Cmd {
	cursor.Reset(a.slot)
	return statusCmd("cursor reset")
}

// palette

func (a *App) openPalette() {
	a.palette = newPalette(func(q string) []command.Result {
		return a.registry.Search(q, scopeMain, a)
	})
	a.paletteScope = cursor.Override(a.slot, cursor.BlinkingBar)
	a.modal = modalPalette
}

func (a *App) closePalette() {
	if a.paletteScope != nil {
		a.paletteScope.Release()
		a.paletteScope = nil
	}
	a.palette = nil
	a.modal = modalNone
}

// form

func (a *App) cycleFocus() {
	a.inputs[a.focus].Blur()
	a.focus = (a.focus + 1) % len(a.inputs)
	a.inputs[a.focus].Focus()
}

func (a *App) commitField() tea.Cmd {
	value := a.inputs[a.focus].Value()
	var err error
	switch a.focus {
	case 0:
		err = a.form.SetName(value)
	default:
		err = a.form.SetEmail(value)
	}
	if err != nil {
		return errorCmd(fmt.Errorf("save field: %w", err))
	}
	return nil
}

func (a *App) logActivity(text string) {
	line := time.Now().Format("15:04:05") + " " + text
	a.activity = append(a.activity, line)
	if len(a.activity) > activityCap {
		a.activity = a.activity[len(a.activity)-activityCap:]
	}
}

// withIdleFlush appends a drain of the idle queue once the app is quiet
// again, so deferred cursor resets land after the work that queued them.
func (a *App) withIdleFlush(cmd tea.Cmd) tea.Cmd {
	if a.state == stateIdle && a.idle.pending() {
		return tea.Batch(cmd, flushIdle)
	}
	return cmd
}
