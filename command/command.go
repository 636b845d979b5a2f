package command

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/teakit/event"
)

// Command binds an action to an optional availability predicate. P is the
// parameter handed to both; pick whatever the binding site has on hand,
// typically the application model. Nil callbacks are tolerated: a nil
// CanRun means always available, a nil Action makes Execute a no-op.
//
// Construct commands as literals; the zero notification state is ready.
type Command[P any] struct {
	ID          string
	Name        string
	Description string
	Scopes      []string
	Action      func(P) tea.Cmd
	CanRun      func(P) bool

	enabledChanged event.Emitter[struct{}]
}

// CanExecute reports whether the command may run with p.
func (c *Command[P]) CanExecute(p P) bool {
	if c.CanRun == nil {
		return true
	}
	return c.CanRun(p)
}

// Execute runs the action with p and returns its follow-up command.
func (c *Command[P]) Execute(p P) tea.Cmd {
	if c.Action == nil {
		return nil
	}
	return c.Action(p)
}

// OnEnabledChanged subscribes fn to Refresh signals and returns a cancel
// func removing the subscription.
func (c *Command[P]) OnEnabledChanged(fn func()) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	return c.enabledChanged.Subscribe(func(struct{}) { fn() })
}

// Refresh tells observers to re-evaluate CanExecute. Each observer runs
// exactly once per call, synchronously.
func (c *Command[P]) Refresh() {
	c.enabledChanged.Emit(struct{}{})
}
