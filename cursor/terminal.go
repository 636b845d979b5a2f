package cursor

import (
	"io"
	"sync"

	"github.com/muesli/termenv"
)

// Terminal is a Slot that writes style escape sequences to a terminal.
// Terminals cannot be queried for the active style, so Cursor reports the
// last style written, Default until the first SetCursor.
type Terminal struct {
	mu  sync.Mutex
	out *termenv.Output
	cur Cursor
}

// NewTerminal wraps w, usually os.Stdout.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{out: termenv.NewOutput(w)}
}

func (t *Terminal) Cursor() Cursor {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cur
}

func (t *Terminal) SetCursor(c Cursor) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cur = c
	_, _ = io.WriteString(t.out, c.Sequence())
}

// Hide and Show toggle cursor visibility around busy stretches.
func (t *Terminal) Hide() { t.out.HideCursor() }

func (t *Terminal) Show() { t.out.ShowCursor() }
