// Package cursor scopes overrides of the terminal's global cursor style.
// The one global setting is modeled as a Slot handle passed in explicitly,
// so scopes stay testable without a terminal attached.
package cursor

import (
	"sync"

	"github.com/charmbracelet/x/ansi"
)

// Cursor is a terminal cursor style. Default stands for whatever the
// terminal is configured with; the rest map onto the DECSCUSR styles.
type Cursor int

const (
	Default Cursor = iota
	BlinkingBlock
	SteadyBlock
	BlinkingUnderline
	SteadyUnderline
	BlinkingBar
	SteadyBar
)

var names = [...]string{
	"default",
	"blinking-block",
	"steady-block",
	"blinking-underline",
	"steady-underline",
	"blinking-bar",
	"steady-bar",
}

func (c Cursor) String() string {
	if c < Default || int(c) >= len(names) {
		return "unknown"
	}
	return names[c]
}

// Parse maps a style name, as written in config files, back to its Cursor.
func Parse(s string) (Cursor, bool) {
	for i, n := range names {
		if n == s {
			return Cursor(i), true
		}
	}
	return Default, false
}

// Sequence returns the escape string selecting c.
func (c Cursor) Sequence() string {
	return ansi.SetCursorStyle(int(c))
}

// Slot is a single global cursor setting.
type Slot interface {
	Cursor() Cursor
	SetCursor(Cursor)
}

// State is an in-memory Slot for tests and headless use.
type State struct {
	mu  sync.Mutex
	cur Cursor
}

func (s *State) Cursor() Cursor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

func (s *State) SetCursor(c Cursor) {
	s.mu.Lock()
	s.cur = c
	s.mu.Unlock()
}

// Reset clears slot back to Default only when it currently holds an
// override, so an already-default slot sees no redundant write.
func Reset(slot Slot) {
	if slot.Cursor() != Default {
		slot.SetCursor(Default)
	}
}
