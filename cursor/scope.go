package cursor

import (
	"log/slog"
	"runtime"
	"sync"
)

// Idler schedules a callback to run once the UI queue drains. Scheduling is
// fire-and-forget: there is no cancel path, so a callback arriving after
// the relevant state is gone must find a no-op.
type Idler interface {
	OnIdle(fn func())
}

// IdleFunc adapts a plain function to Idler.
type IdleFunc func(fn func())

func (f IdleFunc) OnIdle(fn func()) { f(fn) }

// Option configures Override.
type Option func(*Scope)

// WithIdleReset changes what Release does: instead of restoring the
// captured cursor immediately, it schedules a Reset of the slot through
// idler and leaves the cursor untouched until that runs.
func WithIdleReset(idler Idler) Option {
	return func(s *Scope) { s.idler = idler }
}

// Scope is a scoped override of a cursor slot. Construction captures and
// replaces the slot's active cursor; Release undoes it.
type Scope struct {
	slot  Slot
	prev  Cursor
	idler Idler

	mu       sync.Mutex
	released bool

	cleanup runtime.Cleanup
}

// Override captures slot's active cursor and replaces it with c.
func Override(slot Slot, c Cursor, opts ...Option) *Scope {
	s := &Scope{slot: slot}
	for _, opt := range opts {
		opt(s)
	}
	s.prev = slot.Cursor()
	slot.SetCursor(c)
	s.cleanup = runtime.AddCleanup(s, leakWarn, "cursor.Scope")
	return s
}

// leakWarn runs on the cleanup goroutine and must not touch the scope.
func leakWarn(kind string) {
	slog.Warn("collected without Release", "kind", kind)
}

// Release undoes the override once; repeated calls are no-ops. Without
// WithIdleReset the captured previous cursor is restored immediately.
// With it, nothing changes synchronously: a Reset is queued on the idler
// and applies only if the slot still holds an override when it runs.
func (s *Scope) Release() {
	s.mu.Lock()
	if s.released {
		s.mu.Unlock()
		return
	}
	s.released = true
	s.mu.Unlock()

	s.cleanup.Stop()

	if s.idler != nil {
		slot := s.slot
		s.idler.OnIdle(func() { Reset(slot) })
		return
	}
	s.slot.SetCursor(s.prev)
}
