// Package viewmodel carries the change-notification and close lifecycle
// shared by observable model types.
package viewmodel

import (
	"errors"
	"log/slog"
	"runtime"
	"sync"

	"github.com/jask/teakit/event"
)

// ErrClosed is returned by EnsureOpen once Close has completed.
var ErrClosed = errors.New("viewmodel: closed")

// BeforeChange is implemented by owners that want a hook ahead of the
// changing notification.
type BeforeChange interface {
	BeforeChange(name string)
}

// AfterChange is implemented by owners that want a hook behind the changed
// notification.
type AfterChange interface {
	AfterChange(name string)
}

// Base is the foundation for view-model types: embed a *Base built with
// New, passing the embedding value as owner so its hooks dispatch.
type Base struct {
	owner any

	changing event.Emitter[string]
	changed  event.Emitter[string]
	closing  event.Emitter[struct{}]

	mu      sync.Mutex
	closed  bool
	inClose bool

	cleanup runtime.Cleanup
}

// New returns a Base dispatching hooks against owner, which may be nil.
// A runtime cleanup logs a warning when a Base is collected without Close;
// cleanups never run at process exit, and Close disarms it.
func New(owner any) *Base {
	b := &Base{owner: owner}
	b.cleanup = runtime.AddCleanup(b, leakWarn, "viewmodel.Base")
	return b
}

// leakWarn runs on the cleanup goroutine and must not touch the Base.
func leakWarn(kind string) {
	slog.Warn("collected without Close", "kind", kind)
}

// NotifyChanging runs the owner's BeforeChange hook, then tells changing
// observers that name is about to change.
func (b *Base) NotifyChanging(name string) {
	if h, ok := b.owner.(BeforeChange); ok {
		h.BeforeChange(name)
	}
	b.changing.Emit(name)
}

// NotifyChanged tells changed observers that name changed, then runs the
// owner's AfterChange hook.
func (b *Base) NotifyChanged(name string) {
	b.changed.Emit(name)
	if h, ok := b.owner.(AfterChange); ok {
		h.AfterChange(name)
	}
}

func (b *Base) OnChanging(fn func(name string)) (cancel func()) {
	return b.changing.Subscribe(fn)
}

func (b *Base) OnChanged(fn func(name string)) (cancel func()) {
	return b.changed.Subscribe(fn)
}

// OnClosing observers run inside Close, before the closed flag flips.
func (b *Base) OnClosing(fn func()) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	return b.closing.Subscribe(func(struct{}) { fn() })
}

// Closed reports whether Close has completed.
func (b *Base) Closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}

// EnsureOpen is the guard subclass operations call before mutating state.
func (b *Base) EnsureOpen() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrClosed
	}
	return nil
}

// Close fires the closing notification, then marks the Base closed. The
// notification precedes the flag flip, fires at most once per instance,
// and repeated or reentrant calls are no-ops. Always returns nil; the
// signature satisfies io.Closer.
func (b *Base) Close() error {
	b.mu.Lock()
	if b.closed || b.inClose {
		b.mu.Unlock()
		return nil
	}
	b.inClose = true
	b.mu.Unlock()

	b.closing.Emit(struct{}{})

	b.mu.Lock()
	b.closed = true
	b.inClose = false
	b.mu.Unlock()

	b.cleanup.Stop()
	return nil
}

// Set writes value to field bracketed by NotifyChanging and NotifyChanged,
// skipping both when the value is unchanged. It reports whether the field
// was written.
func Set[T comparable](b *Base, field *T, value T, name string) bool {
	if *field == value {
		return false
	}
	b.NotifyChanging(name)
	*field = value
	b.NotifyChanged(name)
	return true
}
