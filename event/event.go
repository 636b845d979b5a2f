// Package event provides the ordered observer list behind the kit's
// notification contracts.
package event

import "sync"

// Emitter invokes subscribed observers synchronously on Emit. The zero
// value is ready to use.
type Emitter[T any] struct {
	mu   sync.Mutex
	next int
	subs []subscriber[T]
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// Subscribe appends fn to the observer list and returns a cancel func that
// removes it. A nil fn is ignored and the cancel is a no-op.
func (e *Emitter[T]) Subscribe(fn func(T)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.next++
	id := e.next
	e.subs = append(e.subs, subscriber[T]{id: id, fn: fn})
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		for i, s := range e.subs {
			if s.id == id {
				e.subs = append(e.subs[:i], e.subs[i+1:]...)
				return
			}
		}
	}
}

// Emit calls each observer subscribed at the time of the call exactly once,
// in subscription order, on the calling goroutine. Observers added or
// removed by a running observer take effect from the next Emit.
func (e *Emitter[T]) Emit(v T) {
	e.mu.Lock()
	fns := make([]func(T), len(e.subs))
	for i, s := range e.subs {
		fns[i] = s.fn
	}
	e.mu.Unlock()
	for _, fn := range fns {
		fn(v)
	}
}

// Len reports the number of active subscriptions.
func (e *Emitter[T]) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.subs)
}
