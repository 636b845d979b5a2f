package tui

import "sync"

// idleQueue holds callbacks until the event loop has nothing better to do.
// It satisfies cursor.Idler, so scopes can defer their reset to the next
// quiet moment instead of racing a repaint.
type idleQueue struct {
	mu  sync.Mutex
	fns []func()
}

func (q *idleQueue) OnIdle(fn func()) {
	if fn == nil {
		return
	}
	q.mu.Lock()
	q.fns = append(q.fns, fn)
	q.mu.Unlock()
}

func (q *idleQueue) pending() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.fns) > 0
}

// drain runs queued callbacks in arrival order. Callbacks queued while
// draining wait for the next drain.
func (q *idleQueue) drain() {
	q.mu.Lock()
	fns := q.fns
	q.fns = nil
	q.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
