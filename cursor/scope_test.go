package cursor

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestOverrideReplacesAndReleaseRestores(t *testing.T) {
	var slot State
	s := Override(&slot, BlinkingBar)
	if slot.Cursor() != BlinkingBar {
		t.Fatalf("cursor after Override = %v, want BlinkingBar", slot.Cursor())
	}
	s.Release()
	if slot.Cursor() != Default {
		t.Fatalf("cursor after Release = %v, want Default", slot.Cursor())
	}
}

func TestNestedScopesRestoreOuterCursor(t *testing.T) {
	var slot State
	outer := Override(&slot, SteadyBlock)
	inner := Override(&slot, BlinkingBar)

	inner.Release()
	if slot.Cursor() != SteadyBlock {
		t.Fatalf("inner Release = %v, want the outer scope's SteadyBlock", slot.Cursor())
	}
	outer.Release()
	if slot.Cursor() != Default {
		t.Fatalf("outer Release = %v, want Default", slot.Cursor())
	}
}

func TestReleaseIdempotent(t *testing.T) {
	var slot State
	s := Override(&slot, SteadyUnderline)
	s.Release()

	slot.SetCursor(SteadyBar)
	s.Release()

	if slot.Cursor() != SteadyBar {
		t.Fatalf("second Release touched the slot: %v", slot.Cursor())
	}
}

func TestIdleResetDefersUntilCallback(t *testing.T) {
	var slot State
	var queued []func()
	idler := IdleFunc(func(fn func()) { queued = append(queued, fn) })

	s := Override(&slot, SteadyBar, WithIdleReset(idler))
	s.Release()

	if slot.Cursor() != SteadyBar {
		t.Fatalf("deferred Release changed the cursor synchronously: %v", slot.Cursor())
	}
	if len(queued) != 1 {
		t.Fatalf("queued callbacks = %d, want 1", len(queued))
	}

	queued[0]()
	if slot.Cursor() != Default {
		t.Fatalf("cursor after idle callback = %v, want Default", slot.Cursor())
	}
}

func TestIdleResetSkipsAlreadyDefault(t *testing.T) {
	slot := &spySlot{}
	var queued []func()
	idler := IdleFunc(func(fn func()) { queued = append(queued, fn) })

	s := Override(slot, BlinkingBlock, WithIdleReset(idler))
	s.Release()

	// Someone else already cleared the override before idle fired.
	slot.SetCursor(Default)
	writes := slot.sets

	queued[0]()
	if slot.sets != writes {
		t.Fatalf("idle callback wrote to an already-default slot")
	}
}

func TestIdleResetQueuesOnce(t *testing.T) {
	var slot State
	calls := 0
	idler := IdleFunc(func(fn func()) { calls++ })

	s := Override(&slot, SteadyBar, WithIdleReset(idler))
	s.Release()
	s.Release()

	if calls != 1 {
		t.Fatalf("idle scheduling calls = %d, want 1", calls)
	}
}

// warnRecorder captures slog records so tests can watch the leak net.
type warnRecorder struct {
	msgs chan string
}

func (r *warnRecorder) Enabled(context.Context, slog.Level) bool { return true }

func (r *warnRecorder) Handle(_ context.Context, rec slog.Record) error {
	line := rec.Message
	rec.Attrs(func(a slog.Attr) bool {
		line += " " + a.Key + "=" + a.Value.String()
		return true
	})
	select {
	case r.msgs <- line:
	default:
	}
	return nil
}

func (r *warnRecorder) WithAttrs([]slog.Attr) slog.Handler { return r }

func (r *warnRecorder) WithGroup(string) slog.Handler { return r }

// captureWarnings swaps the default logger for a recorder until the test
// ends, settling collections left over from earlier tests first.
func captureWarnings(t *testing.T) *warnRecorder {
	t.Helper()
	rec := &warnRecorder{msgs: make(chan string, 16)}
	prev := slog.Default()
	slog.SetDefault(slog.New(rec))
	t.Cleanup(func() { slog.SetDefault(prev) })
	settleCleanups()
	for len(rec.msgs) > 0 {
		<-rec.msgs
	}
	return rec
}

func settleCleanups() {
	for i := 0; i < 3; i++ {
		runtime.GC()
		time.Sleep(5 * time.Millisecond)
	}
}

func TestLeakNetWarnsWhenCollectedUnreleased(t *testing.T) {
	rec := captureWarnings(t)

	func() {
		var slot State
		_ = Override(&slot, SteadyBar)
	}()

	deadline := time.Now().Add(5 * time.Second)
	for {
		runtime.GC()
		select {
		case line := <-rec.msgs:
			if !strings.Contains(line, "without Release") || !strings.Contains(line, "cursor.Scope") {
				t.Fatalf("warning = %q, want collected-without-Release for cursor.Scope", line)
			}
			return
		case <-time.After(10 * time.Millisecond):
		}
		if time.Now().After(deadline) {
			t.Fatalf("no leak warning after repeated GC")
		}
	}
}

func TestReleaseDisarmsLeakNet(t *testing.T) {
	rec := captureWarnings(t)

	func() {
		var slot State
		Override(&slot, SteadyBar).Release()
	}()

	settleCleanups()
	select {
	case line := <-rec.msgs:
		t.Fatalf("leak net still armed after Release: %q", line)
	default:
	}
}
