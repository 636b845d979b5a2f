// Package log wires the default slog logger to a rotating file so TUI
// output never fights the alt screen.
package log

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

var setupOnce sync.Once

// Setup installs a JSON handler writing to file as the slog default.
// Later calls are no-ops.
func Setup(file string, debugMode bool) {
	setupOnce.Do(func() {
		rotator := &lumberjack.Logger{
			Filename: file,
			MaxSize:  10,
			MaxAge:   30,
		}
		level := slog.LevelInfo
		if debugMode {
			level = slog.LevelDebug
		}
		handler := slog.NewJSONHandler(rotator, &slog.HandlerOptions{
			Level:     level,
			AddSource: true,
		})
		slog.SetDefault(slog.New(handler))
	})
}

// RecoverPanic logs a recovered panic and writes a crash report next to the
// working directory, then runs cleanup. Call it deferred.
func RecoverPanic(name string, cleanup func()) {
	r := recover()
	if r == nil {
		return
	}
	slog.Error("panic", "name", name, "value", r)

	stamp := time.Now().Format("20060102-150405")
	path := fmt.Sprintf("teakit-panic-%s-%s.log", name, stamp)
	if f, err := os.Create(path); err == nil {
		fmt.Fprintf(f, "panic in %s: %v\n\n", name, r)
		fmt.Fprintf(f, "time: %s\n\n", time.Now().Format(time.RFC3339))
		fmt.Fprintf(f, "stack:\n%s\n", debug.Stack())
		f.Close()
	}
	if cleanup != nil {
		cleanup()
	}
}
