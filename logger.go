package gfxvk

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gfxvk/internal/memory"
	"github.com/gogpu/gfxvk/vk/soft"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for gfxvk and its sub-packages.
// By default gfxvk produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the silent
// default.
//
// Log levels used by gfxvk:
//   - [slog.LevelDebug]: every native object created (kind, handle, sizes)
//   - [slog.LevelInfo]: factory lifecycle
//   - [slog.LevelWarn]: recoverable oddities (border color fallback, memory type fallback)
//   - [slog.LevelError]: the driver failure that precedes a fatal panic
//
// Example:
//
//	gfxvk.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	memory.SetLogger(l)
	soft.SetLogger(l)
}

// Logger returns the current logger used by gfxvk.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
