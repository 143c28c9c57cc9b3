package ggtools

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// discardHandler drops every record. ggtools is quiet until a command
// installs a real handler.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

// silent is installed at startup and whenever SetLogger(nil) is called.
var silent = slog.New(discardHandler{})

// current is read by paste goroutines while the UI may swap it.
var current atomic.Pointer[slog.Logger]

func init() { current.Store(silent) }

// SetLogger routes ggtools logging, and gg's own logging tagged lib=gg,
// to l. Pass nil to go quiet again. Safe for concurrent use.
//
// Log levels used by ggtools:
//   - [slog.LevelDebug]: ignored events (no image on the clipboard, gesture guards)
//   - [slog.LevelInfo]: image loaded, image copied, table converted
//   - [slog.LevelWarn]: superseded pastes, decode and clipboard failures
//
// Example:
//
//	ggtools.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
		gg.SetLogger(nil)
	} else {
		gg.SetLogger(l.With("lib", "gg"))
	}
	current.Store(l)
}

// Logger returns the current logger. Sub-packages call this instead of
// keeping their own copy so that SetLogger takes effect everywhere.
func Logger() *slog.Logger {
	return current.Load()
}
