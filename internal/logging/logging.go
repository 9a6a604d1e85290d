// Package logging holds the slog logger shared by every package of the
// module. It is silent until a caller installs a logger.
package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all records. Enabled reports false so callers skip
// attribute formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// Set installs l as the module logger. Passing nil restores the silent
// default. Safe for concurrent use.
func Set(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current module logger. Never nil.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// Debug reports whether debug records would be emitted. Hot paths check it
// before building attributes.
func Debug() bool {
	return Logger().Enabled(context.Background(), slog.LevelDebug)
}
