package array

import (
	"log/slog"

	"github.com/cwbudde/algo-figures/internal/logging"
)

// SetLogger configures the logger for this module. By default nothing is
// logged. Pass nil to restore the silent default.
//
// Buffer growth is reported at [slog.LevelDebug] with the old and new
// capacity:
//
//	array.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the logger currently in use.
func Logger() *slog.Logger {
	return logging.Logger()
}
