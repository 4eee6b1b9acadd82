// Package logging installs the process-wide slog handler.
package logging

import (
	"io"
	"log/slog"
)

// Configure writes text records to w. Only warnings and errors are shown
// unless debug is set.
func Configure(w io.Writer, debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	var handler slog.Handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(withSink(handler)))
}
