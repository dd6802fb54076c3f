// Package logging configures the process-wide slog logger and provides
// request logging for the API server.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Setup installs the default logger. Dev mode logs human-readable text at
// debug level; otherwise JSON at info level. Output goes to stderr so
// command output on stdout stays clean.
func Setup(devMode bool) {
	slog.SetDefault(slog.New(newHandler(os.Stderr, devMode)))
}

func newHandler(w io.Writer, devMode bool) slog.Handler {
	if devMode {
		return slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
}
