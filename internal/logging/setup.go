package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// NewTerminal builds the default logger for CLI sessions, writing to w.
// When w is a TTY it uses a colorized tint handler with short timestamps;
// otherwise it falls back to the plain slog text handler so piped output
// stays machine-readable.
func NewTerminal(w io.Writer, level slog.Level) Logger {
	var h slog.Handler
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		h = tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	}
	return NewSlogLogger(slog.New(h))
}

// NewNop returns a logger that discards everything. Used in tests.
func NewNop() Logger {
	return NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
