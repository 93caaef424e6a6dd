// Package logger constructs slog loggers with level coloring for terminal
// output.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// ANSI color codes for level highlighting.
const (
	colorReset  = "\033[0m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
)

// colorHandler wraps a slog handler and colors warning and error records.
type colorHandler struct {
	slog.Handler
	w io.Writer
}

func (h *colorHandler) Handle(ctx context.Context, r slog.Record) error {
	switch r.Level {
	case slog.LevelWarn:
		io.WriteString(h.w, colorYellow)
		defer io.WriteString(h.w, colorReset)
	case slog.LevelError:
		io.WriteString(h.w, colorRed)
		defer io.WriteString(h.w, colorReset)
	}
	return h.Handler.Handle(ctx, r)
}

func (h *colorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &colorHandler{Handler: h.Handler.WithAttrs(attrs), w: h.w}
}

func (h *colorHandler) WithGroup(name string) slog.Handler {
	return &colorHandler{Handler: h.Handler.WithGroup(name), w: h.w}
}

// NewLogger creates a logger writing text records to w at the given level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	text := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(&colorHandler{Handler: text, w: w})
}

// NewDefaultLogger creates a colored stderr logger at the given level.
func NewDefaultLogger(level slog.Level) *slog.Logger {
	return NewLogger(os.Stderr, level)
}

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
