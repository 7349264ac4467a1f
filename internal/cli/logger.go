package cli

import (
	"io"
	"log/slog"
	"strings"

	"golang.org/x/term"
)

// NewLogger builds the process logger writing to w. The auto format writes
// text to a terminal and JSON otherwise.
func NewLogger(w io.Writer, s Settings) *slog.Logger {
	opts := &slog.HandlerOptions{Level: s.SlogLevel()}

	if useJSON(w, s.LogFormat) {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func useJSON(w io.Writer, format string) bool {
	switch strings.ToLower(format) {
	case "json":
		return true
	case "text":
		return false
	}

	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return !term.IsTerminal(int(f.Fd()))
}
