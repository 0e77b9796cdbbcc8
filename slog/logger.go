// Package slog provides log/slog decorators for blogsmith services.
package slog

import (
	"io"
	"log/slog"
	"strings"

	"github.com/fwojciec/blogsmith"
)

// Log output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// NewLogger builds a logger writing to w at the named level ("debug",
// "info", "warn", "error") in the named format.
func NewLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, blogsmith.Errorf(blogsmith.EINVALID, "invalid log level %q", level)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, blogsmith.Errorf(blogsmith.EINVALID, "invalid log format %q", format)
	}
}
