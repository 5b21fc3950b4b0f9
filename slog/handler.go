package slog

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/linkaudit"
	"github.com/lmittmann/tint"
)

// ParseLevel converts a level name (debug, info, warn, error) to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, linkaudit.Errorf(linkaudit.EINVALID, "invalid log level %q", name)
	}
	return level, nil
}

// NewHandler returns a human-readable handler writing records at or above
// level to w.
func NewHandler(w io.Writer, level slog.Level) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    true,
	})
}
