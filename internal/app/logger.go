package app

import (
	"io"
	"log/slog"
)

// newLogger builds the app's isolated slog.Logger from its configuration.
// The global logger is left untouched so embedding callers keep theirs.
// Unknown level strings fall back to info; any format other than "json"
// selects the text handler.
func newLogger(cfg *Config, outW io.Writer) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}
