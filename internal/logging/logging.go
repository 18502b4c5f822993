package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

type Config struct {
	// Writer defaults to os.Stderr so logs never mix with rendered pages.
	Writer io.Writer
	Level  slog.Leveler
	Color  bool
}

func New(cfg Config) *slog.Logger {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Level == nil {
		cfg.Level = slog.LevelWarn
	}

	var handler slog.Handler
	if cfg.Color {
		handler = tint.NewHandler(cfg.Writer, &tint.Options{
			Level:      cfg.Level,
			TimeFormat: "15:04:05",
		})
	} else {
		handler = slog.NewTextHandler(cfg.Writer, &slog.HandlerOptions{Level: cfg.Level})
	}
	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}
