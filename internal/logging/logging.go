package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/rescoffi45/glassflix2/config"
)

// Options describes logger construction parameters.
type Options struct {
	Level  string
	Format string
	File   string
}

// New constructs a slog logger using the provided options. When File is set,
// output goes to both stdout and a size-rotated log file.
func New(opts Options) *slog.Logger {
	var out io.Writer = os.Stdout
	if opts.File != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    20, // megabytes
			MaxBackups: 3,
			MaxAge:     30, // days
			Compress:   true,
		})
	}

	level := parseLevel(opts.Level)
	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		handler = slog.NewJSONHandler(out, handlerOpts)
	} else {
		handler = slog.NewTextHandler(out, handlerOpts)
	}

	return slog.New(handler)
}

// NewFromConfig creates a logger using application config defaults.
func NewFromConfig(settings *config.Settings) *slog.Logger {
	if settings == nil {
		return New(Options{})
	}
	return New(Options{
		Level:  settings.Log.Level,
		Format: settings.Log.Format,
		File:   settings.Log.File,
	})
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
