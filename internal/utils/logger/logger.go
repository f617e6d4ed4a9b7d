package logger

import (
	"io"
	"os"
	"strings"

	"golang.org/x/exp/slog"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

type options struct {
	out   io.Writer
	level *slog.Level
}

type Option func(*options)

// WithWriter направляет вывод логгера в w (по умолчанию os.Stdout).
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithLevel overrides the level implied by env. Unknown names are ignored.
func WithLevel(level string) Option {
	return func(o *options) {
		if l, ok := ParseLevel(level); ok {
			o.level = &l
		}
	}
}

// New создает логгер для окружения: local - цветной вывод, dev - JSON с debug,
// prod и всё остальное - JSON с info.
func New(env string, opts ...Option) *slog.Logger {
	o := options{out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	level := slog.LevelInfo
	if env == envLocal || env == envDev {
		level = slog.LevelDebug
	}
	if o.level != nil {
		level = *o.level
	}

	if env == envLocal {
		return slog.New(newPrettyHandler(o.out, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(slog.NewJSONHandler(o.out, &slog.HandlerOptions{Level: level}))
}

func setupPrettySlog() *slog.Logger {
	return slog.New(newPrettyHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Discard drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// Err - атрибут для ошибки
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}
