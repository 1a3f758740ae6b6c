package logger

import (
	"log/slog"
	"os"
)

type options struct {
	appName string
	level   slog.Level
	json    bool
}

// Option is a functional option for configuring the logger factory.
type Option func(*options)

// WithDevelopment configures text output at debug level with the app name attached.
func WithDevelopment(appName string) Option {
	return func(o *options) {
		o.appName = appName
		o.level = slog.LevelDebug
		o.json = false
	}
}

// WithProduction configures JSON output at info level with the app name attached.
func WithProduction(appName string) Option {
	return func(o *options) {
		o.appName = appName
		o.level = slog.LevelInfo
		o.json = true
	}
}

// WithLevel overrides the minimum log level.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithJSONFormatter forces JSON output regardless of the environment preset.
func WithJSONFormatter() Option {
	return func(o *options) {
		o.json = true
	}
}

// New creates a *slog.Logger writing to stdout. Without options it defaults
// to text output at info level.
func New(opts ...Option) *slog.Logger {
	o := options{level: slog.LevelInfo}
	for _, opt := range opts {
		opt(&o)
	}

	handlerOpts := &slog.HandlerOptions{Level: o.level}

	var handler slog.Handler
	if o.json {
		handler = slog.NewJSONHandler(os.Stdout, handlerOpts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, handlerOpts)
	}

	log := slog.New(handler)
	if o.appName != "" {
		log = log.With(slog.String("app", o.appName))
	}
	return log
}
