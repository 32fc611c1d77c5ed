package unbounded

import (
	"io"
	"log/slog"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type config struct {
	name   string
	logger *slog.Logger
}

// Option configures a [Channel] or a [MultiChannel].
type Option func(*config)

func defaultConfig() config {
	return config{
		logger: discard,
	}
}

func newConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithName labels the channel in log records.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithLogger sets the logger used for lifecycle events (close, fork,
// rejected sends). Values flowing through the channel are never logged.
// A nil logger is ignored; the default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// log returns the configured logger. A zero config (from a zero-value
// Channel or MultiChannel) logs nowhere.
func (c *config) log() *slog.Logger {
	l := c.logger
	if l == nil {
		l = discard
	}
	if c.name == "" {
		return l
	}
	return l.With(slog.String("name", c.name))
}
