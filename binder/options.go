package binder

import (
	"log/slog"

	"github.com/spektr-org/launchdash/engine"
	"github.com/spektr-org/launchdash/internal/logging"
)

// ============================================================================
// BINDER OPTIONS: Functional options for New()
// ============================================================================

// Option configures binder behavior via functional options pattern.
type Option func(*config)

type config struct {
	logger    *slog.Logger
	observers []Observer
	initial   *engine.ControlState
}

// WithLogger sets the logger. Defaults to logging.New("binder").
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver registers fn to receive every emitted ChartSpec, including the
// initial pair computed by New. Observers run synchronously on the
// recomputing goroutine and must not call back into the Binder.
func WithObserver(fn Observer) Option {
	return func(c *config) {
		if fn != nil {
			c.observers = append(c.observers, fn)
		}
	}
}

// WithInitialState starts the binder from s instead of the default state.
// s is normalized like any input event; invalid parts fall back to defaults.
func WithInitialState(s engine.ControlState) Option {
	return func(c *config) {
		c.initial = &s
	}
}

func applyOptions(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logging.New("binder")
	}
	return cfg
}
