package cruxcat

import (
	"context"
	"log/slog"

	"github.com/glebone/cruxcat/internal/sequence"
	"github.com/glebone/cruxcat/pkg/adapters/process"
	"github.com/glebone/cruxcat/pkg/domain"
	"github.com/glebone/cruxcat/pkg/ports"
)

// Sequencer is the high-level entry point for the cruxcat library.
// It wraps the internal sequence engine and provides a simplified API
// for consumers that want to run their own ordered command lists with
// the same abort-on-first-failure semantics the startup sequence uses.
type Sequencer struct {
	engine *sequence.Engine
	runner ports.CommandRunner
	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// Option defines a functional option for configuring the Sequencer.
type Option func(*Sequencer)

// WithRunner injects a custom CommandRunner, bypassing the default
// process runner.
func WithRunner(r ports.CommandRunner) Option {
	return func(s *Sequencer) {
		s.runner = r
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Sequencer) {
		s.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the sequencer.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sequencer) {
		s.logger = logger
	}
}

// New creates a Sequencer. With no options it runs commands through
// the real process runner with inherited stdio and no logging.
func New(opts ...Option) *Sequencer {
	s := &Sequencer{
		runner: process.NewRunner(),
	}
	for _, opt := range opts {
		opt(s)
	}

	engineOpts := []sequence.Option{
		sequence.WithLifecycleHooks(s.hooks),
	}
	if s.logger != nil {
		engineOpts = append(engineOpts, sequence.WithLogger(s.logger))
	}
	s.engine = sequence.New(s.runner, engineOpts...)
	return s
}

// Run executes steps strictly in order and returns a
// *domain.StepError naming the first failing step, or nil when every
// step succeeded.
func (s *Sequencer) Run(ctx context.Context, steps []domain.Step) error {
	return s.engine.Run(ctx, steps)
}
